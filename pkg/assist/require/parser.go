package require

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrUnparsableCompletion means every fallback pattern failed to locate a
// usable JSON object in the model's output. Callers must treat this as a
// recoverable condition, never fabricate a result from it.
var ErrUnparsableCompletion = errors.New("completion output contains no parsable JSON")

// Completion is the structured payload the model is instructed to return.
// Only Message is guaranteed; everything else is optional and must be
// validated against the catalog before use.
type Completion struct {
	Message                 string              `json:"message"`
	Category                string              `json:"category"`
	Purpose                 string              `json:"purpose"`
	Features                []string            `json:"features"`
	BudgetMin               *float64            `json:"budget_min"`
	BudgetMax               *float64            `json:"budget_max"`
	Brand                   string              `json:"brand"`
	RecommendedProducts     []string            `json:"recommended_products"`
	AlternativeProducts     []string            `json:"alternative_products"`
	FinalChoice             string              `json:"final_choice"`
	IncludeRejectedProducts bool                `json:"include_rejected_products"`
	ComparisonProducts      []string            `json:"comparison_products"`
	ComparisonFeatures      map[string][]string `json:"comparison_features"`
}

var (
	reFencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	reMessageKey = regexp.MustCompile(`(?s)\{[^{}]*"message"[^{}]*\}`)
)

// ParseCompletion extracts the structured object from raw model output.
// Three patterns are tried in order:
//  1. a fenced ```json block,
//  2. the outermost braced region,
//  3. any small object carrying a "message" key.
//
// Exhausting all three returns ErrUnparsableCompletion.
func ParseCompletion(raw string) (*Completion, error) {
	if m := reFencedJSON.FindStringSubmatch(raw); m != nil {
		if c, err := unmarshalCompletion(m[1]); err == nil {
			return c, nil
		}
	}

	if start, end := strings.Index(raw, "{"), strings.LastIndex(raw, "}"); start != -1 && end > start {
		if c, err := unmarshalCompletion(raw[start : end+1]); err == nil {
			return c, nil
		}
	}

	if m := reMessageKey.FindString(raw); m != "" {
		if c, err := unmarshalCompletion(m); err == nil {
			return c, nil
		}
	}

	return nil, ErrUnparsableCompletion
}

func unmarshalCompletion(s string) (*Completion, error) {
	var c Completion
	if err := json.Unmarshal([]byte(s), &c); err != nil {
		return nil, err
	}
	c.Category = strings.ToLower(strings.TrimSpace(c.Category))
	c.Brand = strings.ToLower(strings.TrimSpace(c.Brand))
	if c.BudgetMin != nil && c.BudgetMax != nil && *c.BudgetMin > *c.BudgetMax {
		c.BudgetMin, c.BudgetMax = c.BudgetMax, c.BudgetMin
	}
	return &c, nil
}
