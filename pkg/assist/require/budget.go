package require

import (
	"regexp"
	"strconv"
	"strings"
)

// Budget is an open-ended price range. A single bare number is an upper
// bound by default.
type Budget struct {
	Min *float64
	Max *float64
}

// IsZero reports an empty budget.
func (b Budget) IsZero() bool {
	return b.Min == nil && b.Max == nil
}

const aroundTolerance = 0.15

// Amount pattern: optional $, digits with optional decimals, optional k
// multiplier ("1.5k" = 1500).
const amount = `\$?\s*(\d+(?:\.\d+)?)\s*(k)?`

var (
	// Numbers glued to a unit are spec talk, not money: "512GB SSD",
	// "up to 18 hours", "120Hz display", "15.6 inch".
	reUnitNumber = regexp.MustCompile(`(?i)\$?\s*\d+(?:\.\d+)?\s*(?:(?:gb|tb|mb|ghz|mhz|hz|fps|mah|mp|nits|wh|kg|mm|cm|inch(?:es)?|hours?|hrs?|minutes?|mins?|days?|cores?|ports?)\b|%|")`)

	reRange   = regexp.MustCompile(`(?i)` + amount + `\s*(?:-|to)\s*` + amount)
	reBetween = regexp.MustCompile(`(?i)between\s+` + amount + `\s+and\s+` + amount)
	reAround  = regexp.MustCompile(`(?i)(?:around|about|approximately|roughly|~)\s*` + amount)
	reUnder   = regexp.MustCompile(`(?i)(?:under|below|less than|at most|up to|within|max(?:imum)?)\s*` + amount)
	reOver    = regexp.MustCompile(`(?i)(?:over|above|more than|at least|min(?:imum)?|starting at)\s*` + amount)
	reBare    = regexp.MustCompile(amount)
)

// ParseBudget extracts a budget from free text with pure string logic,
// independent of any model call. Pattern families, in priority order:
// "between X and Y", "X-Y"/"X to Y", "around X" (±15%), "under X",
// "over X", and a bare number treated as an upper bound. Numbers that
// carry a unit suffix never count as money.
func ParseBudget(text string) Budget {
	text = strings.TrimSpace(text)
	if text == "" {
		return Budget{}
	}
	text = reUnitNumber.ReplaceAllString(text, " ")

	if m := reBetween.FindStringSubmatch(text); m != nil {
		return orderedRange(parseAmount(m[1], m[2]), parseAmount(m[3], m[4]))
	}
	if m := reRange.FindStringSubmatch(text); m != nil {
		return orderedRange(parseAmount(m[1], m[2]), parseAmount(m[3], m[4]))
	}
	if m := reAround.FindStringSubmatch(text); m != nil {
		center := parseAmount(m[1], m[2])
		lo, hi := center*(1-aroundTolerance), center*(1+aroundTolerance)
		return Budget{Min: &lo, Max: &hi}
	}
	if m := reUnder.FindStringSubmatch(text); m != nil {
		v := parseAmount(m[1], m[2])
		return Budget{Max: &v}
	}
	if m := reOver.FindStringSubmatch(text); m != nil {
		v := parseAmount(m[1], m[2])
		return Budget{Min: &v}
	}
	if m := reBare.FindStringSubmatch(text); m != nil {
		v := parseAmount(m[1], m[2])
		// Tiny numbers ("3 of them", "2 ports") are not budgets.
		if v >= 20 {
			return Budget{Max: &v}
		}
	}

	return Budget{}
}

func parseAmount(digits, multiplier string) float64 {
	v, _ := strconv.ParseFloat(digits, 64)
	if strings.EqualFold(multiplier, "k") {
		v *= 1000
	}
	return v
}

func orderedRange(a, b float64) Budget {
	if a > b {
		a, b = b, a
	}
	return Budget{Min: &a, Max: &b}
}
