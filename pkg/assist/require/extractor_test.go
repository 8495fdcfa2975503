package require

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"ai-shopassist-be/pkg/llm"
	"ai-shopassist-be/pkg/store"
)

type scriptedLLM struct {
	response string
	err      error
}

func (s *scriptedLLM) Chat(context.Context, []llm.Message, ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *scriptedLLM) Generate(context.Context, string, ...llm.Option) (string, error) {
	return s.response, s.err
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestExtractFromModelOutput(t *testing.T) {
	provider := &scriptedLLM{
		response: "```json\n{\"category\": \"laptop\", \"purpose\": \"gaming\", \"features\": [\"RTX 4070\"], \"budget_max\": 1500, \"brand\": \"asus\"}\n```",
	}
	extractor := NewExtractor(provider, quietLogger())

	set, err := extractor.Extract(context.Background(), "laptop", "a gaming laptop with an RTX card", nil)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if set.Purpose != "gaming" || set.Brand != "asus" {
		t.Errorf("set = %+v", set)
	}
	if set.Budget.Max == nil || *set.Budget.Max != 1500 {
		t.Errorf("budget max = %v, want 1500", set.Budget.Max)
	}
}

// A transport failure must not lose the budget or the brand: the string
// parsers recover both from the raw message.
func TestExtractFallsBackOnTransportFailure(t *testing.T) {
	provider := &scriptedLLM{err: errors.New("connection refused")}
	extractor := NewExtractor(provider, quietLogger())

	set, err := extractor.Extract(context.Background(), "laptop", "a macbook under 1500", nil)
	if err != nil {
		t.Fatalf("Extract must not propagate transport errors, got %v", err)
	}
	if set.Brand != "apple" {
		t.Errorf("Brand = %q, want apple inferred from macbook", set.Brand)
	}
	if set.Budget.Max == nil || *set.Budget.Max != 1500 {
		t.Errorf("budget max = %v, want 1500", set.Budget.Max)
	}
}

func TestExtractFallsBackOnGarbageOutput(t *testing.T) {
	provider := &scriptedLLM{response: "I'd be happy to help you shop!"}
	extractor := NewExtractor(provider, quietLogger())

	set, err := extractor.Extract(context.Background(), "phone", "no preferences really", nil)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if set.Category != "phone" {
		t.Errorf("Category = %q, want phone", set.Category)
	}
	if !set.Budget.IsZero() || set.Brand != "" {
		t.Errorf("fallback set invented values: %+v", set)
	}
}

// The regex budget outranks an empty model budget, scanning user turns
// newest first.
func TestExtractBudgetFromHistory(t *testing.T) {
	provider := &scriptedLLM{response: "```json\n{\"category\": \"laptop\", \"purpose\": \"work\"}\n```"}
	extractor := NewExtractor(provider, quietLogger())

	history := []store.ChatMessage{
		{Role: "user", Content: "I need a laptop"},
		{Role: "assistant", Content: "What's your budget? Around 100?"},
		{Role: "user", Content: "between 800 and 1200"},
	}
	set, err := extractor.Extract(context.Background(), "laptop", "mostly for work", history)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if set.Budget.Min == nil || *set.Budget.Min != 800 || set.Budget.Max == nil || *set.Budget.Max != 1200 {
		t.Errorf("budget = %+v, want 800-1200 from history", set.Budget)
	}
}
