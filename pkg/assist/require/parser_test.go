package require

import (
	"errors"
	"testing"
)

func TestParseCompletion(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantMessage string
		wantErr     bool
	}{
		{
			name:        "fenced json block",
			raw:         "Sure!\n```json\n{\"message\": \"Here you go\", \"recommended_products\": [\"MacBook M4 Pro\"]}\n```",
			wantMessage: "Here you go",
		},
		{
			name:        "fenced without language tag",
			raw:         "```\n{\"message\": \"done\"}\n```",
			wantMessage: "done",
		},
		{
			name:        "bare braces with prose around",
			raw:         "Here is my answer: {\"message\": \"pick the dell\"} hope that helps",
			wantMessage: "pick the dell",
		},
		{
			name:        "message key object after junk braces",
			raw:         "weights {0.1, 0.2} then {\"message\": \"ok\"}",
			wantMessage: "ok",
		},
		{
			name:    "no json at all",
			raw:     "I am sorry, I cannot answer that.",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompletion(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrUnparsableCompletion) {
					t.Fatalf("err = %v, want ErrUnparsableCompletion", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCompletion: %v", err)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestParseCompletionNormalization(t *testing.T) {
	raw := "```json\n{\"message\": \"m\", \"category\": \" Laptop \", \"brand\": \"APPLE\", \"budget_min\": 1500, \"budget_max\": 1000}\n```"
	got, err := ParseCompletion(raw)
	if err != nil {
		t.Fatalf("ParseCompletion: %v", err)
	}
	if got.Category != "laptop" {
		t.Errorf("Category = %q, want laptop", got.Category)
	}
	if got.Brand != "apple" {
		t.Errorf("Brand = %q, want apple", got.Brand)
	}
	if *got.BudgetMin != 1000 || *got.BudgetMax != 1500 {
		t.Errorf("budget bounds not reordered: min=%v max=%v", *got.BudgetMin, *got.BudgetMax)
	}
}

func TestParseCompletionComparisonPayload(t *testing.T) {
	raw := `{"message": "side by side", "comparison_products": ["A", "B"], "comparison_features": {"Price": ["$1", "$2"]}}`
	got, err := ParseCompletion(raw)
	if err != nil {
		t.Fatalf("ParseCompletion: %v", err)
	}
	if len(got.ComparisonProducts) != 2 {
		t.Errorf("ComparisonProducts = %v", got.ComparisonProducts)
	}
	if len(got.ComparisonFeatures["Price"]) != 2 {
		t.Errorf("ComparisonFeatures = %v", got.ComparisonFeatures)
	}
}
