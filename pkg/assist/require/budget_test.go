package require

import (
	"math"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestParseBudget(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantMin *float64
		wantMax *float64
	}{
		{name: "under", text: "under 1000", wantMax: f(1000)},
		{name: "below with dollar", text: "below $750", wantMax: f(750)},
		{name: "up to", text: "up to 500 would be fine", wantMax: f(500)},
		{name: "dash range", text: "1000-1500", wantMin: f(1000), wantMax: f(1500)},
		{name: "to range", text: "somewhere from 800 to 1200", wantMin: f(800), wantMax: f(1200)},
		{name: "between", text: "between 600 and 900", wantMin: f(600), wantMax: f(900)},
		{name: "reversed range", text: "1500-1000", wantMin: f(1000), wantMax: f(1500)},
		{name: "around", text: "around 1000", wantMin: f(850), wantMax: f(1150)},
		{name: "about with dollar", text: "about $2000", wantMin: f(1700), wantMax: f(2300)},
		{name: "over", text: "over 300", wantMin: f(300)},
		{name: "at least", text: "at least $450", wantMin: f(450)},
		{name: "bare number is upper bound", text: "my budget is 1200", wantMax: f(1200)},
		{name: "k multiplier", text: "around 1.5k", wantMin: f(1275), wantMax: f(1725)},
		{name: "bare k", text: "2k tops", wantMax: f(2000)},
		{name: "tiny number ignored", text: "I need 3 of them", wantMin: nil, wantMax: nil},
		{name: "storage spec ignored", text: "512GB SSD please", wantMin: nil, wantMax: nil},
		{name: "battery hours ignored", text: "up to 18 hours battery life", wantMin: nil, wantMax: nil},
		{name: "refresh rate ignored", text: "a 120Hz display", wantMin: nil, wantMax: nil},
		{name: "screen size ignored", text: "15.6 inch screen", wantMin: nil, wantMax: nil},
		{name: "budget next to spec", text: "under $900 with 512GB storage", wantMax: f(900)},
		{name: "no numbers", text: "as cheap as possible", wantMin: nil, wantMax: nil},
		{name: "empty", text: "", wantMin: nil, wantMax: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBudget(tt.text)
			assertBound(t, "min", got.Min, tt.wantMin)
			assertBound(t, "max", got.Max, tt.wantMax)
		})
	}
}

func assertBound(t *testing.T, label string, got, want *float64) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %v, want absent", label, *got)
	case want != nil && got == nil:
		t.Errorf("%s absent, want %v", label, *want)
	case want != nil && got != nil && math.Abs(*got-*want) > 1e-6:
		t.Errorf("%s = %v, want %v", label, *got, *want)
	}
}

func TestParseBudgetRangeOrdering(t *testing.T) {
	got := ParseBudget("between 900 and 600")
	if got.Min == nil || got.Max == nil || *got.Min > *got.Max {
		t.Errorf("min must never exceed max, got %+v", got)
	}
}

func TestInferBrand(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I want a macbook", "apple"},
		{"something like the galaxy line", "samsung"},
		{"a thinkpad for work", "lenovo"},
		{"maybe a dell", "dell"},
		{"not samsung please", ""},
		{"anything but apple", ""},
		{"avoid sony, prefer lg", "lg"},
		{"no brand preference", ""},
	}
	for _, tt := range tests {
		if got := InferBrand(tt.text); got != tt.want {
			t.Errorf("InferBrand(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
