package intent

import "testing"

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "exact keyword beats fuzzy", text: "gaming laptop", want: "laptop"},
		{name: "two letter category", text: "tv", want: "tv"},
		{name: "sentence form", text: "I need a new phone for my mom", want: "phone"},
		{name: "synonym", text: "looking for some earbuds", want: "audio"},
		{name: "console keyword", text: "a playstation for the kids", want: "gaming"},
		{name: "typo within tolerance", text: "i want a laptp", want: "laptop"},
		{name: "typo in long keyword", text: "need headphnes", want: "audio"},
		{name: "gibberish", text: "xyzzy", want: ""},
		{name: "empty", text: "", want: ""},
		{name: "short token no fuzz", text: "lap", want: ""},
		{name: "punctuation tokenized", text: "laptop, please!", want: "laptop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCategory(tt.text); got != tt.want {
				t.Errorf("DetectCategory(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Repeated calls over the same input must always agree; the tie-break is the
// category enumeration order, not map iteration.
func TestDetectCategoryDeterminism(t *testing.T) {
	first := DetectCategory("gaming laptop")
	for i := 0; i < 100; i++ {
		if got := DetectCategory("gaming laptop"); got != first {
			t.Fatalf("run %d: got %q, earlier runs got %q", i, got, first)
		}
	}
	if first != "laptop" {
		t.Errorf("DetectCategory(\"gaming laptop\") = %q, want laptop", first)
	}
}

func TestDetectPurpose(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"mostly for gaming and some streaming", "gaming"},
		{"office work and meetings", "work"},
		{"i'm a college student", "study"},
		{"video editing in premiere", "creative"},
		{"no particular reason", ""},
	}
	for _, tt := range tests {
		if got := DetectPurpose(tt.text); got != tt.want {
			t.Errorf("DetectPurpose(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
