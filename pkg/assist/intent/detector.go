package intent

import (
	"strings"
	"unicode"
)

// categoryEntry pairs a category with its trigger keywords. Slice order is
// the tie-break: the first category with a matching token wins.
type categoryEntry struct {
	Name     string
	Keywords []string
}

// The fixed category table. Keywords are lowercase single tokens.
var categories = []categoryEntry{
	{Name: "laptop", Keywords: []string{"laptop", "laptops", "notebook", "notebooks", "ultrabook", "macbook", "chromebook"}},
	{Name: "phone", Keywords: []string{"phone", "phones", "smartphone", "smartphones", "iphone", "mobile", "android"}},
	{Name: "tv", Keywords: []string{"tv", "tvs", "television", "televisions", "oled", "qled"}},
	{Name: "gaming", Keywords: []string{"gaming", "console", "consoles", "playstation", "ps5", "xbox", "nintendo"}},
	{Name: "audio", Keywords: []string{"audio", "headphone", "headphones", "headset", "earbuds", "speaker", "speakers", "soundbar"}},
}

// Categories returns the category names in enumeration order.
func Categories() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = c.Name
	}
	return out
}

// DetectCategory maps free text to a category, or "" when nothing matches.
// Exact token matches are tried first across all categories; fuzzy matching
// runs only for tokens longer than three characters, with a tolerance scaled
// to keyword length so short keywords don't absorb unrelated words.
func DetectCategory(text string) string {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return ""
	}

	for _, entry := range categories {
		for _, keyword := range entry.Keywords {
			for _, token := range tokens {
				if token == keyword {
					return entry.Name
				}
			}
		}
	}

	for _, entry := range categories {
		for _, keyword := range entry.Keywords {
			tolerance := len(keyword) / 4
			if tolerance < 1 {
				tolerance = 1
			}
			if tolerance > 2 {
				tolerance = 2
			}
			for _, token := range tokens {
				// Short tokens get exact matching only: "la" must
				// not fuzz into "laptop".
				if len(token) <= 3 {
					continue
				}
				if levenshtein(token, keyword) <= tolerance {
					return entry.Name
				}
			}
		}
	}

	return ""
}

func tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func levenshtein(s1, s2 string) int {
	r1, r2 := []rune(s1), []rune(s2)
	n, m := len(r1), len(r2)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	row := make([]int, m+1)
	for i := 0; i <= m; i++ {
		row[i] = i
	}

	for i := 1; i <= n; i++ {
		prev := i
		var val int
		for j := 1; j <= m; j++ {
			if r1[i-1] == r2[j-1] {
				val = row[j-1]
			} else {
				val = minOf3(row[j-1]+1, prev+1, row[j]+1)
			}
			row[j-1] = prev
			prev = val
		}
		row[m] = prev
	}
	return row[m]
}

func minOf3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
