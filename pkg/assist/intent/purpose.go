package intent

import "strings"

// purposeGroups maps a canonical purpose label to its trigger keywords.
// Checked in order; the first group with a hit wins.
var purposeGroups = []struct {
	Label    string
	Keywords []string
}{
	{"gaming", []string{"gaming", "game", "games", "fps", "esports", "valorant", "fortnite", "cs2", "csgo"}},
	{"work", []string{"work", "office", "business", "excel", "word", "meetings", "zoom", "teams", "productivity"}},
	{"study", []string{"study", "school", "college", "university", "student", "classes", "homework"}},
	{"creative", []string{"video editing", "editing", "photoshop", "design", "render", "rendering", "3d", "music production", "streaming"}},
	{"movies", []string{"movies", "movie", "netflix", "streaming shows", "watching", "cinema", "home theater", "theatre"}},
	{"travel", []string{"travel", "portable", "lightweight", "commute", "on the go"}},
	{"everyday", []string{"everyday", "daily", "general use", "browsing", "casual", "basic"}},
}

// DetectPurpose extracts a canonical use-case label from free text, or ""
// when none of the known purposes appear.
func DetectPurpose(text string) string {
	lower := strings.ToLower(text)
	for _, group := range purposeGroups {
		for _, kw := range group.Keywords {
			if strings.Contains(lower, kw) {
				return group.Label
			}
		}
	}
	return ""
}
