package intent

import (
	"strings"

	"ai-shopassist-be/pkg/store"
)

// FollowupKind classifies a message arriving while products are on display.
type FollowupKind string

const (
	FollowupCategorySwitch  FollowupKind = "CATEGORY_SWITCH"
	FollowupClosing         FollowupKind = "CLOSING"
	FollowupComparison      FollowupKind = "COMPARISON"
	FollowupPriceObjection  FollowupKind = "PRICE_OBJECTION"
	FollowupRejection       FollowupKind = "REJECTION"
	FollowupProductQuestion FollowupKind = "PRODUCT_QUESTION"
	FollowupGeneral         FollowupKind = "GENERAL"
)

// Followup carries the classification plus the entities that drove it.
type Followup struct {
	Kind            FollowupKind
	SwitchCategory  string   // set for FollowupCategorySwitch
	MentionedNames  []string // recommended products named in the message
}

var closingPhrases = []string{
	"thank you", "thanks", "that's all", "thats all", "that is all",
	"goodbye", "bye", "no that's it", "i'm done", "im done", "all good",
}

var comparisonPhrases = []string{
	"compare", " vs ", " vs.", "versus", "difference between",
	"which is better", "which one is better", "side by side",
}

var priceObjectionPhrases = []string{
	"too expensive", "too pricey", "cheaper", "lower price", "less expensive",
	"more affordable", "out of my budget", "over my budget", "cost less",
}

var rejectionPhrases = []string{
	"don't like", "dont like", "not interested", "not a fan",
	"something else", "show me other", "show other", "other options",
	"alternatives", "alternative", "anything else", "none of these",
	"not these", "different ones", "show me more",
}

var switchCues = []string{
	"actually", "instead", "now i want", "now i need", "i want a", "i need a",
	"how about a", "what about a", "switch to", "looking for a",
}

// ClassifyFollowup decides how a FOLLOWUP-stage message should be handled.
// Classification is purely lexical; anything ambiguous falls through to
// FollowupGeneral and is delegated to the model with full context.
func ClassifyFollowup(message string, state *store.ChatState) Followup {
	lower := strings.ToLower(strings.TrimSpace(message))

	// A different category plus a switching cue (or a bare category name)
	// restarts gathering for the new category.
	if detected := DetectCategory(lower); detected != "" && detected != state.SelectedCategory {
		if containsAny(lower, switchCues) || isBareCategoryMention(lower) {
			return Followup{Kind: FollowupCategorySwitch, SwitchCategory: detected}
		}
	}

	if containsAny(lower, closingPhrases) {
		return Followup{Kind: FollowupClosing}
	}

	if containsAny(lower, comparisonPhrases) {
		return Followup{Kind: FollowupComparison, MentionedNames: mentionedProducts(lower, state)}
	}

	if containsAny(lower, priceObjectionPhrases) {
		return Followup{Kind: FollowupPriceObjection}
	}

	if containsAny(lower, rejectionPhrases) {
		return Followup{Kind: FollowupRejection}
	}

	if names := mentionedProducts(lower, state); len(names) > 0 {
		return Followup{Kind: FollowupProductQuestion, MentionedNames: names}
	}

	return Followup{Kind: FollowupGeneral}
}

// IsShowMeRequest reports an explicit request to see products, which ends
// the gathering phase early.
func IsShowMeRequest(message string) bool {
	lower := strings.ToLower(message)
	return containsAny(lower, []string{
		"show me", "just show", "recommend", "suggest", "see options",
		"see the options", "what do you have", "what have you got",
	})
}

// WantsRejectedReconsidered reports phrasing that asks to see previously
// dismissed products again.
func WantsRejectedReconsidered(message string) bool {
	lower := strings.ToLower(message)
	return containsAny(lower, []string{
		"show me again", "the ones you showed", "reconsider", "go back to",
		"the previous ones", "earlier options", "including the ones",
	})
}

func mentionedProducts(lower string, state *store.ChatState) []string {
	var names []string
	for _, p := range state.RecommendedProducts {
		if strings.Contains(lower, strings.ToLower(p.Name)) {
			names = append(names, p.Name)
		}
	}
	return names
}

// isBareCategoryMention treats very short messages ("a tv", "phones") as a
// switch signal even without a cue word.
func isBareCategoryMention(lower string) bool {
	return len(tokenize(lower)) <= 3
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
