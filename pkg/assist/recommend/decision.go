package recommend

import (
	"ai-shopassist-be/pkg/assist/match"
	"ai-shopassist-be/pkg/store"
)

// DecisionKind tells the formatter what shape of reply to render.
type DecisionKind string

const (
	// DecisionClarify asks which category the user wants.
	DecisionClarify DecisionKind = "CLARIFY"
	// DecisionAsk asks a gathering question (purpose, budget, features).
	DecisionAsk DecisionKind = "ASK"
	// DecisionRecommend presents product cards.
	DecisionRecommend DecisionKind = "RECOMMEND"
	// DecisionAnswer is a text-only reply with no product change.
	DecisionAnswer DecisionKind = "ANSWER"
	// DecisionCompare carries a structured comparison payload.
	DecisionCompare DecisionKind = "COMPARE"
	// DecisionClosing ends the conversation politely.
	DecisionClosing DecisionKind = "CLOSING"
)

// Comparison is the structured side channel for comparison requests. It is
// never interleaved into the message text; the formatter renders it
// separately.
type Comparison struct {
	Products []string            `json:"products"`
	Features map[string][]string `json:"features"`
}

// Decision is the orchestrator's structured output for one turn. Every
// product it carries has already been validated against the live catalog
// snapshot by exact name.
type Decision struct {
	Kind       DecisionKind
	Message    string
	Products   []store.Product
	Comparison *Comparison
	Tier       match.Tier
}
