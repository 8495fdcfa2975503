package require

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ai-shopassist-be/pkg/llm"
	"ai-shopassist-be/pkg/store"
)

// Set is the distilled user intent for one turn.
type Set struct {
	Category string
	Purpose  string
	Features []string
	Budget   Budget
	Brand    string
}

// Extractor turns free text plus conversation history into a requirement
// set via the completion service, with deterministic parsers as the
// structural fallback for budget and brand.
type Extractor struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewExtractor(llmProvider llm.LLMProvider, logger *log.Logger) *Extractor {
	return &Extractor{llmProvider: llmProvider, logger: logger}
}

// Extract asks the model for a structured requirement set. A transport
// failure or unusable output falls back to the pure-string parsers over the
// raw message, so the caller always gets a usable Set.
func (e *Extractor) Extract(ctx context.Context, category, message string, history []store.ChatMessage) (*Set, error) {
	prompt := e.buildPrompt(category, message, history)

	response, err := e.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		e.logger.Printf("[EXTRACT] completion failed, using deterministic fallback: %v", err)
		return e.deterministicSet(category, message, history), nil
	}

	completion, err := ParseCompletion(response)
	if err != nil {
		e.logger.Printf("[EXTRACT] unparsable completion, using deterministic fallback: %v", err)
		return e.deterministicSet(category, message, history), nil
	}

	set := &Set{
		Category: category,
		Purpose:  strings.TrimSpace(completion.Purpose),
		Features: completion.Features,
		Budget:   Budget{Min: completion.BudgetMin, Max: completion.BudgetMax},
		Brand:    completion.Brand,
	}

	// The budget regex is trusted over the model when the model returned
	// nothing: it is the one extraction the pipeline must never lose.
	if set.Budget.IsZero() {
		set.Budget = e.budgetFromConversation(message, history)
	}
	if set.Brand == "" {
		set.Brand = InferBrand(message)
	}

	return set, nil
}

// deterministicSet builds a requirement set from pure string logic alone.
func (e *Extractor) deterministicSet(category, message string, history []store.ChatMessage) *Set {
	return &Set{
		Category: category,
		Budget:   e.budgetFromConversation(message, history),
		Brand:    InferBrand(message),
	}
}

// budgetFromConversation scans the current message first, then user turns
// newest to oldest.
func (e *Extractor) budgetFromConversation(message string, history []store.ChatMessage) Budget {
	if b := ParseBudget(message); !b.IsZero() {
		return b
	}
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role != "user" {
			continue
		}
		if b := ParseBudget(history[i].Content); !b.IsZero() {
			return b
		}
	}
	return Budget{}
}

func (e *Extractor) buildPrompt(category, message string, history []store.ChatMessage) string {
	var prompt strings.Builder

	prompt.WriteString("<task>\n")
	prompt.WriteString("You are a shopping-requirement analyzer. Your ONLY job is to extract what the user wants to buy.\n")
	prompt.WriteString("You do NOT recommend products here. You only extract requirements.\n")
	prompt.WriteString("</task>\n\n")

	prompt.WriteString("<conversation>\n")
	for _, msg := range history {
		prompt.WriteString(fmt.Sprintf("%s: %s\n", msg.Role, msg.Content))
	}
	prompt.WriteString(fmt.Sprintf("user: %s\n", message))
	prompt.WriteString("</conversation>\n\n")

	prompt.WriteString("<rules>\n")
	prompt.WriteString(fmt.Sprintf("- The product category is \"%s\". Do not change it.\n", category))
	prompt.WriteString("- Infer the brand from product-line mentions: \"iPhone\" implies brand \"apple\", \"Galaxy\" implies \"samsung\", \"XPS\" implies \"dell\".\n")
	prompt.WriteString("- If the user says \"not <brand>\", leave brand empty rather than naming that brand.\n")
	prompt.WriteString("- A single number budget (\"1000\") is a maximum, not a minimum.\n")
	prompt.WriteString("- Leave any field you cannot determine empty or null. NEVER invent values.\n")
	prompt.WriteString("</rules>\n\n")

	prompt.WriteString("<output_format>\n")
	prompt.WriteString("Respond with ONLY a fenced JSON block:\n")
	prompt.WriteString("```json\n")
	prompt.WriteString("{\n")
	prompt.WriteString(fmt.Sprintf("  \"category\": \"%s\",\n", category))
	prompt.WriteString("  \"purpose\": \"gaming\",\n")
	prompt.WriteString("  \"features\": [\"16GB RAM\", \"OLED display\"],\n")
	prompt.WriteString("  \"budget_min\": 1000,\n")
	prompt.WriteString("  \"budget_max\": 1500,\n")
	prompt.WriteString("  \"brand\": \"\"\n")
	prompt.WriteString("}\n")
	prompt.WriteString("```")

	return prompt.String()
}
