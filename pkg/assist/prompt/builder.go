package prompt

import (
	"fmt"
	"strings"

	"ai-shopassist-be/pkg/assist/require"
	"ai-shopassist-be/pkg/store"
)

// Builder assembles the prompts sent to the completion service. Every
// prompt that can surface products embeds the candidate slice and the
// instruction to recommend ONLY from it; the orchestrator still validates
// whatever comes back.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Recommendation asks the model to present products picked from an
// already-filtered candidate list.
func (b *Builder) Recommendation(reqs *require.Set, candidates []store.Product, history []store.ChatMessage) string {
	var p strings.Builder

	p.WriteString("<task>\n")
	p.WriteString("You are a friendly e-commerce shopping assistant recommending products.\n")
	p.WriteString("Recommend ONLY products from the catalog below. NEVER invent a product.\n")
	p.WriteString("</task>\n\n")

	b.writeCatalog(&p, candidates)
	b.writeHistory(&p, history)

	p.WriteString("<requirements>\n")
	if reqs.Purpose != "" {
		p.WriteString(fmt.Sprintf("Purpose: %s\n", reqs.Purpose))
	}
	if len(reqs.Features) > 0 {
		p.WriteString(fmt.Sprintf("Requested features: %s\n", strings.Join(reqs.Features, ", ")))
	}
	b.writeBudget(&p, reqs.Budget)
	if reqs.Brand != "" {
		p.WriteString(fmt.Sprintf("Preferred brand: %s\n", reqs.Brand))
	}
	p.WriteString("</requirements>\n\n")

	p.WriteString("<output_format>\n")
	p.WriteString("Respond with ONLY a fenced JSON block:\n")
	p.WriteString("```json\n")
	p.WriteString("{\n")
	p.WriteString("  \"message\": \"A short, warm sentence introducing the picks\",\n")
	p.WriteString("  \"recommended_products\": [\"Exact Product Name 1\", \"Exact Product Name 2\", \"Exact Product Name 3\"]\n")
	p.WriteString("}\n")
	p.WriteString("```\n")
	p.WriteString("Product names must be copied EXACTLY from the catalog above. Pick at most 3.")

	return p.String()
}

// Followup handles rejection / alternatives and general follow-up turns.
func (b *Builder) Followup(message string, state *store.ChatState, candidates []store.Product, maxAlternativePrice float64) string {
	var p strings.Builder

	p.WriteString("<task>\n")
	p.WriteString("You are a shopping assistant continuing a product conversation.\n")
	p.WriteString("Answer the user's follow-up. If they want different products, propose alternatives ONLY from the catalog below.\n")
	p.WriteString("</task>\n\n")

	b.writeCatalog(&p, candidates)
	b.writeShown(&p, state.RecommendedProducts)

	if len(state.RejectedProducts) > 0 {
		p.WriteString("<rejected>\n")
		p.WriteString("The user already dismissed these. Do NOT propose them again unless the user clearly asks to reconsider them, in which case set include_rejected_products to true:\n")
		for name := range state.RejectedProducts {
			p.WriteString(fmt.Sprintf("- %s\n", name))
		}
		p.WriteString("</rejected>\n\n")
	}

	if maxAlternativePrice > 0 {
		p.WriteString(fmt.Sprintf("<price_rule>\nThe user finds the current picks too expensive. Every alternative MUST cost less than $%.0f.\n</price_rule>\n\n", maxAlternativePrice))
	}

	b.writeHistory(&p, state.History)

	p.WriteString("<user_message>\n")
	p.WriteString(message)
	p.WriteString("\n</user_message>\n\n")

	p.WriteString("<output_format>\n")
	p.WriteString("Respond with ONLY a fenced JSON block:\n")
	p.WriteString("```json\n")
	p.WriteString("{\n")
	p.WriteString("  \"message\": \"Your conversational reply\",\n")
	p.WriteString("  \"alternative_products\": [\"Exact Name\"],\n")
	p.WriteString("  \"final_choice\": \"\",\n")
	p.WriteString("  \"include_rejected_products\": false\n")
	p.WriteString("}\n")
	p.WriteString("```\n")
	p.WriteString("Leave alternative_products empty when the user is not asking for different products.")

	return p.String()
}

// ProductQuestion constrains the model to the named products. The model
// must explain unsuitability before pivoting: an earlier recommendation is
// never contradicted without a reason.
func (b *Builder) ProductQuestion(message string, focus []store.Product, history []store.ChatMessage) string {
	var p strings.Builder

	p.WriteString("<task>\n")
	p.WriteString("You are a shopping assistant answering a question about specific products already shown to the user.\n")
	p.WriteString("Discuss ONLY the products below. If one does not fit the user's need, explain WHY before suggesting they look at alternatives. Never flatly contradict an earlier recommendation.\n")
	p.WriteString("</task>\n\n")

	p.WriteString("<products>\n")
	for _, prod := range focus {
		b.writeProduct(&p, prod)
	}
	p.WriteString("</products>\n\n")

	b.writeHistory(&p, history)

	p.WriteString("<user_question>\n")
	p.WriteString(message)
	p.WriteString("\n</user_question>\n\n")

	p.WriteString("<output_format>\n")
	p.WriteString("Respond with ONLY a fenced JSON block:\n")
	p.WriteString("```json\n")
	p.WriteString("{\"message\": \"Your answer\"}\n")
	p.WriteString("```")

	return p.String()
}

// Comparison asks for a structured feature-by-feature comparison. The
// table payload must stay out of the prose: the message and the structure
// are separate fields.
func (b *Builder) Comparison(message string, products []store.Product) string {
	var p strings.Builder

	p.WriteString("<task>\n")
	p.WriteString("You are a shopping assistant comparing products for the user.\n")
	p.WriteString("Compare ONLY the products below, feature by feature.\n")
	p.WriteString("</task>\n\n")

	p.WriteString("<products>\n")
	for _, prod := range products {
		b.writeProduct(&p, prod)
	}
	p.WriteString("</products>\n\n")

	p.WriteString("<user_request>\n")
	p.WriteString(message)
	p.WriteString("\n</user_request>\n\n")

	p.WriteString("<output_format>\n")
	p.WriteString("Respond with ONLY a fenced JSON block. Keep the comparison data OUT of the message text; it goes in the structured fields:\n")
	p.WriteString("```json\n")
	p.WriteString("{\n")
	p.WriteString("  \"message\": \"One or two sentences summarizing which product suits whom\",\n")
	p.WriteString("  \"comparison_products\": [\"Exact Name A\", \"Exact Name B\"],\n")
	p.WriteString("  \"comparison_features\": {\n")
	p.WriteString("    \"Display\": [\"value for A\", \"value for B\"],\n")
	p.WriteString("    \"Price\": [\"$999\", \"$1299\"]\n")
	p.WriteString("  }\n")
	p.WriteString("}\n")
	p.WriteString("```")

	return p.String()
}

func (b *Builder) writeCatalog(p *strings.Builder, candidates []store.Product) {
	p.WriteString("<catalog>\n")
	for _, prod := range candidates {
		b.writeProduct(p, prod)
	}
	p.WriteString("</catalog>\n\n")
}

func (b *Builder) writeProduct(p *strings.Builder, prod store.Product) {
	p.WriteString(fmt.Sprintf("- %s | %s | %s\n", prod.Name, prod.Brand, prod.Price))
	for i, f := range prod.Features {
		if i >= 5 {
			break
		}
		p.WriteString(fmt.Sprintf("    %s\n", f))
	}
}

func (b *Builder) writeShown(p *strings.Builder, shown []store.Product) {
	if len(shown) == 0 {
		return
	}
	p.WriteString("<currently_shown>\n")
	for _, prod := range shown {
		p.WriteString(fmt.Sprintf("- %s (%s)\n", prod.Name, prod.Price))
	}
	p.WriteString("</currently_shown>\n\n")
}

func (b *Builder) writeHistory(p *strings.Builder, history []store.ChatMessage) {
	if len(history) == 0 {
		return
	}
	p.WriteString("<conversation>\n")
	for _, msg := range history {
		p.WriteString(fmt.Sprintf("%s: %s\n", msg.Role, msg.Content))
	}
	p.WriteString("</conversation>\n\n")
}

func (b *Builder) writeBudget(p *strings.Builder, budget require.Budget) {
	switch {
	case budget.Min != nil && budget.Max != nil:
		p.WriteString(fmt.Sprintf("Budget: $%.0f to $%.0f\n", *budget.Min, *budget.Max))
	case budget.Max != nil:
		p.WriteString(fmt.Sprintf("Budget: up to $%.0f\n", *budget.Max))
	case budget.Min != nil:
		p.WriteString(fmt.Sprintf("Budget: at least $%.0f\n", *budget.Min))
	}
}
