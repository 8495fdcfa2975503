package recommend

import (
	"fmt"
	"strings"

	"ai-shopassist-be/pkg/assist/match"
	"ai-shopassist-be/pkg/catalog"
)

func clarifyMessage(categories []string) string {
	return fmt.Sprintf(
		"I'd love to help you find the right product! Are you looking for a %s?",
		joinOr(categories),
	)
}

func purposeQuestion(category string) string {
	switch category {
	case "laptop":
		return "Great choice! What will you mainly use the laptop for? Gaming, work, study, or something else?"
	case "phone":
		return "Nice! What matters most to you in a phone? Camera, battery life, performance, or something else?"
	case "tv":
		return "Sounds good! What will you mostly watch? Movies, sports, gaming, or everyday TV?"
	case "gaming":
		return "Awesome! Are you after a console, accessories, or a full gaming setup?"
	case "audio":
		return "Great! Are you looking for headphones, earbuds, or speakers? And where will you use them most?"
	default:
		return fmt.Sprintf("Great choice! What will you mainly use the %s for?", category)
	}
}

func budgetQuestion(category string) string {
	return fmt.Sprintf("Got it! And what's your budget for the %s?", category)
}

func featureQuestion(category string) string {
	return fmt.Sprintf("Almost there! Any must-have features or a brand you prefer for your %s?", category)
}

func tierPreface(tier match.Tier) string {
	switch tier {
	case match.TierBrandRelaxed:
		return "I couldn't find an exact match for that brand, but these come very close: "
	case match.TierBudgetRelaxed:
		return "Nothing fit your budget exactly, so I stretched it a little. Here's what I found: "
	case match.TierFallback:
		return "I couldn't find an exact match for everything you asked, but here are the closest options: "
	default:
		return ""
	}
}

func recommendFallbackMessage(category string) string {
	return fmt.Sprintf("Based on what you've told me, here are the best %s options I found:", category)
}

func emptyCategoryMessage(category string) string {
	return fmt.Sprintf("I'm sorry, I don't have any %s products in stock right now. Would you like to look at a different category?", category)
}

func noCheaperMessage() string {
	return "I understand price matters! Unfortunately I couldn't find meaningfully cheaper options in this category right now. Would you like to adjust what you're looking for, or try a different category?"
}

func closingMessage() string {
	return "You're very welcome! Enjoy your new purchase, and feel free to come back any time you need help. Happy shopping!"
}

func switchMessage(category string) string {
	return fmt.Sprintf("Sure, let's look at %ss instead. %s", strings.TrimSuffix(category, "s"), purposeQuestion(category))
}

func cheaperPreface(limit float64) string {
	return fmt.Sprintf("No problem! Here are some great options under %s:", catalog.PriceString(limit))
}

func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
	}
}
