package factory

import (
	"context"
	"fmt"
	"time"

	"ai-shopassist-be/pkg/llm"
	"ai-shopassist-be/pkg/llm/gemini"
	"ai-shopassist-be/pkg/llm/ollama"
)

// NewLLMProvider selects the completion backend by config.
func NewLLMProvider(providerType, modelName, baseURL, geminiAPIKey string, timeout time.Duration) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName, timeout), nil
	case "gemini":
		if geminiAPIKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.NewGeminiProvider(context.Background(), geminiAPIKey, modelName, timeout)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
