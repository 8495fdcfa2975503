package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"ai-shopassist-be/pkg/llm"
)

// GeminiProvider backs the completion contract with the Google Gemini API.
type GeminiProvider struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
}

var _ llm.LLMProvider = &GeminiProvider{}

func NewGeminiProvider(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GeminiProvider{
		client:    client,
		modelName: modelName,
		timeout:   timeout,
	}, nil
}

func (g *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{Temperature: 0.7}
	for _, opt := range opts {
		opt(options)
	}

	modelName := g.modelName
	if options.Model != "" {
		modelName = options.Model
	}
	model := g.client.GenerativeModel(modelName)
	model.SetTemperature(float32(options.Temperature))
	if options.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(options.MaxTokens))
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	parts := make([]genai.Part, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case "assistant", "model":
			parts = append(parts, genai.Text(fmt.Sprintf("Assistant: %s", msg.Content)))
		default:
			parts = append(parts, genai.Text(msg.Content))
		}
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", llm.ErrCompletionFailure, err)
	}

	// A response with no candidates is a failure, not an empty answer:
	// the caller needs to know nothing usable came back.
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: gemini returned no candidates", llm.ErrCompletionFailure)
	}

	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	if out == "" {
		return "", fmt.Errorf("%w: gemini returned no text parts", llm.ErrCompletionFailure)
	}
	return out, nil
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return g.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

// Close releases the underlying API client.
func (g *GeminiProvider) Close() error {
	return g.client.Close()
}
