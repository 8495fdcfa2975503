// Exercises the Ollama provider against a locally running daemon. Skipped
// unless OLLAMA_BASE_URL points at one, so the suite stays green in CI.
package integration

import (
	"context"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"ai-shopassist-be/pkg/llm"
	"ai-shopassist-be/pkg/llm/ollama"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaProvider(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		t.Skip("Skipping integration test: OLLAMA_BASE_URL not set")
	}
	modelName := os.Getenv("LLM_MODEL")
	if modelName == "" {
		modelName = "gemma:2b"
	}

	provider := ollama.NewOllamaProvider(baseURL, modelName, 60*time.Second)
	ctx := context.Background()

	t.Run("Generate returns text", func(t *testing.T) {
		reply, err := provider.Generate(ctx, "Reply with the single word: pong")
		require.NoError(t, err)
		assert.NotEmpty(t, strings.TrimSpace(reply))
		t.Logf("model said: %s", reply)
	})

	t.Run("Chat keeps conversation roles", func(t *testing.T) {
		history := []llm.Message{
			{Role: "system", Content: "You are a terse shopping assistant."},
			{Role: "user", Content: "I need a laptop for gaming."},
			{Role: "assistant", Content: "What is your budget?"},
			{Role: "user", Content: "Around $1000."},
		}
		reply, err := provider.Chat(ctx, history, llm.WithTemperature(0.2))
		require.NoError(t, err)
		assert.NotEmpty(t, strings.TrimSpace(reply))
	})

	t.Run("Unreachable daemon yields completion failure", func(t *testing.T) {
		dead := ollama.NewOllamaProvider("http://localhost:1", modelName, 2*time.Second)
		_, err := dead.Generate(ctx, "ping")
		assert.ErrorIs(t, err, llm.ErrCompletionFailure)
	})
}
