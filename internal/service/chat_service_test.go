package service

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-shopassist-be/internal/dto"
	"ai-shopassist-be/internal/repository/memory"
	"ai-shopassist-be/pkg/assist/recommend"
	req "ai-shopassist-be/pkg/assist/require"
	"ai-shopassist-be/pkg/catalog"
	"ai-shopassist-be/pkg/llm"
	"ai-shopassist-be/pkg/store"
)

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

// stubLLM answers with prose that never parses as a structured completion,
// so the deterministic parsers carry the conversation. Flipping down
// simulates a backend outage mid-conversation.
type stubLLM struct {
	down bool
}

func (s *stubLLM) Chat(context.Context, []llm.Message, ...llm.Option) (string, error) {
	return s.reply()
}

func (s *stubLLM) Generate(context.Context, string, ...llm.Option) (string, error) {
	return s.reply()
}

func (s *stubLLM) reply() (string, error) {
	if s.down {
		return "", llm.ErrCompletionFailure
	}
	return "happy to help with that!", nil
}

type staticSource struct{}

func (staticSource) ListCategories(context.Context) ([]string, error) {
	return []string{"laptop", "phone"}, nil
}

func (staticSource) FetchProducts(_ context.Context, category string) ([]catalog.RawProduct, error) {
	if category != "laptop" {
		return nil, nil
	}
	raw := func(v float64) json.RawMessage {
		b, _ := json.Marshal(v)
		return b
	}
	return []catalog.RawProduct{
		{Name: "HP Pavilion SE 14\" Laptop", Brand: "HP", Price: raw(599)},
		{Name: "Acer Aspire 5 Slim", Brand: "Acer", Price: raw(749)},
		{Name: "Dell XPS 13 Plus", Brand: "Dell", Price: raw(1399)},
	}, nil
}

func newTestChatService(t *testing.T) (IChatService, *stubLLM) {
	t.Helper()
	quiet := log.New(io.Discard, "", 0)
	provider := &stubLLM{}
	accessor := catalog.NewAccessor(staticSource{}, "/images")
	orchestrator := recommend.NewOrchestrator(accessor, provider, req.NewExtractor(provider, quiet), quiet)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	publisher := NewPublisherService("chat.turn", pubSub)
	sessions := memory.NewSessionRepository(time.Hour)

	return NewChatService(sessions, orchestrator, publisher, nil, noopLogger{}), provider
}

func TestSendChatRejectsEmptyMessage(t *testing.T) {
	svc, _ := newTestChatService(t)

	_, err := svc.SendChat(context.Background(), "client", &dto.SendChatRequest{Message: "   "})
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestSendChatMintsInstanceAndKeepsState(t *testing.T) {
	svc, _ := newTestChatService(t)
	ctx := context.Background()

	first, err := svc.SendChat(ctx, "client", &dto.SendChatRequest{Message: "I need a laptop"})
	require.NoError(t, err)
	require.NotEmpty(t, first.InstanceId)
	assert.Equal(t, store.StageGathering, first.Stage)
	assert.False(t, first.IsHtml)

	// Same instance continues the interview instead of starting over.
	second, err := svc.SendChat(ctx, "client", &dto.SendChatRequest{
		Message:    "for school work under 1000",
		InstanceId: first.InstanceId,
	})
	require.NoError(t, err)
	assert.Equal(t, first.InstanceId, second.InstanceId)
	assert.Equal(t, store.StageFollowup, second.Stage)
	assert.True(t, second.IsHtml)
	assert.Contains(t, second.Reply, "HP Pavilion")
}

func TestSendChatNewChatDiscardsOldSession(t *testing.T) {
	svc, _ := newTestChatService(t)
	ctx := context.Background()

	first, err := svc.SendChat(ctx, "client", &dto.SendChatRequest{Message: "I need a laptop"})
	require.NoError(t, err)

	res, err := svc.SendChat(ctx, "client", &dto.SendChatRequest{
		Message:    "hello",
		InstanceId: first.InstanceId,
		NewChat:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, store.StageDetectCategory, res.Stage)
}

func TestSendChatCompletionFailureIsSafeAndUnpersisted(t *testing.T) {
	svc, backend := newTestChatService(t)
	ctx := context.Background()

	first, err := svc.SendChat(ctx, "client", &dto.SendChatRequest{Message: "I need a laptop for gaming under 1000"})
	require.NoError(t, err)
	require.Equal(t, store.StageFollowup, first.Stage)

	// The backend dies right before the comparison turn.
	backend.down = true
	res, err := svc.SendChat(ctx, "client", &dto.SendChatRequest{
		Message:    "compare them for me",
		InstanceId: first.InstanceId,
	})
	assert.ErrorIs(t, err, ErrCompletionUnavailable)
	require.NotNil(t, res)
	assert.Equal(t, safeFailureReply, res.Reply)

	// The failed turn left no trace: with the backend back, the same
	// comparison works off the products shown before the outage.
	backend.down = false
	again, err := svc.SendChat(ctx, "client", &dto.SendChatRequest{
		Message:    "compare them for me",
		InstanceId: first.InstanceId,
	})
	require.NoError(t, err)
	assert.Equal(t, store.StageFollowup, again.Stage)
	assert.True(t, again.IsHtml)
	assert.Contains(t, again.Reply, "comparison-table")
}

// A recommending turn that hits a dead backend must not advance the stored
// session; retrying the same message once the backend is back completes the
// recommendation.
func TestSendChatRecommendFailureKeepsGatheringState(t *testing.T) {
	svc, backend := newTestChatService(t)
	ctx := context.Background()

	first, err := svc.SendChat(ctx, "client", &dto.SendChatRequest{Message: "I need a laptop"})
	require.NoError(t, err)
	require.Equal(t, store.StageGathering, first.Stage)

	backend.down = true
	res, err := svc.SendChat(ctx, "client", &dto.SendChatRequest{
		Message:    "for gaming under 1000",
		InstanceId: first.InstanceId,
	})
	assert.ErrorIs(t, err, ErrCompletionUnavailable)
	require.NotNil(t, res)
	assert.Equal(t, safeFailureReply, res.Reply)

	backend.down = false
	retry, err := svc.SendChat(ctx, "client", &dto.SendChatRequest{
		Message:    "for gaming under 1000",
		InstanceId: first.InstanceId,
	})
	require.NoError(t, err)
	assert.Equal(t, store.StageFollowup, retry.Stage)
	assert.True(t, retry.IsHtml)
	assert.Contains(t, retry.Reply, "HP Pavilion")
}

func TestResetSessionClearsState(t *testing.T) {
	svc, _ := newTestChatService(t)
	ctx := context.Background()

	first, err := svc.SendChat(ctx, "client", &dto.SendChatRequest{Message: "I need a laptop"})
	require.NoError(t, err)

	reset, err := svc.ResetSession(ctx, "client", &dto.ResetSessionRequest{InstanceId: first.InstanceId})
	require.NoError(t, err)
	assert.True(t, reset.Reset)

	res, err := svc.SendChat(ctx, "client", &dto.SendChatRequest{
		Message:    "hello",
		InstanceId: first.InstanceId,
	})
	require.NoError(t, err)
	assert.Equal(t, store.StageDetectCategory, res.Stage)
}

func TestChatTurnAnalyticsAggregation(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	consumer := NewConsumerService(pubSub, "chat.turn")
	publisher := NewPublisherService("chat.turn", pubSub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	turns := []dto.ChatTurnMessage{
		{ClientId: "a", Stage: store.StageGathering, Category: "laptop"},
		{ClientId: "a", Stage: store.StageFollowup, Category: "laptop", Tier: "strict"},
		{ClientId: "b", Stage: store.StageFollowup, Category: "phone", Failed: true},
	}
	for _, turn := range turns {
		require.NoError(t, publisher.PublishChatTurn(turn))
	}

	deadline := time.After(2 * time.Second)
	for {
		stats := consumer.Stats()
		if stats.TotalTurns == int64(len(turns)) {
			assert.Equal(t, int64(1), stats.FailedTurns)
			assert.Equal(t, int64(2), stats.TurnsByStage[store.StageFollowup])
			assert.Equal(t, int64(2), stats.TurnsByCategory["laptop"])
			assert.Equal(t, int64(1), stats.TurnsByTier["strict"])
			return
		}
		select {
		case <-deadline:
			t.Fatalf("aggregation incomplete: %+v", consumer.Stats())
		case <-time.After(10 * time.Millisecond):
		}
	}
}
