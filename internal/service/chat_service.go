// FILE: internal/service/chat_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"ai-shopassist-be/internal/dto"
	"ai-shopassist-be/internal/pkg/logger"
	"ai-shopassist-be/internal/repository/contract"
	"ai-shopassist-be/pkg/assist/recommend"
	"ai-shopassist-be/pkg/assist/response"
	"ai-shopassist-be/pkg/events"
	"ai-shopassist-be/pkg/llm"
	pktNats "ai-shopassist-be/pkg/nats"
	"ai-shopassist-be/pkg/store"

	"github.com/google/uuid"
)

var (
	// ErrEmptyMessage is a client error; no state is touched.
	ErrEmptyMessage = errors.New("message must not be empty")

	// ErrCompletionUnavailable marks a turn the user can simply retry.
	ErrCompletionUnavailable = errors.New("completion service unavailable")
)

const safeFailureReply = "I'm having trouble processing your request right now. Please try again in a moment."

type IChatService interface {
	SendChat(ctx context.Context, clientID string, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	ResetSession(ctx context.Context, clientID string, req *dto.ResetSessionRequest) (*dto.ResetSessionResponse, error)
}

// chatService glues the session store to the conversation engine. The store
// is only written after a fully successful turn, so any collaborator failure
// leaves the persisted conversation exactly where it was and the user can
// retry the same message.
type chatService struct {
	sessions     contract.SessionRepository
	orchestrator *recommend.Orchestrator
	formatter    *response.Formatter
	publisher    IPublisherService
	natsPub      *pktNats.Publisher
	logger       logger.ILogger
}

func NewChatService(
	sessions contract.SessionRepository,
	orchestrator *recommend.Orchestrator,
	publisher IPublisherService,
	natsPub *pktNats.Publisher,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		sessions:     sessions,
		orchestrator: orchestrator,
		formatter:    response.NewFormatter(),
		publisher:    publisher,
		natsPub:      natsPub,
		logger:       sysLogger,
	}
}

func (s *chatService) SendChat(ctx context.Context, clientID string, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if clientID == "" {
		clientID = "anonymous"
	}

	instanceID := req.InstanceId
	if instanceID == "" {
		instanceID = uuid.NewString()
	}
	key := store.SessionKey{ClientID: clientID, InstanceID: instanceID}

	if req.NewChat {
		if err := s.sessions.Delete(ctx, key); err != nil {
			s.logger.Warn("CHAT", "failed to clear session for new chat", map[string]interface{}{
				"session": key.String(), "error": err.Error(),
			})
		}
	}

	state, err := s.loadState(ctx, key, req.NewChat)
	if err != nil {
		return nil, err
	}

	decision, err := s.orchestrator.HandleTurn(ctx, state, message)
	if err != nil {
		s.logger.Error("CHAT", "turn failed", map[string]interface{}{
			"session": key.String(), "stage": state.Stage, "error": err.Error(),
		})
		s.emitTurn(ctx, state, key, "", true)

		safe := &dto.SendChatResponse{
			Reply:      safeFailureReply,
			InstanceId: instanceID,
			Stage:      state.Stage,
		}
		if errors.Is(err, llm.ErrCompletionFailure) || errors.Is(err, context.DeadlineExceeded) {
			return safe, ErrCompletionUnavailable
		}
		return safe, err
	}

	if err := s.sessions.Save(ctx, state); err != nil {
		// The reply already exists; losing one save costs at most this
		// turn's memory, not the response.
		s.logger.Warn("CHAT", "failed to persist session", map[string]interface{}{
			"session": key.String(), "error": err.Error(),
		})
	}
	tier := ""
	if decision.Kind == recommend.DecisionRecommend {
		tier = decision.Tier.String()
	}
	s.emitTurn(ctx, state, key, tier, false)

	reply := s.formatter.Format(decision)
	res := &dto.SendChatResponse{
		Reply:      reply.Text,
		IsHtml:     reply.IsHTML,
		InstanceId: instanceID,
		Stage:      state.Stage,
	}
	if decision.Comparison != nil {
		res.Comparison = &dto.ComparisonDTO{
			Products: decision.Comparison.Products,
			Features: decision.Comparison.Features,
		}
	}
	return res, nil
}

func (s *chatService) ResetSession(ctx context.Context, clientID string, req *dto.ResetSessionRequest) (*dto.ResetSessionResponse, error) {
	if clientID == "" {
		clientID = "anonymous"
	}
	key := store.SessionKey{ClientID: clientID, InstanceID: req.InstanceId}
	if err := s.sessions.Delete(ctx, key); err != nil {
		return nil, err
	}
	return &dto.ResetSessionResponse{InstanceId: req.InstanceId, Reset: true}, nil
}

// loadState returns a private copy of the stored conversation, or a fresh
// one. The copy keeps the store untouched while the orchestrator mutates.
func (s *chatService) loadState(ctx context.Context, key store.SessionKey, fresh bool) (*store.ChatState, error) {
	if !fresh {
		stored, found, err := s.sessions.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if found {
			return stored.Clone(), nil
		}
	}
	return store.NewChatState(key), nil
}

// emitTurn publishes the turn to the in-process analytics topic and, best
// effort, to the NATS event stream. Neither may fail the turn.
func (s *chatService) emitTurn(ctx context.Context, state *store.ChatState, key store.SessionKey, tier string, failed bool) {
	payload := dto.ChatTurnMessage{
		ClientId:   key.ClientID,
		InstanceId: key.InstanceID,
		Stage:      state.Stage,
		Category:   state.SelectedCategory,
		Tier:       tier,
		Failed:     failed,
		At:         time.Now(),
	}
	if err := s.publisher.PublishChatTurn(payload); err != nil {
		s.logger.Warn("CHAT", "failed to publish chat turn", map[string]interface{}{
			"session": key.String(), "error": err.Error(),
		})
	}

	if s.natsPub == nil {
		return
	}
	event := events.NewChatTurnEvent(key.ClientID, key.InstanceID, state.Stage, state.SelectedCategory, tier, failed)
	if err := s.natsPub.Publish(ctx, event); err != nil {
		s.logger.Warn("CHAT", "failed to publish chat turn event to NATS", map[string]interface{}{
			"session": key.String(), "error": err.Error(),
		})
	}
}
