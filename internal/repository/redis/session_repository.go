package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ai-shopassist-be/internal/repository/contract"
	"ai-shopassist-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository creates a redis-backed session store, for deployments
// where conversations must survive a process restart. States serialize as
// JSON under "chat:session:<key>" and the TTL refreshes on every save.
func NewSessionRepository(client *redis.Client, ttl time.Duration) contract.SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionRepository{client: client, ttl: ttl}
}

func sessionKey(key store.SessionKey) string {
	return "chat:session:" + key.String()
}

func (r *SessionRepository) Get(ctx context.Context, key store.SessionKey) (*store.ChatState, bool, error) {
	raw, err := r.client.Get(ctx, sessionKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var state store.ChatState
	if err := json.Unmarshal(raw, &state); err != nil {
		// A corrupt record behaves like a missing one; the caller will
		// re-initialize the conversation.
		return nil, false, nil
	}
	return &state, true, nil
}

func (r *SessionRepository) Save(ctx context.Context, state *store.ChatState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(state.Key), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, key store.SessionKey) error {
	if err := r.client.Del(ctx, sessionKey(key)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
