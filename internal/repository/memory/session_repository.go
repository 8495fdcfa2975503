package memory

import (
	"context"
	"time"

	"ai-shopassist-be/internal/repository/contract"
	"ai-shopassist-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewSessionRepository creates an in-process session store. Entries expire
// after ttl of inactivity; expired items are purged every 10 minutes.
func NewSessionRepository(ttl time.Duration) contract.SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionRepository{
		cache: cache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

func (r *SessionRepository) Get(_ context.Context, key store.SessionKey) (*store.ChatState, bool, error) {
	if x, found := r.cache.Get(key.String()); found {
		return x.(*store.ChatState), true, nil
	}
	return nil, false, nil
}

func (r *SessionRepository) Save(_ context.Context, state *store.ChatState) error {
	r.cache.Set(state.Key.String(), state, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, key store.SessionKey) error {
	r.cache.Delete(key.String())
	return nil
}
