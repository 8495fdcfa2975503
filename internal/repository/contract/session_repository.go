// FILE: internal/repository/contract/session_repository.go
// Repository interface for conversation state
package contract

import (
	"context"

	"ai-shopassist-be/pkg/store"
)

// SessionRepository persists one ChatState per session key with
// last-write-wins semantics. Backends are interchangeable (in-memory cache
// or redis); a missing record is not an error.
type SessionRepository interface {
	Get(ctx context.Context, key store.SessionKey) (*store.ChatState, bool, error)
	Save(ctx context.Context, state *store.ChatState) error
	Delete(ctx context.Context, key store.SessionKey) error
}
