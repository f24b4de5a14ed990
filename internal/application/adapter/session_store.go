package adapter

import (
	"context"
	"time"

	"github.com/member-portal/backend/internal/domain/entity"
)

// SessionStore persists server-side sessions keyed by session ID.
type SessionStore interface {
	// Save stores the session, replacing any previous value, expiring after ttl.
	Save(ctx context.Context, session *entity.Session, ttl time.Duration) error

	// Get loads a session. Missing or expired entries yield domainerror.ErrSessionNotFound.
	Get(ctx context.Context, id string) (*entity.Session, error)

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
