package adapter

import (
	"context"

	"github.com/member-portal/backend/internal/domain/entity"
)

// SessionService manages the lifecycle of server-side login sessions.
type SessionService interface {
	// Create starts a new session for the identity with fresh ID and CSRF token.
	Create(ctx context.Context, identity entity.Identity) (*entity.Session, error)

	// Validate loads the session, enforcing idle and absolute timeouts, and
	// records activity. Expired sessions are removed and yield ErrSessionExpired.
	Validate(ctx context.Context, id string) (*entity.Session, error)

	// Destroy removes the session. Unknown IDs are ignored.
	Destroy(ctx context.Context, id string) error
}
