package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side login session. Only its ID travels to the client.
type Session struct {
	ID           string    `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	CSRFToken    string    `json:"csrf_token"`
	LoginAt      time.Time `json:"login_at"`
	LastActivity time.Time `json:"last_activity"`
}

// NewSession creates a session for the given identity.
func NewSession(id, csrfToken string, identity Identity, now time.Time) *Session {
	return &Session{
		ID:           id,
		UserID:       identity.UserID,
		Username:     identity.Username,
		CSRFToken:    csrfToken,
		LoginAt:      now,
		LastActivity: now,
	}
}

// IdleExpired reports whether the session saw no activity within idleTimeout.
func (s *Session) IdleExpired(now time.Time, idleTimeout time.Duration) bool {
	return s.LastActivity.IsZero() || now.Sub(s.LastActivity) > idleTimeout
}

// LifetimeExpired reports whether the session outlived maxLifetime since login.
func (s *Session) LifetimeExpired(now time.Time, maxLifetime time.Duration) bool {
	return s.LoginAt.IsZero() || now.Sub(s.LoginAt) > maxLifetime
}

// Touch records activity at now.
func (s *Session) Touch(now time.Time) {
	s.LastActivity = now
}
