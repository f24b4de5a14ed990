package adapters

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/member-portal/backend/internal/application/adapter"
	"github.com/member-portal/backend/internal/domain/entity"
	domainerror "github.com/member-portal/backend/internal/domain/error"
)

// sessionTokenBytes is the entropy of session IDs and CSRF tokens (256 bits).
const sessionTokenBytes = 32

// SessionTimeouts bounds how long a session stays valid.
type SessionTimeouts struct {
	Idle        time.Duration
	MaxLifetime time.Duration
}

// sessionService implements the adapter.SessionService interface.
type sessionService struct {
	store    adapter.SessionStore
	timeouts SessionTimeouts
	now      func() time.Time
}

// NewSessionService creates a session service on top of a store.
func NewSessionService(store adapter.SessionStore, timeouts SessionTimeouts) adapter.SessionService {
	return newSessionService(store, timeouts, func() time.Time { return time.Now().UTC() })
}

// NewSessionServiceWithClock is NewSessionService with an explicit time source.
func NewSessionServiceWithClock(store adapter.SessionStore, timeouts SessionTimeouts, now func() time.Time) adapter.SessionService {
	return newSessionService(store, timeouts, now)
}

func newSessionService(store adapter.SessionStore, timeouts SessionTimeouts, now func() time.Time) *sessionService {
	return &sessionService{
		store:    store,
		timeouts: timeouts,
		now:      now,
	}
}

// Create starts a new session for the identity.
func (s *sessionService) Create(ctx context.Context, identity entity.Identity) (*entity.Session, error) {
	id, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}
	csrfToken, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate csrf token: %w", err)
	}

	session := entity.NewSession(id, csrfToken, identity, s.now())
	if err := s.store.Save(ctx, session, s.timeouts.Idle); err != nil {
		return nil, err
	}
	return session, nil
}

// Validate loads a live session and refreshes its activity time.
func (s *sessionService) Validate(ctx context.Context, id string) (*entity.Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if session.IdleExpired(now, s.timeouts.Idle) || session.LifetimeExpired(now, s.timeouts.MaxLifetime) {
		if err := s.store.Delete(ctx, id); err != nil {
			return nil, err
		}
		return nil, domainerror.ErrSessionExpired
	}

	session.Touch(now)
	if err := s.store.Save(ctx, session, s.remaining(session, now)); err != nil {
		return nil, err
	}
	return session, nil
}

// Destroy removes the session.
func (s *sessionService) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.store.Delete(ctx, id); err != nil && !errors.Is(err, domainerror.ErrSessionNotFound) {
		return err
	}
	return nil
}

// remaining is the store TTL: the idle window, capped by the absolute lifetime.
func (s *sessionService) remaining(session *entity.Session, now time.Time) time.Duration {
	ttl := s.timeouts.Idle
	if left := session.LoginAt.Add(s.timeouts.MaxLifetime).Sub(now); left < ttl {
		ttl = left
	}
	if ttl < time.Second {
		ttl = time.Second
	}
	return ttl
}

// generateToken returns 32 random bytes, hex encoded.
func generateToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
