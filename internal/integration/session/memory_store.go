package session

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/member-portal/backend/internal/application/adapter"
	"github.com/member-portal/backend/internal/domain/entity"
	domainerror "github.com/member-portal/backend/internal/domain/error"
)

// memoryStore keeps sessions in process memory. Sessions do not survive a
// restart and are not shared between instances.
type memoryStore struct {
	items *cache.Cache
}

// NewMemoryStore creates an in-process session store. cleanupInterval controls
// how often expired entries are purged.
func NewMemoryStore(cleanupInterval time.Duration) adapter.SessionStore {
	return &memoryStore{
		items: cache.New(cache.NoExpiration, cleanupInterval),
	}
}

// Save stores a copy of the session.
func (s *memoryStore) Save(_ context.Context, session *entity.Session, ttl time.Duration) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	stored := *session
	s.items.Set(session.ID, &stored, ttl)
	return nil
}

// Get returns a copy so callers cannot mutate the stored session.
func (s *memoryStore) Get(_ context.Context, id string) (*entity.Session, error) {
	value, found := s.items.Get(id)
	if !found {
		return nil, domainerror.ErrSessionNotFound
	}
	session := *value.(*entity.Session)
	return &session, nil
}

// Delete removes a session.
func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.items.Delete(id)
	return nil
}

// Ping always succeeds.
func (s *memoryStore) Ping(context.Context) error {
	return nil
}
