// Package session implements server-side session stores.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/member-portal/backend/internal/application/adapter"
	"github.com/member-portal/backend/internal/domain/entity"
	domainerror "github.com/member-portal/backend/internal/domain/error"
)

// redisStore keeps sessions as JSON values under prefixed keys.
type redisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore creates a session store backed by Redis.
func NewRedisStore(rdb *redis.Client, keyPrefix string) adapter.SessionStore {
	return &redisStore{
		rdb:    rdb,
		prefix: keyPrefix,
	}
}

// Save stores the session, replacing any previous value.
func (s *redisStore) Save(ctx context.Context, session *entity.Session, ttl time.Duration) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key(session.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get loads a session by ID.
func (s *redisStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	if id == "" {
		return nil, domainerror.ErrSessionNotFound
	}
	data, err := s.rdb.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// Delete removes a session.
func (s *redisStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.rdb.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (s *redisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *redisStore) key(id string) string {
	return s.prefix + id
}
