package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/member-portal/backend/internal/domain/entity"
	domainerror "github.com/member-portal/backend/internal/domain/error"
	"github.com/member-portal/backend/internal/integration/session"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestSessionService(t *testing.T) (*sessionService, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	svc := newSessionService(
		session.NewMemoryStore(time.Minute),
		SessionTimeouts{Idle: 30 * time.Minute, MaxLifetime: 12 * time.Hour},
		clock.Now,
	)
	return svc, clock
}

func TestSessionService_Create(t *testing.T) {
	svc, clock := newTestSessionService(t)
	identity := entity.Identity{UserID: uuid.New(), Username: "alice"}

	first, err := svc.Create(context.Background(), identity)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	second, _ := svc.Create(context.Background(), identity)

	if len(first.ID) != 2*sessionTokenBytes || len(first.CSRFToken) != 2*sessionTokenBytes {
		t.Errorf("expected 64 hex characters, got id=%d csrf=%d", len(first.ID), len(first.CSRFToken))
	}
	if first.ID == second.ID || first.ID == first.CSRFToken {
		t.Error("expected unique session ids and tokens")
	}
	if !first.LoginAt.Equal(clock.now) || first.UserID != identity.UserID {
		t.Errorf("unexpected session: %+v", first)
	}
}

func TestSessionService_Validate(t *testing.T) {
	tests := []struct {
		name    string
		advance []time.Duration
		wantErr error
	}{
		{"fresh", nil, nil},
		{"active within idle window", []time.Duration{20 * time.Minute, 20 * time.Minute}, nil},
		{"idle too long", []time.Duration{31 * time.Minute}, domainerror.ErrSessionExpired},
		{"absolute lifetime exceeded", repeat(25*time.Minute, 29), domainerror.ErrSessionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, clock := newTestSessionService(t)
			ctx := context.Background()
			created, _ := svc.Create(ctx, entity.Identity{UserID: uuid.New(), Username: "bob"})

			var err error
			for _, step := range tt.advance {
				clock.now = clock.now.Add(step)
				if _, err = svc.Validate(ctx, created.ID); err != nil {
					break
				}
			}
			if tt.advance == nil {
				_, err = svc.Validate(ctx, created.ID)
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if _, err := svc.Validate(ctx, created.ID); !errors.Is(err, domainerror.ErrSessionNotFound) {
					t.Errorf("expired session should be removed, got %v", err)
				}
			}
		})
	}
}

func TestSessionService_ValidateTouchesActivity(t *testing.T) {
	svc, clock := newTestSessionService(t)
	ctx := context.Background()
	created, _ := svc.Create(ctx, entity.Identity{UserID: uuid.New()})

	clock.now = clock.now.Add(10 * time.Minute)
	validated, err := svc.Validate(ctx, created.ID)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !validated.LastActivity.Equal(clock.now) {
		t.Errorf("expected last activity %v, got %v", clock.now, validated.LastActivity)
	}
	if !validated.LoginAt.Equal(created.LoginAt) {
		t.Error("login time must not move on activity")
	}
}

func TestSessionService_Destroy(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()
	created, _ := svc.Create(ctx, entity.Identity{UserID: uuid.New()})

	if err := svc.Destroy(ctx, created.ID); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if _, err := svc.Validate(ctx, created.ID); !errors.Is(err, domainerror.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	if err := svc.Destroy(ctx, created.ID); err != nil {
		t.Errorf("second Destroy() error = %v", err)
	}
	if err := svc.Destroy(ctx, ""); err != nil {
		t.Errorf("Destroy(\"\") error = %v", err)
	}
}

func repeat(d time.Duration, n int) []time.Duration {
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = d
	}
	return out
}
