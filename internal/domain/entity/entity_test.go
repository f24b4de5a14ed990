package entity

import (
	"errors"
	"testing"
	"time"
)

func TestUserIdentity(t *testing.T) {
	user := NewUser("alice", "alice@example.com", "Alice Liddell", "$2a$12$digest")

	identity := user.Identity()

	if identity.UserID != user.ID {
		t.Errorf("expected user id %s, got %s", user.ID, identity.UserID)
	}
	if identity.Username != "alice" || identity.Email != "alice@example.com" || identity.FullName != "Alice Liddell" {
		t.Errorf("identity fields not copied: %+v", identity)
	}
	if !identity.CreatedAt.Equal(user.CreatedAt) {
		t.Errorf("expected created_at %v, got %v", user.CreatedAt, identity.CreatedAt)
	}
}

func TestSessionExpiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	identity := Identity{Username: "alice"}

	tests := []struct {
		name          string
		loginAt       time.Time
		lastActivity  time.Time
		expectIdle    bool
		expectExpired bool
	}{
		{
			name:         "fresh session",
			loginAt:      now.Add(-time.Minute),
			lastActivity: now.Add(-time.Minute),
		},
		{
			name:         "idle for too long",
			loginAt:      now.Add(-time.Hour),
			lastActivity: now.Add(-31 * time.Minute),
			expectIdle:   true,
		},
		{
			name:          "active but past absolute lifetime",
			loginAt:       now.Add(-13 * time.Hour),
			lastActivity:  now.Add(-time.Minute),
			expectExpired: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession("sid", "csrf", identity, tt.loginAt)
			s.LastActivity = tt.lastActivity

			if got := s.IdleExpired(now, 30*time.Minute); got != tt.expectIdle {
				t.Errorf("IdleExpired = %v, want %v", got, tt.expectIdle)
			}
			if got := s.LifetimeExpired(now, 12*time.Hour); got != tt.expectExpired {
				t.Errorf("LifetimeExpired = %v, want %v", got, tt.expectExpired)
			}
		})
	}
}

func TestEmailJobMarkFailed(t *testing.T) {
	t.Run("temporary failure is rescheduled", func(t *testing.T) {
		job := NewEmailJob(TemplateWelcome, "a@example.com", "A", "Welcome", nil)
		before := time.Now().UTC()

		job.MarkFailed(errors.New("503 service unavailable"), false)

		if job.Status != EmailStatusPending {
			t.Errorf("expected pending, got %s", job.Status)
		}
		if job.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", job.Attempts)
		}
		if job.ScheduledAt.Before(before.Add(time.Minute - time.Second)) {
			t.Errorf("expected retry about a minute out, got %v", job.ScheduledAt)
		}
	})

	t.Run("permanent failure stops", func(t *testing.T) {
		job := NewEmailJob(TemplateWelcome, "a@example.com", "A", "Welcome", nil)

		job.MarkFailed(errors.New("422 validation"), true)

		if job.Status != EmailStatusFailed || job.ProcessedAt == nil {
			t.Errorf("expected failed with processed_at, got %s", job.Status)
		}
	})

	t.Run("attempts are exhausted", func(t *testing.T) {
		job := NewEmailJob(TemplateWelcome, "a@example.com", "A", "Welcome", nil)
		for i := 0; i < job.MaxAttempts; i++ {
			job.MarkFailed(errors.New("timeout"), false)
		}

		if job.Status != EmailStatusFailed {
			t.Errorf("expected failed after %d attempts, got %s", job.MaxAttempts, job.Status)
		}
		if job.CanRetry() {
			t.Error("expected CanRetry to be false")
		}
	})
}
