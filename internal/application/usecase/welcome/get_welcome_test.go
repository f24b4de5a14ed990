package welcome

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/member-portal/backend/internal/domain/entity"
	domainerror "github.com/member-portal/backend/internal/domain/error"
)

type stubUserRepo struct {
	users    []*entity.User
	countErr error
}

func (r *stubUserRepo) Create(context.Context, *entity.User) error { return nil }

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(context.Context, string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByUsername(context.Context, string) (bool, error) { return false, nil }

func (r *stubUserRepo) UpdatePasswordHash(context.Context, uuid.UUID, string) error { return nil }

func (r *stubUserRepo) Count(context.Context) (int64, error) {
	return int64(len(r.users)), r.countErr
}

func TestGetWelcome_Success(t *testing.T) {
	now := time.Date(2024, 5, 10, 8, 30, 15, 0, time.UTC)
	user := entity.NewUser("alice", "alice@example.com", "Alice Doe", "digest")
	user.CreatedAt = time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)
	other := entity.NewUser("bob", "bob@example.com", "Bob", "digest")
	loginAt := now.Add(-time.Hour)

	uc := NewGetWelcomeUseCase(&stubUserRepo{users: []*entity.User{user, other}}).
		WithClock(func() time.Time { return now })

	out, err := uc.Execute(context.Background(), GetWelcomeInput{UserID: user.ID, LoginAt: loginAt})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if out.User.FullName != "Alice Doe" {
		t.Errorf("expected fresh user data, got %+v", out.User)
	}
	if out.TotalUsers != 2 {
		t.Errorf("expected 2 users, got %d", out.TotalUsers)
	}
	if out.DaysSinceRegistration != 9 {
		t.Errorf("expected 9 days, got %d", out.DaysSinceRegistration)
	}
	if out.CurrentTime != "2024-05-10 08:30:15" {
		t.Errorf("unexpected current time %q", out.CurrentTime)
	}
	if !out.LoginTime.Equal(loginAt) {
		t.Errorf("expected login time %v, got %v", loginAt, out.LoginTime)
	}
}

func TestGetWelcome_Errors(t *testing.T) {
	user := entity.NewUser("alice", "alice@example.com", "Alice", "digest")

	t.Run("deleted user", func(t *testing.T) {
		uc := NewGetWelcomeUseCase(&stubUserRepo{})
		_, err := uc.Execute(context.Background(), GetWelcomeInput{UserID: user.ID})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeUserNotFound {
			t.Fatalf("expected user not found, got %v", err)
		}
	})

	t.Run("count failure", func(t *testing.T) {
		uc := NewGetWelcomeUseCase(&stubUserRepo{users: []*entity.User{user}, countErr: errors.New("db down")})
		if _, err := uc.Execute(context.Background(), GetWelcomeInput{UserID: user.ID}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestCalendarDaysBetween(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", base, base.Add(5 * time.Hour), 0},
		{"crosses midnight", base.Add(11 * time.Hour), base.Add(13 * time.Hour), 1},
		{"leap february", base.AddDate(0, 1, 27), base.AddDate(0, 2, 0), 2},
		{"future start", base.AddDate(0, 0, 3), base, 0},
		{"zero start", time.Time{}, base, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calendarDaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("calendarDaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}
