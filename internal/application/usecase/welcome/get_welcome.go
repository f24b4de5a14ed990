// Package welcome contains the use case behind the post-login welcome page.
package welcome

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/member-portal/backend/internal/application/adapter"
	"github.com/member-portal/backend/internal/domain/entity"
	domainerror "github.com/member-portal/backend/internal/domain/error"
)

// CurrentTimeLayout formats the server time shown on the welcome page.
const CurrentTimeLayout = "2006-01-02 15:04:05"

// GetWelcomeInput represents the input for loading the welcome page.
type GetWelcomeInput struct {
	UserID  uuid.UUID
	LoginAt time.Time
}

// GetWelcomeOutput represents the personalized welcome data.
type GetWelcomeOutput struct {
	User                  entity.Identity
	TotalUsers            int64
	DaysSinceRegistration int
	LoginTime             time.Time
	CurrentTime           string
}

// GetWelcomeUseCase loads fresh user data and member statistics.
type GetWelcomeUseCase struct {
	userRepo adapter.UserRepository
	now      func() time.Time
}

// NewGetWelcomeUseCase creates a new GetWelcomeUseCase instance.
func NewGetWelcomeUseCase(userRepo adapter.UserRepository) *GetWelcomeUseCase {
	return &GetWelcomeUseCase{
		userRepo: userRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source.
func (uc *GetWelcomeUseCase) WithClock(now func() time.Time) *GetWelcomeUseCase {
	uc.now = now
	return uc
}

// Execute builds the welcome data. A user deleted since login yields ErrUserNotFound.
func (uc *GetWelcomeUseCase) Execute(ctx context.Context, input GetWelcomeInput) (*GetWelcomeOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user no longer exists",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	total, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	now := uc.now()
	return &GetWelcomeOutput{
		User:                  user.Identity(),
		TotalUsers:            total,
		DaysSinceRegistration: calendarDaysBetween(user.CreatedAt, now),
		LoginTime:             input.LoginAt,
		CurrentTime:           now.Format(CurrentTimeLayout),
	}, nil
}

// calendarDaysBetween counts date boundaries crossed from start to end in
// end's location. Registration timestamps in the future count as zero.
func calendarDaysBetween(start, end time.Time) int {
	if start.IsZero() {
		return 0
	}
	start = start.In(end.Location())
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
