package auth

import (
	"context"
	"fmt"

	"github.com/member-portal/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	SessionID string
}

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	sessions adapter.SessionService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(sessions adapter.SessionService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		sessions: sessions,
	}
}

// Execute ends the session. Logging out without a session succeeds.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	if err := uc.sessions.Destroy(ctx, input.SessionID); err != nil {
		return nil, fmt.Errorf("failed to destroy session: %w", err)
	}

	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
