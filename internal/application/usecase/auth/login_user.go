package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/member-portal/backend/internal/application/adapter"
	"github.com/member-portal/backend/internal/domain/entity"
	domainerror "github.com/member-portal/backend/internal/domain/error"
)

// unknownUserDigest is verified against when the username does not exist so
// that both failure paths cost one full hash.
const unknownUserDigest = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Username string
	Password string
	// PreviousSessionID is the session cookie presented with the request, if any.
	PreviousSessionID string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	User    entity.Identity
	Session *entity.Session
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo    adapter.UserRepository
	credentials adapter.CredentialService
	sessions    adapter.SessionService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	credentials adapter.CredentialService,
	sessions adapter.SessionService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:    userRepo,
		credentials: credentials,
		sessions:    sessions,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || strings.TrimSpace(input.Password) == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"username and password are required",
			domainerror.ErrMissingFields,
		)
	}

	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
		uc.credentials.Verify(ctx, input.Password, unknownUserDigest)
		slog.Info("Login rejected")
		return nil, invalidCredentialsError()
	}

	if !uc.credentials.Verify(ctx, input.Password, user.PasswordHash) {
		slog.Info("Login rejected")
		return nil, invalidCredentialsError()
	}

	if uc.credentials.NeedsRehash(user.PasswordHash) {
		uc.upgradeDigest(ctx, user, input.Password)
	}

	// A fresh session ID on every login defeats fixation.
	if input.PreviousSessionID != "" {
		if err := uc.sessions.Destroy(ctx, input.PreviousSessionID); err != nil {
			slog.Warn("Failed to destroy previous session", "error", err)
		}
	}

	identity := user.Identity()
	session, err := uc.sessions.Create(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	slog.Info("User logged in", "user_id", user.ID)

	return &LoginUserOutput{
		User:    identity,
		Session: session,
	}, nil
}

// upgradeDigest re-hashes the password at the current cost. Failures are
// logged and the login proceeds with the old digest.
func (uc *LoginUserUseCase) upgradeDigest(ctx context.Context, user *entity.User, password string) {
	digest, err := uc.credentials.Hash(ctx, password)
	if err != nil {
		slog.Warn("Failed to rehash password", "error", err, "user_id", user.ID)
		return
	}
	if err := uc.userRepo.UpdatePasswordHash(ctx, user.ID, digest); err != nil {
		slog.Warn("Failed to store rehashed password", "error", err, "user_id", user.ID)
		return
	}
	user.PasswordHash = digest
}

func invalidCredentialsError() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid username or password",
		domainerror.ErrInvalidCredentials,
	)
}
