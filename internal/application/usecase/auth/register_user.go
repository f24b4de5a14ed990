// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/member-portal/backend/internal/application/adapter"
	"github.com/member-portal/backend/internal/domain/entity"
	domainerror "github.com/member-portal/backend/internal/domain/error"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Username        string
	Email           string
	FullName        string
	Password        string
	ConfirmPassword string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User entity.Identity
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo     adapter.UserRepository
	policy       adapter.PasswordPolicy
	credentials  adapter.CredentialService
	emailService adapter.EmailService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
// emailService may be nil, in which case no welcome email is queued.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	policy adapter.PasswordPolicy,
	credentials adapter.CredentialService,
	emailService adapter.EmailService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:     userRepo,
		policy:       policy,
		credentials:  credentials,
		emailService: emailService,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	fullName := strings.TrimSpace(input.FullName)

	if username == "" || email == "" || fullName == "" || input.Password == "" || input.ConfirmPassword == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"all fields are required",
			domainerror.ErrMissingFields,
		)
	}

	if err := checkFieldLengths(username, email, fullName); err != nil {
		return nil, err
	}

	if !emailRegex.MatchString(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if input.Password != input.ConfirmPassword {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodePasswordMismatch,
			"passwords do not match",
			domainerror.ErrPasswordMismatch,
		)
	}

	// Policy runs before any hashing work.
	if !uc.policy.IsStrong(input.Password) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			uc.policy.RequirementsMessage(),
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if exists {
		return nil, usernameTakenError()
	}

	passwordHash, err := uc.credentials.Hash(ctx, input.Password)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvalidPassword) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidPassword,
				"password cannot be used",
				domainerror.ErrInvalidPassword,
			)
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(username, email, fullName, passwordHash)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrUsernameAlreadyExists) {
			return nil, usernameTakenError()
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User registered", "user_id", user.ID)

	if uc.emailService != nil {
		if err := uc.emailService.QueueWelcomeEmail(ctx, adapter.QueueWelcomeInput{
			UserEmail: user.Email,
			FullName:  user.FullName,
			Username:  user.Username,
		}); err != nil {
			slog.Error("Failed to queue welcome email", "error", err, "user_id", user.ID)
		}
	}

	return &RegisterUserOutput{User: user.Identity()}, nil
}

func checkFieldLengths(username, email, fullName string) error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"username", username, entity.MaxUsernameLength},
		{"email", email, entity.MaxEmailLength},
		{"full_name", fullName, entity.MaxFullNameLength},
	}
	for _, f := range fields {
		if utf8.RuneCountInString(f.value) > f.max {
			return domainerror.NewAuthError(
				domainerror.ErrCodeFieldTooLong,
				fmt.Sprintf("%s must be at most %d characters", f.name, f.max),
				domainerror.ErrFieldTooLong,
			)
		}
	}
	return nil
}

func usernameTakenError() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeUsernameExists,
		"username already exists",
		domainerror.ErrUsernameAlreadyExists,
	)
}

// PasswordRequirements describes the password policy applied at registration.
func (uc *RegisterUserUseCase) PasswordRequirements() string {
	return uc.policy.RequirementsMessage()
}
