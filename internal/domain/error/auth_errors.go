// Package error defines domain-specific errors for the Member Portal application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when attempting to register a taken username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWeakPassword is returned when the provided password does not meet the composition policy.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidPassword is returned when a password cannot be hashed (empty or over the algorithm limit).
	ErrInvalidPassword = errors.New("password is empty or exceeds the supported length")

	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrMissingFields is returned when a required field is blank.
	ErrMissingFields = errors.New("required fields are missing")

	// ErrFieldTooLong is returned when a registration field exceeds its stored width.
	ErrFieldTooLong = errors.New("field exceeds maximum length")

	// ErrInvalidEmail is returned when the provided email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidHashCost is returned when the configured hashing cost is out of range.
	ErrInvalidHashCost = errors.New("invalid password hashing cost")

	// ErrSessionNotFound is returned when no session exists for the presented ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when a session exceeded its idle or absolute lifetime.
	ErrSessionExpired = errors.New("session has expired")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Registration errors (01XXXX)
	ErrCodeUsernameExists   AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidPassword  AuthErrorCode = "AUTH-010002"
	ErrCodeWeakPassword     AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidEmail     AuthErrorCode = "AUTH-010004"
	ErrCodeMissingFields    AuthErrorCode = "AUTH-010005"
	ErrCodePasswordMismatch AuthErrorCode = "AUTH-010006"
	ErrCodeFieldTooLong     AuthErrorCode = "AUTH-010007"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020002"

	// Session errors (03XXXX)
	ErrCodeInvalidSession AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredSession AuthErrorCode = "AUTH-030002"
	ErrCodeMissingSession AuthErrorCode = "AUTH-030003"
	ErrCodeInvalidCSRF    AuthErrorCode = "AUTH-030004"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
