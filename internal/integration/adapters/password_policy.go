package adapters

import (
	"unicode/utf8"

	"github.com/member-portal/backend/internal/application/adapter"
)

const (
	// minPasswordLength is the minimum number of characters in a password.
	minPasswordLength = 6
	// passwordRequirements is shown verbatim to users and API clients.
	passwordRequirements = "Password must be at least 6 characters with uppercase, lowercase, and numbers"
)

// passwordPolicy implements adapter.PasswordPolicy.
type passwordPolicy struct{}

// NewPasswordPolicy creates the composition policy applied at registration.
func NewPasswordPolicy() adapter.PasswordPolicy {
	return passwordPolicy{}
}

// IsStrong requires the minimum length plus an ASCII uppercase letter,
// lowercase letter and digit. There is no upper bound and no symbol rule.
func (passwordPolicy) IsStrong(password string) bool {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}

	return hasUpper && hasLower && hasDigit
}

// RequirementsMessage returns the human-readable policy.
func (passwordPolicy) RequirementsMessage() string {
	return passwordRequirements
}
