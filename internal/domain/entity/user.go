// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Column widths of the users table, counted in characters.
const (
	MaxUsernameLength = 50
	MaxEmailLength    = 255
	MaxFullNameLength = 100
)

// User represents a registered member as stored in the users table.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with a fresh ID and timestamps.
func NewUser(username, email, fullName, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Identity is the authenticated view of a user. It carries no credential.
type Identity struct {
	UserID    uuid.UUID
	Username  string
	Email     string
	FullName  string
	CreatedAt time.Time
}

// Identity returns the credential-free view of the user.
func (u *User) Identity() Identity {
	return Identity{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}
