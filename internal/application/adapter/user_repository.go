package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/member-portal/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsername checks if a user with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// UpdatePasswordHash replaces the stored digest of a user.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)
}
