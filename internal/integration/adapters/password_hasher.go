// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/member-portal/backend/internal/application/adapter"
	domainerror "github.com/member-portal/backend/internal/domain/error"
)

const (
	// DefaultBcryptCost is the work factor used for new digests unless configured otherwise.
	DefaultBcryptCost = 12
	// maxPasswordBytes is the longest input bcrypt accepts.
	maxPasswordBytes = 72
)

// passwordHasher implements adapter.PasswordHasher with bcrypt.
// Digests are modular-crypt strings ($2a$<cost>$<salt><hash>), so the cost
// and salt needed for verification always travel with the digest.
type passwordHasher struct {
	cost int
}

// NewPasswordHasher creates a bcrypt hasher producing digests at the given cost.
func NewPasswordHasher(cost int) (adapter.PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d (allowed %d-%d)", domainerror.ErrInvalidHashCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &passwordHasher{cost: cost}, nil
}

// Hash derives a digest from plaintext with a fresh random salt.
func (h *passwordHasher) Hash(plaintext string) (string, error) {
	if strings.TrimSpace(plaintext) == "" || len(plaintext) > maxPasswordBytes {
		return "", domainerror.ErrInvalidPassword
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify re-derives the digest using the cost and salt embedded in digest.
// Any malformed input is a mismatch, as is plaintext past bcrypt's 72-byte input limit.
func (h *passwordHasher) Verify(plaintext, digest string) bool {
	if plaintext == "" || digest == "" || len(plaintext) > maxPasswordBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// NeedsRehash reports whether digest was produced at a lower cost than the hasher's.
func (h *passwordHasher) NeedsRehash(digest string) bool {
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		return false
	}
	return cost < h.cost
}
