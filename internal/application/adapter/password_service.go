// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// PasswordHasher converts plaintext passwords into self-describing digests
// and verifies candidates against stored digests.
type PasswordHasher interface {
	// Hash returns a salted digest. Empty input yields domainerror.ErrInvalidPassword.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. It fails closed.
	Verify(plaintext, digest string) bool

	// NeedsRehash reports whether digest was produced with a weaker cost than the current one.
	NeedsRehash(digest string) bool
}

// PasswordPolicy evaluates plaintext passwords before they are hashed.
type PasswordPolicy interface {
	// IsStrong reports whether password satisfies the composition policy.
	IsStrong(password string) bool

	// RequirementsMessage describes the policy for end users.
	RequirementsMessage() string
}

// CredentialService is the context-aware hashing entry point used by use cases.
// Implementations bound concurrent hashing work.
type CredentialService interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, digest string) bool
	NeedsRehash(digest string) bool
}
