package adapters

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"

	"github.com/member-portal/backend/internal/application/adapter"
)

// hashingPool bounds how many bcrypt computations run at once.
type hashingPool struct {
	hasher adapter.PasswordHasher
	slots  *semaphore.Weighted
}

// NewHashingPool wraps hasher with a concurrency limit. A non-positive limit
// falls back to the number of CPUs.
func NewHashingPool(hasher adapter.PasswordHasher, concurrency int) adapter.CredentialService {
	if concurrency < 1 {
		concurrency = runtime.NumCPU()
	}
	return &hashingPool{
		hasher: hasher,
		slots:  semaphore.NewWeighted(int64(concurrency)),
	}
}

// Hash waits for a free slot, then hashes. Cancellation while waiting returns ctx.Err().
func (p *hashingPool) Hash(ctx context.Context, plaintext string) (string, error) {
	if err := p.slots.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer p.slots.Release(1)

	return p.hasher.Hash(plaintext)
}

// Verify waits for a free slot, then verifies. Cancellation while waiting is a mismatch.
func (p *hashingPool) Verify(ctx context.Context, plaintext, digest string) bool {
	if err := p.slots.Acquire(ctx, 1); err != nil {
		return false
	}
	defer p.slots.Release(1)

	return p.hasher.Verify(plaintext, digest)
}

// NeedsRehash only parses the digest and does not take a slot.
func (p *hashingPool) NeedsRehash(digest string) bool {
	return p.hasher.NeedsRehash(digest)
}
