//go:build integration

package mock

import (
	"sync"
	"time"
)

// Time is a controllable clock that keeps ticking from the last value set.
type Time struct {
	mu        sync.Mutex
	base      time.Time
	updatedAt time.Time
}

func NewTime() *Time {
	now := time.Now().UTC()
	return &Time{base: now, updatedAt: now}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.base = currentTime
	t.updatedAt = time.Now().UTC()
}

// Advance moves the clock forward by d.
func (t *Time) Advance(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.base = t.base.Add(d)
}

// Reset follows the wall clock again.
func (t *Time) Reset() {
	t.SetCurrentTime(time.Now().UTC())
}

func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.base.Add(time.Since(t.updatedAt))
}
