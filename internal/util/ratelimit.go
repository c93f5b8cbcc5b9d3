package util

import (
	"context"
	"sync"
	"time"
)

// RateLimiter spaces admissions a fixed interval apart: at perMinute calls
// per minute, each Wait returns no earlier than interval after the previous
// one. There is no burst allowance, so an idle limiter never lets a batch
// catch up faster than its steady rate.
type RateLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time // earliest admission for the next caller
}

// NewRateLimiter creates a limiter admitting perMinute calls per minute.
// A non-positive rate disables pacing.
func NewRateLimiter(perMinute int) *RateLimiter {
	rl := &RateLimiter{}
	if perMinute > 0 {
		rl.interval = time.Minute / time.Duration(perMinute)
	}
	return rl
}

// Wait blocks until the caller's slot arrives or the context is cancelled.
// The first call is admitted immediately.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	rl.mu.Lock()
	now := time.Now()
	slot := rl.next
	if slot.Before(now) {
		slot = now
	}
	rl.next = slot.Add(rl.interval)
	rl.mu.Unlock()

	wait := time.Until(slot)
	if wait <= 0 {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
