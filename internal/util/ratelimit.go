package util

import (
	"context"
	"sync"
	"time"
)

// RateLimiter paces outbound assistant requests against a per-minute API
// quota. One request's worth of budget is available immediately; further
// budget accrues continuously at the configured rate, capped at one request.
type RateLimiter struct {
	mu     sync.Mutex
	rate   float64 // requests per second
	budget float64
	last   time.Time
}

// NewRateLimiter creates a RateLimiter allowing perMinute requests per
// minute.
func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{
		rate:   float64(perMinute) / 60.0,
		budget: 1,
		last:   time.Now(),
	}
}

// Wait blocks until the next request may go out or the context is
// cancelled. It sleeps for the exact accrual shortfall rather than polling,
// so a caller inside a quota window wakes once.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	for {
		rl.mu.Lock()
		now := time.Now()
		rl.budget += now.Sub(rl.last).Seconds() * rl.rate
		if rl.budget > 1 {
			rl.budget = 1
		}
		rl.last = now

		if rl.budget >= 1 {
			rl.budget--
			rl.mu.Unlock()
			return nil
		}
		wait := time.Duration((1 - rl.budget) / rl.rate * float64(time.Second))
		rl.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}
