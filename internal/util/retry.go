package util

import (
	"context"
	"time"
)

// Retry runs op up to maxAttempts times, doubling the pause between
// attempts starting from baseDelay. It exists to ride out transient
// assistant API failures; the caller surfaces the last error once the
// attempts are spent. Cancellation is honored between attempts, never
// mid-op.
func Retry(ctx context.Context, maxAttempts int, baseDelay time.Duration, op func() error) error {
	delay := baseDelay

	var err error
	for attempt := 1; ; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if attempt >= maxAttempts {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}
