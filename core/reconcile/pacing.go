package reconcile

import (
	"context"
	"time"
)

// Pacer delays the run between batches to stay under the remote rate limits.
type Pacer interface {
	Wait(ctx context.Context, d time.Duration) error
}

// SleepPacer waits on a timer. It returns early with the context error on cancellation.
type SleepPacer struct{}

// Wait blocks for d. Non-positive durations return immediately.
func (SleepPacer) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
