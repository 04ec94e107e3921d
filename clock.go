package hotspot

import (
	"context"
	"time"
)

// Clock abstracts time for the toggle sequence so settle delays and
// polling loops run against simulated time in tests.
type Clock interface {
	// Now returns the current time
	Now() time.Time
	// Sleep pauses for d or until ctx is cancelled
	Sleep(ctx context.Context, d time.Duration) error
}

// wallClock is the real-time Clock used outside of tests
type wallClock struct{}

func (wallClock) Now() time.Time {
	return time.Now()
}

func (wallClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WallClock returns the real-time Clock
func WallClock() Clock {
	return wallClock{}
}
