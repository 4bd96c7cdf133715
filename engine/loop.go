package engine

import (
	"context"
	"time"
)

// FrameInterval converts a target frame rate to a ticker interval
// Non-positive rates fall back to DefaultFPS
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// DefaultFPS is the frame rate used when none is configured
const DefaultFPS = 45

// RunLoop drives the single-threaded update/render cycle
// Events are dispatched as they arrive; frame runs once per tick and is the
// only place animation state is advanced. Returns nil when handle asks to
// stop, ctx.Err() on cancellation
func RunLoop[E any](ctx context.Context, interval time.Duration, events <-chan E, handle func(E) bool, frame func()) error {
	if interval <= 0 {
		interval = FrameInterval(DefaultFPS)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// First frame renders immediately instead of waiting one interval
	frame()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !handle(ev) {
				return nil
			}

		case <-ticker.C:
			frame()
		}
	}
}
