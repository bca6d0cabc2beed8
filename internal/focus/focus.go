// Package focus runs the countdown behind a focus session.
package focus

import (
	"context"
	"time"
)

// DefaultInterval is how often Run reports the remaining time.
const DefaultInterval = time.Second

// Session is the outcome of one focus run.
type Session struct {
	Planned   time.Duration
	Elapsed   time.Duration
	Completed bool
}

// Minutes is the study time to credit for s: the planned minutes when the
// countdown finished, otherwise the whole minutes elapsed before it was
// stopped.
func (s Session) Minutes() int {
	if s.Completed {
		return int(s.Planned / time.Minute)
	}
	return int(s.Elapsed / time.Minute)
}

// Run counts down planned, calling onTick with the remaining time every
// interval, and a final time with zero when the countdown completes.
// It blocks until the countdown ends or ctx is done. onTick may be nil.
func Run(ctx context.Context, planned, interval time.Duration, onTick func(remaining time.Duration)) Session {
	if interval <= 0 {
		interval = DefaultInterval
	}
	tick := func(d time.Duration) {
		if onTick != nil {
			onTick(d)
		}
	}

	start := time.Now()
	if planned <= 0 {
		return Session{Planned: planned, Completed: true}
	}

	timer := time.NewTimer(planned)
	defer timer.Stop()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return Session{Planned: planned, Elapsed: time.Since(start)}
		case <-timer.C:
			tick(0)
			return Session{Planned: planned, Elapsed: planned, Completed: true}
		case <-ticker.C:
			tick(max(planned-time.Since(start), 0))
		}
	}
}
