package notify

import (
	"context"
	"log/slog"
	"time"
)

// NextRun is the next hour:00 in loc strictly after now.
func NextRun(now time.Time, hour int, loc *time.Location) time.Time {
	local := now.In(loc)

	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, 0, 0, 0, loc)
	}

	return next
}

// Run checks once immediately and then every day at hour:00 in loc until ctx
// is cancelled. Failed checks are logged and retried at the next slot.
func (n *Notifier) Run(ctx context.Context, hour int, loc *time.Location) error {
	for {
		if _, err := n.Check(ctx); err != nil {
			slog.Error("expiration check failed", "error", err)
		}

		next := NextRun(time.Now(), hour, loc)
		slog.Info("next expiration check", "at", next)

		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
