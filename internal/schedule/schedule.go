// Package schedule implements the cron-windowed autonomy ceiling
// (SPEC_FULL.md §4.9): an optional operator-configured cap on the
// effective autonomy level outside a configured time window.
package schedule

import (
	"time"

	"github.com/adhocore/gronx"

	"github.com/vrslev/pi-guard/internal/autonomy"
)

// Window caps the effective autonomy level outside the hours matched by
// Cron. An empty Cron means "no window configured."
type Window struct {
	Cron    string
	Ceiling autonomy.Level
}

// EffectiveLevel computes min(persisted, ceiling) when now falls outside
// the configured window; it never raises persisted. A malformed cron
// expression is treated as "no window configured" (spec.md §7's error
// propagation policy, extended here): the persisted level passes through
// unmodified and the caller should log a warning.
func EffectiveLevel(persisted autonomy.Level, window Window, now time.Time) autonomy.Level {
	if window.Cron == "" {
		return persisted
	}

	due, err := isWithinWindow(window.Cron, now)
	if err != nil {
		return persisted
	}
	if due {
		return persisted
	}
	return autonomy.Min(persisted, window.Ceiling)
}

// isWithinWindow reports whether now falls within the continuous interval
// implied by cron's ticks, not merely on an exact tick. gronx.IsDue only
// matches the instant a tick fires, so a window like "0 9-17 * * 1-5"
// (hourly ticks) would otherwise read as "due" for one minute per hour and
// "outside the window" for the other fifty-nine.
//
// A tick at T covers [T, T+width). width is the shorter of the gap to the
// tick before T and the gap to the tick after T: for an ordinary tick both
// gaps equal the regular cadence (an hour, here); at a week boundary one
// side is inflated (Friday 17:00's next tick is Monday 9:00) but the other
// still reflects the real cadence, so the minimum recovers it.
func isWithinWindow(cron string, now time.Time) (bool, error) {
	prev, err := gronx.PrevTickBefore(cron, now, true)
	if err != nil {
		return false, err
	}
	next, err := gronx.NextTickAfter(cron, prev, false)
	if err != nil {
		return false, err
	}
	beforePrev, err := gronx.PrevTickBefore(cron, prev, false)
	if err != nil {
		return false, err
	}

	width := next.Sub(prev)
	if backward := prev.Sub(beforePrev); backward < width {
		width = backward
	}
	if width <= 0 {
		return false, nil
	}
	return now.Before(prev.Add(width)), nil
}
