package schedule

import (
	"testing"
	"time"

	"github.com/vrslev/pi-guard/internal/autonomy"
)

func TestEffectiveLevelNoWindowPassesThrough(t *testing.T) {
	got := EffectiveLevel(autonomy.High, Window{}, time.Now())
	if got != autonomy.High {
		t.Errorf("got %v, want High", got)
	}
}

func TestEffectiveLevelNeverRaisesAbovePersisted(t *testing.T) {
	// Business hours window with a High ceiling, but persisted is Low: the
	// ceiling must never raise the level even when inside the window.
	window := Window{Cron: "0 9-17 * * 1-5", Ceiling: autonomy.High}
	weekday := time.Date(2026, time.July, 27, 10, 0, 0, 0, time.UTC) // Monday
	got := EffectiveLevel(autonomy.Low, window, weekday)
	if got > autonomy.Low {
		t.Errorf("ceiling must never raise persisted level: got %v, want <= Low", got)
	}
}

func TestEffectiveLevelCapsOutsideWindow(t *testing.T) {
	window := Window{Cron: "0 9-17 * * 1-5", Ceiling: autonomy.Medium}
	weekendNight := time.Date(2026, time.August, 1, 23, 0, 0, 0, time.UTC) // Saturday
	got := EffectiveLevel(autonomy.High, window, weekendNight)
	if got != autonomy.Medium {
		t.Errorf("got %v, want Medium ceiling outside window", got)
	}
}

func TestEffectiveLevelInsideWindowBetweenTicks(t *testing.T) {
	// "0 9-17 * * 1-5" only ticks on the hour; a timestamp 45 minutes past
	// the hour must still read as inside the window, not just :00 marks.
	window := Window{Cron: "0 9-17 * * 1-5", Ceiling: autonomy.Medium}
	midHour := time.Date(2026, time.July, 27, 14, 45, 0, 0, time.UTC) // Monday
	got := EffectiveLevel(autonomy.High, window, midHour)
	if got != autonomy.High {
		t.Errorf("got %v, want High (mid-hour still inside business-hours window)", got)
	}
}

func TestEffectiveLevelInsideWindowLastHourOfDay(t *testing.T) {
	// The last tick of the day (17:00) must still cover up to 18:00, not
	// just its own minute, even though the next tick is Monday 9:00.
	window := Window{Cron: "0 9-17 * * 1-5", Ceiling: autonomy.Medium}
	lastHour := time.Date(2026, time.July, 31, 17, 30, 0, 0, time.UTC) // Friday
	got := EffectiveLevel(autonomy.High, window, lastHour)
	if got != autonomy.High {
		t.Errorf("got %v, want High (17:30 still inside the 17:00 tick's hour)", got)
	}
}

func TestEffectiveLevelMalformedCronPassesThrough(t *testing.T) {
	window := Window{Cron: "not a cron expression", Ceiling: autonomy.Minimal}
	got := EffectiveLevel(autonomy.High, window, time.Now())
	if got != autonomy.High {
		t.Errorf("malformed cron must fall back to persisted level, got %v", got)
	}
}
