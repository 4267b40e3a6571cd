package service

import (
	"time"

	"github.com/limbo/frisfocus/internal/rules"
)

// Clock returns the current time in the service's time zone. Day, week and
// month boundaries are computed in that zone.
type Clock func() time.Time

func SystemClock(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// DayStart returns midnight of t's calendar day.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns Monday 00:00 of t's ISO week. Sunday belongs to the
// week that started six days earlier.
func WeekStart(t time.Time) time.Time {
	daysBack := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		daysBack = 6
	}
	d := DayStart(t)
	return time.Date(d.Year(), d.Month(), d.Day()-daysBack, 0, 0, 0, 0, t.Location())
}

func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// windowStart reports where the duplicate window of policy begins. ok is
// false for policies that never deduplicate.
func windowStart(policy rules.WindowPolicy, now time.Time) (start time.Time, ok bool) {
	switch policy {
	case rules.WindowDaily:
		return DayStart(now), true
	case rules.WindowWeekly:
		return WeekStart(now), true
	default:
		return time.Time{}, false
	}
}
