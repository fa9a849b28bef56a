package scheduler

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format accepted for start dates.
const DateLayout = "2006-01-02"

// Clock supplies the current time. Only the default start date depends on it.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns T. Useful for tests.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ResolveStartDate parses a YYYY-MM-DD start date. An empty or unparseable
// value falls back to today's date according to clock.
func ResolveStartDate(raw string, clock Clock) time.Time {
	if clock == nil {
		clock = SystemClock{}
	}
	raw = strings.TrimSpace(raw)
	if raw != "" {
		if t, err := time.ParseInLocation(DateLayout, raw, clock.Now().Location()); err == nil {
			return t
		}
	}
	return DateOnly(clock.Now())
}
