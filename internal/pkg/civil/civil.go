// Package civil deals with calendar dates in the hotel's local timezone.
// Guests book by civil date, not by instant: a check-in of 2025-06-01 means
// the night of June 1st in New Zealand, regardless of the server's clock.
package civil

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// DefaultZones is the fallback chain for resolving the hotel's timezone.
// "NZ" is the legacy alias some platforms ship instead of Pacific/Auckland.
var DefaultZones = []string{"Pacific/Auckland", "NZ"}

// ParseDate parses a yyyy-mm-dd string into a date at UTC midnight.
// Dates are stored and compared at UTC midnight so that equality and
// ordering are plain time.Time comparisons.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: must be in yyyy-mm-dd format", s)
	}
	return t, nil
}

// FormatDate renders a date as yyyy-mm-dd.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Clock provides "today" as a civil date.
type Clock interface {
	Today() time.Time
}

type zoneClock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock builds a Clock anchored to the first timezone in the chain that
// resolves. Resolution failure is non-fatal: with no usable zone the clock
// degrades to UTC.
func NewClock(zones ...string) Clock {
	if len(zones) == 0 {
		zones = DefaultZones
	}
	for _, name := range zones {
		if loc, err := time.LoadLocation(name); err == nil {
			return &zoneClock{loc: loc, now: time.Now}
		}
	}
	return &zoneClock{loc: time.UTC, now: time.Now}
}

// Today returns the current civil date in the clock's zone, normalized to
// UTC midnight so it compares directly against parsed booking dates.
func (c *zoneClock) Today() time.Time {
	y, m, d := c.now().In(c.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FixedClock always reports the same date. Intended for tests.
type FixedClock struct {
	Date time.Time
}

func (c FixedClock) Today() time.Time {
	return c.Date
}
