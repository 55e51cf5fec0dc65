package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Clock is a time of day expressed as minutes since midnight.
type Clock int

// MinutesPerHour and friends keep the clock arithmetic readable.
const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * 60
)

// NewClock builds a Clock from an hour/minute pair.
func NewClock(hour, minute int) Clock {
	return Clock(hour*MinutesPerHour + minute)
}

// Hour returns the hour component of the clock.
func (c Clock) Hour() int {
	return int(c) / MinutesPerHour
}

// Minute returns the minute component of the clock.
func (c Clock) Minute() int {
	return int(c) % MinutesPerHour
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// clockLayouts are the accepted representations for a time of day, tried in
// order. Timestamp layouts reduce to their clock-of-day component.
var clockLayouts = []string{
	"15:04",
	"15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseClock parses a time of day. Full timestamps are accepted and reduced
// to their clock-of-day component.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty clock value")
	}
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return NewClock(t.Hour(), t.Minute()), nil
		}
	}
	return 0, fmt.Errorf("unrecognized clock value %q", s)
}

// dateLayouts are the accepted date representations, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
}

// NormalizeDate parses a calendar date in any accepted layout and returns it
// in the canonical YYYY-MM-DD form. Canonical dates compare lexicographically,
// which is what lets the merge key on plain string equality.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty date value")
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognized date value %q", s)
}

// OverlapMinutes returns the length of the intersection of [aStart, aEnd)
// and [bStart, bEnd) in minutes, zero if they do not overlap.
func OverlapMinutes(aStart, aEnd, bStart, bEnd Clock) int {
	start := aStart
	if bStart > start {
		start = bStart
	}
	end := aEnd
	if bEnd < end {
		end = bEnd
	}
	if end <= start {
		return 0
	}
	return int(end - start)
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round3 rounds to 3 decimal places, half away from zero.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
