// Package slot maps raw timestamps onto the canonical 30-minute reservation grid.
package slot

import (
	"fmt"
	"strings"
	"time"
)

// Length is the width of one reservation slot.
const Length = 30 * time.Minute

// ClockLayout is the "HH:MM" layout used by opening hours and TimeOfDay.
const ClockLayout = "15:04"

// Slot is a timestamp truncated to the preceding 30-minute boundary.
type Slot struct {
	Start     time.Time
	Weekday   int    // 0 = Sunday .. 6 = Saturday
	TimeOfDay string // "HH:MM", compared lexicographically against opening hours
}

// Normalize floors t to its slot. Minutes become floor(minute/30)*30, seconds and
// sub-second parts are dropped. The location of t is kept.
func Normalize(t time.Time) Slot {
	start := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), (t.Minute()/30)*30, 0, 0, t.Location())
	return Slot{
		Start:     start,
		Weekday:   int(start.Weekday()),
		TimeOfDay: start.Format(ClockLayout),
	}
}

// End returns the exclusive upper bound of the slot.
func (s Slot) End() time.Time {
	return s.Start.Add(Length)
}

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Parse reads an ISO-8601 timestamp. Zoned values are converted into loc,
// zone-less values are read as wall-clock time in loc.
func Parse(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.In(loc), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp %q, expected ISO-8601", raw)
}

// ValidClock reports whether s is a zero-padded "HH:MM" on the 30-minute grid.
func ValidClock(s string) bool {
	if len(s) != 5 {
		return false
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return false
	}
	return t.Minute() == 0 || t.Minute() == 30
}
