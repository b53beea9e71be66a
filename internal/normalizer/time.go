// Package normalizer maps the loosely-shaped values accepted at the wire
// boundary into the strict forms the calculation code expects. All
// normalization happens here, before any computation runs.
package normalizer

import (
	"strings"
	"time"
)

// Layouts accepted for time-of-day values arriving from the API.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizeTimeOfDay reduces a wire time value to "HH:MM". Accepted inputs
// are bare "HH:MM", "HH:MM:SS" and full ISO datetimes. Empty input stays
// empty, and anything unrecognized is returned as-is for the tolerant
// parser downstream to zero out.
func NormalizeTimeOfDay(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if t, err := time.Parse("15:04", value); err == nil {
		return t.Format("15:04")
	}
	if t, err := time.Parse("15:04:05", value); err == nil {
		return t.Format("15:04")
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("15:04")
		}
	}
	return value
}

// NormalizeBreakMinutes clamps a break value to a non-negative whole
// number of minutes.
func NormalizeBreakMinutes(minutes int) int {
	if minutes < 0 {
		return 0
	}
	return minutes
}

// NormalizeMood forces a mood rating into the 1-5 range, defaulting the
// zero value to neutral.
func NormalizeMood(mood int) int {
	if mood == 0 {
		return 3
	}
	if mood < 1 {
		return 1
	}
	if mood > 5 {
		return 5
	}
	return mood
}

// NormalizeDate parses the date formats the API emits ("2006-01-02" or a
// full ISO datetime) into a date-only time value.
func NormalizeDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
