// Package dateutil formats and validates the calendar dates shown in the UI.
//
// Every date in the application uses the single fixed pattern dd.MM.yyyy
// (two-digit day, two-digit month, four-digit year, dot separated).
// Parsing never reports an error: a string either is a date in that pattern
// or it isn't, and callers decide how to surface the difference.
package dateutil

import (
	"time"
)

// Pattern is the human-readable form of the date pattern.
const Pattern = "dd.MM.yyyy"

// layout is Pattern expressed as a Go reference time.
const layout = "02.01.2006"

// Format renders d as DD.MM.YYYY. A nil date renders as "".
func Format(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(layout)
}

// Parse parses s strictly against the dd.MM.yyyy pattern.
// The returned date is midnight UTC. ok is false for anything that isn't a
// real calendar date in exactly that shape.
func Parse(s string) (date time.Time, ok bool) {
	if !hasShape(s) {
		return time.Time{}, false
	}
	// time.Parse rejects out-of-range months and days that don't exist in the
	// given month (including Feb 29 outside leap years).
	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsValidDate reports whether s parses as a date.
func IsValidDate(s string) bool {
	_, ok := Parse(s)
	return ok
}

// hasShape checks the fixed field widths and separators: DD.MM.YYYY.
func hasShape(s string) bool {
	if len(s) != len(layout) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch i {
		case 2, 5:
			if c != '.' {
				return false
			}
		default:
			if c < '0' || c > '9' {
				return false
			}
		}
	}
	return true
}
