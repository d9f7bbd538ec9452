package domain

import (
	"fmt"
	"time"
)

// DayKeyLayout is the calendar-date format used to key day ledgers.
const DayKeyLayout = "2006-01-02"

// DayKey identifies one calendar day as YYYY-MM-DD. Lexicographic order
// on valid keys equals chronological order.
type DayKey string

// ParseDayKey validates a YYYY-MM-DD string.
func ParseDayKey(s string) (DayKey, error) {
	t, err := time.Parse(DayKeyLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDayKey, s)
	}
	// time.Parse accepts some non-canonical spellings; require exact round-trip.
	if t.Format(DayKeyLayout) != s {
		return "", fmt.Errorf("%w: %q", ErrInvalidDayKey, s)
	}
	return DayKey(s), nil
}

// DayKeyOf returns the day key for t in t's location.
func DayKeyOf(t time.Time) DayKey {
	return DayKey(t.Format(DayKeyLayout))
}

// String returns the key as a plain string.
func (k DayKey) String() string {
	return string(k)
}

// After reports whether k is a later calendar day than other.
func (k DayKey) After(other DayKey) bool {
	return k > other
}

// Before reports whether k is an earlier calendar day than other.
func (k DayKey) Before(other DayKey) bool {
	return k < other
}

// ClampDayKey clamps a requested day to today: future days are not
// addressable and fold back to the current calendar day.
func ClampDayKey(requested, today DayKey) DayKey {
	if requested.After(today) {
		return today
	}
	return requested
}
