package domain

import (
	"fmt"
	"time"
)

// DateKeyLayout is the canonical layout of a DateKey.
const DateKeyLayout = "2006-01-02"

// DateKey is a calendar date in YYYY-MM-DD form. It is derived from the
// wall-clock date of an instant in that instant's own location, so two
// instants on the same calendar day always share a key regardless of their
// time-of-day.
type DateKey string

// KeyOf returns the DateKey for t.
func KeyOf(t time.Time) DateKey {
	return DateKey(t.Format(DateKeyLayout))
}

// ParseDateKey validates s and returns it as a DateKey.
// Returns ErrInvalidDate if s is not a real YYYY-MM-DD date.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(DateKeyLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, s)
	}
	return KeyOf(t), nil
}

// Date returns the key as midnight UTC on that calendar date.
// Returns ErrInvalidDate if the key is malformed.
func (k DateKey) Date() (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, string(k))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, string(k))
	}
	return t, nil
}

// Weekday returns the English weekday name of the key's date, e.g. "Sunday".
func (k DateKey) Weekday() (string, error) {
	t, err := k.Date()
	if err != nil {
		return "", err
	}
	return t.Weekday().String(), nil
}

// String implements fmt.Stringer.
func (k DateKey) String() string { return string(k) }

// DaysBetween returns the number of calendar dates from the date of from to
// the date of to, each taken in its own location. It is negative when to
// falls on an earlier date. Seconds are used rather than time.Duration so
// spans longer than ~292 years are not clamped.
func DaysBetween(from, to time.Time) int {
	const secondsPerDay = 24 * 60 * 60
	return int((CalendarDate(to).Unix() - CalendarDate(from).Unix()) / secondsPerDay)
}

// CalendarDate strips the time-of-day and location from t, keeping its
// wall-clock date, and returns midnight UTC on that date.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
