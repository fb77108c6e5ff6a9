package domain

import (
	"fmt"
	"time"
)

// MaxTripDays is the longest trip window, in calendar dates, the service
// accepts. Every date of the window is rendered, so the bound also caps the
// size of an itinerary response.
const MaxTripDays = 366

// TripWindow is the inclusive calendar-date range of a trip.
// Start and End are normalised to midnight UTC by NewTripWindow.
type TripWindow struct {
	Start time.Time
	End   time.Time
}

// NewTripWindow builds a TripWindow from two instants, discarding their
// time-of-day. Returns ErrConfiguration if start falls after end.
func NewTripWindow(start, end time.Time) (TripWindow, error) {
	w := TripWindow{Start: CalendarDate(start), End: CalendarDate(end)}
	if err := w.Validate(); err != nil {
		return TripWindow{}, err
	}
	return w, nil
}

// Validate reports ErrConfiguration when the window's start date is after its
// end date. Windows built by hand (not through NewTripWindow) are compared by
// calendar date only.
func (w TripWindow) Validate() error {
	if CalendarDate(w.Start).After(CalendarDate(w.End)) {
		return fmt.Errorf("%w: trip window starts %s after it ends %s",
			ErrConfiguration, KeyOf(w.Start), KeyOf(w.End))
	}
	return nil
}

// Contains reports whether the calendar date of t lies within the window,
// both boundaries included.
func (w TripWindow) Contains(t time.Time) bool {
	d := CalendarDate(t)
	return !d.Before(CalendarDate(w.Start)) && !d.After(CalendarDate(w.End))
}

// Len returns the number of calendar dates in the window.
// The result is only meaningful for a valid window.
func (w TripWindow) Len() int {
	return DaysBetween(w.Start, w.End) + 1
}

// Dates enumerates every calendar date of the window in ascending order.
// Returns ErrConfiguration for an inverted window without enumerating.
func (w TripWindow) Dates() ([]DateKey, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	start := CalendarDate(w.Start)
	keys := make([]DateKey, 0, w.Len())
	for d := start; !d.After(CalendarDate(w.End)); d = d.AddDate(0, 0, 1) {
		keys = append(keys, KeyOf(d))
	}
	return keys, nil
}
