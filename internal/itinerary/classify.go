// Package itinerary turns a flat list of activities into a day-by-day plan.
//
// The pipeline is classify → group → filter → build. Every stage is a pure
// function of its arguments: inputs are never modified and no state is kept
// between calls, so passes for different trips may run concurrently.
package itinerary

import (
	"fmt"
	"time"

	"github.com/pkordes/itinerary/backend/internal/domain"
)

// Period places a date relative to a TripWindow.
type Period string

const (
	PeriodBefore Period = "before"
	PeriodDuring Period = "during"
	PeriodAfter  Period = "after"
)

// Classified is an activity tagged with its Period.
type Classified struct {
	domain.Activity
	Period Period
}

// Classify returns the period of a's primary instant relative to w.
// Dates equal to either boundary are during the trip.
func Classify(a domain.Activity, w domain.TripWindow) (Period, error) {
	if a.Primary.IsZero() {
		return "", fmt.Errorf("itinerary.Classify: activity %q: %w: missing primary instant", a.ID, domain.ErrInvalidDate)
	}
	return periodOf(domain.CalendarDate(a.Primary), w), nil
}

// ClassifyAll classifies every record, preserving input order.
// Any failure aborts the whole batch.
func ClassifyAll(records []domain.Activity, w domain.TripWindow) ([]Classified, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("itinerary.ClassifyAll: %w", err)
	}
	out := make([]Classified, 0, len(records))
	for _, a := range records {
		p, err := Classify(a, w)
		if err != nil {
			return nil, err
		}
		out = append(out, Classified{Activity: a, Period: p})
	}
	return out, nil
}

// periodOf compares a calendar date (midnight UTC) against the window.
func periodOf(date time.Time, w domain.TripWindow) Period {
	switch {
	case date.Before(domain.CalendarDate(w.Start)):
		return PeriodBefore
	case date.After(domain.CalendarDate(w.End)):
		return PeriodAfter
	default:
		return PeriodDuring
	}
}
