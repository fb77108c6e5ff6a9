package itinerary

import (
	"github.com/pkordes/itinerary/backend/internal/domain"
)

// Aggregate runs the full pipeline over records: classify against w, group
// by date, apply sel, and build the ordered day list. Any error aborts the
// pass; no partial list is ever returned.
func Aggregate(records []domain.Activity, w domain.TripWindow, sel Selection) ([]Day, error) {
	classified, err := ClassifyAll(records, w)
	if err != nil {
		return nil, err
	}
	grouped, err := Group(classified)
	if err != nil {
		return nil, err
	}
	return Build(Filter(grouped, sel), w)
}

// Count summarises a day list for logging and metrics.
type Count struct {
	Days   int
	Before int
	During int
	After  int
	Items  int
}

// Summarize counts days per period and the total number of items.
func Summarize(days []Day) Count {
	c := Count{Days: len(days)}
	for _, d := range days {
		switch d.Period {
		case PeriodBefore:
			c.Before++
		case PeriodDuring:
			c.During++
		case PeriodAfter:
			c.After++
		}
		c.Items += len(d.Items)
	}
	return c
}
