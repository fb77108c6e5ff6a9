package itinerary

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/pkordes/itinerary/backend/internal/domain"
)

// Day is one row of the day-by-day view.
// DayNumber is the 1-based position within the trip window and is zero for
// days before or after the trip. Items is never nil.
type Day struct {
	Date      domain.DateKey
	Weekday   string
	Period    Period
	DayNumber int
	Items     []Classified
}

// Build turns filtered buckets into the ordered list of days to display.
//
// Every date of w is emitted, numbered from 1, even when nothing is scheduled
// on it. Dates outside w are emitted only when their bucket is non-empty.
// Period and weekday come from the date itself, never from the items.
// Returns domain.ErrConfiguration for an inverted window before doing any
// other work.
func Build(g Grouped, w domain.TripWindow) ([]Day, error) {
	dates, err := w.Dates()
	if err != nil {
		return nil, fmt.Errorf("itinerary.Build: %w", err)
	}

	days := make([]Day, 0, len(dates)+len(g))
	for i, key := range dates {
		day, err := newDay(key, PeriodDuring, g[key])
		if err != nil {
			return nil, fmt.Errorf("itinerary.Build: %w", err)
		}
		day.DayNumber = i + 1
		days = append(days, day)
	}

	for key, items := range g {
		if len(items) == 0 {
			continue
		}
		date, err := key.Date()
		if err != nil {
			return nil, fmt.Errorf("itinerary.Build: %w", err)
		}
		if w.Contains(date) {
			continue
		}
		day, err := newDay(key, periodOf(date, w), items)
		if err != nil {
			return nil, fmt.Errorf("itinerary.Build: %w", err)
		}
		days = append(days, day)
	}

	slices.SortFunc(days, func(a, b Day) int {
		return cmp.Compare(a.Date, b.Date)
	})
	return days, nil
}

// newDay copies items into a new Day, ordered by primary instant.
func newDay(key domain.DateKey, period Period, items []Classified) (Day, error) {
	weekday, err := key.Weekday()
	if err != nil {
		return Day{}, err
	}
	sorted := make([]Classified, len(items))
	copy(sorted, items)
	slices.SortStableFunc(sorted, func(a, b Classified) int {
		if c := a.Primary.Compare(b.Primary); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return Day{Date: key, Weekday: weekday, Period: period, Items: sorted}, nil
}
