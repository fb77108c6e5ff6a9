package itinerary

import (
	"fmt"

	"github.com/pkordes/itinerary/backend/internal/domain"
)

// Grouped buckets classified activities by the calendar date of their
// primary instant. Order within a bucket follows input order and carries no
// meaning; Build sorts for display.
type Grouped map[domain.DateKey][]Classified

// Group buckets records by DateKey regardless of period. A multi-day activity
// such as a stay appears only under the date of its primary instant.
// Returns domain.ErrInvalidDate if any record lacks a primary instant.
func Group(records []Classified) (Grouped, error) {
	g := make(Grouped)
	for _, c := range records {
		if c.Primary.IsZero() {
			return nil, fmt.Errorf("itinerary.Group: activity %q: %w: missing primary instant", c.ID, domain.ErrInvalidDate)
		}
		key := domain.KeyOf(c.Primary)
		g[key] = append(g[key], c)
	}
	return g, nil
}

// Len returns the number of records across all buckets.
func (g Grouped) Len() int {
	n := 0
	for _, items := range g {
		n += len(items)
	}
	return n
}
