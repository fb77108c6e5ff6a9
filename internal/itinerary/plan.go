package itinerary

import (
	"fmt"

	"github.com/pkordes/itinerary/backend/internal/domain"
)

// Plan is a rendered itinerary: the ordered days plus the display duration of
// every item that has a closing instant.
type Plan struct {
	Window domain.TripWindow
	Days   []Day
	// Durations maps activity ID to its ItemDuration. Items without a
	// secondary instant have no entry.
	Durations map[string]string
}

// NewPlan runs Aggregate and formats every item's duration. A duration error
// (e.g. check-out before check-in) aborts the plan like any other error.
func NewPlan(records []domain.Activity, w domain.TripWindow, sel Selection) (Plan, error) {
	days, err := Aggregate(records, w, sel)
	if err != nil {
		return Plan{}, err
	}

	durations := make(map[string]string)
	for _, d := range days {
		for _, it := range d.Items {
			s, err := ItemDuration(it.Activity)
			if err != nil {
				return Plan{}, fmt.Errorf("itinerary.NewPlan: activity %q: %w", it.ID, err)
			}
			if s != "" {
				durations[it.ID] = s
			}
		}
	}
	return Plan{Window: w, Days: days, Durations: durations}, nil
}
