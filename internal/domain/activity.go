package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one itinerary entry of any kind: a transit leg, a stay, an
// event, a note, and so on. Kind must agree with Payload.Kind().
//
// Primary is the instant used for classification, grouping, and ordering
// (departure, check-in, start). Secondary is the optional closing instant
// (arrival, check-out, end) and is only used for duration display.
type Activity struct {
	ID          string
	TripID      uuid.UUID
	Kind        Kind
	Primary     time.Time
	Secondary   *time.Time
	CreatedBy   string
	TravelerIDs []string
	Payload     Payload
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasTraveler reports whether any of ids is associated with the activity.
func (a Activity) HasTraveler(ids map[string]struct{}) bool {
	for _, id := range a.TravelerIDs {
		if _, ok := ids[id]; ok {
			return true
		}
	}
	return false
}

// Summary returns the payload's one-line label, falling back to the kind.
func (a Activity) Summary() string {
	if a.Payload == nil {
		return string(a.Kind)
	}
	return a.Payload.Summary()
}

