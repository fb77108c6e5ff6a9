package domain

import (
	"time"

	"github.com/google/uuid"
)

// Traveler is a member of a trip's roster.
// Slug is the traveler identifier stored in Activity.TravelerIDs and used by
// the traveler filter; it is always lowercase and hyphenated. Name keeps the
// casing supplied when the traveler was first added.
type Traveler struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Name      string
	Slug      string
	CreatedAt time.Time
}
