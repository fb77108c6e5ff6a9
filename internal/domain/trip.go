// Package domain contains the core data types for the itinerary backend.
// It is imported by every other internal package (itinerary, repo, service,
// handler) and depends only on uuid.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level aggregate: a named date range that activities are
// scheduled against. StartDate and EndDate are calendar dates; their
// time-of-day is ignored.
type Trip struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Notes     string    `json:"notes,omitempty"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Window returns the trip's date range as a TripWindow.
// Returns ErrConfiguration if the stored end date precedes the start date.
func (t Trip) Window() (TripWindow, error) {
	return NewTripWindow(t.StartDate, t.EndDate)
}
