package handler

import (
	"encoding/json"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Health is the body of GET /healthz.
type Health struct {
	Status string `json:"status"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Trip is the API representation of a trip.
type Trip struct {
	Id        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	StartDate openapi_types.Date `json:"start_date"`
	EndDate   openapi_types.Date `json:"end_date"`
	Notes     *string            `json:"notes,omitempty"`
	CreatedBy *string            `json:"created_by,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// TripList is the body of GET /trips.
type TripList struct {
	Data       []Trip     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// TripRequest is the body of POST /trips and PUT /trips/{tripID}.
type TripRequest struct {
	Name      string             `json:"name"`
	StartDate openapi_types.Date `json:"start_date"`
	EndDate   openapi_types.Date `json:"end_date"`
	Notes     *string            `json:"notes,omitempty"`
	CreatedBy *string            `json:"created_by,omitempty"`
}

// Activity is the API representation of an itinerary entry.
// StartsAt and EndsAt keep the UTC offset the activity was recorded with.
type Activity struct {
	Id        string             `json:"id"`
	TripId    openapi_types.UUID `json:"trip_id"`
	Kind      string             `json:"kind"`
	Category  string             `json:"category"`
	Summary   string             `json:"summary"`
	StartsAt  time.Time          `json:"starts_at"`
	EndsAt    *time.Time         `json:"ends_at,omitempty"`
	CreatedBy *string            `json:"created_by,omitempty"`
	Travelers []string           `json:"travelers"`
	Payload   json.RawMessage    `json:"payload"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ActivityRequest is the body of POST and PUT on activities.
type ActivityRequest struct {
	Kind      string          `json:"kind"`
	StartsAt  time.Time       `json:"starts_at"`
	EndsAt    *time.Time      `json:"ends_at,omitempty"`
	CreatedBy *string         `json:"created_by,omitempty"`
	Travelers []string        `json:"travelers,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// Traveler is a member of a trip's roster.
type Traveler struct {
	Id        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	Slug      string             `json:"slug"`
	CreatedAt time.Time          `json:"created_at"`
}

// TravelerRequest is the body of POST /trips/{tripID}/travelers.
type TravelerRequest struct {
	Name string `json:"name"`
}

// Itinerary is the body of GET /trips/{tripID}/itinerary.
type Itinerary struct {
	Trip    Trip             `json:"trip"`
	Days    []ItineraryDay   `json:"days"`
	Summary ItinerarySummary `json:"summary"`
}

// ItineraryDay is one rendered day. DayNumber is omitted outside the trip.
type ItineraryDay struct {
	Date      openapi_types.Date `json:"date"`
	Weekday   string             `json:"weekday"`
	Period    string             `json:"period"`
	DayNumber *int               `json:"day_number,omitempty"`
	Items     []ItineraryItem    `json:"items"`
}

// ItineraryItem is an activity placed on a day, with its display duration.
type ItineraryItem struct {
	Activity
	Duration *string `json:"duration,omitempty"`
}

// ItinerarySummary counts what the itinerary contains.
type ItinerarySummary struct {
	Days   int `json:"days"`
	Before int `json:"before"`
	During int `json:"during"`
	After  int `json:"after"`
	Items  int `json:"items"`
}

// Duration is the body of GET /durations.
type Duration struct {
	Duration string `json:"duration"`
}

// ExportRow is one row of GET /trips/{tripID}/export in JSON form.
type ExportRow struct {
	Date       openapi_types.Date `json:"date"`
	Weekday    string             `json:"weekday"`
	Period     string             `json:"period"`
	DayNumber  *int               `json:"day_number,omitempty"`
	ActivityId *string            `json:"activity_id,omitempty"`
	Kind       *string            `json:"kind,omitempty"`
	Summary    *string            `json:"summary,omitempty"`
	StartsAt   *time.Time         `json:"starts_at,omitempty"`
	EndsAt     *time.Time         `json:"ends_at,omitempty"`
	Duration   *string            `json:"duration,omitempty"`
	CreatedBy  *string            `json:"created_by,omitempty"`
	Travelers  []string           `json:"travelers"`
}

// optString returns nil for "", else a pointer to s.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// optInt returns nil for 0, else a pointer to n.
func optInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

// valueOf returns *p, or "" for nil.
func valueOf(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
