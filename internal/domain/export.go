package domain

import "time"

// ExportRow is a single row in the flat itinerary export.
// It is a denormalized view: one row per scheduled item, with day fields
// repeated for every item on that day. In-window days with nothing scheduled
// yield one row with zero values for all item fields.
//
// Travelers is a slice of traveler IDs for the item, in stored order.
// Callers that need a joined string (e.g. CSV) should join with "|".
type ExportRow struct {
	// Day fields, repeated for every item on the day.
	Date      string // "2006-01-02"
	Weekday   string
	Period    string
	DayNumber int // zero outside the trip window

	// Item fields, zero values when the day is empty.
	ActivityID string
	Kind       string
	Summary    string
	StartsAt   *time.Time
	EndsAt     *time.Time
	Duration   string
	CreatedBy  string

	Travelers []string
}
