// Package calendar encodes a rendered itinerary as an iCalendar feed so it
// can be subscribed to or imported by calendar clients.
package calendar

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/pkordes/itinerary/backend/internal/domain"
	"github.com/pkordes/itinerary/backend/internal/itinerary"
)

// ProductID identifies this service in the PRODID property.
const ProductID = "-//pkordes//itinerary//EN"

// uidDomain qualifies activity IDs so UIDs are globally unique.
const uidDomain = "itinerary.pkordes"

// Encode renders one VEVENT per scheduled item of plan. Days without items
// produce nothing. now stamps DTSTAMP on every event.
//
// Events carry the item's instants in UTC, its payload summary, the kind,
// category, and period as CATEGORIES lines, and a description naming the trip day
// and duration.
func Encode(trip domain.Trip, plan itinerary.Plan, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetProductId(ProductID)
	cal.SetMethod(ical.MethodPublish)
	cal.SetXWRCalName(trip.Name)

	for _, day := range plan.Days {
		for _, it := range day.Items {
			ev := cal.AddEvent(it.ID + "@" + uidDomain)
			ev.SetDtStampTime(now)
			ev.SetStartAt(it.Primary)
			if it.Secondary != nil {
				ev.SetEndAt(*it.Secondary)
			}
			ev.SetSummary(it.Summary())
			ev.SetDescription(describe(day, plan.Durations[it.ID]))
			if loc := location(it.Payload); loc != "" {
				ev.SetLocation(loc)
			}
			for _, c := range []string{string(it.Kind), string(it.Kind.Category()), string(day.Period)} {
				ev.AddCategory(c)
			}
			if !it.UpdatedAt.IsZero() {
				ev.SetModifiedAt(it.UpdatedAt)
			}
		}
	}
	return cal.Serialize()
}

// describe builds the event description, e.g. "Day 2 · 3 hours".
func describe(day itinerary.Day, duration string) string {
	var where string
	switch day.Period {
	case itinerary.PeriodBefore:
		where = "Before the trip"
	case itinerary.PeriodAfter:
		where = "After the trip"
	default:
		where = fmt.Sprintf("Day %d", day.DayNumber)
	}
	if duration == "" {
		return where
	}
	return where + " · " + duration
}

// location picks the payload field that names a place, if the kind has one.
func location(p domain.Payload) string {
	switch v := p.(type) {
	case domain.Stay:
		return firstNonEmpty(v.Address, v.Name)
	case domain.Restaurant:
		return firstNonEmpty(v.Address, v.Name)
	case domain.Event:
		return v.Venue
	case domain.Rental:
		return v.PickupLocation
	default:
		return ""
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
