package handler

import (
	"fmt"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/itinerary/backend/internal/calendar"
	"github.com/pkordes/itinerary/backend/internal/domain"
	"github.com/pkordes/itinerary/backend/internal/itinerary"
	"github.com/pkordes/itinerary/backend/internal/service"
)

// GetItinerary handles GET /trips/{tripID}/itinerary.
// Filters: ?activities=, ?routes=, ?extras=, ?travelers= (comma-separated).
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	tripID, ok := bindTripID(w, r)
	if !ok {
		return
	}
	sel, ok := bindSelection(w, r)
	if !ok {
		return
	}

	trip, plan, err := s.itineraries.Render(r.Context(), tripID, sel)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, planToResponse(trip, plan))
}

// GetItineraryCalendar handles GET /trips/{tripID}/itinerary.ics.
// It accepts the same filters as GetItinerary and returns an iCalendar feed.
func (s *Server) GetItineraryCalendar(w http.ResponseWriter, r *http.Request) {
	tripID, ok := bindTripID(w, r)
	if !ok {
		return
	}
	sel, ok := bindSelection(w, r)
	if !ok {
		return
	}

	trip, plan, err := s.itineraries.Render(r.Context(), tripID, sel)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}

	body := calendar.Encode(trip, plan, s.now())
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.ics"`, fileName(trip)))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write([]byte(body))
}

// GetDurations handles GET /durations?start=&end=&kind=.
// It formats the span between two instants the way the itinerary shows it:
// nights for kind=stay, days/hours/minutes otherwise.
func (s *Server) GetDurations(w http.ResponseWriter, r *http.Request) {
	params, err := bindDurationParams(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	a := domain.Activity{Kind: domain.KindEvent}
	if params.Kind != nil {
		if a.Kind, err = domain.ParseKind(*params.Kind); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
	}
	if a.Primary, err = itinerary.ParseInstant(params.Start); err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	end, err := itinerary.ParseInstant(params.End)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	a.Secondary = &end

	d, err := itinerary.ItemDuration(a)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, Duration{Duration: d})
}

// --- mapping helpers --------------------------------------------------------

func planToResponse(trip domain.Trip, plan itinerary.Plan) Itinerary {
	days := make([]ItineraryDay, len(plan.Days))
	for i, d := range plan.Days {
		date, _ := d.Date.Date() // keys are produced by the pipeline and always parse
		items := make([]ItineraryItem, len(d.Items))
		for j, it := range d.Items {
			items[j] = ItineraryItem{
				Activity: activityToResponse(it.Activity),
				Duration: optString(plan.Durations[it.ID]),
			}
		}
		days[i] = ItineraryDay{
			Date:      openapi_types.Date{Time: date},
			Weekday:   d.Weekday,
			Period:    string(d.Period),
			DayNumber: optInt(d.DayNumber),
			Items:     items,
		}
	}
	c := itinerary.Summarize(plan.Days)
	return Itinerary{
		Trip: tripToResponse(trip),
		Days: days,
		Summary: ItinerarySummary{
			Days:   c.Days,
			Before: c.Before,
			During: c.During,
			After:  c.After,
			Items:  c.Items,
		},
	}
}

// fileName returns a download-safe base name for trip, e.g. "summer-tour".
func fileName(trip domain.Trip) string {
	if name := service.Slugify(trip.Name); name != "" {
		return name
	}
	return "itinerary"
}
