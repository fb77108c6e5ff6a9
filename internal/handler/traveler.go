package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/itinerary/backend/internal/domain"
)

// AddTraveler handles POST /trips/{tripID}/travelers.
// Adding a name already on the roster returns the existing traveler.
func (s *Server) AddTraveler(w http.ResponseWriter, r *http.Request) {
	tripID, ok := bindTripID(w, r)
	if !ok {
		return
	}
	var body TravelerRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}
	t, err := s.travelers.Add(r.Context(), tripID, body.Name)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, travelerToResponse(t))
}

// ListTravelers handles GET /trips/{tripID}/travelers.
func (s *Server) ListTravelers(w http.ResponseWriter, r *http.Request) {
	tripID, ok := bindTripID(w, r)
	if !ok {
		return
	}
	ts, err := s.travelers.List(r.Context(), tripID)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	out := make([]Traveler, len(ts))
	for i, t := range ts {
		out[i] = travelerToResponse(t)
	}
	writeJSON(w, http.StatusOK, out)
}

// RemoveTraveler handles DELETE /trips/{tripID}/travelers/{slug}.
func (s *Server) RemoveTraveler(w http.ResponseWriter, r *http.Request) {
	tripID, ok := bindTripID(w, r)
	if !ok {
		return
	}
	if err := s.travelers.Remove(r.Context(), tripID, chi.URLParam(r, "slug")); err != nil {
		s.writeServiceError(w, r, err, "traveler not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func travelerToResponse(t domain.Traveler) Traveler {
	return Traveler{Id: t.ID, Name: t.Name, Slug: t.Slug, CreatedAt: t.CreatedAt}
}
