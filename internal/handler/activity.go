package handler

import (
	"encoding/json"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/itinerary/backend/internal/domain"
)

// CreateActivity handles POST /trips/{tripID}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := bindTripID(w, r)
	if !ok {
		return
	}
	a, ok := decodeActivity(w, r)
	if !ok {
		return
	}
	a.TripID = tripID

	created, err := s.activities.Create(r.Context(), a)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, activityToResponse(created))
}

// ListActivities handles GET /trips/{tripID}/activities.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, ok := bindTripID(w, r)
	if !ok {
		return
	}
	acts, err := s.activities.ListByTripID(r.Context(), tripID)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	out := make([]Activity, len(acts))
	for i, a := range acts {
		out[i] = activityToResponse(a)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetActivity handles GET /trips/{tripID}/activities/{activityID}.
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	tripID, id, ok := bindActivityPath(w, r)
	if !ok {
		return
	}
	a, err := s.activities.GetByID(r.Context(), tripID, id)
	if err != nil {
		s.writeServiceError(w, r, err, "activity not found")
		return
	}
	writeJSON(w, http.StatusOK, activityToResponse(a))
}

// UpdateActivity handles PUT /trips/{tripID}/activities/{activityID}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, id, ok := bindActivityPath(w, r)
	if !ok {
		return
	}
	a, ok := decodeActivity(w, r)
	if !ok {
		return
	}
	a.ID = id.String()
	a.TripID = tripID

	updated, err := s.activities.Update(r.Context(), a)
	if err != nil {
		s.writeServiceError(w, r, err, "activity not found")
		return
	}
	writeJSON(w, http.StatusOK, activityToResponse(updated))
}

// DeleteActivity handles DELETE /trips/{tripID}/activities/{activityID}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	tripID, id, ok := bindActivityPath(w, r)
	if !ok {
		return
	}
	if err := s.activities.Delete(r.Context(), tripID, id); err != nil {
		s.writeServiceError(w, r, err, "activity not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func bindActivityPath(w http.ResponseWriter, r *http.Request) (tripID, id openapi_types.UUID, ok bool) {
	if tripID, ok = bindTripID(w, r); !ok {
		return tripID, id, false
	}
	id, err := bindUUIDPath(r, "activityID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return tripID, id, false
	}
	return tripID, id, true
}

// decodeActivity reads an ActivityRequest and resolves its kind and payload.
// Writes a 413/422 response and returns ok=false on failure.
func decodeActivity(w http.ResponseWriter, r *http.Request) (domain.Activity, bool) {
	var body ActivityRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, err)
		return domain.Activity{}, false
	}
	kind, err := domain.ParseKind(body.Kind)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return domain.Activity{}, false
	}
	payload, err := domain.DecodePayload(kind, body.Payload)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return domain.Activity{}, false
	}
	return domain.Activity{
		Kind:        kind,
		Primary:     body.StartsAt,
		Secondary:   body.EndsAt,
		CreatedBy:   valueOf(body.CreatedBy),
		TravelerIDs: body.Travelers,
		Payload:     payload,
	}, true
}

// activityToResponse converts a domain.Activity into its API representation.
func activityToResponse(a domain.Activity) Activity {
	payload, err := json.Marshal(a.Payload)
	if err != nil || a.Payload == nil {
		payload = json.RawMessage(`{}`)
	}
	travelers := a.TravelerIDs
	if travelers == nil {
		travelers = []string{}
	}
	return Activity{
		Id:        a.ID,
		TripId:    a.TripID,
		Kind:      string(a.Kind),
		Category:  string(a.Kind.Category()),
		Summary:   a.Summary(),
		StartsAt:  a.Primary,
		EndsAt:    a.Secondary,
		CreatedBy: optString(a.CreatedBy),
		Travelers: travelers,
		Payload:   payload,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
