package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary/backend/internal/domain"
	"github.com/pkordes/itinerary/backend/internal/handler"
)

// mockActivityServicer is a test double for handler.ActivityServicer.
type mockActivityServicer struct {
	create       func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	getByID      func(ctx context.Context, tripID, id uuid.UUID) (domain.Activity, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
	update       func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	delete       func(ctx context.Context, tripID, id uuid.UUID) error
}

func (m *mockActivityServicer) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityServicer) GetByID(ctx context.Context, tripID, id uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, tripID, id)
}
func (m *mockActivityServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockActivityServicer) Update(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.update(ctx, a)
}
func (m *mockActivityServicer) Delete(ctx context.Context, tripID, id uuid.UUID) error {
	return m.delete(ctx, tripID, id)
}

// compile-time check: mockActivityServicer must satisfy handler.ActivityServicer.
var _ handler.ActivityServicer = (*mockActivityServicer)(nil)

func newActivityHTTPHandler(svc handler.ActivityServicer) http.Handler {
	return handler.NewServer(nil, svc, nil, nil, nil, nil).Routes()
}

func echoActivities() *mockActivityServicer {
	return &mockActivityServicer{
		create: func(_ context.Context, a domain.Activity) (domain.Activity, error) { return a, nil },
		update: func(_ context.Context, a domain.Activity) (domain.Activity, error) { return a, nil },
	}
}

// ---- POST /trips/{tripID}/activities ---------------------------------------

func TestCreateActivity_201_KeepsOffset(t *testing.T) {
	tripID := uuid.New()
	var got domain.Activity
	svc := echoActivities()
	svc.create = func(_ context.Context, a domain.Activity) (domain.Activity, error) {
		got = a
		a.ID = uuid.NewString()
		return a, nil
	}

	body := jsonBody(t, map[string]any{
		"kind":      "flight",
		"starts_at": "2025-06-01T23:30:00-04:00",
		"ends_at":   "2025-06-02T12:10:00+02:00",
		"travelers": []string{"alice"},
		"payload":   map[string]any{"airline": "LH", "flight_number": "401", "from": "JFK", "to": "FRA"},
	})

	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/activities", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newActivityHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, tripID, got.TripID)
	assert.Equal(t, domain.KindFlight, got.Kind)
	assert.Equal(t, domain.Flight{Airline: "LH", FlightNumber: "401", From: "JFK", To: "FRA"}, got.Payload)
	// The wall-clock date in the departure's own zone is what the itinerary groups by.
	assert.Equal(t, domain.DateKey("2025-06-01"), domain.KeyOf(got.Primary))

	var resp handler.Activity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "route", resp.Category)
	assert.Equal(t, "Flight: LH 401 · JFK → FRA", resp.Summary)
	assert.Equal(t, []string{"alice"}, resp.Travelers)
}

func TestCreateActivity_422_UnknownKind(t *testing.T) {
	body := jsonBody(t, map[string]any{
		"kind":      "hovercraft",
		"starts_at": "2025-06-01T10:00:00Z",
	})

	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.New().String()+"/activities", body)
	rec := httptest.NewRecorder()

	newActivityHTTPHandler(&mockActivityServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec).Code)
}

func TestCreateActivity_422_PayloadShape(t *testing.T) {
	body := jsonBody(t, map[string]any{
		"kind":      "stay",
		"starts_at": "2025-06-01T15:00:00Z",
		"payload":   map[string]any{"name": 42},
	})

	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.New().String()+"/activities", body)
	rec := httptest.NewRecorder()

	newActivityHTTPHandler(&mockActivityServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateActivity_404_TripMissing(t *testing.T) {
	svc := &mockActivityServicer{
		create: func(_ context.Context, _ domain.Activity) (domain.Activity, error) {
			return domain.Activity{}, domain.ErrNotFound
		},
	}
	body := jsonBody(t, map[string]any{"kind": "note", "starts_at": "2025-06-01T10:00:00Z"})

	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.New().String()+"/activities", body)
	rec := httptest.NewRecorder()

	newActivityHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- GET /trips/{tripID}/activities ----------------------------------------

func TestListActivities_200(t *testing.T) {
	tripID := uuid.New()
	svc := &mockActivityServicer{
		listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.Activity, error) {
			return []domain.Activity{{
				ID: uuid.NewString(), TripID: tripID, Kind: domain.KindNote,
				Primary: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
				Payload: domain.Note{Title: "Pack"},
			}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+tripID.String()+"/activities", nil)
	rec := httptest.NewRecorder()

	newActivityHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []handler.Activity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "extra", resp[0].Category)
	assert.JSONEq(t, `{"title":"Pack"}`, string(resp[0].Payload))
	assert.Equal(t, []string{}, resp[0].Travelers)
}

// ---- GET/PUT/DELETE /trips/{tripID}/activities/{activityID} ----------------

func TestGetActivity_404(t *testing.T) {
	svc := &mockActivityServicer{
		getByID: func(_ context.Context, _, _ uuid.UUID) (domain.Activity, error) {
			return domain.Activity{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.New().String()+"/activities/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newActivityHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "activity not found", decodeError(t, rec).Message)
}

func TestUpdateActivity_200_UsesPathIDs(t *testing.T) {
	tripID, id := uuid.New(), uuid.New()
	var got domain.Activity
	svc := echoActivities()
	svc.update = func(_ context.Context, a domain.Activity) (domain.Activity, error) {
		got = a
		return a, nil
	}
	body := jsonBody(t, map[string]any{
		"kind":      "stay",
		"starts_at": "2025-06-01T15:00:00Z",
		"ends_at":   "2025-06-03T11:00:00Z",
		"payload":   map[string]any{"name": "Casa Alfama"},
	})

	req := httptest.NewRequest(http.MethodPut, "/trips/"+tripID.String()+"/activities/"+id.String(), body)
	rec := httptest.NewRecorder()

	newActivityHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id.String(), got.ID)
	assert.Equal(t, tripID, got.TripID)
}

func TestDeleteActivity_204(t *testing.T) {
	svc := &mockActivityServicer{
		delete: func(_ context.Context, _, _ uuid.UUID) error { return nil },
	}

	req := httptest.NewRequest(http.MethodDelete, "/trips/"+uuid.New().String()+"/activities/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newActivityHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteActivity_422_BadActivityID(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/trips/"+uuid.New().String()+"/activities/42", nil)
	rec := httptest.NewRecorder()

	newActivityHTTPHandler(&mockActivityServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
