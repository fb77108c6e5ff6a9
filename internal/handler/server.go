// Package handler implements the HTTP handlers for the itinerary API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, etc.) but all share the same Server struct so
// they can access its dependencies. Routes wires them onto a chi router.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/itinerary/backend/internal/domain"
	"github.com/pkordes/itinerary/backend/internal/itinerary"
)

// TripServicer defines the business operations the trip handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityServicer defines the operations the activity handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)
	GetByID(ctx context.Context, tripID, id uuid.UUID) (domain.Activity, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
	Update(ctx context.Context, a domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, tripID, id uuid.UUID) error
}

// TravelerServicer defines the roster operations the traveler handlers depend on.
type TravelerServicer interface {
	Add(ctx context.Context, tripID uuid.UUID, name string) (domain.Traveler, error)
	List(ctx context.Context, tripID uuid.UUID) ([]domain.Traveler, error)
	Remove(ctx context.Context, tripID uuid.UUID, slug string) error
}

// ItineraryServicer renders a trip into its day plan.
type ItineraryServicer interface {
	Render(ctx context.Context, tripID uuid.UUID, sel itinerary.Selection) (domain.Trip, itinerary.Plan, error)
}

// ExportServicer flattens a trip's day plan into export rows.
type ExportServicer interface {
	Export(ctx context.Context, tripID uuid.UUID, sel itinerary.Selection) ([]domain.ExportRow, error)
}

// Server holds the dependencies of every endpoint.
type Server struct {
	trips       TripServicer
	activities  ActivityServicer
	travelers   TravelerServicer
	itineraries ItineraryServicer
	export      ExportServicer
	log         *slog.Logger
	now         func() time.Time
}

// NewServer constructs the Server with all its dependencies. A nil logger
// falls back to slog.Default().
func NewServer(
	trips TripServicer,
	activities ActivityServicer,
	travelers TravelerServicer,
	itineraries ItineraryServicer,
	export ExportServicer,
	log *slog.Logger,
) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		trips:       trips,
		activities:  activities,
		travelers:   travelers,
		itineraries: itineraries,
		export:      export,
		log:         log,
		now:         time.Now,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, nil, nil)
}

// Routes returns a chi router with every API endpoint registered.
// Cross-cutting middleware (request IDs, logging, CORS, body limits) is
// applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/durations", s.GetDurations)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)

			r.Post("/activities", s.CreateActivity)
			r.Get("/activities", s.ListActivities)
			r.Get("/activities/{activityID}", s.GetActivity)
			r.Put("/activities/{activityID}", s.UpdateActivity)
			r.Delete("/activities/{activityID}", s.DeleteActivity)

			r.Post("/travelers", s.AddTraveler)
			r.Get("/travelers", s.ListTravelers)
			r.Delete("/travelers/{slug}", s.RemoveTraveler)

			r.Get("/itinerary", s.GetItinerary)
			r.Get("/itinerary.ics", s.GetItineraryCalendar)
			r.Get("/export", s.GetExport)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, notFoundBody("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed"))
	})
	return r
}
