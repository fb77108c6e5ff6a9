package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary/backend/internal/domain"
	"github.com/pkordes/itinerary/backend/internal/itinerary"
	"github.com/pkordes/itinerary/backend/internal/observability"
	"github.com/pkordes/itinerary/backend/internal/repo"
)

// ItineraryService renders a trip's activities into an ordered day plan.
type ItineraryService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
	log        *slog.Logger
	now        func() time.Time
}

// NewItineraryService constructs an ItineraryService. A nil logger falls back
// to slog.Default().
func NewItineraryService(trips repo.TripRepo, activities repo.ActivityRepo, log *slog.Logger) *ItineraryService {
	if log == nil {
		log = slog.Default()
	}
	return &ItineraryService{trips: trips, activities: activities, log: log, now: time.Now}
}

// Render loads the trip and its activities and runs them through the
// itinerary pipeline with sel applied.
// Returns domain.ErrNotFound if the trip does not exist. Pipeline failures
// (domain.ErrInvalidDate, domain.ErrInvalidDuration, domain.ErrConfiguration)
// abort the render; nothing partial is returned.
func (s *ItineraryService) Render(ctx context.Context, tripID uuid.UUID, sel itinerary.Selection) (domain.Trip, itinerary.Plan, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, itinerary.Plan{}, fmt.Errorf("service.ItineraryService.Render: %w", err)
	}

	started := s.now()
	plan, err := s.plan(ctx, trip, sel)
	elapsed := s.now().Sub(started)

	count := itinerary.Summarize(plan.Days)
	observability.RecordBuild(err, elapsed, count.Items)
	if err != nil {
		s.log.ErrorContext(ctx, "itinerary render failed",
			"trip_id", tripID,
			"outcome", observability.Outcome(err),
			"error", err,
		)
		return domain.Trip{}, itinerary.Plan{}, fmt.Errorf("service.ItineraryService.Render: %w", err)
	}

	s.log.DebugContext(ctx, "itinerary rendered",
		"trip_id", tripID,
		"days", count.Days,
		"before", count.Before,
		"during", count.During,
		"after", count.After,
		"items", count.Items,
		"duration_ms", elapsed.Milliseconds(),
	)
	return trip, plan, nil
}

func (s *ItineraryService) plan(ctx context.Context, trip domain.Trip, sel itinerary.Selection) (itinerary.Plan, error) {
	w, err := trip.Window()
	if err != nil {
		return itinerary.Plan{}, err
	}
	records, err := s.activities.ListByTripID(ctx, trip.ID)
	if err != nil {
		return itinerary.Plan{}, err
	}
	return itinerary.NewPlan(records, w, sel)
}
