package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary/backend/internal/domain"
	"github.com/pkordes/itinerary/backend/internal/itinerary"
)

// PlanRenderer renders a trip's itinerary. *ItineraryService satisfies it.
type PlanRenderer interface {
	Render(ctx context.Context, tripID uuid.UUID, sel itinerary.Selection) (domain.Trip, itinerary.Plan, error)
}

// ExportService flattens a rendered itinerary into export rows.
type ExportService struct {
	plans PlanRenderer
}

// NewExportService constructs an ExportService backed by the provided renderer.
func NewExportService(plans PlanRenderer) *ExportService {
	return &ExportService{plans: plans}
}

// Export returns one ExportRow per item across the trip's rendered days, in
// day order. In-window days with nothing scheduled contribute one row with
// empty item fields so the export shows the whole trip.
func (s *ExportService) Export(ctx context.Context, tripID uuid.UUID, sel itinerary.Selection) ([]domain.ExportRow, error) {
	_, plan, err := s.plans.Render(ctx, tripID, sel)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	return Rows(plan), nil
}

// Rows flattens plan into export rows. Never returns nil.
func Rows(plan itinerary.Plan) []domain.ExportRow {
	rows := []domain.ExportRow{}
	for _, d := range plan.Days {
		day := domain.ExportRow{
			Date:      d.Date.String(),
			Weekday:   d.Weekday,
			Period:    string(d.Period),
			DayNumber: d.DayNumber,
		}
		if len(d.Items) == 0 {
			rows = append(rows, day)
			continue
		}
		for _, it := range d.Items {
			row := day
			starts := it.Primary
			row.ActivityID = it.ID
			row.Kind = string(it.Kind)
			row.Summary = it.Summary()
			row.StartsAt = &starts
			row.EndsAt = it.Secondary
			row.Duration = plan.Durations[it.ID]
			row.CreatedBy = it.CreatedBy
			row.Travelers = it.TravelerIDs
			rows = append(rows, row)
		}
	}
	return rows
}
