package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary/backend/internal/domain"
	"github.com/pkordes/itinerary/backend/internal/repo"
)

// TravelerService implements business logic for a trip's traveler roster.
// Its primary responsibility is slug normalization: traveler identity is
// determined by slug, which is always lowercase and hyphenated, and is the
// value activities store and the itinerary filter matches on.
type TravelerService struct {
	trips     repo.TripRepo
	travelers repo.TravelerRepo
}

// NewTravelerService constructs a TravelerService backed by the provided repos.
func NewTravelerService(trips repo.TripRepo, travelers repo.TravelerRepo) *TravelerService {
	return &TravelerService{trips: trips, travelers: travelers}
}

// Add puts name on the roster of tripID. Adding a name whose slug is already
// present returns the existing traveler.
// Returns domain.ErrNotFound if the trip does not exist, domain.ErrValidation
// if name has no letters or digits.
func (s *TravelerService) Add(ctx context.Context, tripID uuid.UUID, name string) (domain.Traveler, error) {
	slug := Slugify(name)
	if slug == "" {
		return domain.Traveler{}, fmt.Errorf("service.TravelerService.Add: %w: name must contain a letter or digit", domain.ErrValidation)
	}
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Traveler{}, fmt.Errorf("service.TravelerService.Add: %w", err)
	}
	t, err := s.travelers.Upsert(ctx, tripID, name, slug)
	if err != nil {
		return domain.Traveler{}, fmt.Errorf("service.TravelerService.Add: %w", err)
	}
	return t, nil
}

// List returns the roster of tripID ordered by slug, never nil.
func (s *TravelerService) List(ctx context.Context, tripID uuid.UUID) ([]domain.Traveler, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.TravelerService.List: %w", err)
	}
	result, err := s.travelers.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TravelerService.List: %w", err)
	}
	if result == nil {
		result = []domain.Traveler{}
	}
	return result, nil
}

// Remove takes a traveler off the roster. The slug is normalized first, so
// "Aunt May" and "aunt-may" address the same traveler. Activities keep the
// slug in their traveler lists.
func (s *TravelerService) Remove(ctx context.Context, tripID uuid.UUID, slug string) error {
	if err := s.travelers.Remove(ctx, tripID, Slugify(slug)); err != nil {
		return fmt.Errorf("service.TravelerService.Remove: %w", err)
	}
	return nil
}
