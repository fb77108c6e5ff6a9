package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary/backend/internal/domain"
	"github.com/pkordes/itinerary/backend/internal/repo"
)

// ActivityService implements business logic for Activity operations.
// It depends on TripRepo to verify the parent trip exists before creating
// an activity, which gives callers a clean ErrNotFound rather than a
// foreign-key violation from the database.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create validates and persists a new activity under a.TripID.
// Returns domain.ErrNotFound if the trip does not exist,
// domain.ErrValidation if the activity violates business rules.
func (s *ActivityService) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	if _, err := s.trips.GetByID(ctx, a.TripID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	a.TravelerIDs = normalizeTravelerIDs(a.TravelerIDs)
	if err := validateActivity(a); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	result, err := s.activities.Create(ctx, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single activity scoped to tripID.
func (s *ActivityService) GetByID(ctx context.Context, tripID, id uuid.UUID) (domain.Activity, error) {
	result, err := s.activities.GetByID(ctx, tripID, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns every activity of a trip ordered by primary instant.
// Returns domain.ErrNotFound if the trip does not exist. Always returns a
// non-nil slice on success.
func (s *ActivityService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTripID: %w", err)
	}
	result, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTripID: %w", err)
	}
	if result == nil {
		result = []domain.Activity{}
	}
	return result, nil
}

// Update validates and persists changes to an existing activity.
func (s *ActivityService) Update(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	a.TravelerIDs = normalizeTravelerIDs(a.TravelerIDs)
	if err := validateActivity(a); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	result, err := s.activities.Update(ctx, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an activity scoped to tripID.
func (s *ActivityService) Delete(ctx context.Context, tripID, id uuid.UUID) error {
	if err := s.activities.Delete(ctx, tripID, id); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

// validateActivity enforces the rules shared by Create and Update.
//   - Kind must be one of the known kinds, and the payload must agree with it.
//   - Primary is required; Secondary, when set, must not precede it.
//   - A stay's check-out date must not precede its check-in date, each read
//     in its own offset, so the night count can always be computed.
func validateActivity(a domain.Activity) error {
	if !a.Kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", domain.ErrValidation, a.Kind)
	}
	if a.Payload == nil {
		return fmt.Errorf("%w: payload is required", domain.ErrValidation)
	}
	if a.Payload.Kind() != a.Kind {
		return fmt.Errorf("%w: payload is %s, activity is %s", domain.ErrValidation, a.Payload.Kind(), a.Kind)
	}
	if a.Primary.IsZero() {
		return fmt.Errorf("%w: start is required", domain.ErrValidation)
	}
	if a.Secondary != nil && a.Secondary.Before(a.Primary) {
		return fmt.Errorf("%w: end must not be before start", domain.ErrValidation)
	}
	if a.Kind == domain.KindStay && a.Secondary != nil &&
		domain.CalendarDate(*a.Secondary).Before(domain.CalendarDate(a.Primary)) {
		return fmt.Errorf("%w: check-out date %s is before check-in date %s",
			domain.ErrValidation, domain.KeyOf(*a.Secondary), domain.KeyOf(a.Primary))
	}
	return nil
}

// normalizeTravelerIDs slugifies traveler IDs and drops blanks and duplicates,
// keeping first-seen order.
func normalizeTravelerIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		slug := Slugify(id)
		if slug == "" {
			continue
		}
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		out = append(out, slug)
	}
	return out
}

// Slugify lowercases name and collapses every run of characters other than
// ASCII letters and digits into a single hyphen, trimming hyphens at either end.
// "  Aunt May " becomes "aunt-may".
func Slugify(name string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
