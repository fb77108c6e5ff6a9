package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/itinerary/backend/internal/domain"
)

// TravelerRepo defines the persistence operations for a trip's roster.
type TravelerRepo interface {
	// Upsert inserts a traveler by (trip, slug), or returns the existing one if
	// the slug is already on the roster. The first name supplied is kept.
	Upsert(ctx context.Context, tripID uuid.UUID, name, slug string) (domain.Traveler, error)

	// ListByTrip returns the roster of a trip ordered by slug.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Traveler, error)

	// Remove deletes a traveler from the roster by slug.
	// Returns domain.ErrNotFound if the slug is not on the roster.
	Remove(ctx context.Context, tripID uuid.UUID, slug string) error
}

// pgTravelerRepo is the Postgres implementation of TravelerRepo.
type pgTravelerRepo struct {
	db db
}

// NewTravelerRepo constructs a TravelerRepo backed by the provided db connection.
func NewTravelerRepo(db db) TravelerRepo {
	return &pgTravelerRepo{db: db}
}

// Upsert inserts a traveler or returns the existing row on slug conflict.
// The DO UPDATE SET trick forces the RETURNING clause to fire even when
// the conflict handler skips the insert; without it, RETURNING returns
// nothing on DO NOTHING conflicts.
func (r *pgTravelerRepo) Upsert(ctx context.Context, tripID uuid.UUID, name, slug string) (domain.Traveler, error) {
	const q = `
		INSERT INTO travelers (trip_id, name, slug)
		VALUES (@trip_id, @name, @slug)
		ON CONFLICT (trip_id, slug) DO UPDATE SET slug = EXCLUDED.slug
		RETURNING id, trip_id, name, slug, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID, "name": name, "slug": slug})
	result, err := scanTraveler(row)
	if err != nil {
		return domain.Traveler{}, fmt.Errorf("repo.TravelerRepo.Upsert: %w", err)
	}
	return result, nil
}

// ListByTrip returns every traveler on the trip, ordered by slug.
func (r *pgTravelerRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Traveler, error) {
	const q = `
		SELECT id, trip_id, name, slug, created_at
		FROM travelers
		WHERE trip_id = @trip_id
		ORDER BY slug`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.TravelerRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	travelers := []domain.Traveler{}
	for rows.Next() {
		tr, err := scanTraveler(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TravelerRepo.ListByTrip: scan: %w", err)
		}
		travelers = append(travelers, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TravelerRepo.ListByTrip: rows: %w", err)
	}
	return travelers, nil
}

// Remove deletes a traveler from a trip's roster. Activities keep the slug in
// their traveler_ids; the roster only drives the filter options.
func (r *pgTravelerRepo) Remove(ctx context.Context, tripID uuid.UUID, slug string) error {
	const q = `DELETE FROM travelers WHERE trip_id = @trip_id AND slug = @slug`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_id": tripID, "slug": slug})
	if err != nil {
		return fmt.Errorf("repo.TravelerRepo.Remove: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TravelerRepo.Remove: %w", domain.ErrNotFound)
	}
	return nil
}

// scanTraveler maps a single database row into a domain.Traveler.
func scanTraveler(s scanner) (domain.Traveler, error) {
	var (
		t      domain.Traveler
		id     pgtype.UUID
		tripID pgtype.UUID
	)
	err := s.Scan(&id, &tripID, &t.Name, &t.Slug, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Traveler{}, domain.ErrNotFound
		}
		return domain.Traveler{}, err
	}
	t.ID = uuid.UUID(id.Bytes)
	t.TripID = uuid.UUID(tripID.Bytes)
	return t, nil
}
