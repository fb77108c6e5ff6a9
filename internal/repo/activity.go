package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/itinerary/backend/internal/domain"
)

// ActivityRepo defines the persistence operations for Activities.
// All write and single-read operations are scoped by tripID to enforce ownership.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record.
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)

	// GetByID retrieves a single activity, scoped to the given tripID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, id uuid.UUID) (domain.Activity, error)

	// ListByTripID returns all activities of a trip ordered by primary instant.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)

	// Update overwrites the mutable fields of an activity, scoped to a.TripID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that trip.
	Update(ctx context.Context, a domain.Activity) (domain.Activity, error)

	// Delete removes an activity, scoped to the given tripID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that trip.
	Delete(ctx context.Context, tripID, id uuid.UUID) error
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

// activityColumns is the column list every activity query returns, in
// scanActivity order.
const activityColumns = `id, trip_id, kind, primary_at, primary_offset, secondary_at, secondary_offset,
		created_by, traveler_ids, payload, created_at, updated_at`

func (r *pgActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	const q = `
		INSERT INTO activities (trip_id, kind, primary_at, primary_offset, secondary_at,
		                        secondary_offset, created_by, traveler_ids, payload)
		VALUES (@trip_id, @kind, @primary_at, @primary_offset, @secondary_at,
		        @secondary_offset, @created_by, @traveler_ids, @payload)
		RETURNING ` + activityColumns

	args, err := activityArgs(a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}

	result, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) GetByID(ctx context.Context, tripID, id uuid.UUID) (domain.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities WHERE trip_id = @trip_id AND id = @id`

	result, err := scanActivity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID, "id": id}))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE trip_id = @trip_id
		ORDER BY primary_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: rows: %w", err)
	}
	return activities, nil
}

func (r *pgActivityRepo) Update(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	const q = `
		UPDATE activities
		SET kind             = @kind,
		    primary_at       = @primary_at,
		    primary_offset   = @primary_offset,
		    secondary_at     = @secondary_at,
		    secondary_offset = @secondary_offset,
		    traveler_ids     = @traveler_ids,
		    payload          = @payload,
		    updated_at       = now()
		WHERE trip_id = @trip_id AND id = @id
		RETURNING ` + activityColumns

	id, err := uuid.Parse(a.ID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", domain.ErrNotFound)
	}
	args, err := activityArgs(a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	args["id"] = id

	result, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, tripID, id uuid.UUID) error {
	const q = `DELETE FROM activities WHERE trip_id = @trip_id AND id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_id": tripID, "id": id})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// activityArgs maps the writable fields of a onto named query arguments.
// Each instant is split into its absolute time and UTC offset.
func activityArgs(a domain.Activity) (pgx.NamedArgs, error) {
	payload := []byte(`{}`)
	if a.Payload != nil {
		b, err := json.Marshal(a.Payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		payload = b
	}

	travelers := a.TravelerIDs
	if travelers == nil {
		travelers = []string{}
	}

	args := pgx.NamedArgs{
		"trip_id":          a.TripID,
		"kind":             string(a.Kind),
		"primary_at":       a.Primary,
		"primary_offset":   offsetOf(a.Primary),
		"secondary_at":     nil,
		"secondary_offset": nil,
		"created_by":       a.CreatedBy,
		"traveler_ids":     travelers,
		"payload":          payload,
	}
	if a.Secondary != nil {
		args["secondary_at"] = *a.Secondary
		args["secondary_offset"] = offsetOf(*a.Secondary)
	}
	return args, nil
}

// scanActivity maps a single database row into a domain.Activity, restoring
// each instant in the fixed zone it was written with.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a               domain.Activity
		id, tripID      pgtype.UUID
		kind            string
		primaryOffset   int32
		secondaryAt     pgtype.Timestamptz
		secondaryOffset pgtype.Int4
		payload         []byte
	)

	err := s.Scan(&id, &tripID, &kind, &a.Primary, &primaryOffset, &secondaryAt, &secondaryOffset,
		&a.CreatedBy, &a.TravelerIDs, &payload, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}

	a.ID = uuid.UUID(id.Bytes).String()
	a.TripID = uuid.UUID(tripID.Bytes)
	a.Kind, err = domain.ParseKind(kind)
	if err != nil {
		return domain.Activity{}, err
	}
	a.Primary = a.Primary.In(zoneOf(primaryOffset))
	if secondaryAt.Valid {
		off := primaryOffset
		if secondaryOffset.Valid {
			off = secondaryOffset.Int32
		}
		sec := secondaryAt.Time.In(zoneOf(off))
		a.Secondary = &sec
	}
	a.Payload, err = domain.DecodePayload(a.Kind, payload)
	if err != nil {
		return domain.Activity{}, err
	}
	return a, nil
}

func offsetOf(t time.Time) int {
	_, off := t.Zone()
	return off
}

func zoneOf(offset int32) *time.Location {
	if offset == 0 {
		return time.UTC
	}
	return time.FixedZone("", int(offset))
}
