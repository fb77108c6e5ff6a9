package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary/backend/internal/domain"
	"github.com/pkordes/itinerary/backend/internal/repo"
	"github.com/pkordes/itinerary/backend/testutil"
)

// newTestTravelerRepo returns a TravelerRepo and a parent trip sharing one
// rolled-back transaction.
func newTestTravelerRepo(t *testing.T) (repo.TravelerRepo, domain.Trip) {
	t.Helper()
	tx := testutil.NewTx(t)

	trip, err := repo.NewTripRepo(tx).Create(context.Background(), tripFixture())
	require.NoError(t, err, "create parent trip")

	return repo.NewTravelerRepo(tx), trip
}

func TestTravelerRepo_Upsert_Create(t *testing.T) {
	r, trip := newTestTravelerRepo(t)

	got, err := r.Upsert(context.Background(), trip.ID, "Ana Lúcia", "ana-lucia")

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, "Ana Lúcia", got.Name)
	assert.Equal(t, "ana-lucia", got.Slug)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestTravelerRepo_Upsert_IdempotentBySlug(t *testing.T) {
	r, trip := newTestTravelerRepo(t)
	ctx := context.Background()

	first, err := r.Upsert(ctx, trip.ID, "bob", "bob")
	require.NoError(t, err)

	// Different display name, same slug: must return the original row.
	second, err := r.Upsert(ctx, trip.ID, "Bob", "bob")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same slug must return same traveler")
	assert.Equal(t, "bob", second.Name, "name should be the original, not the new casing")
}

func TestTravelerRepo_ListByTrip(t *testing.T) {
	r, trip := newTestTravelerRepo(t)
	ctx := context.Background()

	for _, slug := range []string{"carol", "alice", "bob"} {
		_, err := r.Upsert(ctx, trip.ID, slug, slug)
		require.NoError(t, err)
	}

	got, err := r.ListByTrip(ctx, trip.ID)

	require.NoError(t, err)
	var slugs []string
	for _, tr := range got {
		slugs = append(slugs, tr.Slug)
	}
	assert.Equal(t, []string{"alice", "bob", "carol"}, slugs)
}

func TestTravelerRepo_Remove(t *testing.T) {
	r, trip := newTestTravelerRepo(t)
	ctx := context.Background()

	_, err := r.Upsert(ctx, trip.ID, "Alice", "alice")
	require.NoError(t, err)

	require.NoError(t, r.Remove(ctx, trip.ID, "alice"))

	err = r.Remove(ctx, trip.ID, "alice")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
