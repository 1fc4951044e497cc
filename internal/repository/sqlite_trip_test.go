package repository

import (
	"context"
	"testing"
	"time"

	"github.com/connorhpbrn/findtravel/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripRepo_UpsertAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)
	ctx := context.Background()

	trip := testutil.NewTestTrip("Porto, Portugal")
	require.NoError(t, repo.Upsert(ctx, trip))

	fetched, err := repo.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, trip.ID, fetched.ID)
	assert.Equal(t, "Porto, Portugal", fetched.Destination.Name)
	assert.Equal(t, trip.TravelStyle, fetched.TravelStyle)
	assert.Equal(t, trip.Plan, fetched.Plan)
	assert.Equal(t, trip.Answers, fetched.Answers)
	assert.Equal(t, trip.CreatedAt.UTC(), fetched.CreatedAt.UTC())
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestTripRepo_GetByPrefix(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)
	ctx := context.Background()

	trip := testutil.NewTestTrip("Porto, Portugal")
	require.NoError(t, repo.Upsert(ctx, trip))

	fetched, err := repo.GetByPrefix(ctx, trip.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, trip.ID, fetched.ID)
}

func TestTripRepo_GetByPrefix_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)
	ctx := context.Background()

	_, err := repo.GetByPrefix(ctx, "deadbeef")
	assert.ErrorIs(t, err, ErrTripNotFound)

	_, err = repo.GetByPrefix(ctx, "")
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestTripRepo_GetByPrefix_Ambiguous(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestTrip("Porto, Portugal", testutil.WithTripID("abc123-one"))))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestTrip("Kyoto, Japan", testutil.WithTripID("abc123-two"))))

	_, err := repo.GetByPrefix(ctx, "abc123")
	assert.ErrorIs(t, err, ErrAmbiguousTripID)
}

func TestTripRepo_List_NewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)
	ctx := context.Background()

	first := testutil.NewTestTrip("Kyoto, Japan")
	second := testutil.NewTestTrip("Oaxaca, Mexico")
	third := testutil.NewTestTrip("Bergen, Norway")
	require.NoError(t, repo.Upsert(ctx, first))
	require.NoError(t, repo.Upsert(ctx, second))
	require.NoError(t, repo.Upsert(ctx, third))

	trips, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 3)
	assert.Equal(t, third.ID, trips[0].ID)
	assert.Equal(t, second.ID, trips[1].ID)
	assert.Equal(t, first.ID, trips[2].ID)
}

func TestTripRepo_Upsert_ExistingIDReplacesInPlace(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)
	ctx := context.Background()

	a := testutil.NewTestTrip("Kyoto, Japan")
	b := testutil.NewTestTrip("Oaxaca, Mexico")
	require.NoError(t, repo.Upsert(ctx, a))
	require.NoError(t, repo.Upsert(ctx, b))

	// Overwrite the older trip; it must keep its position and the
	// collection must keep its length.
	a.TravelStyle = "You're a Revisionist — you rewrite plans freely."
	require.NoError(t, repo.Upsert(ctx, a))

	trips, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, b.ID, trips[0].ID, "newest trip stays first")
	assert.Equal(t, a.ID, trips[1].ID, "overwritten trip keeps its slot")
	assert.Equal(t, "You're a Revisionist — you rewrite plans freely.", trips[1].TravelStyle)
}

func TestTripRepo_Upsert_NewIDPrepends(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestTrip("Kyoto, Japan")))
	before, err := repo.List(ctx)
	require.NoError(t, err)

	newcomer := testutil.NewTestTrip("Lisbon, Portugal")
	require.NoError(t, repo.Upsert(ctx, newcomer))

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
	assert.Equal(t, newcomer.ID, after[0].ID)
}

func TestTripRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)
	ctx := context.Background()

	trip := testutil.NewTestTrip("Porto, Portugal")
	require.NoError(t, repo.Upsert(ctx, trip))
	require.NoError(t, repo.Delete(ctx, trip.ID))

	_, err := repo.GetByID(ctx, trip.ID)
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestTripRepo_Delete_UnknownIDIsNoOp(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestTrip("Porto, Portugal")))
	require.NoError(t, repo.Delete(ctx, "never-existed"))

	trips, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, trips, 1)
}

func TestTripRepo_List_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)

	trips, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestTripRepo_CreatedAtRoundTripsAsUTC(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTripRepo(db)
	ctx := context.Background()

	ts := time.Date(2026, time.March, 9, 18, 30, 0, 0, time.UTC)
	trip := testutil.NewTestTrip("Porto, Portugal", testutil.WithCreatedAt(ts))
	require.NoError(t, repo.Upsert(ctx, trip))

	fetched, err := repo.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.True(t, ts.Equal(fetched.CreatedAt))
}
