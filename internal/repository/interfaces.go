package repository

import (
	"context"

	"github.com/connorhpbrn/findtravel/internal/domain"
)

// TripRepo is the persistence boundary for saved trips. Implementations
// keep the collection ordered newest-first: upserting a new id prepends,
// upserting an existing id overwrites in place.
type TripRepo interface {
	// List returns all saved trips, newest first.
	List(ctx context.Context) ([]*domain.SavedTrip, error)

	// GetByID returns the trip with the given id, or ErrTripNotFound.
	GetByID(ctx context.Context, id string) (*domain.SavedTrip, error)

	// GetByPrefix returns the single trip whose id starts with prefix,
	// ErrTripNotFound when none does, or ErrAmbiguousTripID when more
	// than one does.
	GetByPrefix(ctx context.Context, prefix string) (*domain.SavedTrip, error)

	// Upsert inserts the trip at the front of the collection when its id
	// is new, otherwise replaces the stored trip without moving it.
	Upsert(ctx context.Context, trip *domain.SavedTrip) error

	// Delete removes the trip with the given id. Deleting an unknown id
	// is a no-op.
	Delete(ctx context.Context, id string) error
}
