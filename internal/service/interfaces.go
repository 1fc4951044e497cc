package service

import (
	"context"

	"github.com/connorhpbrn/findtravel/internal/domain"
)

// TripService manages the traveler's library of saved trips.
type TripService interface {
	// Save assembles a SavedTrip from a generation result, assigns it an
	// id and creation time, and persists it.
	Save(ctx context.Context, dest domain.Destination, travelStyle string, plan domain.TripPlan, answers domain.Answers) (*domain.SavedTrip, error)

	// List returns all saved trips, newest first.
	List(ctx context.Context) ([]*domain.SavedTrip, error)

	// Get returns one saved trip by id.
	Get(ctx context.Context, id string) (*domain.SavedTrip, error)

	// Delete removes a saved trip. Unknown ids are a no-op.
	Delete(ctx context.Context, id string) error

	// Export renders a saved trip to a Markdown document in dir and
	// returns the written file's path.
	Export(ctx context.Context, id, dir string) (string, error)
}
