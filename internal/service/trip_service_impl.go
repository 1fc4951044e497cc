package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/connorhpbrn/findtravel/internal/domain"
	"github.com/connorhpbrn/findtravel/internal/export"
	"github.com/connorhpbrn/findtravel/internal/repository"
	"github.com/google/uuid"
)

type tripService struct {
	trips repository.TripRepo
	now   func() time.Time
}

// NewTripService creates a TripService backed by the given repository.
func NewTripService(trips repository.TripRepo) TripService {
	return &tripService{trips: trips, now: time.Now}
}

func (s *tripService) Save(ctx context.Context, dest domain.Destination, travelStyle string, plan domain.TripPlan, answers domain.Answers) (*domain.SavedTrip, error) {
	trip := &domain.SavedTrip{
		ID:          uuid.NewString(),
		Destination: dest,
		TravelStyle: travelStyle,
		Plan:        plan,
		Answers:     answers,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.trips.Upsert(ctx, trip); err != nil {
		return nil, fmt.Errorf("saving trip: %w", err)
	}
	return trip, nil
}

func (s *tripService) List(ctx context.Context) ([]*domain.SavedTrip, error) {
	return s.trips.List(ctx)
}

func (s *tripService) Get(ctx context.Context, id string) (*domain.SavedTrip, error) {
	return s.resolve(ctx, id)
}

// resolve accepts either a full id or the shortened prefix the list
// view prints.
func (s *tripService) resolve(ctx context.Context, id string) (*domain.SavedTrip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if errors.Is(err, repository.ErrTripNotFound) {
		return s.trips.GetByPrefix(ctx, id)
	}
	return trip, err
}

func (s *tripService) Delete(ctx context.Context, id string) error {
	return s.trips.Delete(ctx, id)
}

func (s *tripService) Export(ctx context.Context, id, dir string) (string, error) {
	trip, err := s.resolve(ctx, id)
	if err != nil {
		return "", err
	}

	doc := export.RenderMarkdown(trip)
	name := export.Slugify(trip.Destination.Name) + ".md"
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	return path, nil
}
