package advisor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/connorhpbrn/findtravel/internal/domain"
	"github.com/connorhpbrn/findtravel/internal/llm"
)

// Service generates travel-style descriptions, destination shortlists,
// and itineraries from a traveler's questionnaire answers. Each
// operation is one independent prompt/completion/decode cycle.
type Service interface {
	// GenerateTravelStyle returns the one-sentence travel-style line.
	GenerateTravelStyle(ctx context.Context, answers domain.Answers) (string, error)

	// GenerateDestinations returns the recommended destinations with
	// image URLs attached in list order.
	GenerateDestinations(ctx context.Context, answers domain.Answers) ([]domain.Destination, error)

	// GenerateTripPlan returns a full itinerary for the chosen
	// destination. Plans are cached by destination id for the life of
	// the process, so re-requesting the same destination is free.
	GenerateTripPlan(ctx context.Context, answers domain.Answers, dest domain.Destination) (*domain.TripPlan, error)
}

type service struct {
	client llm.Client
	now    func() time.Time

	mu        sync.Mutex
	planCache map[string]*domain.TripPlan
}

// NewService creates an advisor Service backed by a completion client.
func NewService(client llm.Client) Service {
	return &service{
		client:    client,
		now:       time.Now,
		planCache: make(map[string]*domain.TripPlan),
	}
}

func (s *service) GenerateTravelStyle(ctx context.Context, answers domain.Answers) (string, error) {
	answers = answers.Normalized()

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskTravelStyle,
		SystemPrompt: SystemPrompt,
		UserPrompt:   BuildTravelStylePrompt(answers),
	})
	if err != nil {
		return "", fmt.Errorf("generating travel style: %w", err)
	}

	parsed, err := llm.ExtractJSON[travelStyleResponse](resp.Text, validateTravelStyle)
	if err != nil {
		return "", fmt.Errorf("decoding travel style: %w", err)
	}
	return parsed.TravelStyle, nil
}

func (s *service) GenerateDestinations(ctx context.Context, answers domain.Answers) ([]domain.Destination, error) {
	answers = answers.Normalized()

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskDestinations,
		SystemPrompt: SystemPrompt,
		UserPrompt:   BuildDestinationsPrompt(answers, s.now()),
	})
	if err != nil {
		return nil, fmt.Errorf("generating destinations: %w", err)
	}

	parsed, err := llm.ExtractJSON[destinationsResponse](resp.Text, validateDestinations)
	if err != nil {
		return nil, fmt.Errorf("decoding destinations: %w", err)
	}

	dests := parsed.Destinations
	for i := range dests {
		dests[i].ImageURL = ResolveImage(dests[i].Name, i)
	}
	return dests, nil
}

func (s *service) GenerateTripPlan(ctx context.Context, answers domain.Answers, dest domain.Destination) (*domain.TripPlan, error) {
	s.mu.Lock()
	if cached, ok := s.planCache[dest.ID]; ok && dest.ID != "" {
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	answers = answers.Normalized()

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskTripPlan,
		SystemPrompt: SystemPrompt,
		UserPrompt:   BuildTripPlanPrompt(answers, dest, s.now()),
	})
	if err != nil {
		return nil, fmt.Errorf("generating trip plan for %s: %w", dest.Name, err)
	}

	plan, err := llm.ExtractJSON[domain.TripPlan](resp.Text, validateTripPlan)
	if err != nil {
		return nil, fmt.Errorf("decoding trip plan for %s: %w", dest.Name, err)
	}

	if dest.ID != "" {
		s.mu.Lock()
		s.planCache[dest.ID] = &plan
		s.mu.Unlock()
	}
	return &plan, nil
}

// ProfileResult carries the joined output of the two profile-stage
// generations that run concurrently after the questionnaire.
type ProfileResult struct {
	TravelStyle  string
	Destinations []domain.Destination
}

// GenerateProfile fans out the travel-style and destinations requests
// concurrently and waits for both. The two branches share nothing but
// the answers passed in; the first error wins.
func GenerateProfile(ctx context.Context, svc Service, answers domain.Answers) (*ProfileResult, error) {
	var (
		wg       sync.WaitGroup
		style    string
		dests    []domain.Destination
		styleErr error
		destsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		style, styleErr = svc.GenerateTravelStyle(ctx, answers)
	}()
	go func() {
		defer wg.Done()
		dests, destsErr = svc.GenerateDestinations(ctx, answers)
	}()
	wg.Wait()

	if styleErr != nil {
		return nil, styleErr
	}
	if destsErr != nil {
		return nil, destsErr
	}
	return &ProfileResult{TravelStyle: style, Destinations: dests}, nil
}
