package advisor

import (
	"fmt"

	"github.com/connorhpbrn/findtravel/internal/domain"
)

// travelStyleResponse is the JSON shape expected from the travel-style task.
type travelStyleResponse struct {
	TravelStyle string `json:"travelStyle"`
}

func validateTravelStyle(resp travelStyleResponse) error {
	if resp.TravelStyle == "" {
		return fmt.Errorf("travelStyle field is required")
	}
	return nil
}

// destinationCount is the shortlist size the destinations prompt asks
// for; anything else means the model ignored the instructions.
const destinationCount = 4

// destinationsResponse is the JSON shape expected from the destinations
// task. The entries arrive without image URLs; those are attached by the
// image resolver afterwards.
type destinationsResponse struct {
	Destinations []domain.Destination `json:"destinations"`
}

func validateDestinations(resp destinationsResponse) error {
	if len(resp.Destinations) != destinationCount {
		return fmt.Errorf("expected %d destinations, got %d", destinationCount, len(resp.Destinations))
	}
	for i, d := range resp.Destinations {
		if d.Name == "" {
			return fmt.Errorf("destination %d has no name", i)
		}
	}
	return nil
}

func validateTripPlan(plan domain.TripPlan) error {
	if plan.Overview == "" {
		return fmt.Errorf("overview field is required")
	}
	if len(plan.DayByDay) == 0 {
		return fmt.Errorf("dayByDay list is empty")
	}
	return nil
}
