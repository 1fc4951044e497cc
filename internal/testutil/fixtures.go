package testutil

import (
	"fmt"
	"time"

	"github.com/connorhpbrn/findtravel/internal/domain"
	"github.com/google/uuid"
)

// NewTestAnswers returns a fully populated questionnaire result.
func NewTestAnswers() domain.Answers {
	return domain.Answers{
		Origin:         "Portland, Oregon",
		Duration:       "Five to seven days",
		Timing:         "This fall",
		Travelers:      "Couple",
		GroupSize:      2,
		Budget:         "4000",
		BudgetPriority: "Food",
		Accommodation:  []string{"Boutique hotel"},
		Pace:           "Balanced",
		PerfectMorning: "A long breakfast somewhere quiet",
		LovedTrips:     "Oaxaca",
		DislikedTrips:  "Cruise ports",
		Interests:      []string{"Food", "Markets", "Walking"},
		FoodStyle:      []string{"Street food", "Local institutions"},
		TravelStyle:    []string{"Slow travel"},
		TravelVibe:     "Warm and unhurried",
		Personality:    &domain.Personality{PlannedVsSpontaneous: 65, ComfortVsAuthenticity: 70, FamousVsHidden: 55},
		Avoidances:     []string{"Nightlife districts"},
		TripRuiners:    []string{"Packed schedules"},
		DietaryNeeds:   "",
		MustIncludes:   "One great bakery",
		Intention:      "Restored",
	}
}

// NewTestDestination returns a destination with the given name and a
// slug derived from it.
func NewTestDestination(name string) domain.Destination {
	return domain.Destination{
		ID:                  fmt.Sprintf("dest-%s", uuid.NewString()[:8]),
		Name:                name,
		Tagline:             "A place worth lingering in",
		WhyItFits:           "Matches the unhurried vibe and the food-first priorities.",
		BestTimeToVisit:     "April-June",
		EstimatedDailySpend: "$120-180",
		FlightTime:          "10-12 hours from Portland",
		ImageURL:            "https://images.unsplash.com/photo-test?w=800&q=80",
	}
}

// NewTestPlan returns a small but complete itinerary.
func NewTestPlan() domain.TripPlan {
	return domain.TripPlan{
		Overview: "A few slow days built around markets and long lunches.",
		DayByDay: []domain.DayPlan{
			{Day: 1, Title: "Arrive and wander", Description: "Drop bags, walk the old town."},
			{Day: 2, Title: "Market morning", Description: "Early market, afternoon out of the heat."},
			{Day: 3, Title: "Day trip", Description: "Train to the coast for the afternoon."},
		},
		FoodHighlights: []string{"Tasting menu at the covered market"},
		ThingsToDo:     []string{"Sunrise viewpoint walk"},
		WhereToStay:    []domain.Lodging{{Neighborhood: "Old Town", Description: "Walkable and quiet at night"}},
		GettingAround:  "Everything central is walkable; use trams for the rest.",
		WhatToPack:     []string{"Layers for cool evenings"},
		BudgetOverview: domain.BudgetOverview{
			Accommodation: "$100-150/night",
			Food:          "$40-60/day",
			Activities:    "$20-40/day",
			Transport:     "$10/day",
			Total:         "$170-260/day",
		},
	}
}

// TripOption customizes a fixture SavedTrip.
type TripOption func(*domain.SavedTrip)

// WithTripID sets an explicit id.
func WithTripID(id string) TripOption {
	return func(t *domain.SavedTrip) { t.ID = id }
}

// WithCreatedAt sets an explicit creation time.
func WithCreatedAt(ts time.Time) TripOption {
	return func(t *domain.SavedTrip) { t.CreatedAt = ts }
}

// NewTestTrip returns a SavedTrip for the given destination name.
func NewTestTrip(destName string, opts ...TripOption) *domain.SavedTrip {
	trip := &domain.SavedTrip{
		ID:          uuid.NewString(),
		Destination: NewTestDestination(destName),
		TravelStyle: "You're a Slow Wanderer — happiest with nowhere to be.",
		Plan:        NewTestPlan(),
		Answers:     NewTestAnswers(),
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(trip)
	}
	return trip
}
