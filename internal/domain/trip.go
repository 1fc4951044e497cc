package domain

import "time"

// SavedTrip wraps a generated result the traveler chose to keep: the
// chosen destination, its itinerary, the travel-style line, and the
// answers that produced them. The ID is system-assigned; trips are only
// ever replaced whole (upsert by ID) or deleted, never partially edited.
type SavedTrip struct {
	ID          string      `json:"id"`
	Destination Destination `json:"destination"`
	TravelStyle string      `json:"travelStyle"`
	Plan        TripPlan    `json:"plan"`
	Answers     Answers     `json:"answers"`
	CreatedAt   time.Time   `json:"createdAt"`
}
