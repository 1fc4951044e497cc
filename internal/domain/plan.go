package domain

// DayPlan is one entry in a trip's day-by-day sequence.
type DayPlan struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Lodging is a neighborhood suggestion for where to stay.
type Lodging struct {
	Neighborhood string `json:"neighborhood"`
	Description  string `json:"description"`
}

// BudgetOverview holds free-form display amounts such as "$80-120/night".
// The fields are never parsed as numbers.
type BudgetOverview struct {
	Accommodation string `json:"accommodation"`
	Food          string `json:"food"`
	Activities    string `json:"activities"`
	Transport     string `json:"transport"`
	Total         string `json:"total"`
}

// TripPlan is a full generated itinerary for a single destination.
type TripPlan struct {
	Overview       string         `json:"overview"`
	DayByDay       []DayPlan      `json:"dayByDay"`
	FoodHighlights []string       `json:"foodHighlights"`
	ThingsToDo     []string       `json:"thingsToDo"`
	WhereToStay    []Lodging      `json:"whereToStay"`
	GettingAround  string         `json:"gettingAround"`
	WhatToPack     []string       `json:"whatToPack"`
	BudgetOverview BudgetOverview `json:"budgetOverview"`
}
