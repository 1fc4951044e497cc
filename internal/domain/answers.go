package domain

// FlexibleBudget is the sentinel value stored in Answers.Budget when the
// traveler declined to commit to a number.
const FlexibleBudget = "flexible"

// Personality holds the three questionnaire slider values, each on a
// 0-100 scale. 50 means no leaning either way.
type Personality struct {
	PlannedVsSpontaneous  int `json:"plannedVsSpontaneous"`
	ComfortVsAuthenticity int `json:"comfortVsAuthenticity"`
	FamousVsHidden        int `json:"famousVsHidden"`
}

// Clamp returns a copy with every slider forced into [0,100].
func (p Personality) Clamp() Personality {
	return Personality{
		PlannedVsSpontaneous:  clampSlider(p.PlannedVsSpontaneous),
		ComfortVsAuthenticity: clampSlider(p.ComfortVsAuthenticity),
		FamousVsHidden:        clampSlider(p.FamousVsHidden),
	}
}

func clampSlider(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Answers is the flat record of a traveler's questionnaire responses.
// It is assembled once by the questionnaire and never mutated afterwards;
// every consumer treats it as a value.
//
// Budget is either a dollar amount rendered as digits ("3000") or the
// FlexibleBudget sentinel. List fields are either empty or ordered
// sequences of free-form tag strings.
type Answers struct {
	Origin         string       `json:"origin"`
	Duration       string       `json:"duration"`
	Timing         string       `json:"timing"`
	Travelers      string       `json:"travelers"`
	GroupSize      int          `json:"groupSize,omitempty"`
	Budget         string       `json:"budget"`
	BudgetPriority string       `json:"budgetPriority"`
	Accommodation  []string     `json:"accommodation"`
	Pace           string       `json:"pace"`
	PerfectMorning string       `json:"perfectMorning"`
	LovedTrips     string       `json:"lovedTrips"`
	DislikedTrips  string       `json:"dislikedTrips"`
	Interests      []string     `json:"interests"`
	FoodStyle      []string     `json:"foodStyle,omitempty"`
	TravelStyle    []string     `json:"travelStyle"`
	TravelVibe     string       `json:"travelVibe"`
	Personality    *Personality `json:"personality,omitempty"`
	Avoidances     []string     `json:"avoidances"`
	TripRuiners    []string     `json:"tripRuiners"`
	DietaryNeeds   string       `json:"dietaryNeeds"`
	MustIncludes   string       `json:"mustIncludes"`
	Intention      string       `json:"intention"`
}

// Normalized returns a copy with the personality sliders clamped.
func (a Answers) Normalized() Answers {
	if a.Personality != nil {
		p := a.Personality.Clamp()
		a.Personality = &p
	}
	return a
}
