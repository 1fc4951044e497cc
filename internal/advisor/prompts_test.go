package advisor

import (
	"strings"
	"testing"
	"time"

	"github.com/connorhpbrn/findtravel/internal/domain"
	"github.com/stretchr/testify/assert"
)

func fullAnswers() domain.Answers {
	return domain.Answers{
		Origin:         "Berlin, Germany",
		Duration:       "Five to seven days",
		Timing:         "Next spring",
		Travelers:      "Couple",
		GroupSize:      2,
		Budget:         "3000",
		BudgetPriority: "Food",
		Accommodation:  []string{"Boutique hotel", "Guesthouse"},
		Pace:           "Balanced",
		PerfectMorning: "Coffee at a quiet cafe",
		LovedTrips:     "Kyoto in autumn",
		DislikedTrips:  "Crowded beach resorts",
		Interests:      []string{"Food", "Architecture"},
		FoodStyle:      []string{"Street food"},
		TravelStyle:    []string{"Slow travel"},
		TravelVibe:     "Calm and romantic",
		Personality:    &domain.Personality{PlannedVsSpontaneous: 50, ComfortVsAuthenticity: 50, FamousVsHidden: 50},
		Avoidances:     []string{"Extreme heat"},
		TripRuiners:    []string{"Tourist traps"},
		DietaryNeeds:   "Vegetarian",
		MustIncludes:   "A day trip by train",
		Intention:      "Restored",
	}
}

var promptNow = time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

func TestFormatPersonality_Thresholds(t *testing.T) {
	tests := []struct {
		name string
		p    *domain.Personality
		want string
	}{
		{
			name: "all low",
			p:    &domain.Personality{PlannedVsSpontaneous: 25, ComfortVsAuthenticity: 25, FamousVsHidden: 25},
			want: "prefers planned itineraries, prioritizes comfort, wants to see famous landmarks",
		},
		{
			name: "all high",
			p:    &domain.Personality{PlannedVsSpontaneous: 75, ComfortVsAuthenticity: 75, FamousVsHidden: 75},
			want: "loves spontaneous discovery, seeks authentic experiences, prefers hidden gems",
		},
		{
			name: "all centered",
			p:    &domain.Personality{PlannedVsSpontaneous: 50, ComfortVsAuthenticity: 50, FamousVsHidden: 50},
			want: "balanced preferences",
		},
		{
			name: "boundary values stay silent",
			p:    &domain.Personality{PlannedVsSpontaneous: 40, ComfortVsAuthenticity: 60, FamousVsHidden: 41},
			want: "balanced preferences",
		},
		{
			name: "mixed",
			p:    &domain.Personality{PlannedVsSpontaneous: 25, ComfortVsAuthenticity: 50, FamousVsHidden: 75},
			want: "prefers planned itineraries, prefers hidden gems",
		},
		{
			name: "nil personality",
			p:    nil,
			want: "Balanced preferences",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPersonality(tt.p))
		})
	}
}

func TestFormatPersonality_LowNeverEmitsOpposite(t *testing.T) {
	p := &domain.Personality{PlannedVsSpontaneous: 25, ComfortVsAuthenticity: 50, FamousVsHidden: 50}
	got := FormatPersonality(p)
	assert.Contains(t, got, "prefers planned itineraries")
	assert.NotContains(t, got, "spontaneous")
}

func TestFormatPersonality_AtMostThreePhrases(t *testing.T) {
	for _, v := range []int{0, 25, 39, 40, 50, 60, 61, 75, 100} {
		p := &domain.Personality{PlannedVsSpontaneous: v, ComfortVsAuthenticity: v, FamousVsHidden: v}
		phrases := strings.Split(FormatPersonality(p), ", ")
		assert.LessOrEqual(t, len(phrases), 3, "slider value %d", v)
	}
}

func TestDayCount(t *testing.T) {
	tests := map[string]int{
		"A weekend":          3,
		"Five to seven days": 6,
		"One to two weeks":   10,
		"Longer":             14,
		"Three days or so":   4,
		"":                   4,
	}
	for duration, want := range tests {
		assert.Equal(t, want, DayCount(duration), "duration %q", duration)
	}
}

func TestBuildTravelStylePrompt_FullProfile(t *testing.T) {
	got := BuildTravelStylePrompt(fullAnswers())

	assert.Contains(t, got, "**Origin**: Berlin, Germany")
	assert.Contains(t, got, "**Travelers**: Couple (2 people)")
	assert.Contains(t, got, "**Budget**: $3000 total budget")
	assert.Contains(t, got, "**Accommodation Preferences**: Boutique hotel, Guesthouse")
	assert.Contains(t, got, "**Personality Traits**: balanced preferences")
	assert.Contains(t, got, `"travelStyle"`)
}

func TestBuildTravelStylePrompt_EmptyOptionalsNeverPanic(t *testing.T) {
	// Only the always-asked fields set; every optional absent.
	a := domain.Answers{
		Origin:    "Lisbon",
		Duration:  "A weekend",
		Timing:    "Flexible",
		Travelers: "Solo",
		Budget:    domain.FlexibleBudget,
		Pace:      "Balanced",
		Intention: "Inspired",
	}

	got := BuildTravelStylePrompt(a)
	assert.Contains(t, got, "Flexible budget")
	assert.Contains(t, got, "**Budget Priority**: No specific priority")
	assert.Contains(t, got, "**Accommodation Preferences**: No preference")
	assert.Contains(t, got, "**Travel Vibe**: Not specified")
	assert.Contains(t, got, "**Things to Avoid**: None specified")
	assert.Contains(t, got, "**Personality Traits**: Balanced preferences")
}

func TestBuildDestinationsPrompt_CriteriaAndDate(t *testing.T) {
	got := BuildDestinationsPrompt(fullAnswers(), promptNow)

	assert.Contains(t, got, "## Current Date: August 2026")
	assert.Contains(t, got, "recommend 4 destinations")
	assert.Contains(t, got, "Recommend exactly 4 destinations")
	assert.Contains(t, got, "The destination should help them feel restored.")
	assert.Contains(t, got, "flight time from Berlin, Germany")
	assert.Contains(t, got, "prioritize spending on Food")
	assert.Contains(t, got, `"destinations"`)
	assert.NotContains(t, got, "imageUrl", "images are resolved locally, never requested from the model")
}

func TestBuildTripPlanPrompt_DayCountAndPace(t *testing.T) {
	dest := domain.Destination{Name: "Porto, Portugal", Tagline: "Slow rivers, slow wine"}

	a := fullAnswers()
	a.Duration = "A weekend"
	a.Pace = "Slow and relaxed"

	got := BuildTripPlanPrompt(a, dest, promptNow)
	assert.Contains(t, got, "Create a detailed trip plan for Porto, Portugal")
	assert.Contains(t, got, "(plan for 3 days)")
	assert.Contains(t, got, "Plan for a slow and relaxed pace.")
	assert.Contains(t, got, "plenty of downtime")
	assert.Contains(t, got, "Slow rivers, slow wine")
}

func TestBuildTripPlanPrompt_UnrecognizedPaceGetsBalancedGuideline(t *testing.T) {
	a := fullAnswers()
	a.Pace = "Whatever happens"

	got := BuildTripPlanPrompt(a, domain.Destination{Name: "Oslo"}, promptNow)
	assert.Contains(t, got, "Balance activities with rest.")
}

func TestBuildTripPlanPrompt_EnergeticPace(t *testing.T) {
	a := fullAnswers()
	a.Pace = "Full and energetic"

	got := BuildTripPlanPrompt(a, domain.Destination{Name: "Seoul"}, promptNow)
	assert.Contains(t, got, "Pack in experiences")
}

func TestSystemPromptSharedAcrossTasks(t *testing.T) {
	// The system prompt is a single constant; the per-task prompts must
	// not restate persona or output-contract rules.
	assert.Contains(t, SystemPrompt, "You are Fara")
	assert.Contains(t, SystemPrompt, "No emojis")
	for _, user := range []string{
		BuildTravelStylePrompt(fullAnswers()),
		BuildDestinationsPrompt(fullAnswers(), promptNow),
		BuildTripPlanPrompt(fullAnswers(), domain.Destination{Name: "Kyoto, Japan"}, promptNow),
	} {
		assert.NotContains(t, user, "You are Fara")
	}
}

// End-to-end prompt property: flexible budget plus a weekend duration.
func TestPrompts_FlexibleWeekendScenario(t *testing.T) {
	a := fullAnswers()
	a.Budget = domain.FlexibleBudget
	a.Duration = "A weekend"

	style := BuildTravelStylePrompt(a)
	assert.Contains(t, style, "Flexible budget")

	plan := BuildTripPlanPrompt(a, domain.Destination{Name: "Ghent"}, promptNow)
	assert.Contains(t, plan, "(plan for 3 days)")
}
