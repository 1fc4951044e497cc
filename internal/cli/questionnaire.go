package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/connorhpbrn/findtravel/internal/domain"
)

// questionnaire holds the raw form state before it is assembled into a
// domain.Answers value. Numeric fields stay strings until assembly so
// huh inputs can bind to them directly.
type questionnaire struct {
	origin         string
	duration       string
	timing         string
	travelers      string
	groupSize      string
	budget         string
	budgetPriority string
	accommodation  []string
	pace           string
	perfectMorning string
	lovedTrips     string
	dislikedTrips  string
	interests      []string
	foodStyle      []string
	travelStyle    []string
	travelVibe     string
	planned        int
	comfort        int
	famous         int
	avoidances     []string
	tripRuiners    []string
	dietaryNeeds   string
	mustIncludes   string
	intention      string
}

func newQuestionnaire() *questionnaire {
	// Sliders start centered.
	return &questionnaire{planned: 50, comfort: 50, famous: 50}
}

// groupSizeNeeded reports whether the party type implies more than two
// people, which is when the group-size question appears.
func (q *questionnaire) groupSizeNeeded() bool {
	return q.travelers == "Family" || q.travelers == "Group of friends"
}

// foodStyleNeeded reports whether the food-style question applies.
func (q *questionnaire) foodStyleNeeded() bool {
	for _, interest := range q.interests {
		if interest == "Great food" {
			return true
		}
	}
	return false
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("this one is required")
	}
	return nil
}

// validateOptionalInt accepts blank or a positive integer.
func validateOptionalInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

// validateBudget accepts blank (flexible) or a positive dollar amount.
func validateBudget(s string) error {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" || strings.EqualFold(s, domain.FlexibleBudget) {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a dollar amount, or leave blank for flexible")
	}
	return nil
}

// sliderOptions renders a five-stop scale between two pole labels.
func sliderOptions(left, right string) []huh.Option[int] {
	return []huh.Option[int]{
		huh.NewOption("Strongly "+strings.ToLower(left), 10),
		huh.NewOption("Leaning "+strings.ToLower(left), 30),
		huh.NewOption("A bit of both", 50),
		huh.NewOption("Leaning "+strings.ToLower(right), 70),
		huh.NewOption("Strongly "+strings.ToLower(right), 90),
	}
}

// form builds the full questionnaire as one themed multi-group form.
func (q *questionnaire) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Where are you starting from?").
				Placeholder("City, Country").
				Value(&q.origin).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("How long do you want to be away?").
				Options(huh.NewOptions(
					"A weekend",
					"Three to four days",
					"Five to seven days",
					"One to two weeks",
					"Longer",
				)...).
				Value(&q.duration),
			huh.NewSelect[string]().
				Title("When would you go?").
				Options(huh.NewOptions(
					"Within a month",
					"One to three months out",
					"Three to six months out",
					"Sometime next year",
					"Completely flexible",
				)...).
				Value(&q.timing),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Who's coming along?").
				Options(huh.NewOptions(
					"Solo",
					"Couple",
					"Family",
					"Group of friends",
				)...).
				Value(&q.travelers),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("How many people in total?").
				Placeholder("4").
				Value(&q.groupSize).
				Validate(validateOptionalInt),
		).WithHideFunc(func() bool { return !q.groupSizeNeeded() }),
		huh.NewGroup(
			huh.NewInput().
				Title("What's your total budget?").
				Description("In dollars for the whole trip. Leave blank if it's flexible.").
				Placeholder("3000").
				Value(&q.budget).
				Validate(validateBudget),
			huh.NewSelect[string]().
				Title("Where would you rather splurge?").
				Options(huh.NewOptions(
					"Accommodation",
					"Food",
					"Activities",
					"Getting there in comfort",
				)...).
				Value(&q.budgetPriority),
			huh.NewMultiSelect[string]().
				Title("Where do you like to stay?").
				Options(huh.NewOptions(
					"Boutique hotel",
					"Resort",
					"Apartment rental",
					"Guesthouse",
					"Hostel",
					"Somewhere unique",
				)...).
				Value(&q.accommodation),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What pace feels right?").
				Options(huh.NewOptions(
					"Slow and relaxed",
					"Balanced",
					"Full and energetic",
				)...).
				Value(&q.pace),
			huh.NewInput().
				Title("It's 10 AM on day two. What are you doing?").
				Placeholder("Reading in a cafe, already on a trail, sleeping in...").
				Value(&q.perfectMorning),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Tell me about a trip you loved.").
				Placeholder("What made it special?").
				Value(&q.lovedTrips),
			huh.NewText().
				Title("And one that disappointed you?").
				Placeholder("What went wrong?").
				Value(&q.dislikedTrips),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("What pulls you to a place?").
				Options(huh.NewOptions(
					"Great food",
					"Art and museums",
					"History",
					"Nature and hiking",
					"Beaches",
					"Nightlife",
					"Architecture",
					"Markets and shopping",
					"Wellness",
				)...).
				Value(&q.interests),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("How do you like to eat when you travel?").
				Options(huh.NewOptions(
					"Street food",
					"Local institutions",
					"Fine dining",
					"Markets",
					"Cooking classes",
				)...).
				Value(&q.foodStyle),
		).WithHideFunc(func() bool { return !q.foodStyleNeeded() }),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which of these sound like you?").
				Options(huh.NewOptions(
					"Slow travel",
					"City hopping",
					"Off the beaten path",
					"Classic highlights",
				)...).
				Value(&q.travelStyle),
			huh.NewSelect[string]().
				Title("What vibe are you after?").
				Options(huh.NewOptions(
					"Calm and romantic",
					"Lively and social",
					"Wild and remote",
					"Elegant and cultured",
					"Warm and unhurried",
				)...).
				Value(&q.travelVibe),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Planned or spontaneous?").
				Options(sliderOptions("Planned", "Spontaneous")...).
				Value(&q.planned),
			huh.NewSelect[int]().
				Title("Comfort or authenticity?").
				Options(sliderOptions("Comfort", "Authenticity")...).
				Value(&q.comfort),
			huh.NewSelect[int]().
				Title("Famous sights or hidden gems?").
				Options(sliderOptions("Famous sights", "Hidden gems")...).
				Value(&q.famous),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Anything you'd rather avoid?").
				Options(huh.NewOptions(
					"Extreme heat",
					"Cold weather",
					"Big crowds",
					"Long flights",
					"Language barriers",
					"Very remote places",
				)...).
				Value(&q.avoidances),
			huh.NewMultiSelect[string]().
				Title("What would ruin the trip?").
				Options(huh.NewOptions(
					"Tourist traps",
					"Packed schedules",
					"Bad food",
					"Constant transit",
					"No downtime",
				)...).
				Value(&q.tripRuiners),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Any dietary or accessibility needs?").
				Placeholder("Vegetarian, step-free access...").
				Value(&q.dietaryNeeds),
			huh.NewInput().
				Title("Anything this trip must include?").
				Placeholder("A cooking class, a day by the sea...").
				Value(&q.mustIncludes),
			huh.NewSelect[string]().
				Title("When you're back home, how do you want to feel?").
				Options(huh.NewOptions(
					"Restored",
					"Inspired",
					"Adventurous",
					"Connected",
					"Celebrated",
				)...).
				Value(&q.intention),
		),
	).WithTheme(faraHuhTheme()).WithShowHelp(false)
}

// answers assembles the collected form state into the immutable record
// the generation pipeline consumes.
func (q *questionnaire) answers() domain.Answers {
	budget := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(q.budget), "$"))
	if budget == "" || strings.EqualFold(budget, domain.FlexibleBudget) {
		budget = domain.FlexibleBudget
	}

	groupSize := 0
	if q.groupSizeNeeded() {
		groupSize, _ = strconv.Atoi(strings.TrimSpace(q.groupSize))
	}

	var foodStyle []string
	if q.foodStyleNeeded() {
		foodStyle = q.foodStyle
	}

	a := domain.Answers{
		Origin:         strings.TrimSpace(q.origin),
		Duration:       q.duration,
		Timing:         q.timing,
		Travelers:      q.travelers,
		GroupSize:      groupSize,
		Budget:         budget,
		BudgetPriority: q.budgetPriority,
		Accommodation:  q.accommodation,
		Pace:           q.pace,
		PerfectMorning: strings.TrimSpace(q.perfectMorning),
		LovedTrips:     strings.TrimSpace(q.lovedTrips),
		DislikedTrips:  strings.TrimSpace(q.dislikedTrips),
		Interests:      q.interests,
		FoodStyle:      foodStyle,
		TravelStyle:    q.travelStyle,
		TravelVibe:     q.travelVibe,
		Personality: &domain.Personality{
			PlannedVsSpontaneous:  q.planned,
			ComfortVsAuthenticity: q.comfort,
			FamousVsHidden:        q.famous,
		},
		Avoidances:   q.avoidances,
		TripRuiners:  q.tripRuiners,
		DietaryNeeds: strings.TrimSpace(q.dietaryNeeds),
		MustIncludes: strings.TrimSpace(q.mustIncludes),
		Intention:    q.intention,
	}
	return a.Normalized()
}
