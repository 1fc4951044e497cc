package advisor

import (
	"fmt"
	"strings"
	"time"

	"github.com/connorhpbrn/findtravel/internal/domain"
)

// SystemPrompt is shared by all three generation tasks. It establishes
// the advisor persona, the tone rules, and the bare-JSON output contract.
const SystemPrompt = `You are Fara, an expert travel advisor with deep knowledge of destinations worldwide. You design thoughtful, personalized travel experiences that match each traveler's unique personality, preferences, and practical needs.

## Your Approach

You are calm, considered, and genuinely helpful. You don't overwhelm travelers with options — instead, you curate a small selection of destinations that truly fit who they are. You understand that the best trips aren't just about places, but about how those places make people feel.

## Your Expertise

- **Destination Knowledge**: You have comprehensive knowledge of cities, regions, and hidden gems across the globe. You understand seasonal variations, local events, cultural nuances, and practical considerations.
- **Travel Logistics**: You know flight times, visa requirements, best times to visit, typical costs, and transportation options.
- **Cultural Sensitivity**: You respect and understand diverse cultures, dietary requirements, accessibility needs, and travel styles.
- **Current Awareness**: You can search the web for current information about destinations, events, weather patterns, and travel advisories.

## Response Guidelines

1. **Be Specific**: Don't give generic advice. Reference actual neighborhoods, restaurants, experiences, and local insights.
2. **Be Honest**: If a destination might not be ideal for someone's needs, say so. Suggest alternatives.
3. **Be Practical**: Consider budget, travel time, physical requirements, and logistics.
4. **Be Inspiring**: Help travelers see why a destination would resonate with them emotionally.
5. **No Emojis**: Keep the tone calm and editorial. No emojis in your responses.
6. **Current Information**: When relevant, search for current travel conditions, events, or advisories.

## Output Format

Always respond with valid JSON matching the exact structure requested. Do not include markdown code blocks or any text outside the JSON object.`

// Fallback phrases rendered for absent optional answers.
const (
	notSpecified  = "Not specified"
	noPreference  = "No preference"
	noneSpecified = "None specified"
)

// FormatPersonality summarizes the three slider values as a short phrase
// list. Each slider contributes a phrase only when it leans clearly one
// way: below 40 or above 60. Three silent sliders yield the single
// default phrase.
func FormatPersonality(p *domain.Personality) string {
	if p == nil {
		return "Balanced preferences"
	}
	var traits []string
	if p.PlannedVsSpontaneous < 40 {
		traits = append(traits, "prefers planned itineraries")
	} else if p.PlannedVsSpontaneous > 60 {
		traits = append(traits, "loves spontaneous discovery")
	}
	if p.ComfortVsAuthenticity < 40 {
		traits = append(traits, "prioritizes comfort")
	} else if p.ComfortVsAuthenticity > 60 {
		traits = append(traits, "seeks authentic experiences")
	}
	if p.FamousVsHidden < 40 {
		traits = append(traits, "wants to see famous landmarks")
	} else if p.FamousVsHidden > 60 {
		traits = append(traits, "prefers hidden gems")
	}
	if len(traits) == 0 {
		return "balanced preferences"
	}
	return strings.Join(traits, ", ")
}

// DayCount maps a stated trip duration to the number of itinerary days.
// Unrecognized durations fall through to 4.
func DayCount(duration string) int {
	switch duration {
	case "A weekend":
		return 3
	case "Five to seven days":
		return 6
	case "One to two weeks":
		return 10
	case "Longer":
		return 14
	default:
		return 4
	}
}

// orFallback returns s, or fallback when s is empty.
func orFallback(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// joinOrFallback joins tags with ", ", or returns fallback for an empty list.
func joinOrFallback(tags []string, fallback string) string {
	if len(tags) == 0 {
		return fallback
	}
	return strings.Join(tags, ", ")
}

// formatBudget renders the budget answer for the profile block.
func formatBudget(budget string) string {
	if budget == domain.FlexibleBudget || strings.TrimSpace(budget) == "" {
		return "Flexible budget"
	}
	return fmt.Sprintf("$%s total budget", budget)
}

// formatTravelers renders the party line, appending the group size when given.
func formatTravelers(a domain.Answers) string {
	if a.GroupSize > 0 {
		return fmt.Sprintf("%s (%d people)", a.Travelers, a.GroupSize)
	}
	return a.Travelers
}

// promptDate renders the current date the way the prompts reference it.
func promptDate(now time.Time) string {
	return now.Format("January 2006")
}

// BuildTravelStylePrompt produces the user prompt asking for a
// one-sentence travel-style description.
func BuildTravelStylePrompt(a domain.Answers) string {
	return fmt.Sprintf(`Based on the traveler's responses, create a personalized travel style description.

## Traveler Profile

**Origin**: %s
**Trip Duration**: %s
**Timing**: %s
**Travelers**: %s
**Budget**: %s
**Budget Priority**: %s
**Accommodation Preferences**: %s
**Travel Vibe**: %s
**Perfect Morning**: %s
**Pace**: %s
**Personality Traits**: %s
**Past Trips Loved**: %s
**Past Trips Disliked**: %s
**Interests**: %s
**Food Preferences**: %s
**Travel Style**: %s
**Things to Avoid**: %s
**Trip Ruiners**: %s
**Dietary/Accessibility Needs**: %s
**Must-Includes**: %s
**Desired Feeling**: %s

## Task

Create a one-sentence travel style description that captures who this traveler is. Start with "You're a [Type] —" and describe their travel personality in a warm, insightful way. Reference their vibe preference, personality traits, and what they're seeking.

Respond with JSON:
{
  "travelStyle": "You're a [Type] — [description of their travel personality]"
}`,
		a.Origin,
		a.Duration,
		a.Timing,
		formatTravelers(a),
		formatBudget(a.Budget),
		orFallback(a.BudgetPriority, "No specific priority"),
		joinOrFallback(a.Accommodation, noPreference),
		orFallback(a.TravelVibe, notSpecified),
		orFallback(a.PerfectMorning, notSpecified),
		a.Pace,
		FormatPersonality(a.Personality),
		orFallback(a.LovedTrips, notSpecified),
		orFallback(a.DislikedTrips, notSpecified),
		joinOrFallback(a.Interests, notSpecified),
		joinOrFallback(a.FoodStyle, notSpecified),
		joinOrFallback(a.TravelStyle, notSpecified),
		joinOrFallback(a.Avoidances, noneSpecified),
		joinOrFallback(a.TripRuiners, noneSpecified),
		orFallback(a.DietaryNeeds, noneSpecified),
		orFallback(a.MustIncludes, noneSpecified),
		a.Intention,
	)
}

// BuildDestinationsPrompt produces the user prompt asking for exactly
// four destination recommendations with ranked selection criteria.
func BuildDestinationsPrompt(a domain.Answers, now time.Time) string {
	return fmt.Sprintf(`Based on the traveler's profile, recommend 4 destinations that would be perfect for them. Search the web for current travel conditions, events, and any relevant advisories for potential destinations.

## Current Date: %s

## Traveler Profile

**Origin**: %s
**Trip Duration**: %s
**Timing**: %s
**Travelers**: %s
**Budget**: %s
**Budget Priority**: %s (where they want to splurge)
**Accommodation Preferences**: %s
**Travel Vibe**: %s (the feeling/atmosphere they're drawn to)
**Perfect Morning**: %s (what they'd do at 10 AM on day 2)
**Pace**: %s
**Personality Traits**: %s
**Past Trips Loved**: %s
**Past Trips Disliked**: %s
**Interests**: %s
**Food Preferences**: %s
**Travel Style**: %s
**Things to Avoid**: %s
**Trip Ruiners**: %s (things that would ruin the trip)
**Dietary/Accessibility Needs**: %s
**Must-Includes**: %s
**Desired Feeling**: %s

## Selection Criteria

1. **Match the Vibe**: The destination should match their selected vibe (%s).
2. **Match the Feeling**: The destination should help them feel %s.
3. **Respect Avoidances**: Do not suggest destinations that conflict with their avoidances or trip ruiners.
4. **Consider Logistics**: Factor in flight time from %s, visa requirements, and practical considerations.
5. **Seasonal Appropriateness**: Consider the timing (%s) and current/upcoming weather.
6. **Budget Alignment**: Ensure destinations fit their budget and prioritize spending on %s.
7. **Pace Match**: %s pace should be achievable at the destination.
8. **Personality Match**: Consider their personality traits (%s).
9. **Interest Alignment**: Prioritize destinations strong in: %s.

## Task

Recommend exactly 4 destinations. For each, provide:
- A compelling one-line emotional hook (tagline)
- A detailed paragraph explaining why this destination fits THIS specific traveler, referencing their vibe, personality, and specific preferences
- Practical information (best time, daily spend, flight time from their origin)

Respond with JSON:
{
  "destinations": [
    {
      "id": "lowercase-hyphenated-id",
      "name": "City, Country",
      "tagline": "One-line emotional hook",
      "whyItFits": "2-3 sentence paragraph explaining why this destination is perfect for this specific traveler, referencing their vibe preference, personality traits, and interests",
      "bestTimeToVisit": "Month range",
      "estimatedDailySpend": "$X-Y",
      "flightTime": "X-Y hours from [origin]"
    }
  ]
}`,
		promptDate(now),
		a.Origin,
		a.Duration,
		a.Timing,
		formatTravelers(a),
		formatBudget(a.Budget),
		orFallback(a.BudgetPriority, "No specific priority"),
		joinOrFallback(a.Accommodation, noPreference),
		orFallback(a.TravelVibe, notSpecified),
		orFallback(a.PerfectMorning, notSpecified),
		a.Pace,
		FormatPersonality(a.Personality),
		orFallback(a.LovedTrips, notSpecified),
		orFallback(a.DislikedTrips, notSpecified),
		joinOrFallback(a.Interests, notSpecified),
		joinOrFallback(a.FoodStyle, notSpecified),
		joinOrFallback(a.TravelStyle, notSpecified),
		joinOrFallback(a.Avoidances, noneSpecified),
		joinOrFallback(a.TripRuiners, noneSpecified),
		orFallback(a.DietaryNeeds, noneSpecified),
		orFallback(a.MustIncludes, noneSpecified),
		a.Intention,
		orFallback(a.TravelVibe, "general"),
		strings.ToLower(a.Intention),
		a.Origin,
		a.Timing,
		orFallback(a.BudgetPriority, "balanced allocation"),
		a.Pace,
		FormatPersonality(a.Personality),
		joinOrFallback(a.Interests, "general appeal"),
	)
}

// paceGuideline maps the stated pace to its planning instruction.
// Unrecognized paces get the balanced paragraph.
func paceGuideline(pace string) string {
	switch pace {
	case "Slow and relaxed":
		return "Include plenty of downtime, leisurely meals, and unstructured exploration time."
	case "Full and energetic":
		return "Pack in experiences but ensure logical routing to minimize wasted time."
	default:
		return "Balance activities with rest. Morning adventures, relaxed afternoons."
	}
}

// BuildTripPlanPrompt produces the user prompt asking for a full
// itinerary for the chosen destination.
func BuildTripPlanPrompt(a domain.Answers, dest domain.Destination, now time.Time) string {
	numDays := DayCount(a.Duration)

	foodLine := "Include varied dining experiences"
	if len(a.FoodStyle) > 0 {
		foodLine = "Focus on: " + strings.Join(a.FoodStyle, ", ")
	}
	ruinersLine := "No specific concerns"
	if len(a.TripRuiners) > 0 {
		ruinersLine = "Actively avoid: " + strings.Join(a.TripRuiners, ", ")
	}
	dietaryLine := "No specific requirements."
	if strings.TrimSpace(a.DietaryNeeds) != "" {
		dietaryLine = "Account for: " + a.DietaryNeeds
	}
	mustLine := "No specific requirements."
	if strings.TrimSpace(a.MustIncludes) != "" {
		mustLine = "Ensure the plan includes: " + a.MustIncludes
	}

	return fmt.Sprintf(`Create a detailed trip plan for %s. Search the web for current information about restaurants, attractions, neighborhoods, and any upcoming events or considerations.

## Current Date: %s

## Destination: %s
%s

## Traveler Profile

**Origin**: %s
**Trip Duration**: %s (plan for %d days)
**Travelers**: %s
**Budget**: %s
**Budget Priority**: %s (where to allocate more budget)
**Accommodation Preferences**: %s
**Travel Vibe**: %s
**Perfect Morning**: %s
**Pace**: %s
**Personality Traits**: %s
**Interests**: %s
**Food Preferences**: %s
**Travel Style**: %s
**Trip Ruiners**: %s
**Dietary/Accessibility Needs**: %s
**Must-Includes**: %s
**Desired Feeling**: %s

## Planning Guidelines

1. **Pace**: Plan for a %s pace. %s
2. **Morning Style**: Their perfect morning is "%s" — plan day starts accordingly.
3. **Budget Priority**: Allocate more budget toward %s.
4. **Personality**: %s — tailor recommendations to match.
5. **Food**: %s.
6. **Avoid Trip Ruiners**: %s.
7. **Interests**: Emphasize %s.
8. **Accommodation**: Recommend neighborhoods that suit %s stays.
9. **Dietary Needs**: %s
10. **Must-Includes**: %s

## Task

Create a comprehensive trip plan with specific, real recommendations. Use actual restaurant names, real neighborhoods, genuine local experiences. Search for current information to ensure accuracy.

Respond with JSON:
{
  "overview": "2-3 sentence calm summary of what this trip will feel like",
  "dayByDay": [
    {
      "day": 1,
      "title": "Arrival theme or focus",
      "description": "2-3 sentences describing the day's flow with specific places and experiences"
    }
  ],
  "foodHighlights": [
    "Specific dish at Specific Restaurant Name",
    "Another specific recommendation"
  ],
  "thingsToDo": [
    "Specific activity or experience",
    "Another specific recommendation"
  ],
  "whereToStay": [
    {
      "neighborhood": "Neighborhood Name",
      "description": "Why this area suits them and what to expect"
    }
  ],
  "gettingAround": "Practical transportation advice specific to this destination",
  "whatToPack": [
    "Specific item relevant to destination and activities",
    "Another practical suggestion"
  ],
  "budgetOverview": {
    "accommodation": "$X-Y/night",
    "food": "$X-Y/day",
    "activities": "$X-Y/day",
    "transport": "$X-Y/day",
    "total": "$X-Y/day"
  }
}`,
		dest.Name,
		promptDate(now),
		dest.Name,
		dest.Tagline,
		a.Origin,
		a.Duration,
		numDays,
		formatTravelers(a),
		formatBudget(a.Budget),
		orFallback(a.BudgetPriority, "Balanced"),
		joinOrFallback(a.Accommodation, noPreference),
		orFallback(a.TravelVibe, notSpecified),
		orFallback(a.PerfectMorning, notSpecified),
		a.Pace,
		FormatPersonality(a.Personality),
		joinOrFallback(a.Interests, notSpecified),
		joinOrFallback(a.FoodStyle, "General food experiences"),
		joinOrFallback(a.TravelStyle, notSpecified),
		joinOrFallback(a.TripRuiners, noneSpecified),
		orFallback(a.DietaryNeeds, noneSpecified),
		orFallback(a.MustIncludes, noneSpecified),
		a.Intention,
		strings.ToLower(a.Pace),
		paceGuideline(a.Pace),
		orFallback(a.PerfectMorning, "flexible"),
		orFallback(a.BudgetPriority, "balanced spending"),
		FormatPersonality(a.Personality),
		foodLine,
		ruinersLine,
		joinOrFallback(a.Interests, "varied experiences"),
		strings.Join(nonEmptyOr(a.Accommodation, []string{"various"}), " or "),
		dietaryLine,
		mustLine,
	)
}

func nonEmptyOr(list, fallback []string) []string {
	if len(list) == 0 {
		return fallback
	}
	return list
}
