package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/connorhpbrn/findtravel/internal/domain"
)

const contentWidth = 76

var paragraphStyle = lipgloss.NewStyle().Foreground(ColorFg).Width(contentWidth)

// TravelStyle renders the travel-style line as a highlighted block.
func TravelStyle(style string) string {
	var b strings.Builder
	b.WriteString(Header("Your Travel Style"))
	b.WriteString("\n\n")
	b.WriteString(StylePurple.Width(contentWidth).Render(style))
	b.WriteString("\n")
	return b.String()
}

// DestinationCard renders one recommended destination with its ordinal.
func DestinationCard(index int, dest domain.Destination) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", StyleHeader.Render(fmt.Sprintf("%d.", index+1)), Bold(dest.Name))
	if dest.Tagline != "" {
		fmt.Fprintf(&b, "   %s\n", StyleBlue.Render(dest.Tagline))
	}
	if dest.WhyItFits != "" {
		wrapped := paragraphStyle.Width(contentWidth - 3).Render(dest.WhyItFits)
		for _, line := range strings.Split(wrapped, "\n") {
			fmt.Fprintf(&b, "   %s\n", line)
		}
	}
	fmt.Fprintf(&b, "   %s %s   %s %s   %s %s\n",
		Dim("Best time:"), dest.BestTimeToVisit,
		Dim("Daily spend:"), dest.EstimatedDailySpend,
		Dim("Flight:"), dest.FlightTime,
	)
	return b.String()
}

// DestinationList renders the full shortlist.
func DestinationList(dests []domain.Destination) string {
	var b strings.Builder
	b.WriteString(Header("Where You Should Go"))
	b.WriteString("\n\n")
	for i, dest := range dests {
		b.WriteString(DestinationCard(i, dest))
		b.WriteString("\n")
	}
	return b.String()
}

// TripPlanDetail renders a full itinerary.
func TripPlanDetail(dest domain.Destination, plan domain.TripPlan) string {
	var b strings.Builder

	b.WriteString(Header(dest.Name))
	b.WriteString("\n\n")
	if plan.Overview != "" {
		b.WriteString(paragraphStyle.Render(plan.Overview))
		b.WriteString("\n\n")
	}

	if len(plan.DayByDay) > 0 {
		b.WriteString(Bold("Day by Day"))
		b.WriteString("\n")
		for _, day := range plan.DayByDay {
			fmt.Fprintf(&b, "  %s %s\n", StyleHeader.Render(fmt.Sprintf("Day %d", day.Day)), Bold(day.Title))
			for _, line := range strings.Split(paragraphStyle.Width(contentWidth-4).Render(day.Description), "\n") {
				fmt.Fprintf(&b, "    %s\n", line)
			}
		}
		b.WriteString("\n")
	}

	writeBullets(&b, "Food Highlights", plan.FoodHighlights)
	writeBullets(&b, "Things to Do", plan.ThingsToDo)

	if len(plan.WhereToStay) > 0 {
		b.WriteString(Bold("Where to Stay"))
		b.WriteString("\n")
		for _, lodging := range plan.WhereToStay {
			fmt.Fprintf(&b, "  %s %s — %s\n", StyleGreen.Render("•"), Bold(lodging.Neighborhood), lodging.Description)
		}
		b.WriteString("\n")
	}

	if plan.GettingAround != "" {
		b.WriteString(Bold("Getting Around"))
		b.WriteString("\n")
		b.WriteString("  " + strings.ReplaceAll(paragraphStyle.Width(contentWidth-2).Render(plan.GettingAround), "\n", "\n  "))
		b.WriteString("\n\n")
	}

	writeBullets(&b, "What to Pack", plan.WhatToPack)

	budget := plan.BudgetOverview
	b.WriteString(Bold("Budget"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", Dim("Accommodation:"), budget.Accommodation)
	fmt.Fprintf(&b, "  %s %s\n", Dim("Food:         "), budget.Food)
	fmt.Fprintf(&b, "  %s %s\n", Dim("Activities:   "), budget.Activities)
	fmt.Fprintf(&b, "  %s %s\n", Dim("Transport:    "), budget.Transport)
	fmt.Fprintf(&b, "  %s %s\n", Bold("Total:        "), budget.Total)

	return b.String()
}

// TripRow renders one line of the saved-trip library listing.
func TripRow(trip *domain.SavedTrip) string {
	shortID := trip.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	return fmt.Sprintf("%s  %s  %s",
		StyleYellow.Render(shortID),
		Bold(trip.Destination.Name),
		Dim(trip.CreatedAt.Format("Jan 2, 2006")),
	)
}

func writeBullets(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(Bold(title))
	b.WriteString("\n")
	for _, item := range items {
		fmt.Fprintf(b, "  %s %s\n", StyleGreen.Render("•"), item)
	}
	b.WriteString("\n")
}
