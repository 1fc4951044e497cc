// Package export renders saved trips to shareable Markdown documents.
package export

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/connorhpbrn/findtravel/internal/domain"
	"golang.org/x/text/unicode/norm"
)

// Slugify lowercases a destination name and reduces it to a
// hyphen-separated identifier suitable for a filename. Accented letters
// are folded to their base form ("São Paulo" -> "sao-paulo").
func Slugify(name string) string {
	// NFD splits accented letters into base + combining mark.
	name = norm.NFD.String(name)

	var b strings.Builder
	prevHyphen := true // trim leading hyphens
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.Is(unicode.Mn, r):
			// Combining marks are dropped, leaving the base letter.
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return "trip"
	}
	return slug
}

// RenderMarkdown produces the full trip document.
func RenderMarkdown(trip *domain.SavedTrip) string {
	var b strings.Builder
	dest := trip.Destination
	plan := trip.Plan

	fmt.Fprintf(&b, "# %s\n\n", dest.Name)
	if dest.Tagline != "" {
		fmt.Fprintf(&b, "*%s*\n\n", dest.Tagline)
	}
	if trip.TravelStyle != "" {
		fmt.Fprintf(&b, "%s\n\n", trip.TravelStyle)
	}

	fmt.Fprintf(&b, "- **Best time to visit:** %s\n", dest.BestTimeToVisit)
	fmt.Fprintf(&b, "- **Estimated daily spend:** %s\n", dest.EstimatedDailySpend)
	fmt.Fprintf(&b, "- **Flight time:** %s\n", dest.FlightTime)
	fmt.Fprintf(&b, "- **Saved:** %s\n\n", trip.CreatedAt.UTC().Format(time.RFC3339))

	if plan.Overview != "" {
		b.WriteString("## Overview\n\n")
		fmt.Fprintf(&b, "%s\n\n", plan.Overview)
	}

	if len(plan.DayByDay) > 0 {
		b.WriteString("## Day by Day\n\n")
		for _, day := range plan.DayByDay {
			fmt.Fprintf(&b, "### Day %d — %s\n\n%s\n\n", day.Day, day.Title, day.Description)
		}
	}

	writeList(&b, "Food Highlights", plan.FoodHighlights)
	writeList(&b, "Things to Do", plan.ThingsToDo)

	if len(plan.WhereToStay) > 0 {
		b.WriteString("## Where to Stay\n\n")
		for _, lodging := range plan.WhereToStay {
			fmt.Fprintf(&b, "- **%s** — %s\n", lodging.Neighborhood, lodging.Description)
		}
		b.WriteString("\n")
	}

	if plan.GettingAround != "" {
		b.WriteString("## Getting Around\n\n")
		fmt.Fprintf(&b, "%s\n\n", plan.GettingAround)
	}

	writeList(&b, "What to Pack", plan.WhatToPack)

	budget := plan.BudgetOverview
	b.WriteString("## Budget\n\n")
	b.WriteString("| Category | Estimate |\n|---|---|\n")
	fmt.Fprintf(&b, "| Accommodation | %s |\n", budget.Accommodation)
	fmt.Fprintf(&b, "| Food | %s |\n", budget.Food)
	fmt.Fprintf(&b, "| Activities | %s |\n", budget.Activities)
	fmt.Fprintf(&b, "| Transport | %s |\n", budget.Transport)
	fmt.Fprintf(&b, "| **Total** | %s |\n", budget.Total)

	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
