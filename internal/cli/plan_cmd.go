package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/connorhpbrn/findtravel/internal/advisor"
	"github.com/connorhpbrn/findtravel/internal/cli/formatter"
	"github.com/connorhpbrn/findtravel/internal/domain"
	"github.com/spf13/cobra"
)

// profileLoadingLines rotate while the travel style and destination
// shortlist generate concurrently.
var profileLoadingLines = []string{
	"Reading your answers...",
	"Sketching your travel style...",
	"Scanning the map for matches...",
	"Narrowing it down to four...",
}

// planLoadingLines rotate while the day-by-day plan generates.
var planLoadingLines = []string{
	"Blocking out your days...",
	"Finding places worth eating at...",
	"Balancing the budget...",
	"Packing your bag (on paper)...",
}

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Answer the questionnaire and get a trip planned for you",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the planner is interactive; run it from a terminal")
			}
			return runPlan(cmd.Context(), app)
		},
	}
}

func runPlan(ctx context.Context, app *App) error {
	q := newQuestionnaire()
	if err := q.form().Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}
	answers := q.answers()

	var profile *advisor.ProfileResult
	err := runWithLoading(ctx, profileLoadingLines, func(ctx context.Context) error {
		var genErr error
		profile, genErr = advisor.GenerateProfile(ctx, app.Advisor, answers)
		return genErr
	})
	if errors.Is(err, ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(formatter.TravelStyle(profile.TravelStyle))
	fmt.Println(formatter.DestinationList(profile.Destinations))

	for {
		dest, ok, err := pickDestination(profile.Destinations)
		if err != nil || !ok {
			return err
		}

		var plan *domain.TripPlan
		err = runWithLoading(ctx, planLoadingLines, func(ctx context.Context) error {
			var genErr error
			plan, genErr = app.Advisor.GenerateTripPlan(ctx, answers, dest)
			return genErr
		})
		if errors.Is(err, ErrCancelled) {
			continue
		}
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(formatter.TripPlanDetail(dest, *plan))

		save, err := confirmSave(dest.Name)
		if err != nil {
			return err
		}
		if save {
			trip, err := app.Trips.Save(ctx, dest, profile.TravelStyle, *plan, answers)
			if err != nil {
				return err
			}
			fmt.Printf("Saved. See it again with: findtravel trips show %s\n", trip.ID)
		}
		// Back to the shortlist so another destination can be explored.
	}
}

// pickDestination asks which of the four destinations to plan. ok is
// false when the traveler chose to stop (or aborted the form).
func pickDestination(dests []domain.Destination) (domain.Destination, bool, error) {
	options := make([]huh.Option[int], 0, len(dests)+1)
	for i, d := range dests {
		options = append(options, huh.NewOption(fmt.Sprintf("%s — %s", d.Name, d.Tagline), i))
	}
	options = append(options, huh.NewOption("I'm done here", -1))

	choice := 0
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Which one should I plan out?").
				Options(options...).
				Value(&choice),
		),
	).WithTheme(faraHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return domain.Destination{}, false, nil
		}
		return domain.Destination{}, false, err
	}
	if choice < 0 || choice >= len(dests) {
		return domain.Destination{}, false, nil
	}
	return dests[choice], true, nil
}

func confirmSave(destName string) (bool, error) {
	save := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Save the %s trip to your library?", destName)).
				Affirmative("Save it").
				Negative("Not this one").
				Value(&save),
		),
	).WithTheme(faraHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return save, nil
}
