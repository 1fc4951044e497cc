package cli

import (
	"github.com/connorhpbrn/findtravel/internal/advisor"
	"github.com/connorhpbrn/findtravel/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Advisor advisor.Service
	Trips   service.TripService

	// IsInteractive reports whether stdin is attached to a terminal.
	// The questionnaire refuses to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "findtravel" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "findtravel",
		Short: "Personal travel advisor and trip library",
		Long: `findtravel walks you through a short questionnaire about how you like
to travel, asks an AI travel advisor for destinations that fit, builds a
day-by-day plan for the one you pick, and keeps the trips you save.`,
	}

	root.AddCommand(
		newPlanCmd(app),
		newTripsCmd(app),
	)

	return root
}
