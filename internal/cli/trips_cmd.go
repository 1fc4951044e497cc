package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/connorhpbrn/findtravel/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTripsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "Browse your saved trips",
	}

	cmd.AddCommand(
		newTripsListCmd(app),
		newTripsShowCmd(app),
		newTripsDeleteCmd(app),
		newTripsExportCmd(app),
	)

	return cmd
}

func newTripsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved trips, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := app.Trips.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(trips) == 0 {
				fmt.Fprintln(out, "No saved trips yet. Start with: findtravel plan")
				return nil
			}
			for _, trip := range trips {
				fmt.Fprintln(out, formatter.TripRow(trip))
			}
			return nil
		},
	}
}

func newTripsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a saved trip's full plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := app.Trips.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.TripPlanDetail(trip.Destination, trip.Plan))
			return nil
		},
	}
}

func newTripsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := app.Trips.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !yes {
				confirmed, err := confirmDelete(trip.Destination.Name)
				if err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}

			if err := app.Trips.Delete(cmd.Context(), trip.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted the %s trip.\n", trip.Destination.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func newTripsExportCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Export a saved trip to a Markdown file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.Trips.Export(cmd.Context(), args[0], dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to write the Markdown file into")

	return cmd
}

func confirmDelete(destName string) (bool, error) {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete the %s trip?", destName)).
				Affirmative("Delete").
				Negative("Keep it").
				Value(&confirmed),
		),
	).WithTheme(faraHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}
