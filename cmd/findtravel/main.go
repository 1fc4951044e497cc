package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/connorhpbrn/findtravel/internal/advisor"
	"github.com/connorhpbrn/findtravel/internal/cli"
	"github.com/connorhpbrn/findtravel/internal/db"
	"github.com/connorhpbrn/findtravel/internal/llm"
	"github.com/connorhpbrn/findtravel/internal/repository"
	"github.com/connorhpbrn/findtravel/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env next to the binary is a convenience for development; the
	// environment always wins.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.findtravel/findtravel.db
	dbPath := os.Getenv("FINDTRAVEL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".findtravel", "findtravel.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	tripRepo := repository.NewSQLiteTripRepo(database)

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewOpenRouterClient(llmCfg, observer)

	app := &cli.App{
		Advisor: advisor.NewService(client),
		Trips:   service.NewTripService(tripRepo),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
