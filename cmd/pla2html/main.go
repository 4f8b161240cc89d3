package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/pla2html/internal/cli"
	"github.com/alexanderramin/pla2html/internal/config"
	"github.com/alexanderramin/pla2html/internal/db"
	"github.com/alexanderramin/pla2html/internal/repository"
	"github.com/alexanderramin/pla2html/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	// Piped output stays free of escape codes.
	if !isTerminal(os.Stdout) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observers []service.UseCaseObserver
	if cfg.LogEvents {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Schedule: service.NewScheduleService(
			repository.NewSQLiteSnapshotRepo(database),
			db.NewSQLiteUnitOfWork(database),
			observers...,
		),
		Config: cfg,
		IsInteractive: func() bool {
			return isTerminal(os.Stdin)
		},
	}

	return cli.NewRootCmd(app).Execute()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
