package cli

import (
	"time"

	"github.com/alexanderramin/pla2html/internal/config"
	"github.com/alexanderramin/pla2html/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds what the CLI commands need from the outside world.
type App struct {
	Schedule service.ScheduleService
	Config   config.Config

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Now defaults to time.Now.
	Now func() time.Time
	// PromptPaths asks for missing render paths. Nil uses a huh form.
	PromptPaths func(input, output *string) error
	// RunProgram runs a bubbletea model. Nil starts a full-screen program.
	RunProgram func(m tea.Model) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) promptPaths(input, output *string) error {
	if a.PromptPaths != nil {
		return a.PromptPaths(input, output)
	}
	return promptRenderPaths(input, output)
}

func (a *App) runProgram(m tea.Model) error {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// NewRootCmd creates the top-level "pla2html" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "pla2html",
		Short:         "Render PLA production schedules as HTML calendars",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRenderCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newExportCmd(app),
		newBrowseCmd(app),
		newImportCmd(app),
		newHistoryCmd(app),
		newSnapshotCmd(app),
		newForgetCmd(app),
	)

	return root
}
