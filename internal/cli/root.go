package cli

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/config"
	"github.com/alexanderramin/studyplan/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the services and environment hooks used by CLI commands.
type App struct {
	Plans  service.PlanService
	Config config.Config

	// Now supplies today's date for default ranges and calendar highlighting.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. The wizard only runs
	// when it returns true.
	IsInteractive func() bool

	// RunProgram runs a bubbletea model to completion. Tests swap it out.
	RunProgram func(m tea.Model) error
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runProgram(m tea.Model) error {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// NewRootCmd creates the top-level "studyplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studyplan",
		Short:         "Spread study chapters over a date range",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newExportCmd(app),
		newServeCmd(app),
		newWizardCmd(app),
	)

	return root
}
