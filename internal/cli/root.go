package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/mustafashaheen1/girder/internal/gantt"
	"github.com/mustafashaheen1/girder/internal/schedule"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// viewModeValue is a pflag.Value restricted to the known view modes.
type viewModeValue gantt.ViewMode

var _ pflag.Value = (*viewModeValue)(nil)

func (v *viewModeValue) String() string { return string(*v) }
func (v *viewModeValue) Type() string   { return "mode" }

func (v *viewModeValue) Set(s string) error {
	switch gantt.ViewMode(s) {
	case gantt.ModeInternal, gantt.ModeClient:
		*v = viewModeValue(s)
		return nil
	}
	return fmt.Errorf("unknown view mode %q (internal or client)", s)
}

// App holds everything the CLI commands need to run against a project.
type App struct {
	Store       *schedule.Store
	ProjectID   string
	ProjectName string
	ViewMode    gantt.ViewMode
}

// NewRootCmd creates the top-level "girder" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var (
		clientView bool
		mode       viewModeValue
	)

	root := &cobra.Command{
		Use:   "girder",
		Short: "Construction schedule timeline",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.ViewMode = gantt.ResolveViewMode(gantt.ViewMode(mode), clientView)
		},
	}

	root.PersistentFlags().StringVar(&app.ProjectID, "project", app.ProjectID, "project id to open")
	root.PersistentFlags().BoolVar(&clientView, "client", false, "client view: hidden items filtered, editing disabled")
	root.PersistentFlags().Var(&mode, "mode", "explicit view mode (internal or client)")

	root.AddCommand(
		newOpenCmd(app),
		newExportCmd(app),
	)

	return root
}

// newOpenCmd launches the interactive timeline.
func newOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the interactive timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.ProjectID == "" {
				return fmt.Errorf("a project id is required (--project)")
			}
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("the timeline needs an interactive terminal; use 'girder export' for plain output")
			}

			p := tea.NewProgram(
				newAppModel(app),
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
			)
			_, err := p.Run()
			return err
		},
	}
}
