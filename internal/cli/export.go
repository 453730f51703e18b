package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/mustafashaheen1/girder/internal/cli/formatter"
	"github.com/mustafashaheen1/girder/internal/domain"
	"github.com/mustafashaheen1/girder/internal/gantt"
	"github.com/spf13/cobra"
)

// newExportCmd prints the schedule as a static table, honoring the same
// visibility filtering as the interactive timeline.
func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the schedule as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.ProjectID == "" {
				return fmt.Errorf("a project id is required (--project)")
			}
			if err := app.Store.Load(cmd.Context(), app.ProjectID); err != nil {
				return err
			}
			return writeExport(cmd.OutOrStdout(), app.Store, app.ViewMode)
		},
	}
}

func writeExport(w io.Writer, store scheduleReader, mode gantt.ViewMode) error {
	phases := gantt.VisiblePhases(store.Phases(), mode)
	tasks := gantt.VisibleTasks(store.Tasks(), mode)

	if len(phases) == 0 {
		_, err := fmt.Fprintln(w, formatter.Dim("No phases."))
		return err
	}

	byPhase := make(map[string][]domain.Task, len(phases))
	for _, t := range tasks {
		byPhase[t.PhaseID] = append(byPhase[t.PhaseID], t)
	}
	for id := range byPhase {
		ts := byPhase[id]
		sort.Slice(ts, func(i, j int) bool { return ts[i].StartDate.Before(ts[j].StartDate) })
	}

	headers := []string{"Phase", "Task", "Start", "End", "Days", "Work", "Done"}
	var rows [][]string

	appendPhase := func(p domain.Phase, indent string) {
		label := formatter.PhaseStyle(p.Color).Render(indent + p.Name)
		if len(byPhase[p.ID]) == 0 {
			rows = append(rows, []string{label, formatter.Dim("(no tasks)"), "", "", "", "", ""})
			return
		}
		for i, t := range byPhase[p.ID] {
			cell := ""
			if i == 0 {
				cell = label
			}
			done := ""
			if t.Completed {
				done = "✓"
			}
			rows = append(rows, []string{
				cell,
				t.Category,
				t.StartDate.Format("2006-01-02"),
				t.EndDate.Format("2006-01-02"),
				fmt.Sprintf("%d", t.Duration),
				string(t.WorkType),
				done,
			})
		}
	}

	for _, row := range gantt.BuildRows(phases, expandAll(phases)) {
		indent := ""
		if row.Depth > 0 {
			indent = "  "
		}
		appendPhase(row.Phase, indent)
	}

	_, err := fmt.Fprint(w, formatter.RenderTable(headers, rows))
	return err
}

// scheduleReader is the slice of the store the export path reads.
type scheduleReader interface {
	Phases() []domain.Phase
	Tasks() []domain.Task
}

func expandAll(phases []domain.Phase) map[string]bool {
	expanded := make(map[string]bool, len(phases))
	for _, p := range phases {
		expanded[p.ID] = true
	}
	return expanded
}
