package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mustafashaheen1/girder/internal/cli/formatter"
	"github.com/mustafashaheen1/girder/internal/domain"
)

// taskDetailView is the read-only task pane shown when a bar is tapped
// in client mode. It renders the same fields the edit form carries, as
// plain text; esc pops back to the timeline.
type taskDetailView struct {
	state *SharedState
	task  domain.Task
}

func newTaskDetailView(state *SharedState, task domain.Task) *taskDetailView {
	return &taskDetailView{state: state, task: task}
}

func (v *taskDetailView) ID() ViewID { return ViewDetail }

func (v *taskDetailView) Title() string { return v.task.Category }

func (v *taskDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *taskDetailView) Init() tea.Cmd { return nil }

func (v *taskDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return v, nil
}

func (v *taskDetailView) View() string {
	t := v.task

	phaseName := ""
	if phase, ok := v.state.Store.Phase(t.PhaseID); ok {
		phaseName = phase.Name
	}

	status := "scheduled"
	if t.Completed {
		status = "completed"
		if t.CompletedAt != nil {
			status = fmt.Sprintf("completed %s", t.CompletedAt.Format("Jan 2, 2006"))
		}
	}

	days := "day"
	if t.Duration != 1 {
		days = "days"
	}

	rows := []struct{ label, value string }{
		{"Phase", phaseName},
		{"Start", t.StartDate.Format("Mon, Jan 2 2006")},
		{"End", t.EndDate.Format("Mon, Jan 2 2006")},
		{"Duration", fmt.Sprintf("%d %s", t.Duration, days)},
		{"Work", string(t.WorkType)},
		{"Status", status},
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(formatter.PhaseStyle(t.Color).Bold(true).Render(t.Category))
	b.WriteString("\n\n")
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s\n",
			formatter.Dim(padCell(r.label, 10)), formatter.StyleFg.Render(r.value)))
	}

	if t.Notes != "" {
		b.WriteString("\n  " + formatter.Dim("Notes") + "\n")
		notes := lipgloss.NewStyle().
			Foreground(formatter.ColorFg).
			Width(max(v.state.Width-4, 20)).
			PaddingLeft(2).
			Render(t.Notes)
		b.WriteString(notes + "\n")
	}
	return b.String()
}
