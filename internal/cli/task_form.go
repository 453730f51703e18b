package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mustafashaheen1/girder/internal/domain"
)

// startTaskWizard opens the task form. A nil task (or one without an ID)
// creates a new task; otherwise the form edits the given task in place.
func startTaskWizard(state *SharedState, task *domain.Task) tea.Cmd {
	isEdit := task != nil && task.ID != ""

	var seed domain.Task
	if task != nil {
		seed = *task
	} else {
		seed.WorkType = domain.WorkInHouse
		seed.Color = domain.DefaultPhaseColors[0]
		seed.VisibleToClient = true
		seed.SetSpan(time.Now(), domain.DefaultTaskSpanDays)
	}

	category := seed.Category
	workType := string(seed.WorkType)
	if workType == "" {
		workType = string(domain.WorkInHouse)
	}
	startDate := seed.StartDate.Format("2006-01-02")
	duration := fmt.Sprintf("%d", seed.Duration)
	color := seed.Color
	visible := seed.VisibleToClient
	notes := seed.Notes

	phaseID := seed.PhaseID
	phaseOpts := phaseOptions(state, phaseID)

	title := "New Task"
	if isEdit {
		title = "Edit Task"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Category").
				Description("What work is being done").
				Value(&category).
				Validate(validateRequired("category")),
			huh.NewSelect[string]().
				Title("Phase").
				Options(phaseOpts...).
				Value(&phaseID),
			huh.NewSelect[string]().
				Title("Work type").
				Options(
					huh.NewOption("In-house", string(domain.WorkInHouse)),
					huh.NewOption("Subcontractor", string(domain.WorkSubcontractor)),
				).
				Value(&workType),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start date").
				Description("YYYY-MM-DD").
				Value(&startDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Duration (days)").
				Value(&duration).
				Validate(validatePositiveInt),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions(color)...).
				Value(&color),
			huh.NewConfirm().
				Title("Visible to client?").
				Affirmative("Yes").
				Negative("No").
				Value(&visible),
			huh.NewText().
				Title("Notes").
				Lines(3).
				Value(&notes),
		),
	).WithTheme(girderHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		start, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return reportStatus("invalid start date", true)
		}

		next := seed
		next.Category = category
		next.PhaseID = phaseID
		next.WorkType = domain.WorkType(workType)
		next.Color = color
		next.VisibleToClient = visible
		next.Notes = notes
		next.SetSpan(start, parsePositiveInt(duration, seed.Duration))

		store := state.Store
		return func() tea.Msg {
			var err error
			if isEdit {
				_, err = store.UpdateTask(context.Background(), next)
			} else {
				_, err = store.CreateTask(context.Background(), next)
			}
			if err != nil {
				return statusMsg{text: fmt.Sprintf("save task: %v", err), isErr: true}
			}
			return statusMsg{text: "task saved"}
		}
	}

	return startWizardCmd(state, title, form, done)
}

// phaseOptions lists every phase as a form option, sub-phases indented
// under their parent. The current phase is kept selectable even if the
// view mode would hide it.
func phaseOptions(state *SharedState, current string) []huh.Option[string] {
	phases := state.Store.Phases()
	opts := make([]huh.Option[string], 0, len(phases))
	for _, p := range phases {
		if !p.IsMain() {
			continue
		}
		opts = append(opts, huh.NewOption(p.Name, p.ID))
		for _, sub := range phases {
			if sub.ParentPhaseID != nil && *sub.ParentPhaseID == p.ID {
				opts = append(opts, huh.NewOption("  "+sub.Name, sub.ID))
			}
		}
	}
	if len(opts) == 0 && current != "" {
		opts = append(opts, huh.NewOption(current, current))
	}
	return opts
}
