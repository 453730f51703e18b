package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mustafashaheen1/girder/internal/domain"
)

// startPhaseWizard opens the phase form. A nil phase (or one without an
// ID) creates a new phase; otherwise the form edits the given phase.
func startPhaseWizard(state *SharedState, phase *domain.Phase) tea.Cmd {
	isEdit := phase != nil && phase.ID != ""

	var seed domain.Phase
	if phase != nil {
		seed = *phase
	} else {
		seed.Color = nextPhaseColor(state)
		seed.VisibleToClient = true
		seed.Order = len(state.Store.Phases())
	}

	name := seed.Name
	color := seed.Color
	parentID := ""
	if seed.ParentPhaseID != nil {
		parentID = *seed.ParentPhaseID
	}
	order := fmt.Sprintf("%d", seed.Order+1)
	visible := seed.VisibleToClient

	title := "New Phase"
	if isEdit {
		title = "Edit Phase"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&name).
				Validate(validateRequired("name")),
			huh.NewSelect[string]().
				Title("Parent phase").
				Description("Leave empty for a main phase").
				Options(parentOptions(state, seed.ID)...).
				Value(&parentID),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions(color)...).
				Value(&color),
			huh.NewInput().
				Title("Position").
				Description("Sidebar order, 1 is first").
				Value(&order).
				Validate(validatePositiveInt),
			huh.NewConfirm().
				Title("Visible to client?").
				Affirmative("Yes").
				Negative("No").
				Value(&visible),
		),
	).WithTheme(girderHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		next := seed
		next.Name = name
		next.Color = color
		next.VisibleToClient = visible
		next.Order = parsePositiveInt(order, seed.Order+1) - 1
		if parentID == "" {
			next.ParentPhaseID = nil
		} else {
			id := parentID
			next.ParentPhaseID = &id
		}

		store := state.Store
		return func() tea.Msg {
			var err error
			if isEdit {
				_, err = store.UpdatePhase(context.Background(), next)
			} else {
				_, err = store.CreatePhase(context.Background(), next)
			}
			if err != nil {
				return statusMsg{text: fmt.Sprintf("save phase: %v", err), isErr: true}
			}
			return statusMsg{text: "phase saved"}
		}
	}

	return startWizardCmd(state, title, form, done)
}

// parentOptions lists the main phases a sub-phase can attach to. The
// phase being edited is excluded so it cannot become its own parent.
func parentOptions(state *SharedState, selfID string) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, p := range state.Store.Phases() {
		if !p.IsMain() || p.ID == selfID {
			continue
		}
		opts = append(opts, huh.NewOption(p.Name, p.ID))
	}
	return opts
}

// nextPhaseColor cycles through the default palette based on how many
// phases the project already has.
func nextPhaseColor(state *SharedState) string {
	n := len(state.Store.Phases())
	return domain.DefaultPhaseColors[n%len(domain.DefaultPhaseColors)]
}
