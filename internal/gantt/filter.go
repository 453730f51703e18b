package gantt

import (
	"github.com/mustafashaheen1/girder/internal/domain"
)

// ViewMode selects between the unrestricted internal presentation and
// the read-only client one.
type ViewMode string

const (
	ModeInternal ViewMode = "internal"
	ModeClient   ViewMode = "client"
)

// ResolveViewMode picks the effective mode: an explicit mode wins,
// otherwise the isClientView convenience flag decides.
func ResolveViewMode(explicit ViewMode, isClientView bool) ViewMode {
	switch explicit {
	case ModeInternal, ModeClient:
		return explicit
	}
	if isClientView {
		return ModeClient
	}
	return ModeInternal
}

// ReadOnly reports whether all editing affordances are disabled.
func (m ViewMode) ReadOnly() bool { return m == ModeClient }

// VisiblePhases returns the phases renderable in the given mode. Client
// mode drops every phase not marked visible to the client; sub-phases of
// a hidden main phase disappear with it at row-building time.
func VisiblePhases(phases []domain.Phase, m ViewMode) []domain.Phase {
	if m != ModeClient {
		return phases
	}
	out := make([]domain.Phase, 0, len(phases))
	for _, p := range phases {
		if p.VisibleToClient {
			out = append(out, p)
		}
	}
	return out
}

// VisibleTasks returns the tasks renderable in the given mode.
func VisibleTasks(tasks []domain.Task, m ViewMode) []domain.Task {
	if m != ModeClient {
		return tasks
	}
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.VisibleToClient {
			out = append(out, t)
		}
	}
	return out
}
