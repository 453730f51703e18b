package cli

import (
	"github.com/mustafashaheen1/girder/internal/gantt"
	"github.com/mustafashaheen1/girder/internal/schedule"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	Store *schedule.Store

	ProjectID   string
	ProjectName string

	// ViewMode controls client-facing filtering. Client mode is
	// read-only: gestures and mutation keys are ignored.
	ViewMode gantt.ViewMode

	// Terminal dimensions
	Width  int
	Height int
}

// ReadOnly reports whether mutations are disabled for this session.
func (s *SharedState) ReadOnly() bool {
	return s.ViewMode.ReadOnly()
}

// ContentHeight returns the available height for view content,
// accounting for the header (2 lines) and status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
