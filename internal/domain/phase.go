package domain

import (
	"fmt"
	"time"
)

// Phase is a named grouping of scheduled work. A phase with a nil
// ParentPhaseID is a main phase; otherwise it is a sub-phase of the
// referenced main phase. The hierarchy is exactly two levels deep;
// a sub-phase can never be the parent of another phase.
type Phase struct {
	ID              string  `json:"id"`
	ProjectID       string  `json:"projectId"`
	Name            string  `json:"name"`
	Color           string  `json:"color"`
	ParentPhaseID   *string `json:"parentPhaseId,omitempty"`
	Order           int     `json:"order"`
	VisibleToClient bool    `json:"visibleToClient"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// IsMain reports whether the phase sits at the top of the hierarchy.
func (p *Phase) IsMain() bool {
	return p.ParentPhaseID == nil
}

// Validate checks the fields a phase must carry before it can be stored.
func (p *Phase) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("phase name is required")
	}
	if p.ProjectID == "" {
		return fmt.Errorf("phase must belong to a project")
	}
	return nil
}

// ValidateParent checks the two-level hierarchy invariant: a sub-phase
// must reference an existing phase that is itself a main phase.
func (p *Phase) ValidateParent(phases []Phase) error {
	if p.ParentPhaseID == nil {
		return nil
	}
	for i := range phases {
		if phases[i].ID == *p.ParentPhaseID {
			if !phases[i].IsMain() {
				return fmt.Errorf("parent phase %s is itself a sub-phase", *p.ParentPhaseID)
			}
			return nil
		}
	}
	return fmt.Errorf("parent phase %s does not exist", *p.ParentPhaseID)
}
