// Package schedule holds the session-scoped schedule state: the phase
// and task collections mirrored from the store, mutated optimistically
// by user interaction, and committed back at discrete action boundaries.
package schedule

import (
	"context"

	"github.com/mustafashaheen1/girder/internal/domain"
)

// Gateway is the durable phase/task store. The remote HTTP API and the
// local SQLite repository both implement it. Mutating calls return the
// canonical record as the store persisted it; the store is the source
// of truth for generated ids and server-computed fields.
type Gateway interface {
	FetchPhases(ctx context.Context, projectID string) ([]domain.Phase, error)
	CreatePhase(ctx context.Context, p *domain.Phase) (*domain.Phase, error)
	UpdatePhase(ctx context.Context, p *domain.Phase) (*domain.Phase, error)
	DeletePhase(ctx context.Context, id string) error

	FetchTasks(ctx context.Context, projectID string) ([]domain.Task, error)
	CreateTask(ctx context.Context, t *domain.Task) (*domain.Task, error)
	UpdateTask(ctx context.Context, t *domain.Task) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
