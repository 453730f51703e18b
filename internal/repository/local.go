package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mustafashaheen1/girder/internal/domain"
)

// LocalGateway serves the schedule gateway from a SQLite database. It
// plays the server's role in offline mode: assigning ids, stamping
// timestamps, and returning canonical records. Phase deletes cascade to
// sub-phases and their tasks through the schema's foreign keys.
type LocalGateway struct {
	phases PhaseRepo
	tasks  TaskRepo
}

// NewLocalGateway creates a LocalGateway over an opened database.
func NewLocalGateway(db *sql.DB) *LocalGateway {
	return &LocalGateway{
		phases: NewSQLitePhaseRepo(db),
		tasks:  NewSQLiteTaskRepo(db),
	}
}

func (g *LocalGateway) FetchPhases(ctx context.Context, projectID string) ([]domain.Phase, error) {
	return g.phases.ListByProject(ctx, projectID)
}

func (g *LocalGateway) CreatePhase(ctx context.Context, p *domain.Phase) (*domain.Phase, error) {
	created := *p
	created.ID = uuid.New().String()
	created.CreatedAt = time.Now().UTC()
	created.UpdatedAt = created.CreatedAt
	if err := g.phases.Create(ctx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *LocalGateway) UpdatePhase(ctx context.Context, p *domain.Phase) (*domain.Phase, error) {
	updated := *p
	updated.UpdatedAt = time.Now().UTC()
	if err := g.phases.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return g.phases.GetByID(ctx, updated.ID)
}

func (g *LocalGateway) DeletePhase(ctx context.Context, id string) error {
	return g.phases.Delete(ctx, id)
}

func (g *LocalGateway) FetchTasks(ctx context.Context, projectID string) ([]domain.Task, error) {
	return g.tasks.ListByProject(ctx, projectID)
}

func (g *LocalGateway) CreateTask(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if _, err := g.phases.GetByID(ctx, t.PhaseID); err != nil {
		return nil, fmt.Errorf("resolving task phase: %w", err)
	}
	created := *t
	created.ID = uuid.New().String()
	created.CreatedAt = time.Now().UTC()
	created.UpdatedAt = created.CreatedAt
	if err := g.tasks.Create(ctx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *LocalGateway) UpdateTask(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	updated := *t
	updated.UpdatedAt = time.Now().UTC()
	if err := g.tasks.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return g.tasks.GetByID(ctx, updated.ID)
}

func (g *LocalGateway) DeleteTask(ctx context.Context, id string) error {
	return g.tasks.Delete(ctx, id)
}
