package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mustafashaheen1/girder/internal/domain"
)

// Phase options
type PhaseOption func(*domain.Phase)

func WithPhaseColor(c string) PhaseOption {
	return func(p *domain.Phase) {
		p.Color = c
	}
}

func WithParentPhase(id string) PhaseOption {
	return func(p *domain.Phase) {
		p.ParentPhaseID = &id
	}
}

func WithPhaseOrder(n int) PhaseOption {
	return func(p *domain.Phase) {
		p.Order = n
	}
}

func WithPhaseHidden() PhaseOption {
	return func(p *domain.Phase) {
		p.VisibleToClient = false
	}
}

func NewTestPhase(projectID, name string, opts ...PhaseOption) *domain.Phase {
	now := time.Now().UTC()
	p := &domain.Phase{
		ID:              uuid.New().String(),
		ProjectID:       projectID,
		Name:            name,
		Color:           domain.DefaultPhaseColors[0],
		Order:           1,
		VisibleToClient: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskSpan(start time.Time, duration int) TaskOption {
	return func(t *domain.Task) {
		t.SetSpan(start, duration)
	}
}

func WithWorkType(w domain.WorkType) TaskOption {
	return func(t *domain.Task) {
		t.WorkType = w
	}
}

func WithTaskHidden() TaskOption {
	return func(t *domain.Task) {
		t.VisibleToClient = false
	}
}

func WithTaskCompleted(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.MarkComplete(at)
	}
}

func WithTaskNotes(notes string) TaskOption {
	return func(t *domain.Task) {
		t.Notes = notes
	}
}

func NewTestTask(projectID, phaseID, category string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:              uuid.New().String(),
		ProjectID:       projectID,
		PhaseID:         phaseID,
		Category:        category,
		WorkType:        domain.WorkInHouse,
		Color:           domain.DefaultPhaseColors[0],
		VisibleToClient: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	t.SetSpan(now, domain.DefaultTaskSpanDays)
	for _, opt := range opts {
		opt(t)
	}
	return t
}
