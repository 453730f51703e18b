package gantt

import (
	"time"

	"github.com/mustafashaheen1/girder/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strptr(s string) *string { return &s }

func makePhase(id string, order int, parent *string) domain.Phase {
	return domain.Phase{
		ID:              id,
		ProjectID:       "proj-1",
		Name:            "Phase " + id,
		Color:           "#4a90d9",
		ParentPhaseID:   parent,
		Order:           order,
		VisibleToClient: true,
	}
}

func makeTask(id, phaseID string, start time.Time, duration int) domain.Task {
	t := domain.Task{
		ID:              id,
		ProjectID:       "proj-1",
		PhaseID:         phaseID,
		Category:        "Task " + id,
		WorkType:        domain.WorkInHouse,
		VisibleToClient: true,
	}
	t.SetSpan(start, duration)
	return t
}

// fakeCollection is an in-memory Collection for controller tests.
type fakeCollection struct {
	tasks map[string]*domain.Task
}

func newFakeCollection(tasks ...domain.Task) *fakeCollection {
	c := &fakeCollection{tasks: make(map[string]*domain.Task)}
	for i := range tasks {
		t := tasks[i]
		c.tasks[t.ID] = &t
	}
	return c
}

func (c *fakeCollection) Task(id string) (domain.Task, bool) {
	t, ok := c.tasks[id]
	if !ok {
		return domain.Task{}, false
	}
	return *t, true
}

func (c *fakeCollection) ShiftTask(id string, newStart time.Time) {
	if t, ok := c.tasks[id]; ok {
		t.ShiftTo(newStart)
	}
}

func (c *fakeCollection) ResizeTask(id string, duration int) {
	if t, ok := c.tasks[id]; ok {
		t.ResizeTo(duration)
	}
}
