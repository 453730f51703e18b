package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mustafashaheen1/girder/internal/domain"
)

// Store mirrors one project's phases and tasks for the duration of a
// screen session. Gesture moves mutate the collections in place with no
// network traffic; the commit on gesture release sends the task's
// latest local value to the gateway. A failed commit leaves the
// optimistic state as-is, so the view may drift from the backing store
// until the next wholesale Load.
//
// Commands issued by the TUI run in their own goroutines, so every
// collection access goes through the mutex. Gateway calls are made
// outside the lock: a commit snapshots the task's latest local value at
// call time and only re-acquires the lock to install the canonical
// record.
type Store struct {
	gw Gateway

	mu        sync.RWMutex
	projectID string
	phases    []domain.Phase
	tasks     []domain.Task
}

func NewStore(gw Gateway) *Store {
	return &Store{gw: gw}
}

// ProjectID returns the project the collections belong to.
func (s *Store) ProjectID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projectID
}

// Load replaces both collections wholesale with the store's content for
// a project. On a fetch failure the relevant collection is reset to
// empty rather than left stale.
func (s *Store) Load(ctx context.Context, projectID string) error {
	s.mu.Lock()
	s.projectID = projectID
	s.phases = nil
	s.tasks = nil
	s.mu.Unlock()

	phases, err := s.gw.FetchPhases(ctx, projectID)
	if err != nil {
		return fmt.Errorf("loading phases: %w", err)
	}
	tasks, err := s.gw.FetchTasks(ctx, projectID)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}

	for i := range tasks {
		tasks[i].SyncDuration()
	}

	s.mu.Lock()
	s.phases = phases
	s.tasks = tasks
	s.mu.Unlock()
	return nil
}

// Phases returns a snapshot of the current phase collection.
func (s *Store) Phases() []domain.Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Phase, len(s.phases))
	copy(out, s.phases)
	return out
}

// Tasks returns a snapshot of the current task collection.
func (s *Store) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Task implements gantt.Collection.
func (s *Store) Task(id string) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findTask(id)
}

// findTask looks up a task by id. Callers hold the lock.
func (s *Store) findTask(id string) (domain.Task, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i], true
		}
	}
	return domain.Task{}, false
}

// replaceTask swaps in a task's new value. Callers hold the lock.
func (s *Store) replaceTask(t domain.Task) {
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t
			return
		}
	}
}

// Phase looks up a phase by id.
func (s *Store) Phase(id string) (domain.Phase, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.phases {
		if s.phases[i].ID == id {
			return s.phases[i], true
		}
	}
	return domain.Phase{}, false
}

// ShiftTask implements gantt.Collection: optimistic, local only.
func (s *Store) ShiftTask(id string, newStart time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].ShiftTo(newStart)
			return
		}
	}
}

// ResizeTask implements gantt.Collection: optimistic, local only.
func (s *Store) ResizeTask(id string, duration int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].ResizeTo(duration)
			return
		}
	}
}

// CommitTask persists a task's current local value, the single commit
// issued when a drag or resize ends. It snapshots the collection at
// call time, so it always observes the last optimistic move. On
// success the local entry is replaced with the canonical record; on
// failure the optimistic value stays.
func (s *Store) CommitTask(ctx context.Context, id string) error {
	local, ok := s.Task(id)
	if !ok {
		return fmt.Errorf("committing task %s: not in local collection", id)
	}
	canonical, err := s.gw.UpdateTask(ctx, &local)
	if err != nil {
		return fmt.Errorf("committing task %s: %w", id, err)
	}
	s.mu.Lock()
	s.replaceTask(*canonical)
	s.mu.Unlock()
	return nil
}

// CreateTask validates and persists a new task, appending the canonical
// record to the local collection.
func (s *Store) CreateTask(ctx context.Context, t domain.Task) (*domain.Task, error) {
	t.ProjectID = s.ProjectID()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	canonical, err := s.gw.CreateTask(ctx, &t)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	canonical.SyncDuration()
	s.mu.Lock()
	s.tasks = append(s.tasks, *canonical)
	s.mu.Unlock()
	return canonical, nil
}

// CreateTaskAt is the grid-cell tap path: a task in the given phase
// starting on the tapped date with the default span.
func (s *Store) CreateTaskAt(ctx context.Context, phase domain.Phase, day time.Time) (*domain.Task, error) {
	t := domain.Task{
		PhaseID:         phase.ID,
		Category:        "New Task",
		WorkType:        domain.WorkInHouse,
		Color:           phase.Color,
		VisibleToClient: phase.VisibleToClient,
	}
	t.SetSpan(day, domain.DefaultTaskSpanDays)
	return s.CreateTask(ctx, t)
}

// UpdateTask validates and persists a full task edit.
func (s *Store) UpdateTask(ctx context.Context, t domain.Task) (*domain.Task, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	canonical, err := s.gw.UpdateTask(ctx, &t)
	if err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}
	canonical.SyncDuration()
	s.mu.Lock()
	s.replaceTask(*canonical)
	s.mu.Unlock()
	return canonical, nil
}

// MarkTaskComplete is the one-way completion transition. The completion
// timestamp is written once and survives repeated marks.
func (s *Store) MarkTaskComplete(ctx context.Context, id string) error {
	local, ok := s.Task(id)
	if !ok {
		return fmt.Errorf("marking task %s complete: not in local collection", id)
	}
	local.MarkComplete(time.Now())
	canonical, err := s.gw.UpdateTask(ctx, &local)
	if err != nil {
		return fmt.Errorf("marking task %s complete: %w", id, err)
	}
	s.mu.Lock()
	s.replaceTask(*canonical)
	s.mu.Unlock()
	return nil
}

// DeleteTask removes a task from the store and the local collection.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	if err := s.gw.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	return nil
}

// CreatePhase validates and persists a new phase. Sub-phases must
// reference an existing main phase.
func (s *Store) CreatePhase(ctx context.Context, p domain.Phase) (*domain.Phase, error) {
	p.ProjectID = s.ProjectID()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := p.ValidateParent(s.Phases()); err != nil {
		return nil, err
	}
	canonical, err := s.gw.CreatePhase(ctx, &p)
	if err != nil {
		return nil, fmt.Errorf("creating phase: %w", err)
	}
	s.mu.Lock()
	s.phases = append(s.phases, *canonical)
	s.mu.Unlock()
	return canonical, nil
}

// UpdatePhase persists a phase edit (name, color, order, visibility).
func (s *Store) UpdatePhase(ctx context.Context, p domain.Phase) (*domain.Phase, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	canonical, err := s.gw.UpdatePhase(ctx, &p)
	if err != nil {
		return nil, fmt.Errorf("updating phase: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.phases {
		if s.phases[i].ID == canonical.ID {
			s.phases[i] = *canonical
			break
		}
	}
	return canonical, nil
}

// DeletePhase removes a phase, cascading to its sub-phases and to every
// task scheduled under any of them.
func (s *Store) DeletePhase(ctx context.Context, id string) error {
	if err := s.gw.DeletePhase(ctx, id); err != nil {
		return fmt.Errorf("deleting phase: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doomed := map[string]bool{id: true}
	kept := s.phases[:0]
	for _, p := range s.phases {
		if p.ID == id || (p.ParentPhaseID != nil && *p.ParentPhaseID == id) {
			doomed[p.ID] = true
			continue
		}
		kept = append(kept, p)
	}
	s.phases = kept

	keptTasks := s.tasks[:0]
	for _, t := range s.tasks {
		if doomed[t.PhaseID] {
			continue
		}
		keptTasks = append(keptTasks, t)
	}
	s.tasks = keptTasks
	return nil
}
