package gantt

import (
	"github.com/mustafashaheen1/girder/internal/domain"
)

// ResizeState is the duration-change controller. It mirrors DragState
// but only the right edge of a bar is interactive: pointer movement
// changes the duration and end date while the start date is invariant.
type ResizeState struct {
	active          bool
	taskID          string
	startX          int
	initialDuration int
}

func (r *ResizeState) Active() bool   { return r.active }
func (r *ResizeState) TaskID() string { return r.taskID }

// Start captures the task and the pointer column the gesture began at.
func (r *ResizeState) Start(t domain.Task, x int) {
	r.active = true
	r.taskID = t.ID
	r.startX = x
	r.initialDuration = t.Duration
}

// Move applies the pointer position: newDuration = initial + delta in
// whole cells, floored at one day. Returns true when the collection was
// mutated; a delta landing on the current duration is a no-op.
func (r *ResizeState) Move(col Collection, x, cellWidth int) bool {
	if !r.active || cellWidth <= 0 {
		return false
	}
	cur, ok := col.Task(r.taskID)
	if !ok {
		return false
	}
	newDuration := r.initialDuration + roundToCells(x-r.startX, cellWidth)
	if newDuration < 1 {
		newDuration = 1
	}
	if newDuration == cur.Duration {
		return false
	}
	col.ResizeTask(r.taskID, newDuration)
	return true
}

// End leaves the resizing state and hands back the task id for the
// persistence commit.
func (r *ResizeState) End() (taskID string, wasActive bool) {
	taskID = r.taskID
	wasActive = r.active
	*r = ResizeState{}
	return taskID, wasActive
}
