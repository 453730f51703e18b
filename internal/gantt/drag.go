package gantt

import (
	"math"
	"time"

	"github.com/mustafashaheen1/girder/internal/domain"
)

// DragState is the horizontal-reposition controller: idle → dragging →
// idle. While dragging, pointer movement shifts the task's start date in
// whole days; duration is invariant for the entire gesture.
type DragState struct {
	active       bool
	taskID       string
	startX       int
	initialStart time.Time
}

func (d *DragState) Active() bool  { return d.active }
func (d *DragState) TaskID() string { return d.taskID }

// Start captures the task and the pointer column the gesture began at.
func (d *DragState) Start(t domain.Task, x int) {
	d.active = true
	d.taskID = t.ID
	d.startX = x
	d.initialStart = t.StartDate
}

// Move applies the pointer position: the column delta is rounded to
// whole days at the current cell width and the task is shifted to
// initialStart + delta. Returns true when the collection was mutated;
// a delta that rounds to the task's current day is a no-op, so
// continuous pointer movement never causes redundant writes.
func (d *DragState) Move(col Collection, x, cellWidth int) bool {
	if !d.active || cellWidth <= 0 {
		return false
	}
	cur, ok := col.Task(d.taskID)
	if !ok {
		return false
	}
	deltaDays := roundToCells(x-d.startX, cellWidth)
	newStart := d.initialStart.AddDate(0, 0, deltaDays)
	if newStart.Equal(cur.StartDate) {
		return false
	}
	col.ShiftTask(d.taskID, newStart)
	return true
}

// End leaves the dragging state and hands back the task id so the
// caller can issue the single persistence commit. The controller resets
// regardless of what the commit later does.
func (d *DragState) End() (taskID string, wasActive bool) {
	taskID = d.taskID
	wasActive = d.active
	*d = DragState{}
	return taskID, wasActive
}

// roundToCells converts a column delta to whole cells, rounding to
// nearest so a bar snaps to whichever day the pointer is closest to.
func roundToCells(deltaX, cellWidth int) int {
	return int(math.Round(float64(deltaX) / float64(cellWidth)))
}
