package gantt

import (
	"github.com/mustafashaheen1/girder/internal/domain"
)

// GesturePhase is the single source of truth for what the pointer is
// doing. Exactly one interaction can be active at a time; the phase
// enum makes a simultaneous drag and resize unrepresentable.
type GesturePhase int

const (
	GestureIdle GesturePhase = iota
	GesturePressed
	GestureDragging
	GestureResizing
)

// pressThreshold is how many columns the pointer may travel before a
// press stops being a tap and becomes a drag or resize.
const pressThreshold = 1

// ResultKind classifies what a pointer release amounted to.
type ResultKind int

const (
	ResultNone       ResultKind = iota
	ResultTapTask               // open the task detail
	ResultTapCell               // create a task at the tapped cell
	ResultCommitTask            // gesture finished, persist the task
)

// Result is what the router hands back on release.
type Result struct {
	Kind   ResultKind
	TaskID string
	Col    int // grid column of a cell tap
	Row    int // row index of a cell tap
}

// Gesture routes pointer events to whichever controller owns the
// current interaction. While any gesture is live the hosting view must
// suppress scrolling and ignore other bar interactions; Active()
// reports that condition.
type Gesture struct {
	phase GesturePhase

	pressX   int
	pressCol int
	pressRow int

	task      domain.Task // snapshot at press time, for controller start
	onBar     bool
	onEdge    bool

	drag   DragState
	resize ResizeState
}

func (g *Gesture) Phase() GesturePhase { return g.phase }

// Active reports whether a gesture holds the pointer surface. The
// hosting view uses this to suppress native scroll and cell taps.
func (g *Gesture) Active() bool { return g.phase != GestureIdle }

// PressBar begins a gesture on a task bar. onEdge marks a press on the
// bar's final cell, which arms a resize instead of a drag. Presses are
// ignored while another gesture is live.
func (g *Gesture) PressBar(t domain.Task, x int, onEdge bool) {
	if g.phase != GestureIdle {
		return
	}
	g.phase = GesturePressed
	g.pressX = x
	g.task = t
	g.onBar = true
	g.onEdge = onEdge
}

// PressCell begins a gesture on an empty grid cell. It can only resolve
// to a cell tap; moving the pointer away cancels it.
func (g *Gesture) PressCell(col, row, x int) {
	if g.phase != GestureIdle {
		return
	}
	g.phase = GesturePressed
	g.pressX = x
	g.pressCol = col
	g.pressRow = row
	g.onBar = false
}

// Motion routes pointer movement. A pressed bar that crosses the tap
// threshold activates its controller; once a controller is live every
// motion is forwarded as an optimistic local mutation. Returns true
// when the collection changed and the caller should re-render.
func (g *Gesture) Motion(col Collection, x, cellWidth int) bool {
	switch g.phase {
	case GesturePressed:
		if abs(x-g.pressX) < pressThreshold {
			return false
		}
		if !g.onBar {
			// Cell presses never become drags; the press just stops
			// being a tap.
			return false
		}
		if g.onEdge {
			g.phase = GestureResizing
			g.resize.Start(g.task, g.pressX)
			return g.resize.Move(col, x, cellWidth)
		}
		g.phase = GestureDragging
		g.drag.Start(g.task, g.pressX)
		return g.drag.Move(col, x, cellWidth)

	case GestureDragging:
		return g.drag.Move(col, x, cellWidth)

	case GestureResizing:
		return g.resize.Move(col, x, cellWidth)
	}
	return false
}

// Release ends the gesture and classifies it. A press that never
// crossed the threshold is a tap; an active drag or resize yields a
// commit request for the task's latest local state. Releases outside
// the grid arrive here exactly like normal ones and still commit:
// a partial gesture is indistinguishable from an intentional one.
func (g *Gesture) Release(x int) Result {
	defer func() { *g = Gesture{} }()

	switch g.phase {
	case GesturePressed:
		if abs(x-g.pressX) >= pressThreshold {
			// Crossed the threshold on the release event itself;
			// nothing was applied, nothing to commit.
			return Result{Kind: ResultNone}
		}
		if g.onBar {
			return Result{Kind: ResultTapTask, TaskID: g.task.ID}
		}
		return Result{Kind: ResultTapCell, Col: g.pressCol, Row: g.pressRow}

	case GestureDragging:
		id, ok := g.drag.End()
		if !ok {
			return Result{Kind: ResultNone}
		}
		return Result{Kind: ResultCommitTask, TaskID: id}

	case GestureResizing:
		id, ok := g.resize.End()
		if !ok {
			return Result{Kind: ResultNone}
		}
		return Result{Kind: ResultCommitTask, TaskID: id}
	}
	return Result{Kind: ResultNone}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
