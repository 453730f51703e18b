package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mustafashaheen1/girder/internal/domain"
	"github.com/mustafashaheen1/girder/internal/gantt"
)

// appHeaderLines is how far the app chrome pushes the view down the
// terminal: title line plus separator.
const appHeaderLines = 2

// scheduleLoadedMsg signals that the store finished a wholesale load.
type scheduleLoadedMsg struct {
	err error
}

// timelineView is the schedule timeline: phase sidebar on the left, the
// zoomable date grid on the right, task bars placed by the gantt
// geometry mapper. All pointer interaction is routed through the
// gesture machine; the keyboard drives an equivalent cell cursor.
type timelineView struct {
	state *SharedState

	layout gantt.Layout
	zoom   gantt.Zoom
	scale  gantt.Timescale
	today  time.Time

	expanded map[string]bool
	gesture  gantt.Gesture

	scrollTick int // first visible tick index
	cursorRow  int
	cursorTick int

	loading   bool
	err       error
	status    string
	statusErr bool
}

func newTimelineView(state *SharedState) *timelineView {
	layout := gantt.ResolveLayout(state.Width)
	today := domain.NormalizeDate(time.Now())
	v := &timelineView{
		state:    state,
		layout:   layout,
		zoom:     gantt.NewZoom(layout),
		today:    today,
		expanded: make(map[string]bool),
		loading:  true,
	}
	v.scale = gantt.NewTimescale(today, v.zoom.Level())
	v.cursorTick = v.scale.TodayIndex(today)
	v.scrollToCursor()
	return v
}

func (v *timelineView) ID() ViewID { return ViewTimeline }

func (v *timelineView) Title() string {
	if v.state.ProjectName != "" {
		return v.state.ProjectName
	}
	return "Timeline"
}

func (v *timelineView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("h"), key.WithHelp("←→↑↓", "move")),
		key.NewBinding(key.WithKeys("+"), key.WithHelp("+/-", "zoom")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d/w/m", "scale")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand/edit")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "today")),
	}
	if !v.state.ReadOnly() {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new task")),
			key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "new phase")),
			key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
			key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "nudge")),
			key.NewBinding(key.WithKeys("{"), key.WithHelp("{/}", "resize")),
		)
	}
	return bindings
}

func (v *timelineView) Init() tea.Cmd {
	return v.loadSchedule()
}

func (v *timelineView) loadSchedule() tea.Cmd {
	store := v.state.Store
	projectID := v.state.ProjectID
	return func() tea.Msg {
		return scheduleLoadedMsg{err: store.Load(context.Background(), projectID)}
	}
}

// ── derived state ────────────────────────────────────────────────────────────

func (v *timelineView) visiblePhases() []domain.Phase {
	return gantt.VisiblePhases(v.state.Store.Phases(), v.state.ViewMode)
}

func (v *timelineView) visibleTasks() []domain.Task {
	return gantt.VisibleTasks(v.state.Store.Tasks(), v.state.ViewMode)
}

func (v *timelineView) rows() []gantt.Row {
	return gantt.BuildRows(v.visiblePhases(), v.expanded)
}

func (v *timelineView) bars() []gantt.Bar {
	return gantt.MapTasks(v.visibleTasks(), v.rows(), v.scale, v.zoom.CellWidth(), v.layout.RowHeight)
}

// gridWidth returns the columns available for the date grid.
func (v *timelineView) gridWidth() int {
	w := v.state.Width - v.layout.SidebarWidth - v.layout.Gap
	if w < v.zoom.CellWidth() {
		return v.zoom.CellWidth()
	}
	return w
}

// visibleTickCount returns how many ticks fit in the grid.
func (v *timelineView) visibleTickCount() int {
	n := v.gridWidth() / v.zoom.CellWidth()
	if n < 1 {
		return 1
	}
	return n
}

// rebuildScale recomputes the axis after a granularity change, keeping
// the cursor anchored near the date it was on.
func (v *timelineView) rebuildScale() {
	var anchor time.Time
	if v.cursorTick >= 0 && v.cursorTick < v.scale.Len() {
		anchor = v.scale.Ticks[v.cursorTick]
	} else {
		anchor = v.today
	}
	v.scale = gantt.NewTimescale(v.today, v.zoom.Level())
	v.cursorTick = v.scale.StartIndex(anchor)
	v.scrollToCursor()
}

func (v *timelineView) clampScroll() {
	maxStart := v.scale.Len() - v.visibleTickCount()
	if maxStart < 0 {
		maxStart = 0
	}
	if v.scrollTick > maxStart {
		v.scrollTick = maxStart
	}
	if v.scrollTick < 0 {
		v.scrollTick = 0
	}
}

func (v *timelineView) scrollToCursor() {
	if v.cursorTick < v.scrollTick {
		v.scrollTick = v.cursorTick
	}
	if last := v.scrollTick + v.visibleTickCount() - 1; v.cursorTick > last {
		v.scrollTick = v.cursorTick - v.visibleTickCount() + 1
	}
	v.clampScroll()
}

func (v *timelineView) clampCursor() {
	if rows := v.rows(); len(rows) > 0 && v.cursorRow >= len(rows) {
		v.cursorRow = len(rows) - 1
	}
	if v.cursorRow < 0 {
		v.cursorRow = 0
	}
	if v.cursorTick < 0 {
		v.cursorTick = 0
	}
	if v.cursorTick >= v.scale.Len() {
		v.cursorTick = v.scale.Len() - 1
	}
}

// taskUnderCursor returns the task whose bar covers the cursor cell.
func (v *timelineView) taskUnderCursor() (domain.Task, bool) {
	col := v.cursorTick * v.zoom.CellWidth()
	bar, ok := gantt.BarAt(v.bars(), col, v.cursorRow)
	if !ok {
		return domain.Task{}, false
	}
	return bar.Task, true
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *timelineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scheduleLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.clampCursor()
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadSchedule()

	case statusMsg:
		v.status = msg.text
		v.statusErr = msg.isErr
		return v, nil

	case tea.WindowSizeMsg:
		v.layout = gantt.ResolveLayout(msg.Width)
		v.zoom.SetLayout(v.layout)
		v.clampScroll()
		return v, nil

	case tea.MouseMsg:
		return v.handleMouse(msg)

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *timelineView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v.status = ""
	readOnly := v.state.ReadOnly()

	switch msg.String() {
	case "left", "h":
		if v.cursorTick > 0 {
			v.cursorTick--
			v.scrollToCursor()
		}
	case "right", "l":
		if v.cursorTick < v.scale.Len()-1 {
			v.cursorTick++
			v.scrollToCursor()
		}
	case "up", "k":
		if v.cursorRow > 0 {
			v.cursorRow--
		}
	case "down", "j":
		if v.cursorRow < len(v.rows())-1 {
			v.cursorRow++
		}
	case "pgup", "ctrl+b":
		v.scrollTick -= v.visibleTickCount()
		v.clampScroll()
	case "pgdown", "ctrl+f":
		v.scrollTick += v.visibleTickCount()
		v.clampScroll()
	case "g":
		v.cursorTick = v.scale.TodayIndex(v.today)
		v.scrollToCursor()

	case "+", "=":
		v.zoom.In()
		v.scrollToCursor()
	case "-", "_":
		v.zoom.Out()
		v.scrollToCursor()
	case "d":
		v.zoom.SetLevel(gantt.LevelDay)
		v.rebuildScale()
	case "w":
		v.zoom.SetLevel(gantt.LevelWeek)
		v.rebuildScale()
	case "m":
		v.zoom.SetLevel(gantt.LevelMonth)
		v.rebuildScale()

	case "enter":
		if task, ok := v.taskUnderCursor(); ok {
			if readOnly {
				return v, v.openTaskDetail(task)
			}
			return v, v.openTaskForm(&task)
		}
		v.toggleCursorPhase()

	case "tab":
		v.toggleCursorPhase()

	case "r":
		v.loading = true
		return v, v.loadSchedule()

	case "n":
		if readOnly {
			return v, nil
		}
		return v, v.createTaskAtCursor()
	case "p":
		if readOnly {
			return v, nil
		}
		return v, v.openPhaseForm(nil)
	case "e":
		if readOnly {
			return v, nil
		}
		if task, ok := v.taskUnderCursor(); ok {
			return v, v.openTaskForm(&task)
		}
		if phase, ok := v.phaseUnderCursor(); ok {
			return v, v.openPhaseForm(&phase)
		}
	case "c":
		if readOnly {
			return v, nil
		}
		if task, ok := v.taskUnderCursor(); ok {
			return v, v.completeTask(task.ID)
		}
	case "x":
		if readOnly {
			return v, nil
		}
		if task, ok := v.taskUnderCursor(); ok {
			return v, v.confirmDeleteTask(task)
		}
		if phase, ok := v.phaseUnderCursor(); ok {
			return v, v.confirmDeletePhase(phase)
		}

	case "[":
		if !readOnly {
			return v, v.nudgeTask(-1)
		}
	case "]":
		if !readOnly {
			return v, v.nudgeTask(1)
		}
	case "{":
		if !readOnly {
			return v, v.resizeTask(-1)
		}
	case "}":
		if !readOnly {
			return v, v.resizeTask(1)
		}
	}
	return v, nil
}

// handleMouse translates terminal coordinates into grid cells and feeds
// the gesture machine. Wheel events scroll the axis unless a gesture is
// live; everything else becomes press/motion/release.
func (v *timelineView) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if !v.gesture.Active() {
			v.scrollTick--
			v.clampScroll()
		}
		return v, nil
	case tea.MouseButtonWheelDown:
		if !v.gesture.Active() {
			v.scrollTick++
			v.clampScroll()
		}
		return v, nil
	}

	col, row, onGrid := v.gridCell(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !onGrid {
			return v, nil
		}
		v.status = ""
		v.cursorRow = row
		v.cursorTick = col / v.zoom.CellWidth()
		bar, onBar := gantt.BarAt(v.bars(), col, row)
		switch {
		case onBar && v.state.ReadOnly():
			// Client mode keeps bar taps so the detail pane stays
			// reachable. Resize never arms and motion is dropped
			// below, so the press cannot become a drag.
			v.gesture.PressBar(bar.Task, col, false)
		case onBar:
			v.gesture.PressBar(bar.Task, col, bar.OnRightEdge(col, v.zoom.CellWidth()))
		case !v.state.ReadOnly():
			v.gesture.PressCell(col/v.zoom.CellWidth(), row, col)
		}

	case tea.MouseActionMotion:
		if !v.gesture.Active() || v.state.ReadOnly() {
			return v, nil
		}
		v.gesture.Motion(v.state.Store, col, v.zoom.CellWidth())

	case tea.MouseActionRelease:
		if !v.gesture.Active() {
			return v, nil
		}
		result := v.gesture.Release(col)
		return v.applyGestureResult(result)
	}
	return v, nil
}

// gridCell converts terminal coordinates to an absolute grid column and
// row index, reporting whether the point is inside the grid at all.
func (v *timelineView) gridCell(x, y int) (col, row int, onGrid bool) {
	x0 := v.layout.SidebarWidth + v.layout.Gap
	y0 := appHeaderLines + v.layout.HeaderHeight

	col = x - x0 + v.scrollTick*v.zoom.CellWidth()
	row = (y - y0) / v.layout.RowHeight

	onGrid = x >= x0 && y >= y0 && row < len(v.rows()) && col >= 0 &&
		col < v.scale.Len()*v.zoom.CellWidth()
	return col, row, onGrid
}

func (v *timelineView) applyGestureResult(result gantt.Result) (tea.Model, tea.Cmd) {
	switch result.Kind {
	case gantt.ResultTapTask:
		task, ok := v.state.Store.Task(result.TaskID)
		if !ok {
			return v, nil
		}
		if v.state.ReadOnly() {
			return v, v.openTaskDetail(task)
		}
		return v, v.openTaskForm(&task)

	case gantt.ResultTapCell:
		rows := v.rows()
		if result.Row < 0 || result.Row >= len(rows) {
			return v, nil
		}
		if result.Col < 0 || result.Col >= v.scale.Len() {
			return v, nil
		}
		phase := rows[result.Row].Phase
		day := v.scale.Ticks[result.Col]
		return v, v.createTaskAt(phase, day)

	case gantt.ResultCommitTask:
		return v, v.commitTask(result.TaskID)
	}
	return v, nil
}

// ── cursor-addressed operations ──────────────────────────────────────────────

func (v *timelineView) phaseUnderCursor() (domain.Phase, bool) {
	rows := v.rows()
	if v.cursorRow < 0 || v.cursorRow >= len(rows) {
		return domain.Phase{}, false
	}
	return rows[v.cursorRow].Phase, true
}

// toggleCursorPhase expands or collapses the main phase on the cursor
// row. On a sub-phase row it collapses the parent.
func (v *timelineView) toggleCursorPhase() {
	phase, ok := v.phaseUnderCursor()
	if !ok {
		return
	}
	id := phase.ID
	if !phase.IsMain() && phase.ParentPhaseID != nil {
		id = *phase.ParentPhaseID
	}
	v.expanded[id] = !v.expanded[id]
	v.clampCursor()
}

func (v *timelineView) createTaskAtCursor() tea.Cmd {
	phase, ok := v.phaseUnderCursor()
	if !ok {
		return reportStatus("no phase row under the cursor", true)
	}
	if v.cursorTick < 0 || v.cursorTick >= v.scale.Len() {
		return nil
	}
	return v.createTaskAt(phase, v.scale.Ticks[v.cursorTick])
}

func (v *timelineView) createTaskAt(phase domain.Phase, day time.Time) tea.Cmd {
	store := v.state.Store
	return func() tea.Msg {
		if _, err := store.CreateTaskAt(context.Background(), phase, day); err != nil {
			return statusMsg{text: fmt.Sprintf("create task: %v", err), isErr: true}
		}
		return statusMsg{text: "task created"}
	}
}

func (v *timelineView) commitTask(id string) tea.Cmd {
	store := v.state.Store
	return func() tea.Msg {
		if err := store.CommitTask(context.Background(), id); err != nil {
			return statusMsg{text: fmt.Sprintf("save failed: %v", err), isErr: true}
		}
		return statusMsg{text: "saved"}
	}
}

func (v *timelineView) completeTask(id string) tea.Cmd {
	store := v.state.Store
	return func() tea.Msg {
		if err := store.MarkTaskComplete(context.Background(), id); err != nil {
			return statusMsg{text: fmt.Sprintf("complete task: %v", err), isErr: true}
		}
		return statusMsg{text: "task completed"}
	}
}

// nudgeTask shifts the task under the cursor by whole days and commits.
func (v *timelineView) nudgeTask(days int) tea.Cmd {
	task, ok := v.taskUnderCursor()
	if !ok {
		return nil
	}
	v.state.Store.ShiftTask(task.ID, task.StartDate.AddDate(0, 0, days))
	return v.commitTask(task.ID)
}

// resizeTask grows or shrinks the task under the cursor and commits.
func (v *timelineView) resizeTask(days int) tea.Cmd {
	task, ok := v.taskUnderCursor()
	if !ok {
		return nil
	}
	v.state.Store.ResizeTask(task.ID, task.Duration+days)
	return v.commitTask(task.ID)
}

func (v *timelineView) confirmDeleteTask(task domain.Task) tea.Cmd {
	store := v.state.Store
	prompt := fmt.Sprintf("Delete task %q?", task.Category)
	return confirmWizardCmd(v.state, prompt, func() tea.Cmd {
		return func() tea.Msg {
			if err := store.DeleteTask(context.Background(), task.ID); err != nil {
				return statusMsg{text: fmt.Sprintf("delete task: %v", err), isErr: true}
			}
			return statusMsg{text: "task deleted"}
		}
	})
}

// tasksUnderPhase counts the tasks a phase delete would take with it:
// tasks on the phase itself plus tasks on any of its sub-phases.
func (v *timelineView) tasksUnderPhase(phaseID string) int {
	doomed := map[string]bool{phaseID: true}
	for _, p := range v.state.Store.Phases() {
		if p.ParentPhaseID != nil && *p.ParentPhaseID == phaseID {
			doomed[p.ID] = true
		}
	}
	n := 0
	for _, t := range v.state.Store.Tasks() {
		if doomed[t.PhaseID] {
			n++
		}
	}
	return n
}

func (v *timelineView) confirmDeletePhase(phase domain.Phase) tea.Cmd {
	store := v.state.Store
	var prompt string
	switch n := v.tasksUnderPhase(phase.ID); n {
	case 0:
		prompt = fmt.Sprintf("Delete phase %q?", phase.Name)
	case 1:
		prompt = fmt.Sprintf("Delete phase %q and its 1 scheduled task?", phase.Name)
	default:
		prompt = fmt.Sprintf("Delete phase %q and its %d scheduled tasks?", phase.Name, n)
	}
	return confirmWizardCmd(v.state, prompt, func() tea.Cmd {
		return func() tea.Msg {
			if err := store.DeletePhase(context.Background(), phase.ID); err != nil {
				return statusMsg{text: fmt.Sprintf("delete phase: %v", err), isErr: true}
			}
			return statusMsg{text: "phase deleted"}
		}
	})
}

func (v *timelineView) openTaskForm(task *domain.Task) tea.Cmd {
	return startTaskWizard(v.state, task)
}

func (v *timelineView) openTaskDetail(task domain.Task) tea.Cmd {
	return pushView(newTaskDetailView(v.state, task))
}

func (v *timelineView) openPhaseForm(phase *domain.Phase) tea.Cmd {
	return startPhaseWizard(v.state, phase)
}
