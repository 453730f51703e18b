package gantt

import (
	"github.com/mustafashaheen1/girder/internal/domain"
)

// Bar is the resolved screen geometry for one task: which row it sits on,
// which tick span it covers, and the cell rectangle those translate to.
// Left/Width are columns relative to the grid origin, Top/Height lines.
type Bar struct {
	Task     domain.Task
	RowIndex int
	StartIdx int
	EndIdx   int

	Left   int
	Width  int
	Top    int
	Height int
}

// MapTasks resolves the bar geometry for every renderable task.
// A task is dropped (not an error) when its phase has no row in the
// current row set, or when its resolved span collapses (entirely
// outside the window). The mapping is recomputed whenever tasks, the
// axis, the cell width, or the row set change; it holds no state.
func MapTasks(tasks []domain.Task, rows []Row, ts Timescale, cellWidth, rowHeight int) []Bar {
	bars := make([]Bar, 0, len(tasks))
	for _, t := range tasks {
		rowIdx, ok := RowIndex(rows, t.PhaseID)
		if !ok {
			continue
		}
		startIdx := ts.StartIndex(t.StartDate)
		endIdx := ts.EndIndex(t.EndDate)
		if startIdx > endIdx {
			continue
		}

		width := (endIdx - startIdx + 1) * cellWidth
		if width < cellWidth {
			width = cellWidth
		}
		bars = append(bars, Bar{
			Task:     t,
			RowIndex: rowIdx,
			StartIdx: startIdx,
			EndIdx:   endIdx,
			Left:     startIdx * cellWidth,
			Width:    width,
			Top:      rowIdx * rowHeight,
			Height:   rowHeight,
		})
	}
	return bars
}

// BarAt returns the bar covering the given grid cell, if any. Column is
// in columns from the grid origin, row in row indexes. When bars overlap
// the later one in task order wins, matching draw order.
func BarAt(bars []Bar, col, rowIdx int) (Bar, bool) {
	for i := len(bars) - 1; i >= 0; i-- {
		b := bars[i]
		if b.RowIndex == rowIdx && col >= b.Left && col < b.Left+b.Width {
			return b, true
		}
	}
	return Bar{}, false
}

// OnRightEdge reports whether a column sits on the bar's final cell,
// the resize handle.
func (b Bar) OnRightEdge(col, cellWidth int) bool {
	edge := b.Left + b.Width - cellWidth
	return col >= edge && col < b.Left+b.Width
}
