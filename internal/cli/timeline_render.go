package cli

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mustafashaheen1/girder/internal/cli/formatter"
	"github.com/mustafashaheen1/girder/internal/gantt"
)

var (
	styleCursor      = lipgloss.NewStyle().Reverse(true)
	styleTodayMarker = formatter.StyleYellow
	styleCompleted   = lipgloss.NewStyle().Foreground(formatter.ColorDim).Strikethrough(true)
)

func (v *timelineView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading schedule...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	rows := v.rows()
	if len(rows) == 0 {
		return "\n  " + formatter.Dim("No phases yet. Press p to add one.")
	}

	var b strings.Builder
	b.WriteString(v.renderTickHeader())

	bars := v.bars()
	for i, row := range rows {
		b.WriteString(v.renderSidebarCell(row, i == v.cursorRow))
		b.WriteString(strings.Repeat(" ", v.layout.Gap))
		b.WriteString(v.renderGridRow(bars, i))
		b.WriteByte('\n')
	}

	if v.status != "" {
		b.WriteByte('\n')
		if v.statusErr {
			b.WriteString("  " + formatter.StyleRed.Render(v.status))
		} else {
			b.WriteString("  " + formatter.StyleGreen.Render(v.status))
		}
	}
	return b.String()
}

// renderTickHeader draws the two-line date axis: a month row that labels
// each month boundary, and a tick row with one label per visible tick.
func (v *timelineView) renderTickHeader() string {
	cw := v.zoom.CellWidth()
	n := v.visibleTickCount()
	sidebarPad := strings.Repeat(" ", v.layout.SidebarWidth+v.layout.Gap)

	var months, ticks strings.Builder
	prevMonth := time.Month(0)
	for i := 0; i < n; i++ {
		tickIdx := v.scrollTick + i
		if tickIdx >= v.scale.Len() {
			break
		}
		t := v.scale.Ticks[tickIdx]

		monthCell := strings.Repeat(" ", cw)
		if t.Month() != prevMonth {
			monthCell = padCell(t.Format("Jan"), cw)
			prevMonth = t.Month()
		}
		months.WriteString(formatter.Dim(monthCell))

		var label string
		switch v.zoom.Level() {
		case gantt.LevelMonth:
			label = t.Format("Jan")
		default:
			label = t.Format("2")
		}
		cell := padCell(label, cw)
		if tickIdx == v.scale.TodayIndex(v.today) {
			ticks.WriteString(styleTodayMarker.Render(cell))
		} else {
			ticks.WriteString(formatter.Dim(cell))
		}
	}

	return sidebarPad + months.String() + "\n" + sidebarPad + ticks.String() + "\n"
}

// renderSidebarCell draws one phase label, indented for sub-phases, with
// an expansion indicator on main phases that have children.
func (v *timelineView) renderSidebarCell(row gantt.Row, isCursorRow bool) string {
	width := v.layout.SidebarWidth
	pad := strings.Repeat(" ", v.layout.Padding)

	indicator := "  "
	if row.Depth == 0 {
		if v.hasChildren(row.Phase.ID) {
			if v.expanded[row.Phase.ID] {
				indicator = "▾ "
			} else {
				indicator = "▸ "
			}
		}
	} else {
		indicator = "  · "
	}

	name := row.Phase.Name
	nameRunes := []rune(name)
	maxName := v.layout.LabelWidth - lipgloss.Width(indicator)
	if maxName > 0 && len(nameRunes) > maxName {
		name = string(nameRunes[:maxName-1]) + "…"
	}

	label := pad + indicator + name
	if gap := width - lipgloss.Width(label); gap > 0 {
		label += strings.Repeat(" ", gap)
	} else {
		label = lipgloss.NewStyle().MaxWidth(width).Render(label)
	}

	style := formatter.PhaseStyle(row.Phase.Color)
	if row.Depth == 0 {
		style = style.Bold(true)
	}
	if isCursorRow {
		return styleCursor.Render(label)
	}
	return style.Render(label)
}

func (v *timelineView) hasChildren(phaseID string) bool {
	for _, p := range v.visiblePhases() {
		if p.ParentPhaseID != nil && *p.ParentPhaseID == phaseID {
			return true
		}
	}
	return false
}

// renderGridRow draws the date grid cells for one phase row, placing
// task bar segments and the today marker.
func (v *timelineView) renderGridRow(bars []gantt.Bar, rowIdx int) string {
	cw := v.zoom.CellWidth()
	n := v.visibleTickCount()
	todayIdx := v.scale.TodayIndex(v.today)

	var b strings.Builder
	for i := 0; i < n; i++ {
		tickIdx := v.scrollTick + i
		if tickIdx >= v.scale.Len() {
			break
		}
		col := tickIdx * cw
		isCursor := rowIdx == v.cursorRow && tickIdx == v.cursorTick

		bar, onBar := gantt.BarAt(bars, col, rowIdx)
		if !onBar {
			cell := strings.Repeat(" ", cw)
			if tickIdx == todayIdx {
				cell = styleTodayMarker.Render("┊") + strings.Repeat(" ", cw-1)
			}
			if isCursor {
				cell = styleCursor.Render(strings.Repeat(" ", cw))
			}
			b.WriteString(cell)
			continue
		}

		cell := v.barCellText(bar, tickIdx)
		style := formatter.BarStyle(bar.Task.Color)
		if bar.Task.Completed {
			style = styleCompleted
		}
		if isCursor {
			style = style.Reverse(true)
		}
		b.WriteString(style.Render(cell))
	}
	return b.String()
}

// barCellText returns the cw-wide slice of the bar's label that falls on
// the given tick. The label starts on the bar's first cell and is padded
// with the bar body across the rest.
func (v *timelineView) barCellText(bar gantt.Bar, tickIdx int) string {
	cw := v.zoom.CellWidth()

	label := bar.Task.Category
	if bar.Task.Completed {
		label = "✓ " + label
	}

	span := bar.EndIdx - bar.StartIdx + 1
	total := span * cw

	runes := []rune(label)
	if len(runes) > total {
		runes = runes[:total]
	}
	for len(runes) < total {
		runes = append(runes, '░')
	}

	offset := (tickIdx - bar.StartIdx) * cw
	if offset < 0 || offset >= len(runes) {
		return strings.Repeat("░", cw)
	}
	end := offset + cw
	if end > len(runes) {
		end = len(runes)
	}
	cell := string(runes[offset:end])
	if pad := cw - (end - offset); pad > 0 {
		cell += strings.Repeat("░", pad)
	}
	return cell
}

// padCell right-pads (or truncates) a label to the cell width.
func padCell(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}
