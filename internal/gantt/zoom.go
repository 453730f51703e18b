package gantt

// Level is the timeline's temporal granularity.
type Level string

const (
	LevelDay   Level = "day"
	LevelWeek  Level = "week"
	LevelMonth Level = "month"
)

// zoomStep is how many columns a single zoom in/out adds or removes.
const zoomStep = 1

// levelFraction returns the cell width multiplier applied to the layout
// default when switching granularity. Coarser levels pack more time into
// each tick, so cells shrink.
func levelFraction(l Level) float64 {
	switch l {
	case LevelWeek:
		return 0.6
	case LevelMonth:
		return 0.4
	default:
		return 1.0
	}
}

// Zoom owns the current granularity level and the cell width in columns.
// Cell width is always within [MinCellWidth, MaxCellWidth]; a zero or
// negative width is impossible by construction.
type Zoom struct {
	level     Level
	cellWidth int
	layout    Layout
}

// NewZoom creates a Zoom at day level with the layout's default width.
func NewZoom(layout Layout) Zoom {
	z := Zoom{level: LevelDay, layout: layout}
	z.cellWidth = z.clamp(layout.DefaultCellWidth)
	return z
}

func (z *Zoom) Level() Level   { return z.level }
func (z *Zoom) CellWidth() int { return z.cellWidth }

// SetLayout swaps in new layout bounds (terminal resize) and re-clamps.
func (z *Zoom) SetLayout(layout Layout) {
	z.layout = layout
	z.cellWidth = z.clamp(z.cellWidth)
}

// In widens cells by one step, clamped to the layout maximum.
func (z *Zoom) In() {
	z.cellWidth = z.clamp(z.cellWidth + zoomStep)
}

// Out narrows cells by one step, clamped to the layout minimum.
func (z *Zoom) Out() {
	z.cellWidth = z.clamp(z.cellWidth - zoomStep)
}

// SetLevel switches granularity and recomputes the cell width as a
// level-dependent fraction of the layout default.
func (z *Zoom) SetLevel(level Level) {
	switch level {
	case LevelDay, LevelWeek, LevelMonth:
	default:
		return
	}
	z.level = level
	w := int(float64(z.layout.DefaultCellWidth) * levelFraction(level))
	z.cellWidth = z.clamp(w)
}

func (z *Zoom) clamp(w int) int {
	if w < z.layout.MinCellWidth {
		return z.layout.MinCellWidth
	}
	if w > z.layout.MaxCellWidth {
		return z.layout.MaxCellWidth
	}
	return w
}
