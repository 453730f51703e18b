// Package gantt implements the interactive schedule timeline engine:
// responsive layout constants, zoom state, the date axis, phase-row
// flattening, task bar geometry, and the drag/resize/tap gesture machine.
// Everything here is synchronous, allocation-light state over slices,
// recomputed wholesale on every relevant change.
package gantt

// Breakpoint classifies the terminal width into one of three layout tiers.
type Breakpoint int

const (
	BreakNarrow Breakpoint = iota // < 80 columns
	BreakMedium                   // 80..119 columns
	BreakWide                     // >= 120 columns
)

// Layout holds the breakpoint-dependent rendering constants. All widths
// are terminal columns, all heights terminal lines.
type Layout struct {
	Breakpoint Breakpoint

	SidebarWidth int // phase name column
	RowHeight    int // lines per phase row
	HeaderHeight int // tick label rows above the grid

	DefaultCellWidth int // columns per tick at 1.0x zoom
	MinCellWidth     int
	MaxCellWidth     int

	LabelWidth int // max visible characters of a phase name
	Padding    int // columns of padding inside the sidebar
	Gap        int // columns between sidebar and grid
}

// BreakpointFor maps a terminal width to its layout tier.
func BreakpointFor(width int) Breakpoint {
	switch {
	case width < 80:
		return BreakNarrow
	case width < 120:
		return BreakMedium
	default:
		return BreakWide
	}
}

// ResolveLayout derives the layout constants for a terminal width.
// It is a pure function: same width, same layout. Constants are
// monotonic across tiers; a wider terminal never produces smaller
// interactive targets than a narrower one.
func ResolveLayout(width int) Layout {
	switch BreakpointFor(width) {
	case BreakNarrow:
		return Layout{
			Breakpoint:       BreakNarrow,
			SidebarWidth:     16,
			RowHeight:        1,
			HeaderHeight:     2,
			DefaultCellWidth: 2,
			MinCellWidth:     1,
			MaxCellWidth:     4,
			LabelWidth:       13,
			Padding:          1,
			Gap:              1,
		}
	case BreakMedium:
		return Layout{
			Breakpoint:       BreakMedium,
			SidebarWidth:     22,
			RowHeight:        1,
			HeaderHeight:     2,
			DefaultCellWidth: 3,
			MinCellWidth:     2,
			MaxCellWidth:     6,
			LabelWidth:       19,
			Padding:          1,
			Gap:              1,
		}
	default:
		return Layout{
			Breakpoint:       BreakWide,
			SidebarWidth:     28,
			RowHeight:        1,
			HeaderHeight:     2,
			DefaultCellWidth: 4,
			MinCellWidth:     2,
			MaxCellWidth:     8,
			LabelWidth:       25,
			Padding:          1,
			Gap:              2,
		}
	}
}
