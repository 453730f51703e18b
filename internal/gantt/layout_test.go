package gantt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreakpointFor(t *testing.T) {
	assert.Equal(t, BreakNarrow, BreakpointFor(0))
	assert.Equal(t, BreakNarrow, BreakpointFor(79))
	assert.Equal(t, BreakMedium, BreakpointFor(80))
	assert.Equal(t, BreakMedium, BreakpointFor(119))
	assert.Equal(t, BreakWide, BreakpointFor(120))
	assert.Equal(t, BreakWide, BreakpointFor(300))
}

func TestResolveLayout_Deterministic(t *testing.T) {
	assert.Equal(t, ResolveLayout(100), ResolveLayout(100))
}

func TestResolveLayout_MonotonicAcrossTiers(t *testing.T) {
	narrow := ResolveLayout(60)
	medium := ResolveLayout(100)
	wide := ResolveLayout(200)

	// Wider terminals never produce smaller interactive targets.
	assert.GreaterOrEqual(t, medium.SidebarWidth, narrow.SidebarWidth)
	assert.GreaterOrEqual(t, wide.SidebarWidth, medium.SidebarWidth)
	assert.GreaterOrEqual(t, medium.DefaultCellWidth, narrow.DefaultCellWidth)
	assert.GreaterOrEqual(t, wide.DefaultCellWidth, medium.DefaultCellWidth)
	assert.GreaterOrEqual(t, medium.MinCellWidth, narrow.MinCellWidth)
	assert.GreaterOrEqual(t, wide.MinCellWidth, medium.MinCellWidth)
	assert.GreaterOrEqual(t, medium.MaxCellWidth, narrow.MaxCellWidth)
	assert.GreaterOrEqual(t, wide.MaxCellWidth, medium.MaxCellWidth)
	assert.GreaterOrEqual(t, medium.RowHeight, narrow.RowHeight)
	assert.GreaterOrEqual(t, wide.RowHeight, medium.RowHeight)
}

func TestResolveLayout_SaneBounds(t *testing.T) {
	for _, w := range []int{0, 79, 80, 119, 120, 500} {
		l := ResolveLayout(w)
		assert.Positive(t, l.MinCellWidth, "width %d", w)
		assert.GreaterOrEqual(t, l.DefaultCellWidth, l.MinCellWidth, "width %d", w)
		assert.GreaterOrEqual(t, l.MaxCellWidth, l.DefaultCellWidth, "width %d", w)
		assert.Positive(t, l.RowHeight, "width %d", w)
		assert.Positive(t, l.SidebarWidth, "width %d", w)
	}
}
