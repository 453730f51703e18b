package gantt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewZoom_StartsAtDayDefault(t *testing.T) {
	layout := ResolveLayout(100)
	z := NewZoom(layout)

	assert.Equal(t, LevelDay, z.Level())
	assert.Equal(t, layout.DefaultCellWidth, z.CellWidth())
}

func TestZoomIn_NeverExceedsMax(t *testing.T) {
	layout := ResolveLayout(100)
	z := NewZoom(layout)

	for i := 0; i < 50; i++ {
		z.In()
		assert.LessOrEqual(t, z.CellWidth(), layout.MaxCellWidth)
	}
	assert.Equal(t, layout.MaxCellWidth, z.CellWidth())
}

func TestZoomOut_NeverBelowMin(t *testing.T) {
	layout := ResolveLayout(100)
	z := NewZoom(layout)

	for i := 0; i < 50; i++ {
		z.Out()
		assert.GreaterOrEqual(t, z.CellWidth(), layout.MinCellWidth)
	}
	assert.Equal(t, layout.MinCellWidth, z.CellWidth())
}

func TestSetLevel_RecomputesCellWidth(t *testing.T) {
	layout := ResolveLayout(200) // wide: default 4, min 2, max 8
	z := NewZoom(layout)

	z.SetLevel(LevelWeek)
	assert.Equal(t, LevelWeek, z.Level())
	assert.Equal(t, 2, z.CellWidth()) // 4 * 0.6 = 2.4 → 2

	z.SetLevel(LevelMonth)
	assert.Equal(t, LevelMonth, z.Level())
	assert.Equal(t, 2, z.CellWidth()) // 4 * 0.4 = 1.6 → 1, clamped to min 2

	z.SetLevel(LevelDay)
	assert.Equal(t, layout.DefaultCellWidth, z.CellWidth())
}

func TestSetLevel_IgnoresUnknownLevel(t *testing.T) {
	z := NewZoom(ResolveLayout(100))
	z.SetLevel(Level("quarter"))
	assert.Equal(t, LevelDay, z.Level())
}

func TestZoom_BoundsHoldUnderArbitrarySequences(t *testing.T) {
	layout := ResolveLayout(100)
	z := NewZoom(layout)

	ops := []func(){
		z.In, z.Out, z.In, z.In, z.Out, z.Out, z.Out,
		func() { z.SetLevel(LevelMonth) },
		z.In, z.In, z.In, z.In, z.In, z.In, z.In, z.In, z.In,
		func() { z.SetLevel(LevelWeek) },
		z.Out, z.Out, z.Out, z.Out, z.Out,
		func() { z.SetLevel(LevelDay) },
	}
	for _, op := range ops {
		op()
		assert.GreaterOrEqual(t, z.CellWidth(), layout.MinCellWidth)
		assert.LessOrEqual(t, z.CellWidth(), layout.MaxCellWidth)
	}
}

func TestSetLayout_ReclampsOnResize(t *testing.T) {
	z := NewZoom(ResolveLayout(200))
	for i := 0; i < 10; i++ {
		z.In()
	}
	assert.Equal(t, 8, z.CellWidth())

	narrow := ResolveLayout(60) // max 4
	z.SetLayout(narrow)
	assert.Equal(t, narrow.MaxCellWidth, z.CellWidth())
}
