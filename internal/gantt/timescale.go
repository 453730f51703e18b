package gantt

import (
	"time"

	"github.com/mustafashaheen1/girder/internal/domain"
)

// The visible window is fixed relative to "today": one month of history
// and six months of future schedule.
const (
	windowMonthsBack  = 1
	windowMonthsAhead = 6
)

// Timescale is the date axis: an ordered, gapless, strictly increasing
// sequence of tick dates spanning the visible window, stepped by one day,
// seven days, or one calendar month depending on the zoom level.
type Timescale struct {
	Level Level
	Ticks []time.Time
}

// NewTimescale builds the axis for the window around the given day.
// The result is never empty.
func NewTimescale(today time.Time, level Level) Timescale {
	day := domain.NormalizeDate(today)
	start := day.AddDate(0, -windowMonthsBack, 0)
	end := day.AddDate(0, windowMonthsAhead, 0)

	var ticks []time.Time
	switch level {
	case LevelWeek:
		for t := start; !t.After(end); t = t.AddDate(0, 0, 7) {
			ticks = append(ticks, t)
		}
	case LevelMonth:
		for t := start; !t.After(end); t = t.AddDate(0, 1, 0) {
			ticks = append(ticks, t)
		}
	default:
		for t := start; !t.After(end); t = t.AddDate(0, 0, 1) {
			ticks = append(ticks, t)
		}
	}
	return Timescale{Level: level, Ticks: ticks}
}

// Len returns the number of ticks on the axis.
func (ts Timescale) Len() int { return len(ts.Ticks) }

// anchorIndex returns the index of the last tick at or before the date,
// or -1 if the date precedes the entire axis.
func (ts Timescale) anchorIndex(date time.Time) int {
	d := domain.NormalizeDate(date)
	// Ticks are sorted ascending; find the first tick strictly after d
	// and step back one.
	lo, hi := 0, len(ts.Ticks)
	for lo < hi {
		mid := (lo + hi) / 2
		if ts.Ticks[mid].After(d) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo - 1
}

// StartIndex resolves the tick a task bar is anchored to: the last tick
// at or before the start date, clamped to the first tick for tasks that
// begin before the window.
func (ts Timescale) StartIndex(start time.Time) int {
	idx := ts.anchorIndex(start)
	if idx < 0 {
		return 0
	}
	return idx
}

// EndIndex resolves the tick a task bar ends on: the last tick at or
// before the end date. Tasks extending past the window land on the final
// tick; a task that ends before the window entirely yields -1, which the
// position mapper treats as "not rendered".
func (ts Timescale) EndIndex(end time.Time) int {
	return ts.anchorIndex(end)
}

// TodayIndex returns the tick under the given day, for the today marker.
func (ts Timescale) TodayIndex(today time.Time) int {
	return ts.StartIndex(today)
}
