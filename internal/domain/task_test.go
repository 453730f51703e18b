package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSetSpan_KeepsDatesAndDurationConsistent(t *testing.T) {
	var task Task
	task.SetSpan(date(2024, 3, 10), 3)

	assert.Equal(t, date(2024, 3, 10), task.StartDate)
	assert.Equal(t, date(2024, 3, 12), task.EndDate)
	assert.Equal(t, 3, task.Duration)
	assert.Equal(t, task.Duration, SpanDays(task.StartDate, task.EndDate))
}

func TestSetSpan_MinimumOneDay(t *testing.T) {
	var task Task
	task.SetSpan(date(2024, 3, 10), 0)

	assert.Equal(t, 1, task.Duration)
	assert.Equal(t, task.StartDate, task.EndDate)
}

func TestSetSpan_NormalizesTimeOfDay(t *testing.T) {
	var task Task
	task.SetSpan(time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC), 2)

	assert.Equal(t, date(2024, 3, 10), task.StartDate)
	assert.Equal(t, date(2024, 3, 11), task.EndDate)
}

func TestShiftTo_PreservesDuration(t *testing.T) {
	var task Task
	task.SetSpan(date(2024, 3, 10), 3)

	task.ShiftTo(date(2024, 3, 12))

	assert.Equal(t, date(2024, 3, 12), task.StartDate)
	assert.Equal(t, date(2024, 3, 14), task.EndDate)
	assert.Equal(t, 3, task.Duration)
}

func TestResizeTo_PreservesStart(t *testing.T) {
	var task Task
	task.SetSpan(date(2024, 3, 10), 3)

	task.ResizeTo(4)

	assert.Equal(t, date(2024, 3, 10), task.StartDate)
	assert.Equal(t, date(2024, 3, 13), task.EndDate)
	assert.Equal(t, 4, task.Duration)
}

func TestResizeTo_ClampsToOneDay(t *testing.T) {
	var task Task
	task.SetSpan(date(2024, 3, 10), 3)

	task.ResizeTo(-5)

	assert.Equal(t, 1, task.Duration)
	assert.Equal(t, date(2024, 3, 10), task.EndDate)
}

func TestSyncDuration_RecomputesFromDates(t *testing.T) {
	task := Task{
		StartDate: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 14, 17, 0, 0, 0, time.UTC),
		Duration:  99, // stale
	}

	task.SyncDuration()

	assert.Equal(t, 5, task.Duration)
	assert.Equal(t, date(2024, 3, 10), task.StartDate)
}

func TestSpanDays_Inclusive(t *testing.T) {
	assert.Equal(t, 1, SpanDays(date(2024, 3, 10), date(2024, 3, 10)))
	assert.Equal(t, 3, SpanDays(date(2024, 3, 10), date(2024, 3, 12)))
	// Inverted input never goes below one day.
	assert.Equal(t, 1, SpanDays(date(2024, 3, 12), date(2024, 3, 10)))
}

func TestMarkComplete_SetsTimestampOnce(t *testing.T) {
	var task Task
	task.SetSpan(date(2024, 3, 10), 3)

	first := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	task.MarkComplete(first)

	require.True(t, task.Completed)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, first, *task.CompletedAt)

	// A second mark must not overwrite the original timestamp.
	task.MarkComplete(first.Add(24 * time.Hour))
	assert.Equal(t, first, *task.CompletedAt)
}

func TestTaskValidate(t *testing.T) {
	valid := Task{PhaseID: "ph-1", Category: "Framing"}
	valid.SetSpan(date(2024, 3, 10), 3)
	assert.NoError(t, valid.Validate())

	noCategory := valid
	noCategory.Category = ""
	assert.Error(t, noCategory.Validate())

	noDates := Task{PhaseID: "ph-1", Category: "Framing"}
	assert.Error(t, noDates.Validate())

	inverted := valid
	inverted.EndDate = inverted.StartDate.AddDate(0, 0, -2)
	assert.Error(t, inverted.Validate())

	badWorkType := valid
	badWorkType.WorkType = "volunteer"
	assert.Error(t, badWorkType.Validate())

	subcontracted := valid
	subcontracted.WorkType = WorkSubcontractor
	assert.NoError(t, subcontracted.Validate())
}
