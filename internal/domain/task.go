package domain

import (
	"fmt"
	"time"
)

// DefaultTaskSpanDays is the span given to a task created by tapping a
// grid cell, inclusive of the tapped day.
const DefaultTaskSpanDays = 3

// Task is a date-bounded unit of scheduled work belonging to exactly one
// phase. StartDate/EndDate and Duration are a dual representation of the
// same span: EndDate = StartDate + (Duration-1) days, Duration >= 1,
// inclusive of both endpoints. Every mutation goes through SetSpan so the
// two can never drift apart.
type Task struct {
	ID              string     `json:"id"`
	ProjectID       string     `json:"projectId"`
	PhaseID         string     `json:"phaseId"`
	Category        string     `json:"category"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         time.Time  `json:"endDate"`
	Duration        int        `json:"duration"`
	WorkType        WorkType   `json:"workType"`
	Color           string     `json:"color"`
	VisibleToClient bool       `json:"visibleToClient"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	Notes           string     `json:"notes"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// NormalizeDate truncates a timestamp to midnight UTC. All schedule
// arithmetic runs on normalized dates.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SpanDays returns the inclusive day count between two dates, minimum 1.
func SpanDays(start, end time.Time) int {
	days := int(NormalizeDate(end).Sub(NormalizeDate(start)).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// SetSpan sets the task's window from a start date and an inclusive day
// count, keeping StartDate, EndDate and Duration consistent.
func (t *Task) SetSpan(start time.Time, duration int) {
	if duration < 1 {
		duration = 1
	}
	t.StartDate = NormalizeDate(start)
	t.Duration = duration
	t.EndDate = t.StartDate.AddDate(0, 0, duration-1)
}

// ShiftTo moves the task to a new start date, preserving its duration.
func (t *Task) ShiftTo(newStart time.Time) {
	t.SetSpan(newStart, t.Duration)
}

// ResizeTo changes the task's duration, preserving its start date.
func (t *Task) ResizeTo(duration int) {
	t.SetSpan(t.StartDate, duration)
}

// SyncDuration recomputes Duration from the stored dates. Used when a
// record arrives from the store with both dates authoritative.
func (t *Task) SyncDuration() {
	t.StartDate = NormalizeDate(t.StartDate)
	t.EndDate = NormalizeDate(t.EndDate)
	t.Duration = SpanDays(t.StartDate, t.EndDate)
}

// MarkComplete flips the task to completed. CompletedAt is written
// exactly once; re-marking an already completed task keeps the
// original timestamp.
func (t *Task) MarkComplete(now time.Time) {
	t.Completed = true
	if t.CompletedAt == nil {
		ts := now.UTC()
		t.CompletedAt = &ts
	}
}

// Validate checks the fields a task must carry before it can be stored.
func (t *Task) Validate() error {
	if t.Category == "" {
		return fmt.Errorf("task category is required")
	}
	if t.PhaseID == "" {
		return fmt.Errorf("task must belong to a phase")
	}
	if t.StartDate.IsZero() || t.EndDate.IsZero() {
		return fmt.Errorf("task start and end dates are required")
	}
	if t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("task end date is before its start date")
	}
	if t.WorkType != "" && !ValidWorkTypes[string(t.WorkType)] {
		return fmt.Errorf("unknown work type %q", t.WorkType)
	}
	return nil
}
