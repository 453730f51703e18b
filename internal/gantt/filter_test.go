package gantt

import (
	"testing"

	"github.com/mustafashaheen1/girder/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolveViewMode(t *testing.T) {
	// Explicit mode wins over the convenience flag.
	assert.Equal(t, ModeClient, ResolveViewMode(ModeClient, false))
	assert.Equal(t, ModeInternal, ResolveViewMode(ModeInternal, true))

	// Without an explicit mode the flag decides.
	assert.Equal(t, ModeClient, ResolveViewMode("", true))
	assert.Equal(t, ModeInternal, ResolveViewMode("", false))
	assert.Equal(t, ModeInternal, ResolveViewMode("bogus", false))
}

func TestViewModeReadOnly(t *testing.T) {
	assert.True(t, ModeClient.ReadOnly())
	assert.False(t, ModeInternal.ReadOnly())
}

func TestVisiblePhases_ClientModeFilters(t *testing.T) {
	shown := makePhase("shown", 1, nil)
	hidden := makePhase("hidden", 2, nil)
	hidden.VisibleToClient = false
	phases := []domain.Phase{shown, hidden}

	internal := VisiblePhases(phases, ModeInternal)
	assert.Len(t, internal, 2)

	client := VisiblePhases(phases, ModeClient)
	assert.Len(t, client, 1)
	assert.Equal(t, "shown", client[0].ID)
}

func TestVisibleTasks_ClientModeFilters(t *testing.T) {
	shown := makeTask("shown", "m1", date(2024, 3, 10), 3)
	hidden := makeTask("hidden", "m1", date(2024, 3, 10), 3)
	hidden.VisibleToClient = false
	tasks := []domain.Task{shown, hidden}

	assert.Len(t, VisibleTasks(tasks, ModeInternal), 2)

	client := VisibleTasks(tasks, ModeClient)
	assert.Len(t, client, 1)
	assert.Equal(t, "shown", client[0].ID)
}

func TestClientMode_HiddenPhaseHidesItsTasks(t *testing.T) {
	visible := makePhase("vis", 1, nil)
	hidden := makePhase("hid", 2, nil)
	hidden.VisibleToClient = false
	phases := []domain.Phase{visible, hidden}

	rows := BuildRows(VisiblePhases(phases, ModeClient), nil)

	// A client-visible task under a hidden phase has no row and is
	// dropped by the position mapper.
	orphanTask := makeTask("t1", "hid", date(2024, 3, 10), 3)
	ts := NewTimescale(date(2024, 3, 15), LevelDay)
	bars := MapTasks(VisibleTasks([]domain.Task{orphanTask}, ModeClient), rows, ts, 4, 1)
	assert.Empty(t, bars)
}
