package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mustafashaheen1/girder/internal/domain"
	"github.com/mustafashaheen1/girder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalGateway_CreatePhase_AssignsIDAndTimestamps(t *testing.T) {
	gw := NewLocalGateway(testutil.NewTestDB(t))
	ctx := context.Background()

	created, err := gw.CreatePhase(ctx, &domain.Phase{ProjectID: "proj-1", Name: "Framing", VisibleToClient: true})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	phases, err := gw.FetchPhases(ctx, "proj-1")
	require.NoError(t, err)
	require.Len(t, phases, 1)
	assert.Equal(t, created.ID, phases[0].ID)
}

func TestLocalGateway_TaskRoundTrip(t *testing.T) {
	gw := NewLocalGateway(testutil.NewTestDB(t))
	ctx := context.Background()

	phase, err := gw.CreatePhase(ctx, &domain.Phase{ProjectID: "proj-1", Name: "Framing"})
	require.NoError(t, err)

	task := domain.Task{ProjectID: "proj-1", PhaseID: phase.ID, Category: "Stud walls", WorkType: domain.WorkInHouse}
	task.SetSpan(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 3)

	created, err := gw.CreateTask(ctx, &task)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	created.ShiftTo(time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC))
	updated, err := gw.UpdateTask(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), updated.StartDate)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), updated.EndDate)

	require.NoError(t, gw.DeleteTask(ctx, created.ID))
	tasks, err := gw.FetchTasks(ctx, "proj-1")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestLocalGateway_CreateTask_UnknownPhase(t *testing.T) {
	gw := NewLocalGateway(testutil.NewTestDB(t))

	task := domain.Task{ProjectID: "proj-1", PhaseID: "missing", Category: "Orphan"}
	task.SetSpan(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 1)

	_, err := gw.CreateTask(context.Background(), &task)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalGateway_DeletePhase_CascadesSubPhasesAndTasks(t *testing.T) {
	gw := NewLocalGateway(testutil.NewTestDB(t))
	ctx := context.Background()

	main, err := gw.CreatePhase(ctx, &domain.Phase{ProjectID: "proj-1", Name: "Framing"})
	require.NoError(t, err)
	sub, err := gw.CreatePhase(ctx, &domain.Phase{ProjectID: "proj-1", Name: "Walls", ParentPhaseID: &main.ID})
	require.NoError(t, err)
	keep, err := gw.CreatePhase(ctx, &domain.Phase{ProjectID: "proj-1", Name: "Electrical"})
	require.NoError(t, err)

	for _, phaseID := range []string{main.ID, sub.ID, keep.ID} {
		task := domain.Task{ProjectID: "proj-1", PhaseID: phaseID, Category: "Work"}
		task.SetSpan(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 2)
		_, err := gw.CreateTask(ctx, &task)
		require.NoError(t, err)
	}

	require.NoError(t, gw.DeletePhase(ctx, main.ID))

	phases, err := gw.FetchPhases(ctx, "proj-1")
	require.NoError(t, err)
	require.Len(t, phases, 1)
	assert.Equal(t, "Electrical", phases[0].Name)

	tasks, err := gw.FetchTasks(ctx, "proj-1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID, tasks[0].PhaseID)
}
