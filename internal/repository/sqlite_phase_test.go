package repository

import (
	"context"
	"testing"

	"github.com/mustafashaheen1/girder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePhaseRepo(db)
	ctx := context.Background()

	phase := testutil.NewTestPhase("proj-1", "Framing", testutil.WithPhaseColor("#e67e22"), testutil.WithPhaseOrder(2))
	require.NoError(t, repo.Create(ctx, phase))

	got, err := repo.GetByID(ctx, phase.ID)
	require.NoError(t, err)
	assert.Equal(t, "Framing", got.Name)
	assert.Equal(t, "#e67e22", got.Color)
	assert.Equal(t, 2, got.Order)
	assert.True(t, got.VisibleToClient)
	assert.Nil(t, got.ParentPhaseID)
}

func TestPhaseRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePhaseRepo(db)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPhaseRepo_ListByProject_OrderedByIndex(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePhaseRepo(db)
	ctx := context.Background()

	second := testutil.NewTestPhase("proj-1", "Electrical", testutil.WithPhaseOrder(2))
	first := testutil.NewTestPhase("proj-1", "Foundation", testutil.WithPhaseOrder(1))
	other := testutil.NewTestPhase("proj-2", "Demo", testutil.WithPhaseOrder(1))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, other))

	phases, err := repo.ListByProject(ctx, "proj-1")
	require.NoError(t, err)
	require.Len(t, phases, 2)
	assert.Equal(t, "Foundation", phases[0].Name)
	assert.Equal(t, "Electrical", phases[1].Name)
}

func TestPhaseRepo_SubPhaseRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePhaseRepo(db)
	ctx := context.Background()

	main := testutil.NewTestPhase("proj-1", "Framing")
	require.NoError(t, repo.Create(ctx, main))
	sub := testutil.NewTestPhase("proj-1", "Walls", testutil.WithParentPhase(main.ID))
	require.NoError(t, repo.Create(ctx, sub))

	got, err := repo.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ParentPhaseID)
	assert.Equal(t, main.ID, *got.ParentPhaseID)
	assert.False(t, got.IsMain())
}

func TestPhaseRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePhaseRepo(db)
	ctx := context.Background()

	phase := testutil.NewTestPhase("proj-1", "Framing")
	require.NoError(t, repo.Create(ctx, phase))

	phase.Name = "Rough Framing"
	phase.VisibleToClient = false
	require.NoError(t, repo.Update(ctx, phase))

	got, err := repo.GetByID(ctx, phase.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rough Framing", got.Name)
	assert.False(t, got.VisibleToClient)
}

func TestPhaseRepo_Update_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePhaseRepo(db)

	phase := testutil.NewTestPhase("proj-1", "Ghost")
	err := repo.Update(context.Background(), phase)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPhaseRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePhaseRepo(db)
	ctx := context.Background()

	phase := testutil.NewTestPhase("proj-1", "Framing")
	require.NoError(t, repo.Create(ctx, phase))
	require.NoError(t, repo.Delete(ctx, phase.ID))

	_, err := repo.GetByID(ctx, phase.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, phase.ID), ErrNotFound)
}
