package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Running again must succeed; ALTER TABLE duplicates are tolerated.
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"phases", "tasks"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_phases_project",
		"idx_phases_parent",
		"idx_tasks_project",
		"idx_tasks_phase",
		"idx_tasks_start",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestMigrate_TaskWorkTypeCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO phases (id, project_id, name, created_at, updated_at)
		VALUES ('ph1', 'p1', 'Framing', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO tasks (id, project_id, phase_id, category, start_date, end_date, work_type, created_at, updated_at)
		VALUES ('t1', 'p1', 'ph1', 'Walls', '2025-01-06', '2025-01-08', 'INVALID', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "invalid work_type should be rejected by CHECK constraint")

	_, err = db.Exec(`INSERT INTO tasks (id, project_id, phase_id, category, start_date, end_date, work_type, created_at, updated_at)
		VALUES ('t1', 'p1', 'ph1', 'Walls', '2025-01-06', '2025-01-08', 'subcontractor', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	assert.NoError(t, err)
}

func TestMigrate_TaskDurationCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO phases (id, project_id, name, created_at, updated_at)
		VALUES ('ph1', 'p1', 'Framing', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO tasks (id, project_id, phase_id, category, start_date, end_date, duration, created_at, updated_at)
		VALUES ('t1', 'p1', 'ph1', 'Walls', '2025-01-06', '2025-01-06', 0, '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "zero duration should be rejected by CHECK constraint")
}

func TestMigrate_PhaseCascadeDeletesTasks(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO phases (id, project_id, name, created_at, updated_at)
		VALUES ('ph1', 'p1', 'Framing', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO phases (id, project_id, name, parent_phase_id, created_at, updated_at)
		VALUES ('ph2', 'p1', 'Walls', 'ph1', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO tasks (id, project_id, phase_id, category, start_date, end_date, created_at, updated_at)
		VALUES ('t1', 'p1', 'ph2', 'Stud walls', '2025-01-06', '2025-01-08', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM phases WHERE id = 'ph1'`)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM phases`).Scan(&count))
	assert.Equal(t, 0, count, "sub-phase should cascade")
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&count))
	assert.Equal(t, 0, count, "tasks under the cascade should go too")
}

func TestMigrate_TasksNotesColumn(t *testing.T) {
	db := openTestDB(t)

	rows, err := db.Query(`PRAGMA table_info(tasks)`)
	require.NoError(t, err)
	defer rows.Close()

	found := false
	for rows.Next() {
		var cid int
		var name, typ string
		var notNull, pk int
		var dflt sql.NullString
		require.NoError(t, rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk))
		if name == "notes" {
			found = true
		}
	}
	assert.True(t, found, "tasks table should have notes column")
}
