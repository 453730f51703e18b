package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS phases (
		id                TEXT PRIMARY KEY,
		project_id        TEXT NOT NULL,
		name              TEXT NOT NULL,
		color             TEXT NOT NULL DEFAULT '',
		parent_phase_id   TEXT REFERENCES phases(id) ON DELETE CASCADE,
		order_index       INTEGER NOT NULL DEFAULT 0,
		visible_to_client INTEGER NOT NULL DEFAULT 1,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_phases_project ON phases(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_phases_parent ON phases(parent_phase_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id                TEXT PRIMARY KEY,
		project_id        TEXT NOT NULL,
		phase_id          TEXT NOT NULL REFERENCES phases(id) ON DELETE CASCADE,
		category          TEXT NOT NULL,
		start_date        TEXT NOT NULL,
		end_date          TEXT NOT NULL,
		duration          INTEGER NOT NULL DEFAULT 1 CHECK(duration >= 1),
		work_type         TEXT NOT NULL DEFAULT 'in-house'
		                  CHECK(work_type IN ('in-house','subcontractor')),
		color             TEXT NOT NULL DEFAULT '',
		visible_to_client INTEGER NOT NULL DEFAULT 1,
		completed         INTEGER NOT NULL DEFAULT 0,
		completed_at      TEXT,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_phase ON tasks(phase_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_start ON tasks(start_date)`,

	// Add free-form notes to tasks
	`ALTER TABLE tasks ADD COLUMN notes TEXT NOT NULL DEFAULT ''`,
}
