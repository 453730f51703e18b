package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mustafashaheen1/girder/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db *sql.DB
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db *sql.DB) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

const taskColumns = `id, project_id, phase_id, category, start_date, end_date, duration,
	work_type, color, visible_to_client, completed, completed_at, notes, created_at, updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		t.PhaseID,
		t.Category,
		t.StartDate.Format(dateLayout),
		t.EndDate.Format(dateLayout),
		t.Duration,
		string(t.WorkType),
		t.Color,
		boolToInt(t.VisibleToClient),
		boolToInt(t.Completed),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		t.Notes,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanTask(row)
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? ORDER BY start_date, created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by project: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET phase_id = ?, category = ?, start_date = ?, end_date = ?, duration = ?,
		work_type = ?, color = ?, visible_to_client = ?, completed = ?, completed_at = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.PhaseID,
		t.Category,
		t.StartDate.Format(dateLayout),
		t.EndDate.Format(dateLayout),
		t.Duration,
		string(t.WorkType),
		t.Color,
		boolToInt(t.VisibleToClient),
		boolToInt(t.Completed),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		t.Notes,
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking task update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking task delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task: %w", ErrNotFound)
	}
	return nil
}

// scanTask scans a single task from a *sql.Row.
func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var workType string
	var visible, completed int
	var startStr, endStr, createdAtStr, updatedAtStr string
	var completedAt sql.NullString

	err := row.Scan(
		&t.ID, &t.ProjectID, &t.PhaseID, &t.Category, &startStr, &endStr, &t.Duration,
		&workType, &t.Color, &visible, &completed, &completedAt, &t.Notes, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	return r.populateTask(&t, workType, visible, completed, startStr, endStr, completedAt, createdAtStr, updatedAtStr)
}

// scanTasks scans multiple tasks from *sql.Rows.
func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var workType string
		var visible, completed int
		var startStr, endStr, createdAtStr, updatedAtStr string
		var completedAt sql.NullString

		err := rows.Scan(
			&t.ID, &t.ProjectID, &t.PhaseID, &t.Category, &startStr, &endStr, &t.Duration,
			&workType, &t.Color, &visible, &completed, &completedAt, &t.Notes, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}

		task, parseErr := r.populateTask(&t, workType, visible, completed, startStr, endStr, completedAt, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// populateTask fills in parsed fields on a Task after scanning raw values.
func (r *SQLiteTaskRepo) populateTask(t *domain.Task, workType string, visible, completed int, startStr, endStr string, completedAt sql.NullString, createdAtStr, updatedAtStr string) (*domain.Task, error) {
	t.WorkType = domain.WorkType(workType)
	t.VisibleToClient = intToBool(visible)
	t.Completed = intToBool(completed)
	t.CompletedAt = parseNullableTime(completedAt, time.RFC3339)

	var parseErr error
	t.StartDate, parseErr = time.Parse(dateLayout, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	t.EndDate, parseErr = time.Parse(dateLayout, endStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing end_date: %w", parseErr)
	}
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return t, nil
}
