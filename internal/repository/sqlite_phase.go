package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mustafashaheen1/girder/internal/domain"
)

// SQLitePhaseRepo implements PhaseRepo using a SQLite database.
type SQLitePhaseRepo struct {
	db *sql.DB
}

// NewSQLitePhaseRepo creates a new SQLitePhaseRepo.
func NewSQLitePhaseRepo(db *sql.DB) *SQLitePhaseRepo {
	return &SQLitePhaseRepo{db: db}
}

func (r *SQLitePhaseRepo) Create(ctx context.Context, p *domain.Phase) error {
	query := `INSERT INTO phases (id, project_id, name, color, parent_phase_id, order_index, visible_to_client, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ProjectID,
		p.Name,
		p.Color,
		nullableStringToValue(p.ParentPhaseID),
		p.Order,
		boolToInt(p.VisibleToClient),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting phase: %w", err)
	}
	return nil
}

func (r *SQLitePhaseRepo) GetByID(ctx context.Context, id string) (*domain.Phase, error) {
	query := `SELECT id, project_id, name, color, parent_phase_id, order_index, visible_to_client, created_at, updated_at
		FROM phases WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanPhase(row)
}

func (r *SQLitePhaseRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Phase, error) {
	query := `SELECT id, project_id, name, color, parent_phase_id, order_index, visible_to_client, created_at, updated_at
		FROM phases WHERE project_id = ? ORDER BY order_index, created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing phases by project: %w", err)
	}
	defer rows.Close()
	return r.scanPhases(rows)
}

func (r *SQLitePhaseRepo) Update(ctx context.Context, p *domain.Phase) error {
	query := `UPDATE phases SET name = ?, color = ?, parent_phase_id = ?, order_index = ?, visible_to_client = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Color,
		nullableStringToValue(p.ParentPhaseID),
		p.Order,
		boolToInt(p.VisibleToClient),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating phase: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking phase update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("phase: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLitePhaseRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM phases WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting phase: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking phase delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("phase: %w", ErrNotFound)
	}
	return nil
}

// scanPhase scans a single phase from a *sql.Row.
func (r *SQLitePhaseRepo) scanPhase(row *sql.Row) (*domain.Phase, error) {
	var p domain.Phase
	var parent sql.NullString
	var visible int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&p.ID, &p.ProjectID, &p.Name, &p.Color, &parent, &p.Order, &visible, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("phase: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning phase: %w", err)
	}

	return r.populatePhase(&p, parent, visible, createdAtStr, updatedAtStr)
}

// scanPhases scans multiple phases from *sql.Rows.
func (r *SQLitePhaseRepo) scanPhases(rows *sql.Rows) ([]domain.Phase, error) {
	var phases []domain.Phase
	for rows.Next() {
		var p domain.Phase
		var parent sql.NullString
		var visible int
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&p.ID, &p.ProjectID, &p.Name, &p.Color, &parent, &p.Order, &visible, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning phase row: %w", err)
		}

		phase, parseErr := r.populatePhase(&p, parent, visible, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		phases = append(phases, *phase)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phases: %w", err)
	}
	return phases, nil
}

// populatePhase fills in parsed fields on a Phase after scanning raw values.
func (r *SQLitePhaseRepo) populatePhase(p *domain.Phase, parent sql.NullString, visible int, createdAtStr, updatedAtStr string) (*domain.Phase, error) {
	p.ParentPhaseID = nullStringToPtr(parent)
	p.VisibleToClient = intToBool(visible)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return p, nil
}
