package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"opsboard/internal/models"
)

type SubtaskRepository interface {
	Store(ctx context.Context, subtask *models.Subtask) error
	FindByID(ctx context.Context, id string) (*models.Subtask, error)
	FindByTaskID(ctx context.Context, taskID int64) ([]models.Subtask, error)
	SetComplete(ctx context.Context, id string, complete bool) (*models.Subtask, error)
	Delete(ctx context.Context, id string) error
}

type subtaskRepository struct {
	db *sql.DB
}

func NewSubtaskRepository(db *sql.DB) SubtaskRepository {
	return &subtaskRepository{db: db}
}

func (r *subtaskRepository) Store(ctx context.Context, subtask *models.Subtask) error {
	query := `
		INSERT INTO subtasks (id, task_id, title, is_complete, due_date, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		subtask.ID, subtask.TaskID, subtask.Title, subtask.IsComplete,
		subtask.DueDate, subtask.CreatedAt, subtask.UpdatedAt,
	).Scan(&subtask.CreatedAt, &subtask.UpdatedAt)
}

func (r *subtaskRepository) FindByID(ctx context.Context, id string) (*models.Subtask, error) {
	query := `SELECT id, task_id, title, is_complete, due_date, created_at, updated_at
	       FROM subtasks WHERE id = $1`
	st := &models.Subtask{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&st.ID, &st.TaskID, &st.Title, &st.IsComplete, &st.DueDate, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("subtask %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return st, nil
}

// FindByTaskID returns the checklist in creation order, oldest first.
func (r *subtaskRepository) FindByTaskID(ctx context.Context, taskID int64) ([]models.Subtask, error) {
	query := `SELECT id, task_id, title, is_complete, due_date, created_at, updated_at
	       FROM subtasks WHERE task_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subtasks []models.Subtask
	for rows.Next() {
		var st models.Subtask
		if err := rows.Scan(&st.ID, &st.TaskID, &st.Title, &st.IsComplete, &st.DueDate, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, err
		}
		subtasks = append(subtasks, st)
	}
	return subtasks, rows.Err()
}

func (r *subtaskRepository) SetComplete(ctx context.Context, id string, complete bool) (*models.Subtask, error) {
	query := `UPDATE subtasks SET is_complete=$1, updated_at=NOW() WHERE id=$2
	       RETURNING id, task_id, title, is_complete, due_date, created_at, updated_at`
	st := &models.Subtask{}
	err := r.db.QueryRowContext(ctx, query, complete, id).Scan(
		&st.ID, &st.TaskID, &st.Title, &st.IsComplete, &st.DueDate, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("subtask %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return st, nil
}

func (r *subtaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subtasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("subtask %s: %w", id, ErrNotFound)
	}
	return nil
}
