package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"opsboard/internal/models"
)

type ActivityRepository interface {
	Store(ctx context.Context, activity *models.TaskActivity) error
	FindByTaskID(ctx context.Context, taskID int64) ([]models.TaskActivity, error)
	// DeleteComment removes a comment entry owned by createdBy. Entries of
	// any other type are never deleted.
	DeleteComment(ctx context.Context, id string, createdBy int64) error
}

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Store(ctx context.Context, activity *models.TaskActivity) error {
	query := `
		INSERT INTO task_activity (id, task_id, type, message, created_by, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at`
	return r.db.QueryRowContext(ctx, query,
		activity.ID, activity.TaskID, activity.Type, activity.Message,
		activity.CreatedBy, activity.CreatedAt,
	).Scan(&activity.CreatedAt)
}

// FindByTaskID returns the trail newest first.
func (r *activityRepository) FindByTaskID(ctx context.Context, taskID int64) ([]models.TaskActivity, error) {
	query := `SELECT id, task_id, type, message, created_by, created_at
	       FROM task_activity WHERE task_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.TaskActivity
	for rows.Next() {
		var a models.TaskActivity
		if err := rows.Scan(&a.ID, &a.TaskID, &a.Type, &a.Message, &a.CreatedBy, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (r *activityRepository) DeleteComment(ctx context.Context, id string, createdBy int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM task_activity WHERE id = $1 AND type = 'comment' AND created_by = $2`,
		id, createdBy)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("comment %s: %w", id, ErrNotFound)
	}
	return nil
}
