package repositories

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

// RelatedTaskRepository wraps the four relation functions shipped in
// migrations/. Existence check and insert live server-side so that two
// concurrent link attempts cannot race past the duplicate check.
type RelatedTaskRepository interface {
	Exists(ctx context.Context, taskID, relatedTaskID int64) (bool, error)
	RelatedIDs(ctx context.Context, taskID int64) ([]int64, error)
	Link(ctx context.Context, taskID, relatedTaskID int64) error
	Unlink(ctx context.Context, taskID, relatedTaskID int64) error
}

type relatedTaskRepository struct {
	db *sql.DB
}

func NewRelatedTaskRepository(db *sql.DB) RelatedTaskRepository {
	return &relatedTaskRepository{db: db}
}

func (r *relatedTaskRepository) Exists(ctx context.Context, taskID, relatedTaskID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT check_task_relation_exists($1, $2)`, taskID, relatedTaskID,
	).Scan(&exists)
	return exists, err
}

func (r *relatedTaskRepository) RelatedIDs(ctx context.Context, taskID int64) ([]int64, error) {
	var ids []int64
	err := r.db.QueryRowContext(ctx,
		`SELECT get_related_task_ids($1)`, taskID,
	).Scan(pq.Array(&ids))
	return ids, err
}

func (r *relatedTaskRepository) Link(ctx context.Context, taskID, relatedTaskID int64) error {
	_, err := r.db.ExecContext(ctx, `SELECT link_related_task($1, $2)`, taskID, relatedTaskID)
	return err
}

func (r *relatedTaskRepository) Unlink(ctx context.Context, taskID, relatedTaskID int64) error {
	_, err := r.db.ExecContext(ctx, `SELECT unlink_related_task($1, $2)`, taskID, relatedTaskID)
	return err
}
