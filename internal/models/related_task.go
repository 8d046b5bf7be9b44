package models

import "time"

// RelatedTask is a single stored edge between two tasks. Linking A to B
// stores one row; retrieval resolves the edge from either side via the
// get_related_task_ids database function.
type RelatedTask struct {
	ID            string    `json:"id"`
	TaskID        int64     `json:"task_id"`
	RelatedTaskID int64     `json:"related_task_id"`
	CreatedAt     time.Time `json:"created_at"`
}
