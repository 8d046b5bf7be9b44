package models

import "time"

// ActivityType tags an audit-log entry on a task.
type ActivityType string

const (
	ActivityStatusChange   ActivityType = "status_change"
	ActivityAssignment     ActivityType = "assignment"
	ActivityPriorityChange ActivityType = "priority_change"
	ActivityCreation       ActivityType = "creation"
	ActivityComment        ActivityType = "comment"
)

// TaskActivity is append-only. Only comment entries may ever be deleted,
// and only by their creator.
type TaskActivity struct {
	ID        string       `json:"id"`
	TaskID    int64        `json:"task_id"`
	Type      ActivityType `json:"type"`
	Message   string       `json:"message"`
	CreatedBy int64        `json:"created_by"`
	CreatedAt time.Time    `json:"created_at"`
}
