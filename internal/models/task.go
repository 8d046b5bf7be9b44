// internal/models/task.go
package models

import "time"

// TaskStatus defines the possible statuses for a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// IsValidTaskStatus reports whether s is one of the canonical statuses.
// "done" is deliberately not accepted; "completed" is the authoritative
// terminal value.
func IsValidTaskStatus(s TaskStatus) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func IsValidTaskPriority(p TaskPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task represents the structure of a task in the system.
type Task struct {
	ID             int64        `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	ProjectID      *int64       `json:"project_id,omitempty"`
	AssignedTo     *int64       `json:"assigned_to,omitempty"`
	Priority       TaskPriority `json:"priority"`
	Status         TaskStatus   `json:"status"`
	Deadline       *time.Time   `json:"deadline,omitempty"`
	ReminderAt     *time.Time   `json:"reminder_at,omitempty"`
	LastRemindedAt *time.Time   `json:"last_reminded_at,omitempty"`
	CreatedBy      int64        `json:"created_by"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// TaskUpdate carries a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	ProjectID   *int64        `json:"project_id"`
	AssignedTo  *int64        `json:"assigned_to"`
	Priority    *TaskPriority `json:"priority"`
	Status      *TaskStatus   `json:"status"`
	Deadline    *time.Time    `json:"deadline"`
	ReminderAt  *time.Time    `json:"reminder_at"`
}

// TaskFilter defines the available parameters for filtering tasks.
type TaskFilter struct {
	ProjectID  *int64
	AssignedTo *int64
	CreatedBy  *int64
	Status     *TaskStatus
}
