// internal/models/project.go
package models

import "time"

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
)

// Project groups tasks and accounts under one client engagement.
type Project struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	CreatedBy   int64         `json:"created_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ProjectSummary aggregates task state for the reports endpoint.
type ProjectSummary struct {
	Project    Project            `json:"project"`
	ByStatus   map[TaskStatus]int `json:"by_status"`
	Total      int                `json:"total"`
	Overdue    int                `json:"overdue"`
	Percentage int                `json:"percentage"` // share of completed tasks
}
