package models

import "time"

// Subtask is a checklist item owned by exactly one task.
type Subtask struct {
	ID         string     `json:"id"`
	TaskID     int64      `json:"task_id"`
	Title      string     `json:"title"`
	IsComplete bool       `json:"is_complete"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CompletionStats is derived from a subtask list, never stored.
type CompletionStats struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// CompletionStatsFor computes checklist progress. An empty list is 0%,
// not a division by zero.
func CompletionStatsFor(subtasks []Subtask) CompletionStats {
	stats := CompletionStats{Total: len(subtasks)}
	for _, st := range subtasks {
		if st.IsComplete {
			stats.Completed++
		}
	}
	if stats.Total > 0 {
		stats.Percentage = int(float64(stats.Completed)/float64(stats.Total)*100 + 0.5)
	}
	return stats
}
