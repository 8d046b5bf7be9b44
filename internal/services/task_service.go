// internal/services/task_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

// TaskService defines the interface for task-related business logic.
type TaskService interface {
	GetAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	GetByProjectID(ctx context.Context, projectID int64) ([]models.Task, error)
	Create(ctx context.Context, actor int64, task *models.Task) (*models.Task, error)
	Update(ctx context.Context, actor int64, id int64, upd models.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, actor int64, id int64) error
}

type taskService struct {
	repo     repositories.TaskRepository
	activity ActivityService
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(repo repositories.TaskRepository, activity ActivityService) TaskService {
	return &taskService{repo: repo, activity: activity}
}

func (s *taskService) GetAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *taskService) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *taskService) GetByProjectID(ctx context.Context, projectID int64) ([]models.Task, error) {
	return s.repo.FindAll(ctx, models.TaskFilter{ProjectID: &projectID})
}

func (s *taskService) Create(ctx context.Context, actor int64, task *models.Task) (*models.Task, error) {
	if actor <= 0 {
		return nil, ErrAuthRequired
	}
	if task.Title == "" {
		return nil, ErrTitleRequired
	}
	if task.Status == "" {
		task.Status = models.StatusTodo
	}
	if !models.IsValidTaskStatus(task.Status) {
		return nil, ErrInvalidStatus
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if !models.IsValidTaskPriority(task.Priority) {
		return nil, ErrInvalidPriority
	}

	task.CreatedBy = actor
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := s.repo.Store(ctx, task); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, actor, task.ID, models.ActivityCreation,
		fmt.Sprintf("Task %q created", task.Title))
	return task, nil
}

// Update applies a partial update. The status whitelist is enforced
// before any database call, and the pre-update row is read to diff
// against so that each changed audited field (status, assignee,
// priority) yields exactly one activity record.
func (s *taskService) Update(ctx context.Context, actor int64, id int64, upd models.TaskUpdate) (*models.Task, error) {
	if actor <= 0 {
		return nil, ErrAuthRequired
	}
	if upd.Status != nil && !models.IsValidTaskStatus(*upd.Status) {
		return nil, ErrInvalidStatus
	}
	if upd.Priority != nil && !models.IsValidTaskPriority(*upd.Priority) {
		return nil, ErrInvalidPriority
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if upd.Title != nil {
		updated.Title = *upd.Title
	}
	if upd.Description != nil {
		updated.Description = *upd.Description
	}
	if upd.ProjectID != nil {
		updated.ProjectID = upd.ProjectID
	}
	if upd.AssignedTo != nil {
		updated.AssignedTo = upd.AssignedTo
	}
	if upd.Priority != nil {
		updated.Priority = *upd.Priority
	}
	if upd.Status != nil {
		updated.Status = *upd.Status
	}
	if upd.Deadline != nil {
		updated.Deadline = upd.Deadline
	}
	if upd.ReminderAt != nil {
		updated.ReminderAt = upd.ReminderAt
	}
	updated.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	// Activity recording is awaited but best-effort: a slow or failed
	// write delays or silently thins the trail, never the update itself.
	if current.Status != updated.Status {
		s.activity.Record(ctx, actor, id, models.ActivityStatusChange,
			fmt.Sprintf("Status changed from %q to %q", current.Status, updated.Status))
	}
	if !sameAssignee(current.AssignedTo, updated.AssignedTo) {
		s.activity.Record(ctx, actor, id, models.ActivityAssignment,
			fmt.Sprintf("Assignee changed from %s to %s",
				assigneeLabel(current.AssignedTo), assigneeLabel(updated.AssignedTo)))
	}
	if current.Priority != updated.Priority {
		s.activity.Record(ctx, actor, id, models.ActivityPriorityChange,
			fmt.Sprintf("Priority changed from %q to %q", current.Priority, updated.Priority))
	}

	return &updated, nil
}

func (s *taskService) Delete(ctx context.Context, actor int64, id int64) error {
	if actor <= 0 {
		return ErrAuthRequired
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func sameAssignee(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func assigneeLabel(id *int64) string {
	if id == nil {
		return "unassigned"
	}
	return fmt.Sprintf("user %d", *id)
}
