package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

// SubtaskService manages the per-task checklist.
type SubtaskService interface {
	ListByTask(ctx context.Context, taskID int64) ([]models.Subtask, error)
	Add(ctx context.Context, actor int64, subtask *models.Subtask) (*models.Subtask, error)
	ToggleCompletion(ctx context.Context, actor int64, id string, complete bool) (*models.Subtask, error)
	Remove(ctx context.Context, actor int64, id string) error
	Stats(ctx context.Context, taskID int64) (models.CompletionStats, error)
}

type subtaskService struct {
	repo  repositories.SubtaskRepository
	tasks repositories.TaskRepository
}

func NewSubtaskService(repo repositories.SubtaskRepository, tasks repositories.TaskRepository) SubtaskService {
	return &subtaskService{repo: repo, tasks: tasks}
}

func (s *subtaskService) ListByTask(ctx context.Context, taskID int64) ([]models.Subtask, error) {
	return s.repo.FindByTaskID(ctx, taskID)
}

func (s *subtaskService) Add(ctx context.Context, actor int64, subtask *models.Subtask) (*models.Subtask, error) {
	if actor <= 0 {
		return nil, ErrAuthRequired
	}
	if subtask.Title == "" {
		return nil, ErrTitleRequired
	}
	// Parent must exist; a checklist item cannot be orphaned at birth.
	if _, err := s.tasks.FindByID(ctx, subtask.TaskID); err != nil {
		return nil, err
	}
	subtask.ID = uuid.NewString()
	now := time.Now()
	subtask.CreatedAt = now
	subtask.UpdatedAt = now
	if err := s.repo.Store(ctx, subtask); err != nil {
		return nil, err
	}
	return subtask, nil
}

func (s *subtaskService) ToggleCompletion(ctx context.Context, actor int64, id string, complete bool) (*models.Subtask, error) {
	if actor <= 0 {
		return nil, ErrAuthRequired
	}
	return s.repo.SetComplete(ctx, id, complete)
}

func (s *subtaskService) Remove(ctx context.Context, actor int64, id string) error {
	if actor <= 0 {
		return ErrAuthRequired
	}
	return s.repo.Delete(ctx, id)
}

func (s *subtaskService) Stats(ctx context.Context, taskID int64) (models.CompletionStats, error) {
	subtasks, err := s.repo.FindByTaskID(ctx, taskID)
	if err != nil {
		return models.CompletionStats{}, err
	}
	return models.CompletionStatsFor(subtasks), nil
}
