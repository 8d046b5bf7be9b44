package services

import (
	"context"
	"log"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

// RelatedTaskService maintains the linking graph between tasks.
type RelatedTaskService interface {
	// FetchRelated resolves the related ids server-side and batch-fetches
	// the task rows. A failed lookup degrades to an empty list.
	FetchRelated(ctx context.Context, taskID int64) ([]models.Task, error)
	Link(ctx context.Context, actor int64, taskID, relatedTaskID int64) error
	Unlink(ctx context.Context, actor int64, taskID, relatedTaskID int64) error
}

type relatedTaskService struct {
	repo  repositories.RelatedTaskRepository
	tasks repositories.TaskRepository
}

func NewRelatedTaskService(repo repositories.RelatedTaskRepository, tasks repositories.TaskRepository) RelatedTaskService {
	return &relatedTaskService{repo: repo, tasks: tasks}
}

func (s *relatedTaskService) FetchRelated(ctx context.Context, taskID int64) ([]models.Task, error) {
	ids, err := s.repo.RelatedIDs(ctx, taskID)
	if err != nil {
		log.Printf("[related][fetch][err] task=%d: %v", taskID, err)
		return []models.Task{}, nil
	}
	if len(ids) == 0 {
		return []models.Task{}, nil
	}
	return s.tasks.FindByIDs(ctx, ids)
}

// Link is idempotent: relinking an existing pair reports success without
// creating a duplicate edge.
func (s *relatedTaskService) Link(ctx context.Context, actor int64, taskID, relatedTaskID int64) error {
	if actor <= 0 {
		return ErrAuthRequired
	}
	if taskID == relatedTaskID {
		return ErrSelfLink
	}
	exists, err := s.repo.Exists(ctx, taskID, relatedTaskID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.repo.Link(ctx, taskID, relatedTaskID)
}

func (s *relatedTaskService) Unlink(ctx context.Context, actor int64, taskID, relatedTaskID int64) error {
	if actor <= 0 {
		return ErrAuthRequired
	}
	return s.repo.Unlink(ctx, taskID, relatedTaskID)
}
