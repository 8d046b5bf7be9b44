package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

// ActivityService records the audit trail of a task. Record is a
// best-effort side channel: a failed write is logged and swallowed so an
// audit failure can never block the task edit that triggered it.
type ActivityService interface {
	Record(ctx context.Context, actor int64, taskID int64, typ models.ActivityType, message string) *models.TaskActivity
	ListByTask(ctx context.Context, taskID int64) ([]models.TaskActivity, error)
	AddComment(ctx context.Context, actor int64, taskID int64, message string) (*models.TaskActivity, error)
	DeleteComment(ctx context.Context, actor int64, id string) error
}

type activityService struct {
	repo repositories.ActivityRepository
}

func NewActivityService(repo repositories.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

// Record returns nil when the entry could not be written. Callers must
// treat nil as "trail has a gap, primary operation may still have
// succeeded".
func (s *activityService) Record(ctx context.Context, actor int64, taskID int64, typ models.ActivityType, message string) *models.TaskActivity {
	if actor <= 0 {
		log.Printf("[activity][record][skip] no actor task=%d type=%s", taskID, typ)
		return nil
	}
	entry := &models.TaskActivity{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		Type:      typ,
		Message:   message,
		CreatedBy: actor,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Store(ctx, entry); err != nil {
		log.Printf("[activity][record][err] task=%d type=%s: %v", taskID, typ, err)
		return nil
	}
	return entry
}

func (s *activityService) ListByTask(ctx context.Context, taskID int64) ([]models.TaskActivity, error) {
	return s.repo.FindByTaskID(ctx, taskID)
}

// AddComment is a primary operation, unlike Record, so its failure
// propagates to the caller.
func (s *activityService) AddComment(ctx context.Context, actor int64, taskID int64, message string) (*models.TaskActivity, error) {
	if actor <= 0 {
		return nil, ErrAuthRequired
	}
	entry := &models.TaskActivity{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		Type:      models.ActivityComment,
		Message:   message,
		CreatedBy: actor,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Store(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *activityService) DeleteComment(ctx context.Context, actor int64, id string) error {
	if actor <= 0 {
		return ErrAuthRequired
	}
	return s.repo.DeleteComment(ctx, id, actor)
}
