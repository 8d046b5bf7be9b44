package services

import (
	"context"
	"time"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

type PromptService interface {
	List(ctx context.Context) ([]models.Prompt, error)
	GetByID(ctx context.Context, id int64) (*models.Prompt, error)
	Create(ctx context.Context, actor int64, prompt *models.Prompt) (*models.Prompt, error)
	Update(ctx context.Context, actor int64, id int64, prompt *models.Prompt) (*models.Prompt, error)
	Delete(ctx context.Context, actor int64, id int64) error
}

type promptService struct {
	repo repositories.PromptRepository
}

func NewPromptService(repo repositories.PromptRepository) PromptService {
	return &promptService{repo: repo}
}

func (s *promptService) List(ctx context.Context) ([]models.Prompt, error) {
	return s.repo.FindAll(ctx)
}

func (s *promptService) GetByID(ctx context.Context, id int64) (*models.Prompt, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *promptService) Create(ctx context.Context, actor int64, prompt *models.Prompt) (*models.Prompt, error) {
	if actor <= 0 {
		return nil, ErrAuthRequired
	}
	if prompt.Title == "" {
		return nil, ErrTitleRequired
	}
	prompt.CreatedBy = actor
	now := time.Now()
	prompt.CreatedAt = now
	prompt.UpdatedAt = now
	if err := s.repo.Store(ctx, prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}

func (s *promptService) Update(ctx context.Context, actor int64, id int64, prompt *models.Prompt) (*models.Prompt, error) {
	if actor <= 0 {
		return nil, ErrAuthRequired
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	current.Title = prompt.Title
	current.Content = prompt.Content
	current.Category = prompt.Category
	current.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *promptService) Delete(ctx context.Context, actor int64, id int64) error {
	if actor <= 0 {
		return ErrAuthRequired
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
