package services

import (
	"context"
	"time"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, actor int64, project *models.Project) (*models.Project, error)
	Update(ctx context.Context, actor int64, id int64, project *models.Project) (*models.Project, error)
	Delete(ctx context.Context, actor int64, id int64) error
}

type projectService struct {
	repo repositories.ProjectRepository
}

func NewProjectService(repo repositories.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	return s.repo.FindAll(ctx)
}

func (s *projectService) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *projectService) Create(ctx context.Context, actor int64, project *models.Project) (*models.Project, error) {
	if actor <= 0 {
		return nil, ErrAuthRequired
	}
	if project.Name == "" {
		return nil, ErrTitleRequired
	}
	if project.Status == "" {
		project.Status = models.ProjectActive
	}
	project.CreatedBy = actor
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	if err := s.repo.Store(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, actor int64, id int64, project *models.Project) (*models.Project, error) {
	if actor <= 0 {
		return nil, ErrAuthRequired
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	current.Name = project.Name
	current.Description = project.Description
	if project.Status != "" {
		current.Status = project.Status
	}
	current.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *projectService) Delete(ctx context.Context, actor int64, id int64) error {
	if actor <= 0 {
		return ErrAuthRequired
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
