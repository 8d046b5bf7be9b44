package services

import (
	"context"
	"time"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

// ReportService aggregates per-project task state for the reports
// endpoints and the PDF export.
type ReportService interface {
	ProjectSummary(ctx context.Context, projectID int64) (*models.ProjectSummary, []models.Task, error)
}

type reportService struct {
	projects repositories.ProjectRepository
	tasks    repositories.TaskRepository
}

func NewReportService(projects repositories.ProjectRepository, tasks repositories.TaskRepository) ReportService {
	return &reportService{projects: projects, tasks: tasks}
}

func (s *reportService) ProjectSummary(ctx context.Context, projectID int64) (*models.ProjectSummary, []models.Task, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	tasks, err := s.tasks.FindAll(ctx, models.TaskFilter{ProjectID: &projectID})
	if err != nil {
		return nil, nil, err
	}

	summary := &models.ProjectSummary{
		Project:  *project,
		ByStatus: map[models.TaskStatus]int{},
		Total:    len(tasks),
	}
	now := time.Now()
	for _, t := range tasks {
		summary.ByStatus[t.Status]++
		if t.Deadline != nil && t.Deadline.Before(now) && t.Status != models.StatusCompleted {
			summary.Overdue++
		}
	}
	if summary.Total > 0 {
		summary.Percentage = int(float64(summary.ByStatus[models.StatusCompleted])/float64(summary.Total)*100 + 0.5)
	}
	return summary, tasks, nil
}
