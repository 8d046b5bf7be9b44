package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"opsboard/internal/models"
)

type ProjectRepository interface {
	Store(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id int64) (*models.Project, error)
	FindAll(ctx context.Context) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string, limit int) ([]models.Project, error)
}

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Store(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (name, description, status, created_by, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		project.Name, project.Description, project.Status,
		project.CreatedBy, project.CreatedAt, project.UpdatedAt,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepository) FindByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `SELECT id, name, description, status, created_by, created_at, updated_at
	       FROM projects WHERE id = $1`
	p := &models.Project{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Status, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *projectRepository) FindAll(ctx context.Context) ([]models.Project, error) {
	query := `SELECT id, name, description, status, created_by, created_at, updated_at
	       FROM projects ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `UPDATE projects SET name=$1, description=$2, status=$3, updated_at=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query,
		project.Name, project.Description, project.Status, project.UpdatedAt, project.ID)
	return err
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}

func (r *projectRepository) Search(ctx context.Context, query string, limit int) ([]models.Project, error) {
	q := `SELECT id, name, description, status, created_by, created_at, updated_at
	       FROM projects WHERE name ILIKE $1 OR description ILIKE $1
	       ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, q, "%"+query+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

func collectProjects(rows *sql.Rows) ([]models.Project, error) {
	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
