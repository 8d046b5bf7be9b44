package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"opsboard/internal/models"
)

type PromptRepository interface {
	Store(ctx context.Context, prompt *models.Prompt) error
	FindByID(ctx context.Context, id int64) (*models.Prompt, error)
	FindAll(ctx context.Context) ([]models.Prompt, error)
	Update(ctx context.Context, prompt *models.Prompt) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string, limit int) ([]models.Prompt, error)
}

type promptRepository struct {
	db *sql.DB
}

func NewPromptRepository(db *sql.DB) PromptRepository {
	return &promptRepository{db: db}
}

func (r *promptRepository) Store(ctx context.Context, prompt *models.Prompt) error {
	query := `
		INSERT INTO prompts (title, content, category, created_by, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		prompt.Title, prompt.Content, prompt.Category,
		prompt.CreatedBy, prompt.CreatedAt, prompt.UpdatedAt,
	).Scan(&prompt.ID, &prompt.CreatedAt, &prompt.UpdatedAt)
}

func (r *promptRepository) FindByID(ctx context.Context, id int64) (*models.Prompt, error) {
	query := `SELECT id, title, content, category, created_by, created_at, updated_at
	       FROM prompts WHERE id = $1`
	p := &models.Prompt{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Content, &p.Category, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("prompt %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *promptRepository) FindAll(ctx context.Context) ([]models.Prompt, error) {
	query := `SELECT id, title, content, category, created_by, created_at, updated_at
	       FROM prompts ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPrompts(rows)
}

func (r *promptRepository) Update(ctx context.Context, prompt *models.Prompt) error {
	query := `UPDATE prompts SET title=$1, content=$2, category=$3, updated_at=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query,
		prompt.Title, prompt.Content, prompt.Category, prompt.UpdatedAt, prompt.ID)
	return err
}

func (r *promptRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM prompts WHERE id = $1`, id)
	return err
}

func (r *promptRepository) Search(ctx context.Context, query string, limit int) ([]models.Prompt, error) {
	q := `SELECT id, title, content, category, created_by, created_at, updated_at
	       FROM prompts WHERE title ILIKE $1 OR content ILIKE $1 OR category ILIKE $1
	       ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, q, "%"+query+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPrompts(rows)
}

func collectPrompts(rows *sql.Rows) ([]models.Prompt, error) {
	var prompts []models.Prompt
	for rows.Next() {
		var p models.Prompt
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Category, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		prompts = append(prompts, p)
	}
	return prompts, rows.Err()
}
