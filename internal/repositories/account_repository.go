package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"opsboard/internal/models"
)

type AccountRepository interface {
	Store(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id int64) (*models.Account, error)
	FindAll(ctx context.Context) ([]models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string, limit int) ([]models.Account, error)
}

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `id, name, service_url, username, secret_enc, project_id, notes,
       created_by, created_at, updated_at`

func scanAccount(row interface{ Scan(...any) error }, a *models.Account) error {
	return row.Scan(
		&a.ID, &a.Name, &a.ServiceURL, &a.Username, &a.SecretEnc, &a.ProjectID,
		&a.Notes, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
}

func (r *accountRepository) Store(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (name, service_url, username, secret_enc, project_id, notes,
			created_by, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		account.Name, account.ServiceURL, account.Username, account.SecretEnc,
		account.ProjectID, account.Notes, account.CreatedBy,
		account.CreatedAt, account.UpdatedAt,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
}

func (r *accountRepository) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	a := &models.Account{}
	if err := scanAccount(r.db.QueryRowContext(ctx, query, id), a); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("account %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (r *accountRepository) FindAll(ctx context.Context) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAccounts(rows)
}

func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts SET name=$1, service_url=$2, username=$3, secret_enc=$4,
			project_id=$5, notes=$6, updated_at=$7
		WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query,
		account.Name, account.ServiceURL, account.Username, account.SecretEnc,
		account.ProjectID, account.Notes, account.UpdatedAt, account.ID)
	return err
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	return err
}

func (r *accountRepository) Search(ctx context.Context, query string, limit int) ([]models.Account, error) {
	q := `SELECT ` + accountColumns + ` FROM accounts
	       WHERE name ILIKE $1 OR username ILIKE $1 OR service_url ILIKE $1
	       ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, q, "%"+query+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAccounts(rows)
}

func collectAccounts(rows *sql.Rows) ([]models.Account, error) {
	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := scanAccount(rows, &a); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}
