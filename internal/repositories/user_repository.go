package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"opsboard/internal/models"
)

type UserRepository interface {
	Store(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByRefreshToken(ctx context.Context, token string) (*models.User, error)
	UpdateRefresh(ctx context.Context, id int64, token string, expires time.Time) error
	TelegramSettings(ctx context.Context, id int64) (chatID int64, allow bool, err error)
	Email(ctx context.Context, id int64) (string, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, name, password_hash, telegram_chat_id, notify_telegram,
       refresh_token, refresh_expires, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }, u *models.User) error {
	return row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.TelegramChatID, &u.NotifyTelegram,
		&u.RefreshToken, &u.RefreshExpires, &u.CreatedAt, &u.UpdatedAt,
	)
}

func (r *userRepository) Store(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, name, password_hash, telegram_chat_id, notify_telegram,
			refresh_token, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,'',$6,$7)
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		user.Email, user.Name, user.PasswordHash, user.TelegramChatID,
		user.NotifyTelegram, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	u := &models.User{}
	err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id), u)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u := &models.User{}
	err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email), u)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) FindByRefreshToken(ctx context.Context, token string) (*models.User, error) {
	u := &models.User{}
	err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE refresh_token = $1`, token), u)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) UpdateRefresh(ctx context.Context, id int64, token string, expires time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET refresh_token=$1, refresh_expires=$2, updated_at=NOW() WHERE id=$3`,
		token, expires, id)
	return err
}

func (r *userRepository) TelegramSettings(ctx context.Context, id int64) (int64, bool, error) {
	var chatID int64
	var allow bool
	err := r.db.QueryRowContext(ctx,
		`SELECT telegram_chat_id, notify_telegram FROM users WHERE id = $1`, id,
	).Scan(&chatID, &allow)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	return chatID, allow, err
}

func (r *userRepository) Email(ctx context.Context, id int64) (string, error) {
	var email string
	err := r.db.QueryRowContext(ctx, `SELECT email FROM users WHERE id = $1`, id).Scan(&email)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return email, err
}
