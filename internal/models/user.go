// internal/models/user.go
package models

import "time"

type User struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	PasswordHash   string     `json:"-"`
	TelegramChatID int64      `json:"telegram_chat_id,omitempty"`
	NotifyTelegram bool       `json:"notify_telegram"`
	RefreshToken   string     `json:"-"`
	RefreshExpires *time.Time `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
