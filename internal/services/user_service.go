package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

type UserService interface {
	Register(ctx context.Context, user *models.User, plainPassword string) error
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	StoreRefresh(ctx context.Context, id int64, token string, expires time.Time) error
	ByRefreshToken(ctx context.Context, token string) (*models.User, error)
}

type userService struct {
	repo  repositories.UserRepository
	email EmailService
	auth  AuthService
}

func NewUserService(repo repositories.UserRepository, email EmailService, auth AuthService) UserService {
	return &userService{repo: repo, email: email, auth: auth}
}

func (s *userService) Register(ctx context.Context, user *models.User, plainPassword string) error {
	if strings.TrimSpace(plainPassword) == "" {
		return fmt.Errorf("password is required")
	}
	hash, err := s.auth.HashPassword(plainPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.repo.Store(ctx, user); err != nil {
		return err
	}

	if s.email != nil {
		if err := s.email.SendWelcomeEmail(user.Email, user.Name); err != nil {
			// warn but do not fail registration
			log.Printf("[user][register] welcome email to %s failed: %v", user.Email, err)
		}
	}
	return nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if err := s.auth.CheckPassword(user.PasswordHash, strings.TrimSpace(password)); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) StoreRefresh(ctx context.Context, id int64, token string, expires time.Time) error {
	return s.repo.UpdateRefresh(ctx, id, token, expires)
}

func (s *userService) ByRefreshToken(ctx context.Context, token string) (*models.User, error) {
	user, err := s.repo.FindByRefreshToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if user.RefreshExpires == nil || user.RefreshExpires.Before(time.Now()) {
		return nil, fmt.Errorf("refresh token expired")
	}
	return user, nil
}
