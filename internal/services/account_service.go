// internal/services/account_service.go
package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/nacl/secretbox"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

// AccountService is the credentials vault. Secrets are sealed with
// secretbox before storage; List never exposes them, Get opens the box.
type AccountService interface {
	List(ctx context.Context) ([]models.Account, error)
	Get(ctx context.Context, id int64) (*models.Account, error)
	Create(ctx context.Context, actor int64, account *models.Account) (*models.Account, error)
	Update(ctx context.Context, actor int64, id int64, account *models.Account) (*models.Account, error)
	Delete(ctx context.Context, actor int64, id int64) error
}

type accountService struct {
	repo repositories.AccountRepository
	key  [32]byte
}

func NewAccountService(repo repositories.AccountRepository, vaultKey [32]byte) AccountService {
	return &accountService{repo: repo, key: vaultKey}
}

func (s *accountService) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		accounts[i].Secret = ""
		accounts[i].SecretEnc = ""
	}
	return accounts, nil
}

func (s *accountService) Get(ctx context.Context, id int64) (*models.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	secret, err := s.open(account.SecretEnc)
	if err != nil {
		return nil, fmt.Errorf("account %d: unseal secret: %w", id, err)
	}
	account.Secret = secret
	account.SecretEnc = ""
	return account, nil
}

func (s *accountService) Create(ctx context.Context, actor int64, account *models.Account) (*models.Account, error) {
	if actor <= 0 {
		return nil, ErrAuthRequired
	}
	sealed, err := s.seal(account.Secret)
	if err != nil {
		return nil, err
	}
	account.SecretEnc = sealed
	account.Secret = ""
	account.CreatedBy = actor
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	if err := s.repo.Store(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) Update(ctx context.Context, actor int64, id int64, account *models.Account) (*models.Account, error) {
	if actor <= 0 {
		return nil, ErrAuthRequired
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	current.Name = account.Name
	current.ServiceURL = account.ServiceURL
	current.Username = account.Username
	current.ProjectID = account.ProjectID
	current.Notes = account.Notes
	if account.Secret != "" {
		sealed, err := s.seal(account.Secret)
		if err != nil {
			return nil, err
		}
		current.SecretEnc = sealed
	}
	current.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	current.Secret = ""
	current.SecretEnc = ""
	return current, nil
}

func (s *accountService) Delete(ctx context.Context, actor int64, id int64) error {
	if actor <= 0 {
		return ErrAuthRequired
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *accountService) seal(plain string) (string, error) {
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", err
	}
	box := secretbox.Seal(nonce[:], []byte(plain), &nonce, &s.key)
	return base64.StdEncoding.EncodeToString(box), nil
}

func (s *accountService) open(sealed string) (string, error) {
	if sealed == "" {
		return "", nil
	}
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", err
	}
	if len(raw) < 24 {
		return "", errors.New("sealed secret too short")
	}
	var nonce [24]byte
	copy(nonce[:], raw[:24])
	plain, ok := secretbox.Open(nil, raw[24:], &nonce, &s.key)
	if !ok {
		return "", errors.New("secretbox open failed")
	}
	return string(plain), nil
}
