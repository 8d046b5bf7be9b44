package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"opsboard/internal/middleware"
)

const accessTokenTTL = 15 * time.Minute

// AuthService hashes passwords and signs access tokens.
type AuthService interface {
	HashPassword(plain string) (string, error)
	CheckPassword(hash, plain string) error
	NewAccessToken(userID int64) (string, error)
}

type authService struct {
	jwtKey []byte
}

func NewAuthService(jwtKey []byte) AuthService {
	return &authService{jwtKey: jwtKey}
}

func (s *authService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *authService) CheckPassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

func (s *authService) NewAccessToken(userID int64) (string, error) {
	claims := &middleware.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}
