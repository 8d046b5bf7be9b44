package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// refreshTokenBytes gives every refresh token 256 bits of entropy.
const refreshTokenBytes = 32

// NewRefreshToken returns an opaque hex token for the refresh flow. It
// carries no claims, validity comes from matching the stored user row.
func NewRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("refresh token entropy: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
