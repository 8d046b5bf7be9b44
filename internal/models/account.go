// internal/models/account.go
package models

import "time"

// Account is a linked external credential (the vault). Secret is sealed
// with secretbox before it ever reaches the database; the ciphertext is
// never serialized to clients.
type Account struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	ServiceURL string    `json:"service_url"`
	Username   string    `json:"username"`
	Secret     string    `json:"secret,omitempty"` // plaintext in API payloads only
	SecretEnc  string    `json:"-"`                // base64(nonce||box) at rest
	ProjectID  *int64    `json:"project_id,omitempty"`
	Notes      string    `json:"notes"`
	CreatedBy  int64     `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
