package models

import "time"

// Credential is an API key stored encrypted with the device key.
// EncryptedSecret has the form base64(nonce) ":" base64(ciphertext‖tag).
type Credential struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	EncryptedSecret string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	IsActive        bool      `json:"is_active"`
}
