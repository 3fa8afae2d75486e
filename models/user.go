package models

import "time"

// User is an account on the sync server. Its ID becomes the owner id of
// every entity the account synchronizes.
type User struct {
	// ID is a server-minted UUID.
	ID string `json:"id,omitempty"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password is accepted on register/login requests only and is never
	// persisted or returned.
	Password string `json:"password,omitempty"`

	// PasswordHash is the argon2id encoded hash stored server side.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}
