package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for standard claim access.
//
// OwnerID is a cached copy of the "sub" claim, which carries the user id.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// OwnerID is the owner identifier extracted from the "sub" claim.
	OwnerID string `json:"-"`
}

// GetOwnerID extracts the owner identifier from the token's subject claim.
func (t *Token) GetOwnerID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting owner id from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("error extracting owner id from token: empty subject")
	}
	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
