// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for carrying the active owner in a context, HTTP JSON
// helpers, HTTP client initialization, JWT token generation and
// validation, identifier generation and the store clock.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey is the key the active owner id is stored under.
var OwnerIDCtxKey = contextKey("ownerID")

// WithOwner returns a context carrying ownerID as the active owner.
// An empty ownerID yields a context without an owner.
func WithOwner(ctx context.Context, ownerID string) context.Context {
	if ownerID == "" {
		return context.WithValue(ctx, OwnerIDCtxKey, nil)
	}
	return context.WithValue(ctx, OwnerIDCtxKey, ownerID)
}

// OwnerFromContext returns the active owner id, if any.
//
// Every read and write of owner-scoped data is filtered by this value:
// with an owner, only that owner's rows are visible; without one, only
// rows that have no owner.
func OwnerFromContext(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(string)
	if !ok || ownerID == "" {
		return "", false
	}
	return ownerID, true
}

// OwnerPtrFromContext is [OwnerFromContext] in the nullable form stored in
// entity rows.
func OwnerPtrFromContext(ctx context.Context) *string {
	ownerID, ok := OwnerFromContext(ctx)
	if !ok {
		return nil
	}
	return &ownerID
}
