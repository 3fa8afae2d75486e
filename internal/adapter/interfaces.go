// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to the prompt-keeper sync
// server.
//
// The primary abstraction is [ServerAdapter]. It satisfies both the
// service layer's RemoteStore and Authenticator, so the sync engine works
// the same over HTTP as over a direct database connection.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the sync server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent sync
	// requests. An empty token signs the adapter out.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account and returns the issued bearer token.
	Register(ctx context.Context, user models.User) (string, error)

	// Login authenticates an existing account and returns the issued bearer
	// token.
	Login(ctx context.Context, user models.User) (string, error)

	PullPrompts(ctx context.Context, ownerID string) ([]models.Prompt, error)
	PullTags(ctx context.Context, ownerID string) ([]models.Tag, error)
	PullFolders(ctx context.Context, ownerID string) ([]models.Folder, error)
	PullVersions(ctx context.Context, ownerID string) ([]models.PromptVersion, error)

	// Push* upsert one row. The server keeps whatever it is sent; conflict
	// resolution is the client's job.
	PushPrompt(ctx context.Context, prompt models.Prompt) error
	PushTag(ctx context.Context, tag models.Tag) error
	PushFolder(ctx context.Context, folder models.Folder) error
	PushVersion(ctx context.Context, version models.PromptVersion) error

	// Delete removes one row. Deleting a row the server does not have is
	// not an error.
	Delete(ctx context.Context, kind models.EntityKind, ownerID, id string) error
}
