// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PromptVersion is an immutable snapshot of a prompt's content and notes.
// Only CommitMessage may change after creation.
type PromptVersion struct {
	ID            string     `json:"id"`
	PromptID      string     `json:"prompt_id"`
	OwnerID       *string    `json:"owner_id,omitempty"`
	Content       string     `json:"content"`
	Notes         string     `json:"notes,omitempty"`
	CommitMessage string     `json:"commit_message,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	LastSyncedAt  *time.Time `json:"last_synced_at,omitempty"`
}

func (v PromptVersion) GetID() string { return v.ID }
