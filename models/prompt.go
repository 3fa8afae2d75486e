// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Prompt is a titled piece of prompt text together with free-form notes,
// tag references and an optional folder.
//
// OwnerID is nil for prompts created while no account was active; such
// prompts stay on the device. FolderID nil means "no folder".
type Prompt struct {
	ID           string     `json:"id"`
	OwnerID      *string    `json:"owner_id,omitempty"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Notes        string     `json:"notes,omitempty"`
	TagIDs       []string   `json:"tag_ids"`
	FolderID     *string    `json:"folder_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

// PromptInput carries the user-editable fields of a prompt. Updates replace
// every field, so callers send the full desired state.
type PromptInput struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Notes    string   `json:"notes,omitempty"`
	TagIDs   []string `json:"tag_ids"`
	FolderID *string  `json:"folder_id"`
}

// PromptFilter narrows ListPrompts.
//
// AllFolders ignores FolderID entirely; otherwise a nil FolderID selects
// prompts that are not in any folder.
type PromptFilter struct {
	AllFolders bool
	FolderID   *string
	TagID      string
}

// ContentEquals reports whether the snapshot-relevant fields match.
func (p Prompt) ContentEquals(content, notes string) bool {
	return p.Content == content && p.Notes == notes
}

func (p Prompt) GetID() string { return p.ID }
