package models

import "time"

// Folder is a node of the folder tree. ParentID nil marks a root folder.
type Folder struct {
	ID           string     `json:"id"`
	OwnerID      *string    `json:"owner_id,omitempty"`
	Name         string     `json:"name"`
	ParentID     *string    `json:"parent_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

// FolderInput carries the user-editable fields of a folder.
type FolderInput struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

func (f Folder) GetID() string { return f.ID }
