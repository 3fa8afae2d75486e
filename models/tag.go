package models

import "time"

// Tag is a label attached to prompts. Name is unique per owner scope.
type Tag struct {
	ID           string     `json:"id"`
	OwnerID      *string    `json:"owner_id,omitempty"`
	Name         string     `json:"name"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

func (t Tag) GetID() string { return t.ID }
