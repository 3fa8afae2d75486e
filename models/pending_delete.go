package models

import "time"

// PendingDelete records a remote delete that could not be delivered yet.
// While it exists, pulls must not resurrect the entity locally.
type PendingDelete struct {
	Kind      EntityKind
	ID        string
	OwnerID   string
	DeletedAt time.Time
}
