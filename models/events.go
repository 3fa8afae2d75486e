package models

// ChangeOp is the kind of mutation a ChangeEvent reports.
type ChangeOp string

const (
	OpCreated ChangeOp = "created"
	OpUpdated ChangeOp = "updated"
	OpDeleted ChangeOp = "deleted"
)

// ChangeEvent is published after a committed local mutation. ID is empty
// for bulk changes such as an import.
type ChangeEvent struct {
	Kind EntityKind
	Op   ChangeOp
	ID   string
}

// SyncState mirrors the per-entity sync state machine.
type SyncState string

const (
	SyncPending SyncState = "pending"
	SyncPushing SyncState = "pushing"
	SyncSynced  SyncState = "synced"
	SyncPulled  SyncState = "pulled"
	SyncFailed  SyncState = "failed"
)

// SyncEvent reports progress or failure of a background sync step.
// ID is empty for kind-wide steps such as a pull.
type SyncEvent struct {
	Kind  EntityKind
	ID    string
	State SyncState
	Err   error
}
