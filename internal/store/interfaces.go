package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator maps engine-specific driver errors onto the few
// categories the repositories care about.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

// UserRepository stores remote accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// PromptRepository persists prompts together with their ordered tag links.
// Put writes several statements and must run inside [LocalStore.Transaction].
type PromptRepository interface {
	Put(ctx context.Context, prompt models.Prompt) error
	Get(ctx context.Context, id string) (models.Prompt, bool, error)
	List(ctx context.Context, ownerID *string, filter models.PromptFilter) ([]models.Prompt, error)
	ListByFolders(ctx context.Context, folderIDs []string) ([]models.Prompt, error)
	ListByTag(ctx context.Context, tagID string) ([]models.Prompt, error)
	ListAll(ctx context.Context) ([]models.Prompt, error)
	ListPending(ctx context.Context, ownerID string) ([]models.Prompt, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	MarkSynced(ctx context.Context, id string, at time.Time) error
}

// TagRepository persists tags. Names are unique per owner.
type TagRepository interface {
	Put(ctx context.Context, tag models.Tag) error
	Get(ctx context.Context, id string) (models.Tag, bool, error)
	FindByName(ctx context.Context, ownerID *string, name string) (models.Tag, bool, error)
	List(ctx context.Context, ownerID *string) ([]models.Tag, error)
	ListAll(ctx context.Context) ([]models.Tag, error)
	ListPending(ctx context.Context, ownerID string) ([]models.Tag, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	MarkSynced(ctx context.Context, id string, at time.Time) error
}

// FolderRepository persists the folder tree.
type FolderRepository interface {
	Put(ctx context.Context, folder models.Folder) error
	Get(ctx context.Context, id string) (models.Folder, bool, error)
	ListByParent(ctx context.Context, ownerID *string, parentID *string) ([]models.Folder, error)
	List(ctx context.Context, ownerID *string) ([]models.Folder, error)
	ListAll(ctx context.Context) ([]models.Folder, error)
	ListPending(ctx context.Context, ownerID string) ([]models.Folder, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	MarkSynced(ctx context.Context, id string, at time.Time) error
}

// VersionRepository persists prompt snapshots. Versions are never edited
// apart from their commit message.
type VersionRepository interface {
	Put(ctx context.Context, version models.PromptVersion) error
	Get(ctx context.Context, id string) (models.PromptVersion, bool, error)
	ListByPrompt(ctx context.Context, promptID string) ([]models.PromptVersion, error)
	ListAll(ctx context.Context) ([]models.PromptVersion, error)
	ListPending(ctx context.Context, ownerID string) ([]models.PromptVersion, error)
	DeleteByPrompt(ctx context.Context, promptID string) error
	DeleteAll(ctx context.Context) error
	MarkSynced(ctx context.Context, id string, at time.Time) error
}

// PresetRepository persists execution presets. Names are globally unique.
type PresetRepository interface {
	Put(ctx context.Context, preset models.ExecutionPreset) error
	Get(ctx context.Context, id string) (models.ExecutionPreset, bool, error)
	FindByName(ctx context.Context, name string) (models.ExecutionPreset, bool, error)
	List(ctx context.Context) ([]models.ExecutionPreset, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// CredentialRepository persists encrypted provider credentials.
type CredentialRepository interface {
	Put(ctx context.Context, credential models.Credential) error
	Get(ctx context.Context, id string) (models.Credential, bool, error)
	FindByName(ctx context.Context, name string) (models.Credential, bool, error)
	GetActive(ctx context.Context) (models.Credential, bool, error)
	List(ctx context.Context) ([]models.Credential, error)
	DeactivateAll(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

// SlotRepository is a small key/value table for device-scoped values: the
// cipher key, the session token and the active owner id.
type SlotRepository interface {
	GetSlot(ctx context.Context, key string) (string, bool, error)
	PutSlot(ctx context.Context, key, value string) error
	DeleteSlot(ctx context.Context, key string) error
}

// PendingDeleteRepository persists remote deletes that still have to be
// delivered.
type PendingDeleteRepository interface {
	Add(ctx context.Context, pending models.PendingDelete) error
	List(ctx context.Context, ownerID string) ([]models.PendingDelete, error)
	Has(ctx context.Context, kind models.EntityKind, id string) (bool, error)
	Remove(ctx context.Context, kind models.EntityKind, id string) error
}

// RemoteRepository is the server-side mirror of the syncable tables. Every
// call is scoped to one owner.
type RemoteRepository interface {
	PullPrompts(ctx context.Context, ownerID string) ([]models.Prompt, error)
	PullTags(ctx context.Context, ownerID string) ([]models.Tag, error)
	PullFolders(ctx context.Context, ownerID string) ([]models.Folder, error)
	PullVersions(ctx context.Context, ownerID string) ([]models.PromptVersion, error)
	PushPrompt(ctx context.Context, prompt models.Prompt) error
	PushTag(ctx context.Context, tag models.Tag) error
	PushFolder(ctx context.Context, folder models.Folder) error
	PushVersion(ctx context.Context, version models.PromptVersion) error
	Delete(ctx context.Context, kind models.EntityKind, ownerID, id string) error
}
