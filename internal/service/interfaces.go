package service

import (
	"context"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PromptService manages prompts and their version history in the active
// owner scope.
type PromptService interface {
	CreatePrompt(ctx context.Context, in models.PromptInput) (models.Prompt, error)
	// UpdatePrompt replaces every editable field. A new version is appended
	// in the same transaction when content or notes change.
	UpdatePrompt(ctx context.Context, id string, in models.PromptInput) (models.Prompt, error)
	DeletePrompt(ctx context.Context, id string) error
	GetPrompt(ctx context.Context, id string) (models.Prompt, bool, error)
	// GetPromptByID returns the latest local state of a prompt whatever its
	// sync state. Chain references are resolved through it.
	GetPromptByID(ctx context.Context, id string) (models.Prompt, bool, error)
	ListPrompts(ctx context.Context, filter models.PromptFilter) ([]models.Prompt, error)

	// ListVersions returns a prompt's snapshots, newest first.
	ListVersions(ctx context.Context, promptID string) ([]models.PromptVersion, error)
	// RestoreVersion writes the snapshot's content and notes back as a
	// regular update, which appends a new version.
	RestoreVersion(ctx context.Context, versionID string) (models.Prompt, error)
	NameVersion(ctx context.Context, versionID, message string) (models.PromptVersion, error)
}

type TagService interface {
	// CreateTag returns the existing tag when the name is taken in scope.
	CreateTag(ctx context.Context, name string) (models.Tag, error)
	RenameTag(ctx context.Context, id, name string) (models.Tag, error)
	DeleteTag(ctx context.Context, id string) error
	ListTags(ctx context.Context) ([]models.Tag, error)
}

type FolderService interface {
	CreateFolder(ctx context.Context, in models.FolderInput) (models.Folder, error)
	UpdateFolder(ctx context.Context, id string, in models.FolderInput) (models.Folder, error)
	// DeleteFolder removes the folder and its subfolders. Prompts inside
	// move to the root.
	DeleteFolder(ctx context.Context, id string) error
	ListFolders(ctx context.Context) ([]models.Folder, error)
}

type PresetService interface {
	CreatePreset(ctx context.Context, in models.PresetInput) (models.ExecutionPreset, error)
	UpdatePreset(ctx context.Context, id string, in models.PresetInput) (models.ExecutionPreset, error)
	DeletePreset(ctx context.Context, id string) error
	GetPreset(ctx context.Context, id string) (models.ExecutionPreset, bool, error)
	ListPresets(ctx context.Context) ([]models.ExecutionPreset, error)
}

// CredentialService keeps provider API keys encrypted with the device key.
// Whenever credentials exist exactly one of them is active.
type CredentialService interface {
	AddCredential(ctx context.Context, name, secret string) (models.Credential, error)
	ActivateCredential(ctx context.Context, id string) error
	DeleteCredential(ctx context.Context, id string) error
	ListCredentials(ctx context.Context) ([]models.Credential, error)
	// ActiveSecret decrypts the active credential's secret.
	ActiveSecret(ctx context.Context) (string, bool, error)
}

type TransferService interface {
	Export(ctx context.Context) (models.Snapshot, error)
	Import(ctx context.Context, snapshot models.Snapshot, mode models.ImportMode) (models.ImportReport, error)
}

// SyncService reconciles the local store with a RemoteStore for the owner
// carried by ctx. Without an owner or a remote every method is a no-op.
type SyncService interface {
	// Pull merges remote rows into the local store: remote wins only when
	// strictly newer.
	Pull(ctx context.Context) error
	// PushPending retries failed deletes and pushes every owned row that
	// changed since its last sync.
	PushPending(ctx context.Context) error
	// StartSession runs Pull and then PushPending.
	StartSession(ctx context.Context) error

	// SchedulePush arms or re-arms the debounced push of one entity.
	SchedulePush(ctx context.Context, kind models.EntityKind, id string)
	// PushNow pushes the current local state of the given entities at once.
	PushNow(ctx context.Context, kind models.EntityKind, ids ...string)
	// PushDelete delivers a local delete to the remote store before
	// returning. A failed delete is kept and retried by PushPending.
	PushDelete(ctx context.Context, kind models.EntityKind, ownerID *string, id string)

	// AdoptLocalData moves every unowned prompt, tag, folder and version
	// into the active owner's scope and queues them for push.
	AdoptLocalData(ctx context.Context) (int, error)

	// Close drops armed push timers and waits for running pushes.
	Close()
}

// SessionService signs the device in and out of a sync account.
type SessionService interface {
	Register(ctx context.Context, login, password string) (string, error)
	Login(ctx context.Context, login, password string) (string, error)
	Logout(ctx context.Context) error
	// Restore returns the owner id of the saved session and re-arms the
	// transport with its token.
	Restore(ctx context.Context) (string, bool, error)
}

// RemoteStore is the remote mirror of the syncable tables as the client
// sees it: over HTTP or through a direct database connection.
type RemoteStore interface {
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

// Authenticator obtains bearer tokens from the sync server.
type Authenticator interface {
	Register(ctx context.Context, user models.User) (string, error)
	Login(ctx context.Context, user models.User) (string, error)
	SetToken(token string)
}

// AuthService registers and authenticates accounts on the server.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RemoteSyncService is the server side of RemoteStore. The owner is taken
// from ctx and every call touching another owner's data is refused.
type RemoteSyncService interface {
	RemoteStore
}

// AppInfoService describes the running server to clients.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}
