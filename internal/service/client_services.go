package service

import (
	"github.com/MKhiriev/go-prompt-keeper/internal/config"
	"github.com/MKhiriev/go-prompt-keeper/internal/crypto"
	"github.com/MKhiriev/go-prompt-keeper/internal/events"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/internal/workers"
)

// ClientServices is the public surface of the local-first data layer.
type ClientServices struct {
	Prompts     PromptService
	Tags        TagService
	Folders     FolderService
	Presets     PresetService
	Credentials CredentialService
	Transfer    TransferService
	Sync        SyncService
	Session     SessionService

	// Bus delivers change and sync events to UI subscribers.
	Bus *events.Bus

	// SyncJob retries pending pushes in the background.
	SyncJob *workers.Ticker
}

// NewClientServices wires the client services over local. remote and auth
// may be nil; the client then keeps everything on this device.
func NewClientServices(local *store.LocalStore, remote RemoteStore, auth Authenticator, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	bus := events.NewBus()
	cipher := crypto.NewSecretCipher(local.Slots(), logger)
	syncSvc := NewSyncService(local, remote, bus, cfg.Workers.PushDebounce)

	return &ClientServices{
		Prompts:     NewPromptService(local, syncSvc, bus),
		Tags:        NewTagService(local, syncSvc, bus),
		Folders:     NewFolderService(local, syncSvc, bus),
		Presets:     NewPresetService(local, bus),
		Credentials: NewCredentialService(local, cipher, bus),
		Transfer:    NewTransferService(local, syncSvc, bus),
		Sync:        syncSvc,
		Session:     NewSessionService(local, auth),
		Bus:         bus,
		SyncJob:     NewSyncJob(syncSvc, cfg.Workers.SyncInterval),
	}
}
