package service

import (
	"fmt"

	"github.com/MKhiriev/go-prompt-keeper/internal/config"
	"github.com/MKhiriev/go-prompt-keeper/internal/crypto"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
)

// Services groups what the sync server's handlers call.
type Services struct {
	AuthService       AuthService
	RemoteSyncService RemoteSyncService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), cfg.App, logger),
		RemoteSyncService: NewRemoteSyncValidationService(NewRemoteSyncService(storages.RemoteRepository, logger)),
		AppInfoService:    appInfo,
	}, nil
}
