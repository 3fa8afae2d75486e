package service

import (
	"context"

	"github.com/MKhiriev/go-prompt-keeper/internal/config"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService fixes the server description at startup. The version
// comes from APP_VERSION and is required.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	collections := make([]string, 0, len(models.SyncableKinds))
	for _, kind := range models.SyncableKinds {
		collections = append(collections, kind.Collection())
	}

	return &appInfoService{
		info: models.AppInfo{
			Version:        cfg.Version,
			SnapshotFormat: models.SnapshotFormatVersion,
			Collections:    collections,
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	info := s.info
	info.Collections = append([]string(nil), s.info.Collections...)
	return info
}
