package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-prompt-keeper/internal/config"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
)

// ClientStorages groups what the client keeps in databases it opens itself:
// the local store and, when configured, a direct connection to the remote
// PostgreSQL mirror.
type ClientStorages struct {
	Local *LocalStore

	// Remote is nil unless the client talks to PostgreSQL directly instead
	// of through the HTTP server.
	Remote RemoteRepository

	remoteDB *DB
}

// NewClientStorages opens the local store, creating the database file if
// needed and applying migrations, and connects the direct remote when
// cfg.Remote.DSN is set.
func NewClientStorages(ctx context.Context, cfg config.ClientConfig, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	local, err := NewLocalStore(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	storages := &ClientStorages{Local: local}
	if cfg.Remote.DSN == "" {
		return storages, nil
	}

	remoteDB, err := NewConnectPostgres(ctx, cfg.Remote.DSN, logger)
	if err != nil {
		_ = local.Close()
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}
	if _, err = remoteDB.Migrate(ctx); err != nil {
		_ = local.Close()
		_ = remoteDB.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages.Remote = NewRemoteRepository(remoteDB, logger)
	storages.remoteDB = remoteDB
	return storages, nil
}

func (s *ClientStorages) Close() error {
	err := s.Local.Close()
	if s.remoteDB != nil {
		if rErr := s.remoteDB.Close(); rErr != nil && err == nil {
			err = rErr
		}
	}
	return err
}
