package config

import (
	"fmt"
	"time"
)

// Default timings of the client sync engine.
const (
	DefaultPushDebounce = 2500 * time.Millisecond
	DefaultSyncInterval = 5 * time.Minute
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the sync server address. Empty means no HTTP remote.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientRemote holds a direct database remote. Empty DSN means none.
type ClientRemote struct {
	DSN     string
	OwnerID string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DSN is the SQLite file of the local store.
	DSN string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	SyncInterval time.Duration
	PushDebounce time.Duration
}

// ClientConfig is the client's view of [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Remote  ClientRemote
	Storage ClientStorage
	Workers ClientWorkers
}

// HasRemote reports whether any remote store is configured. Without one the
// client runs as a purely local store.
func (c *ClientConfig) HasRemote() bool {
	return c.Adapter.HTTPAddress != "" || c.Remote.DSN != ""
}

// GetClientConfig builds and validates the client configuration from the
// environment, the JSON file at jsonPath (when non-empty, otherwise the
// CONFIG variable) and client defaults. Command-line flags belong to the CLI
// and are applied by the caller.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSONPath(jsonPath).
		withJSON().
		withDefaults(clientDefaults()).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Remote: ClientRemote{
			DSN:     cfg.Remote.DSN,
			OwnerID: cfg.Remote.OwnerID,
		},
		Storage: ClientStorage{
			DSN: cfg.Storage.Local.DSN,
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			PushDebounce: cfg.Workers.PushDebounce,
		},
	}

	return clientCfg, clientCfg.Validate()
}

func clientDefaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{Local: Local{DSN: "prompt-keeper.db"}},
		Adapter: Adapter{RequestTimeout: 15 * time.Second},
		Workers: Workers{
			SyncInterval: DefaultSyncInterval,
			PushDebounce: DefaultPushDebounce,
		},
	}
}
