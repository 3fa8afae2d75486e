// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged server configuration before startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

// Validate checks a client configuration. It runs again after command-line
// overrides are applied.
func (cfg *ClientConfig) Validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	// exactly one remote at most
	if cfg.Adapter.HTTPAddress != "" && cfg.Remote.DSN != "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.HTTPAddress != "" && cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Remote.DSN != "" && cfg.Remote.OwnerID == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.PushDebounce <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
