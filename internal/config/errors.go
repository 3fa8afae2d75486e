package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or inconsistent.
var (
	// ErrInvalidAdapterConfigs indicates invalid remote settings (both an
	// HTTP and a direct database remote, a missing timeout, or a direct
	// remote without an owner id).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates non-positive sync timings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
