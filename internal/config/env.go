// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the process environment into a fresh config. Names come
// from the `env` and `envPrefix` tags, so Storage.Local.DSN is
// STORAGE_LOCAL_DSN. Unset variables leave their fields zero for the later
// sources and the defaults.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return &cfg, nil
}
