// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the interactive client and blocks until exit.
	Run(ctx context.Context) error
	// Close releases storages and waits for background work.
	Close() error
}

var _ Client = (*App)(nil)
