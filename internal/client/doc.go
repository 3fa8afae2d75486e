// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It opens the local store, chooses the sync remote, restores the saved
// session and runs the prompt browser with background sync retries.
package client
