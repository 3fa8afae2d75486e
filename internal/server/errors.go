// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoSyncAPI is returned when there is nothing to listen with: the HTTP
// handlers were not built or SERVER_ADDRESS is empty.
var errNoSyncAPI = errors.New("sync API is not configured")
