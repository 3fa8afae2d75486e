// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoSyncAddress is returned by NewHandlers when SERVER_ADDRESS is empty.
var errNoSyncAddress = errors.New("sync API address is not configured")
