// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of rows that arrive from outside the
// local store: rows pushed to the sync server and snapshots being imported.
//
// A Validator can be scoped to named fields; without fields every rule of
// the value's type is applied.
package validators

import "context"

// Validator validates input values, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
