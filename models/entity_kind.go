// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// EntityKind names one of the tables a change or a sync operation refers to.
type EntityKind string

const (
	KindPrompt     EntityKind = "prompt"
	KindTag        EntityKind = "tag"
	KindFolder     EntityKind = "folder"
	KindVersion    EntityKind = "version"
	KindPreset     EntityKind = "preset"
	KindCredential EntityKind = "credential"
)

// SyncableKinds lists the kinds that have a remote representation, in the
// order they must be pulled: folders and tags before the prompts that
// reference them, prompts before their versions.
var SyncableKinds = []EntityKind{KindFolder, KindTag, KindPrompt, KindVersion}

// Syncable reports whether entities of this kind are mirrored remotely.
// Presets and credentials never leave the device.
func (k EntityKind) Syncable() bool {
	switch k {
	case KindPrompt, KindTag, KindFolder, KindVersion:
		return true
	default:
		return false
	}
}

// Collection returns the plural path segment used by the sync HTTP API.
func (k EntityKind) Collection() string {
	switch k {
	case KindVersion:
		return "versions"
	default:
		return string(k) + "s"
	}
}

// ParseCollection is the inverse of [EntityKind.Collection] for syncable kinds.
func ParseCollection(s string) (EntityKind, error) {
	for _, k := range SyncableKinds {
		if k.Collection() == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown collection %q", s)
}
