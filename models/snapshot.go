// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// SnapshotFormatVersion is written into every export and checked on import.
const SnapshotFormatVersion = 1

// Snapshot is the portable export of everything except credentials.
type Snapshot struct {
	FormatVersion int               `json:"format_version"`
	ExportedAt    time.Time         `json:"exported_at"`
	Prompts       []Prompt          `json:"prompts"`
	Tags          []Tag             `json:"tags"`
	Folders       []Folder          `json:"folders"`
	Versions      []PromptVersion   `json:"versions"`
	Presets       []ExecutionPreset `json:"presets"`
}

// ImportMode selects how a snapshot is applied to the local store.
type ImportMode string

const (
	// ImportMerge upserts by id and folds tags with clashing names into the
	// existing tag of the same scope.
	ImportMerge ImportMode = "merge"
	// ImportOverwrite clears local data first and inserts the snapshot as is.
	ImportOverwrite ImportMode = "overwrite"
)

// ParseImportMode validates a user supplied mode string.
func ParseImportMode(s string) (ImportMode, error) {
	switch ImportMode(s) {
	case ImportMerge, ImportOverwrite:
		return ImportMode(s), nil
	default:
		return "", fmt.Errorf("unknown import mode %q", s)
	}
}

// ImportReport summarizes what an import wrote.
type ImportReport struct {
	Prompts    int `json:"prompts"`
	Tags       int `json:"tags"`
	Folders    int `json:"folders"`
	Versions   int `json:"versions"`
	Presets    int `json:"presets"`
	MergedTags int `json:"merged_tags"`
	// Skipped counts rows whose id already exists under another owner.
	Skipped int `json:"skipped"`
}
