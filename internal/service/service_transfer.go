// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-prompt-keeper/internal/events"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
	"github.com/MKhiriev/go-prompt-keeper/internal/validators"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

type transferService struct {
	localDeps
	validator validators.Validator
}

func NewTransferService(local *store.LocalStore, sync SyncService, bus *events.Bus) TransferService {
	return &transferService{
		localDeps: newLocalDeps(local, sync, bus),
		validator: validators.NewRowValidator(),
	}
}

// Export snapshots the active owner scope and all presets. Owner ids and
// sync watermarks are left out; credentials never leave the device.
func (s *transferService) Export(ctx context.Context) (models.Snapshot, error) {
	owner := utils.OwnerPtrFromContext(ctx)

	prompts, err := s.local.Prompts().List(ctx, owner, models.PromptFilter{AllFolders: true})
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("export prompts: %w", err)
	}
	tags, err := s.local.Tags().List(ctx, owner)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("export tags: %w", err)
	}
	folders, err := s.local.Folders().List(ctx, owner)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("export folders: %w", err)
	}
	presets, err := s.local.Presets().List(ctx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("export presets: %w", err)
	}

	snapshot := models.Snapshot{
		FormatVersion: models.SnapshotFormatVersion,
		ExportedAt:    utils.Now(),
		Prompts:       make([]models.Prompt, 0, len(prompts)),
		Tags:          make([]models.Tag, 0, len(tags)),
		Folders:       make([]models.Folder, 0, len(folders)),
		Versions:      []models.PromptVersion{},
		Presets:       presets,
	}
	if snapshot.Presets == nil {
		snapshot.Presets = []models.ExecutionPreset{}
	}

	for _, p := range prompts {
		versions, err := s.local.Versions().ListByPrompt(ctx, p.ID)
		if err != nil {
			return models.Snapshot{}, fmt.Errorf("export versions: %w", err)
		}
		for _, v := range versions {
			v.OwnerID, v.LastSyncedAt = nil, nil
			snapshot.Versions = append(snapshot.Versions, v)
		}
		p.OwnerID, p.LastSyncedAt = nil, nil
		snapshot.Prompts = append(snapshot.Prompts, p)
	}
	for _, t := range tags {
		t.OwnerID, t.LastSyncedAt = nil, nil
		snapshot.Tags = append(snapshot.Tags, t)
	}
	for _, f := range folders {
		f.OwnerID, f.LastSyncedAt = nil, nil
		snapshot.Folders = append(snapshot.Folders, f)
	}

	return snapshot, nil
}

// Import applies a snapshot inside one transaction.
//
// Every imported prompt, tag, folder and version is owned by the active
// owner and left pending. References to tags and folders that exist
// neither in the snapshot nor in scope are dropped. A tag whose name is
// already used in scope by another id is folded into that tag. Overwrite
// clears prompts, tags, folders, versions and presets first; credentials
// and device slots are kept.
func (s *transferService) Import(ctx context.Context, snapshot models.Snapshot, mode models.ImportMode) (models.ImportReport, error) {
	log := logger.FromContext(ctx)

	if _, err := models.ParseImportMode(string(mode)); err != nil {
		return models.ImportReport{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := s.validator.Validate(ctx, snapshot); err != nil {
		return models.ImportReport{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := checkSnapshotPresets(snapshot.Presets); err != nil {
		return models.ImportReport{}, err
	}

	owner := utils.OwnerPtrFromContext(ctx)
	var report models.ImportReport

	tables := []store.Table{store.TablePrompts, store.TableTags, store.TableFolders, store.TableVersions, store.TablePresets}
	err := s.local.Transaction(ctx, tables, func(ctx context.Context, tx *store.Tx) error {
		report = models.ImportReport{}
		now := utils.Now()

		if mode == models.ImportOverwrite {
			if err := clearImportTables(ctx, tx); err != nil {
				return err
			}
		}

		remap, err := importTags(ctx, tx, owner, snapshot.Tags, now, &report)
		if err != nil {
			return err
		}
		if err = importFolders(ctx, tx, owner, snapshot.Folders, now, &report); err != nil {
			return err
		}
		if err = importPrompts(ctx, tx, owner, snapshot.Prompts, remap, now, &report); err != nil {
			return err
		}
		if err = s.importVersions(ctx, tx, owner, snapshot, now, &report); err != nil {
			return err
		}
		return importPresets(ctx, tx, snapshot.Presets, now, &report)
	})
	if err != nil {
		log.Err(err).Str("func", "transferService.Import").Str("mode", string(mode)).Msg("import rolled back")
		return models.ImportReport{}, txError(err)
	}

	for _, kind := range []models.EntityKind{models.KindFolder, models.KindTag, models.KindPrompt, models.KindVersion, models.KindPreset} {
		s.bus.Publish(ctx, models.ChangeEvent{Kind: kind, Op: models.OpUpdated})
	}
	_ = s.sync.PushPending(ctx)

	log.Info().
		Str("func", "transferService.Import").
		Str("mode", string(mode)).
		Any("report", report).
		Msg("snapshot imported")

	return report, nil
}

func checkSnapshotPresets(presets []models.ExecutionPreset) error {
	for _, p := range presets {
		if _, err := validatePreset(presetInput(p)); err != nil {
			return err
		}
	}
	return nil
}

// clearImportTables runs the overwrite cleanup in dependency order.
func clearImportTables(ctx context.Context, tx *store.Tx) error {
	steps := []func(context.Context) error{
		tx.Versions().DeleteAll,
		tx.Prompts().DeleteAll,
		tx.Tags().DeleteAll,
		tx.Folders().DeleteAll,
		tx.Presets().DeleteAll,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func importTags(ctx context.Context, tx *store.Tx, owner *string, tags []models.Tag, now time.Time, report *models.ImportReport) (map[string]string, error) {
	remap := make(map[string]string)
	for _, t := range tags {
		existing, found, err := tx.Tags().Get(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		if ownedByOther(found, existing.OwnerID, owner) {
			report.Skipped++
			continue
		}

		t.Name = strings.TrimSpace(t.Name)
		clash, found, err := tx.Tags().FindByName(ctx, owner, t.Name)
		if err != nil {
			return nil, err
		}
		if found && clash.ID != t.ID {
			remap[t.ID] = clash.ID
			report.MergedTags++
			continue
		}

		t.OwnerID = owner
		t.LastSyncedAt = nil
		stampTimes(&t.CreatedAt, &t.UpdatedAt, now)
		if err = tx.Tags().Put(ctx, t); err != nil {
			return nil, err
		}
		report.Tags++
	}
	return remap, nil
}

func importFolders(ctx context.Context, tx *store.Tx, owner *string, folders []models.Folder, now time.Time, report *models.ImportReport) error {
	accepted := make([]models.Folder, 0, len(folders))
	incoming := make(map[string]bool, len(folders))
	for _, f := range folders {
		existing, found, err := tx.Folders().Get(ctx, f.ID)
		if err != nil {
			return err
		}
		if ownedByOther(found, existing.OwnerID, owner) {
			report.Skipped++
			continue
		}
		accepted = append(accepted, f)
		incoming[f.ID] = true
	}

	for _, f := range accepted {
		if f.ParentID != nil && !incoming[*f.ParentID] {
			parent, ok, err := tx.Folders().Get(ctx, *f.ParentID)
			if err != nil {
				return err
			}
			if !ok || !equalPtr(parent.OwnerID, owner) {
				f.ParentID = nil
			}
		}

		f.OwnerID = owner
		f.LastSyncedAt = nil
		stampTimes(&f.CreatedAt, &f.UpdatedAt, now)
		if err := tx.Folders().Put(ctx, f); err != nil {
			return err
		}
		report.Folders++
	}

	for _, f := range accepted {
		if err := checkAcyclic(ctx, tx, f.ID); err != nil {
			return err
		}
	}
	return nil
}

// ownedByOther reports whether an existing row belongs to another owner.
// Merge never re-owns such a row.
func ownedByOther(found bool, existing, owner *string) bool {
	return found && !equalPtr(existing, owner)
}

// checkAcyclic walks up from id and fails when a folder repeats.
func checkAcyclic(ctx context.Context, tx *store.Tx, id string) error {
	seen := map[string]bool{}
	for cur := &id; cur != nil; {
		if seen[*cur] {
			return fmt.Errorf("%w: %s", ErrFolderCycle, *cur)
		}
		seen[*cur] = true

		folder, ok, err := tx.Folders().Get(ctx, *cur)
		if err != nil || !ok {
			return err
		}
		cur = folder.ParentID
	}
	return nil
}

func importPrompts(ctx context.Context, tx *store.Tx, owner *string, prompts []models.Prompt, remap map[string]string, now time.Time, report *models.ImportReport) error {
	for _, p := range prompts {
		existing, found, err := tx.Prompts().Get(ctx, p.ID)
		if err != nil {
			return err
		}
		if ownedByOther(found, existing.OwnerID, owner) {
			report.Skipped++
			continue
		}

		tagIDs := make([]string, 0, len(p.TagIDs))
		for _, id := range p.TagIDs {
			if mapped, ok := remap[id]; ok {
				id = mapped
			}
			tag, ok, err := tx.Tags().Get(ctx, id)
			if err != nil {
				return err
			}
			if ok && equalPtr(tag.OwnerID, owner) {
				tagIDs = append(tagIDs, id)
			}
		}
		p.TagIDs = uniqueIDs(tagIDs)

		if p.FolderID != nil {
			folder, ok, err := tx.Folders().Get(ctx, *p.FolderID)
			if err != nil {
				return err
			}
			if !ok || !equalPtr(folder.OwnerID, owner) {
				p.FolderID = nil
			}
		}

		p.OwnerID = owner
		p.LastSyncedAt = nil
		stampTimes(&p.CreatedAt, &p.UpdatedAt, now)
		if err := tx.Prompts().Put(ctx, p); err != nil {
			return err
		}
		report.Prompts++
	}
	return nil
}

// importVersions writes the snapshot's versions and gives every imported
// prompt that ends up without history its initial version.
func (s *transferService) importVersions(ctx context.Context, tx *store.Tx, owner *string, snapshot models.Snapshot, now time.Time, report *models.ImportReport) error {
	for _, v := range snapshot.Versions {
		prompt, ok, err := tx.Prompts().Get(ctx, v.PromptID)
		if err != nil {
			return err
		}
		if !ok || !equalPtr(prompt.OwnerID, owner) {
			continue
		}
		existing, found, err := tx.Versions().Get(ctx, v.ID)
		if err != nil {
			return err
		}
		if ownedByOther(found, existing.OwnerID, owner) {
			report.Skipped++
			continue
		}

		v.OwnerID = owner
		v.LastSyncedAt = nil
		if v.CreatedAt.IsZero() {
			v.CreatedAt = now
		}
		if err = tx.Versions().Put(ctx, v); err != nil {
			return err
		}
		report.Versions++
	}

	for _, p := range snapshot.Prompts {
		versions, err := tx.Versions().ListByPrompt(ctx, p.ID)
		if err != nil {
			return err
		}
		if len(versions) > 0 {
			continue
		}

		prompt, ok, err := tx.Prompts().Get(ctx, p.ID)
		if err != nil || !ok {
			return err
		}
		if !equalPtr(prompt.OwnerID, owner) {
			continue
		}
		if err = tx.Versions().Put(ctx, newVersion(s.ids.Generate(), prompt, prompt.UpdatedAt)); err != nil {
			return err
		}
		report.Versions++
	}
	return nil
}

// importPresets upserts by id; a preset whose name is taken by another id
// updates that preset instead.
func importPresets(ctx context.Context, tx *store.Tx, presets []models.ExecutionPreset, now time.Time, report *models.ImportReport) error {
	for _, p := range presets {
		p.Name = strings.TrimSpace(p.Name)
		clash, found, err := tx.Presets().FindByName(ctx, p.Name)
		if err != nil {
			return err
		}
		if found && clash.ID != p.ID {
			p.ID = clash.ID
			p.CreatedAt = clash.CreatedAt
		}

		stampTimes(&p.CreatedAt, &p.UpdatedAt, now)
		if err = tx.Presets().Put(ctx, p); err != nil {
			return err
		}
		report.Presets++
	}
	return nil
}

func presetInput(p models.ExecutionPreset) models.PresetInput {
	return models.PresetInput{
		Name:         p.Name,
		Model:        p.Model,
		Temperature:  p.Temperature,
		MaxTokens:    p.MaxTokens,
		TopP:         p.TopP,
		SystemPrompt: p.SystemPrompt,
	}
}

func stampTimes(createdAt, updatedAt *time.Time, now time.Time) {
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = *createdAt
	}
	*createdAt = createdAt.UTC().Truncate(utils.TimestampPrecision)
	*updatedAt = updatedAt.UTC().Truncate(utils.TimestampPrecision)
}
