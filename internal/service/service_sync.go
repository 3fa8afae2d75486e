// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-prompt-keeper/internal/config"
	"github.com/MKhiriev/go-prompt-keeper/internal/events"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
	"github.com/MKhiriev/go-prompt-keeper/internal/workers"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

// syncService keeps the local store and a RemoteStore convergent.
//
// Pushes of edits are debounced per entity id and always send the state
// read when the timer fires. Deletes are delivered synchronously; the ones
// that fail are kept as tombstones until PushPending gets them through.
type syncService struct {
	local     *store.LocalStore
	remote    RemoteStore
	bus       *events.Bus
	debouncer *workers.Debouncer
}

// NewSyncService returns a SyncService. A nil remote turns every sync
// operation into a no-op, which is how the client runs without an account.
func NewSyncService(local *store.LocalStore, remote RemoteStore, bus *events.Bus, debounce time.Duration) SyncService {
	if debounce <= 0 {
		debounce = config.DefaultPushDebounce
	}
	return &syncService{
		local:     local,
		remote:    remote,
		bus:       bus,
		debouncer: workers.NewDebouncer(debounce),
	}
}

// active returns the owner to sync for, if syncing is possible at all.
func (s *syncService) active(ctx context.Context) (string, bool) {
	if s.remote == nil {
		return "", false
	}
	return utils.OwnerFromContext(ctx)
}

func (s *syncService) StartSession(ctx context.Context) error {
	return errors.Join(s.Pull(ctx), s.PushPending(ctx))
}

func (s *syncService) Close() {
	s.debouncer.Stop()
}

// ── pull ────────────────────────────────────────────────────────────────────

// Pull fetches every kind in dependency order. A failing kind does not stop
// the others; the returned error joins all failures.
func (s *syncService) Pull(ctx context.Context) error {
	owner, ok := s.active(ctx)
	if !ok {
		return nil
	}

	return errors.Join(
		pullKind(ctx, s, owner, models.KindFolder, s.remote.PullFolders,
			[]store.Table{store.TableFolders, store.TablePendingDeletes}, mergeFolder),
		pullKind(ctx, s, owner, models.KindTag, s.remote.PullTags,
			[]store.Table{store.TableTags, store.TablePrompts, store.TablePendingDeletes}, mergeTag),
		pullKind(ctx, s, owner, models.KindPrompt, s.remote.PullPrompts,
			[]store.Table{store.TablePrompts, store.TableTags, store.TableFolders, store.TablePendingDeletes}, mergePrompt),
		pullKind(ctx, s, owner, models.KindVersion, s.remote.PullVersions,
			[]store.Table{store.TableVersions, store.TablePrompts, store.TablePendingDeletes}, mergeVersion),
	)
}

// mergeFunc writes one remote row into the local store if it wins and
// returns the resulting change events.
type mergeFunc[T any] func(ctx context.Context, tx *store.Tx, owner string, remote T, now time.Time) ([]models.ChangeEvent, error)

func pullKind[T any](
	ctx context.Context,
	s *syncService,
	owner string,
	kind models.EntityKind,
	fetch func(ctx context.Context, ownerID string) ([]T, error),
	tables []store.Table,
	merge mergeFunc[T],
) error {
	rows, err := fetch(ctx, owner)
	if err != nil {
		return s.fail(ctx, kind, "", err)
	}

	var changes []models.ChangeEvent
	err = s.local.Transaction(ctx, tables, func(ctx context.Context, tx *store.Tx) error {
		changes = changes[:0]
		now := utils.Now()
		for _, row := range rows {
			rowChanges, err := merge(ctx, tx, owner, row, now)
			if err != nil {
				return err
			}
			changes = append(changes, rowChanges...)
		}
		return nil
	})
	if err != nil {
		return s.fail(ctx, kind, "", txError(err))
	}

	for _, change := range changes {
		s.bus.Publish(ctx, change)
	}
	s.bus.PublishSync(ctx, models.SyncEvent{Kind: kind, State: models.SyncPulled})
	logger.FromContext(ctx).Debug().
		Str("func", "syncService.Pull").
		Str("kind", string(kind)).
		Int("remote", len(rows)).
		Int("changed", len(changes)).
		Msg("pull finished")

	return nil
}

// remoteWins is last-write-wins with ties going to the local copy.
func remoteWins(localExists bool, local, remote time.Time) bool {
	return !localExists || remote.After(local)
}

// watermark never lets lastSyncedAt fall behind updatedAt, so a row from a
// device with a fast clock is not pushed straight back.
func watermark(now, updatedAt time.Time) *time.Time {
	if updatedAt.After(now) {
		return &updatedAt
	}
	return &now
}

func changeOp(existed bool) models.ChangeOp {
	if existed {
		return models.OpUpdated
	}
	return models.OpCreated
}

// mergeFolder keeps the local tree acyclic after the remote row is written.
func mergeFolder(ctx context.Context, tx *store.Tx, owner string, remote models.Folder, now time.Time) ([]models.ChangeEvent, error) {
	if skip, err := tx.PendingDeletes().Has(ctx, models.KindFolder, remote.ID); err != nil || skip {
		return nil, err
	}
	local, ok, err := tx.Folders().Get(ctx, remote.ID)
	if err != nil || !remoteWins(ok, local.UpdatedAt, remote.UpdatedAt) {
		return nil, err
	}

	remote.OwnerID = &owner
	remote.LastSyncedAt = watermark(now, remote.UpdatedAt)
	if err = tx.Folders().Put(ctx, remote); err != nil {
		return nil, err
	}

	// Moves made on two devices can close a loop. The pulled folder goes to
	// the root and stays pending so the repaired tree is pushed back.
	if remote.ParentID != nil {
		err = checkAcyclic(ctx, tx, remote.ID)
		if errors.Is(err, ErrFolderCycle) {
			remote.ParentID = nil
			remote.LastSyncedAt = nil
			err = tx.Folders().Put(ctx, remote)
		}
		if err != nil {
			return nil, err
		}
	}
	return []models.ChangeEvent{{Kind: models.KindFolder, Op: changeOp(ok), ID: remote.ID}}, nil
}

// mergeTag also resolves name clashes: a different local tag with the same
// name is folded into the remote one and its remote copy, if any, is
// queued for deletion.
func mergeTag(ctx context.Context, tx *store.Tx, owner string, remote models.Tag, now time.Time) ([]models.ChangeEvent, error) {
	if skip, err := tx.PendingDeletes().Has(ctx, models.KindTag, remote.ID); err != nil || skip {
		return nil, err
	}
	local, ok, err := tx.Tags().Get(ctx, remote.ID)
	if err != nil || !remoteWins(ok, local.UpdatedAt, remote.UpdatedAt) {
		return nil, err
	}

	var changes []models.ChangeEvent
	clash, found, err := tx.Tags().FindByName(ctx, &owner, remote.Name)
	if err != nil {
		return nil, err
	}
	if found && clash.ID != remote.ID {
		retagged, err := retagPrompts(ctx, tx, clash.ID, remote.ID, now)
		if err != nil {
			return nil, err
		}
		if err = tx.Tags().Delete(ctx, clash.ID); err != nil {
			return nil, err
		}
		if clash.LastSyncedAt != nil {
			tombstone := models.PendingDelete{Kind: models.KindTag, ID: clash.ID, OwnerID: owner, DeletedAt: now}
			if err = tx.PendingDeletes().Add(ctx, tombstone); err != nil {
				return nil, err
			}
		}
		changes = append(changes, models.ChangeEvent{Kind: models.KindTag, Op: models.OpDeleted, ID: clash.ID})
		for _, id := range retagged {
			changes = append(changes, models.ChangeEvent{Kind: models.KindPrompt, Op: models.OpUpdated, ID: id})
		}
	}

	remote.OwnerID = &owner
	remote.LastSyncedAt = watermark(now, remote.UpdatedAt)
	if err = tx.Tags().Put(ctx, remote); err != nil {
		return nil, err
	}
	return append(changes, models.ChangeEvent{Kind: models.KindTag, Op: changeOp(ok), ID: remote.ID}), nil
}

// mergePrompt drops references to tags and folders that do not exist
// locally. A prompt changed that way stays pending so the cleaned state is
// pushed back.
func mergePrompt(ctx context.Context, tx *store.Tx, owner string, remote models.Prompt, now time.Time) ([]models.ChangeEvent, error) {
	if skip, err := tx.PendingDeletes().Has(ctx, models.KindPrompt, remote.ID); err != nil || skip {
		return nil, err
	}
	local, ok, err := tx.Prompts().Get(ctx, remote.ID)
	if err != nil || !remoteWins(ok, local.UpdatedAt, remote.UpdatedAt) {
		return nil, err
	}

	cleaned := false
	tagIDs := make([]string, 0, len(remote.TagIDs))
	for _, id := range uniqueIDs(remote.TagIDs) {
		tag, found, err := tx.Tags().Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if !found || tag.OwnerID == nil || *tag.OwnerID != owner {
			cleaned = true
			continue
		}
		tagIDs = append(tagIDs, id)
	}
	remote.TagIDs = tagIDs

	if remote.FolderID != nil {
		folder, found, err := tx.Folders().Get(ctx, *remote.FolderID)
		if err != nil {
			return nil, err
		}
		if !found || folder.OwnerID == nil || *folder.OwnerID != owner {
			remote.FolderID = nil
			cleaned = true
		}
	}

	remote.OwnerID = &owner
	remote.LastSyncedAt = watermark(now, remote.UpdatedAt)
	if cleaned {
		remote.LastSyncedAt = nil
	}
	if err = tx.Prompts().Put(ctx, remote); err != nil {
		return nil, err
	}
	return []models.ChangeEvent{{Kind: models.KindPrompt, Op: changeOp(ok), ID: remote.ID}}, nil
}

// mergeVersion only inserts: snapshots are immutable, so an existing local
// row always wins.
func mergeVersion(ctx context.Context, tx *store.Tx, owner string, remote models.PromptVersion, now time.Time) ([]models.ChangeEvent, error) {
	if skip, err := tx.PendingDeletes().Has(ctx, models.KindPrompt, remote.PromptID); err != nil || skip {
		return nil, err
	}
	if _, ok, err := tx.Versions().Get(ctx, remote.ID); err != nil || ok {
		return nil, err
	}
	if _, ok, err := tx.Prompts().Get(ctx, remote.PromptID); err != nil || !ok {
		return nil, err
	}

	remote.OwnerID = &owner
	remote.LastSyncedAt = watermark(now, remote.CreatedAt)
	if err := tx.Versions().Put(ctx, remote); err != nil {
		return nil, err
	}
	return []models.ChangeEvent{{Kind: models.KindVersion, Op: models.OpCreated, ID: remote.ID}}, nil
}

// ── push ────────────────────────────────────────────────────────────────────

func pushKey(kind models.EntityKind, id string) string {
	return string(kind) + ":" + id
}

func (s *syncService) SchedulePush(ctx context.Context, kind models.EntityKind, id string) {
	if _, ok := s.active(ctx); !ok || !kind.Syncable() {
		return
	}

	s.bus.PublishSync(ctx, models.SyncEvent{Kind: kind, ID: id, State: models.SyncPending})
	s.debouncer.Schedule(ctx, pushKey(kind, id), func(ctx context.Context) {
		_ = s.pushOne(ctx, kind, id)
	})
}

func (s *syncService) PushNow(ctx context.Context, kind models.EntityKind, ids ...string) {
	if _, ok := s.active(ctx); !ok {
		return
	}
	for _, id := range ids {
		s.debouncer.Cancel(pushKey(kind, id))
		_ = s.pushOne(ctx, kind, id)
	}
}

func (s *syncService) PushDelete(ctx context.Context, kind models.EntityKind, ownerID *string, id string) {
	s.debouncer.Cancel(pushKey(kind, id))
	if s.remote == nil || ownerID == nil {
		return
	}

	if err := s.remote.Delete(ctx, kind, *ownerID, id); err != nil {
		_ = s.fail(ctx, kind, id, err)

		tombstone := models.PendingDelete{Kind: kind, ID: id, OwnerID: *ownerID, DeletedAt: utils.Now()}
		txErr := s.local.Transaction(ctx, []store.Table{store.TablePendingDeletes}, func(ctx context.Context, tx *store.Tx) error {
			return tx.PendingDeletes().Add(ctx, tombstone)
		})
		if txErr != nil {
			logger.FromContext(ctx).Err(txErr).
				Str("func", "syncService.PushDelete").
				Str("kind", string(kind)).
				Str("id", id).
				Msg("failed to record pending delete")
		}
		return
	}

	s.bus.PublishSync(ctx, models.SyncEvent{Kind: kind, ID: id, State: models.SyncSynced})
}

// PushPending delivers tombstones first, then every owned row whose
// lastSyncedAt is behind its updatedAt (versions: never synced).
func (s *syncService) PushPending(ctx context.Context) error {
	owner, ok := s.active(ctx)
	if !ok {
		return nil
	}

	var errs []error

	tombstones, err := s.local.PendingDeletes().List(ctx, owner)
	if err != nil {
		errs = append(errs, s.fail(ctx, "", "", err))
	}
	for _, t := range tombstones {
		if err = s.remote.Delete(ctx, t.Kind, t.OwnerID, t.ID); err != nil {
			errs = append(errs, s.fail(ctx, t.Kind, t.ID, err))
			continue
		}
		err = s.local.Transaction(ctx, []store.Table{store.TablePendingDeletes}, func(ctx context.Context, tx *store.Tx) error {
			return tx.PendingDeletes().Remove(ctx, t.Kind, t.ID)
		})
		if err != nil {
			errs = append(errs, s.fail(ctx, t.Kind, t.ID, err))
			continue
		}
		s.bus.PublishSync(ctx, models.SyncEvent{Kind: t.Kind, ID: t.ID, State: models.SyncSynced})
	}

	for _, kind := range models.SyncableKinds {
		ids, err := s.pendingIDs(ctx, kind, owner)
		if err != nil {
			errs = append(errs, s.fail(ctx, kind, "", err))
			continue
		}
		for _, id := range ids {
			if err = s.pushOne(ctx, kind, id); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

func (s *syncService) pendingIDs(ctx context.Context, kind models.EntityKind, owner string) ([]string, error) {
	switch kind {
	case models.KindFolder:
		return collectIDs(s.local.Folders().ListPending(ctx, owner))
	case models.KindTag:
		return collectIDs(s.local.Tags().ListPending(ctx, owner))
	case models.KindPrompt:
		return collectIDs(s.local.Prompts().ListPending(ctx, owner))
	case models.KindVersion:
		return collectIDs(s.local.Versions().ListPending(ctx, owner))
	default:
		return nil, fmt.Errorf("%w: %s", store.ErrUnknownKind, kind)
	}
}

func collectIDs[T interface{ GetID() string }](rows []T, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.GetID()
	}
	return ids, nil
}

// pushOne sends the current local state of one entity and advances its
// watermark to the moment the push started, so edits made meanwhile stay
// pending. A pushed row stamped ahead of the local clock moves the
// watermark to its own updatedAt.
func (s *syncService) pushOne(ctx context.Context, kind models.EntityKind, id string) error {
	startedAt := utils.Now()

	push, updatedAt, err := s.loadPush(ctx, kind, id)
	if err != nil {
		return s.fail(ctx, kind, id, err)
	}
	if push == nil {
		return nil
	}

	s.bus.PublishSync(ctx, models.SyncEvent{Kind: kind, ID: id, State: models.SyncPushing})
	if err = push(ctx); err != nil {
		return s.fail(ctx, kind, id, err)
	}
	if err = s.markSynced(ctx, kind, id, *watermark(startedAt, updatedAt)); err != nil {
		return s.fail(ctx, kind, id, err)
	}
	s.bus.PublishSync(ctx, models.SyncEvent{Kind: kind, ID: id, State: models.SyncSynced})

	return nil
}

// loadPush returns nil when there is nothing to push: the entity is gone
// or has no owner. The returned time is the pushed row's updatedAt.
func (s *syncService) loadPush(ctx context.Context, kind models.EntityKind, id string) (func(context.Context) error, time.Time, error) {
	switch kind {
	case models.KindPrompt:
		prompt, ok, err := s.local.Prompts().Get(ctx, id)
		if err != nil || !ok || prompt.OwnerID == nil {
			return nil, time.Time{}, err
		}
		return func(ctx context.Context) error { return s.remote.PushPrompt(ctx, prompt) }, prompt.UpdatedAt, nil
	case models.KindTag:
		tag, ok, err := s.local.Tags().Get(ctx, id)
		if err != nil || !ok || tag.OwnerID == nil {
			return nil, time.Time{}, err
		}
		return func(ctx context.Context) error { return s.remote.PushTag(ctx, tag) }, tag.UpdatedAt, nil
	case models.KindFolder:
		folder, ok, err := s.local.Folders().Get(ctx, id)
		if err != nil || !ok || folder.OwnerID == nil {
			return nil, time.Time{}, err
		}
		return func(ctx context.Context) error { return s.remote.PushFolder(ctx, folder) }, folder.UpdatedAt, nil
	case models.KindVersion:
		version, ok, err := s.local.Versions().Get(ctx, id)
		if err != nil || !ok || version.OwnerID == nil {
			return nil, time.Time{}, err
		}
		return func(ctx context.Context) error { return s.remote.PushVersion(ctx, version) }, version.CreatedAt, nil
	default:
		return nil, time.Time{}, fmt.Errorf("%w: %s", store.ErrUnknownKind, kind)
	}
}

func (s *syncService) markSynced(ctx context.Context, kind models.EntityKind, id string, at time.Time) error {
	switch kind {
	case models.KindPrompt:
		return s.local.Prompts().MarkSynced(ctx, id, at)
	case models.KindTag:
		return s.local.Tags().MarkSynced(ctx, id, at)
	case models.KindFolder:
		return s.local.Folders().MarkSynced(ctx, id, at)
	case models.KindVersion:
		return s.local.Versions().MarkSynced(ctx, id, at)
	default:
		return fmt.Errorf("%w: %s", store.ErrUnknownKind, kind)
	}
}

// fail logs a sync step failure and reports it to sync listeners. The
// returned error wraps ErrSyncFailure.
func (s *syncService) fail(ctx context.Context, kind models.EntityKind, id string, err error) error {
	if !errors.Is(err, ErrSyncFailure) {
		err = fmt.Errorf("%w: %w", ErrSyncFailure, err)
	}

	logger.FromContext(ctx).Err(err).
		Str("func", "syncService").
		Str("kind", string(kind)).
		Str("id", id).
		Msg("sync step failed")
	s.bus.PublishSync(ctx, models.SyncEvent{Kind: kind, ID: id, State: models.SyncFailed, Err: err})

	return err
}
