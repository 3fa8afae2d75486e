package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-prompt-keeper/internal/events"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

type folderService struct {
	localDeps
}

func NewFolderService(local *store.LocalStore, sync SyncService, bus *events.Bus) FolderService {
	return &folderService{localDeps: newLocalDeps(local, sync, bus)}
}

func (s *folderService) CreateFolder(ctx context.Context, in models.FolderInput) (models.Folder, error) {
	log := logger.FromContext(ctx)

	name, err := requireName(in.Name, "folder name")
	if err != nil {
		return models.Folder{}, err
	}
	if in.ParentID != nil {
		if _, err = s.getScoped(ctx, *in.ParentID); err != nil {
			return models.Folder{}, fmt.Errorf("%w: unknown parent folder %s", ErrInvalidInput, *in.ParentID)
		}
	}

	now := utils.Now()
	folder := models.Folder{
		ID:        s.ids.Generate(),
		OwnerID:   utils.OwnerPtrFromContext(ctx),
		Name:      name,
		ParentID:  in.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.local.Transaction(ctx, []store.Table{store.TableFolders}, func(ctx context.Context, tx *store.Tx) error {
		return tx.Folders().Put(ctx, folder)
	})
	if err != nil {
		log.Err(err).Str("func", "folderService.CreateFolder").Msg("failed to create folder")
		return models.Folder{}, txError(err)
	}

	s.publish(ctx, models.KindFolder, models.OpCreated, folder.ID)
	s.sync.SchedulePush(ctx, models.KindFolder, folder.ID)

	return folder, nil
}

// UpdateFolder renames and moves a folder. Moving it under itself or one of
// its descendants fails with ErrFolderCycle.
func (s *folderService) UpdateFolder(ctx context.Context, id string, in models.FolderInput) (models.Folder, error) {
	log := logger.FromContext(ctx)

	name, err := requireName(in.Name, "folder name")
	if err != nil {
		return models.Folder{}, err
	}

	folder, err := s.getScoped(ctx, id)
	if err != nil {
		return models.Folder{}, err
	}
	if in.ParentID != nil {
		if err = s.checkMove(ctx, id, *in.ParentID); err != nil {
			return models.Folder{}, err
		}
	}
	if folder.Name == name && equalPtr(folder.ParentID, in.ParentID) {
		return folder, nil
	}

	folder.Name = name
	folder.ParentID = in.ParentID
	folder.UpdatedAt = utils.Now()
	err = s.local.Transaction(ctx, []store.Table{store.TableFolders}, func(ctx context.Context, tx *store.Tx) error {
		return tx.Folders().Put(ctx, folder)
	})
	if err != nil {
		log.Err(err).Str("func", "folderService.UpdateFolder").Str("id", id).Msg("failed to update folder")
		return models.Folder{}, txError(err)
	}

	s.publish(ctx, models.KindFolder, models.OpUpdated, folder.ID)
	s.sync.SchedulePush(ctx, models.KindFolder, folder.ID)

	return folder, nil
}

// checkMove walks up from parentID and fails if it meets id.
func (s *folderService) checkMove(ctx context.Context, id, parentID string) error {
	seen := map[string]bool{}
	for cur := &parentID; cur != nil; {
		if *cur == id {
			return fmt.Errorf("%w: %s", ErrFolderCycle, id)
		}
		if seen[*cur] {
			return fmt.Errorf("%w: %s", ErrFolderCycle, *cur)
		}
		seen[*cur] = true

		parent, err := s.getScoped(ctx, *cur)
		if err != nil {
			return fmt.Errorf("%w: unknown parent folder %s", ErrInvalidInput, *cur)
		}
		cur = parent.ParentID
	}
	return nil
}

// DeleteFolder deletes the folder with all of its descendants. Prompts in
// any of them move to the root and are pushed right after the remote
// deletes.
func (s *folderService) DeleteFolder(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	folder, err := s.getScoped(ctx, id)
	if err != nil {
		return err
	}

	var removed, moved []string
	err = s.local.Transaction(ctx, []store.Table{store.TableFolders, store.TablePrompts}, func(ctx context.Context, tx *store.Tx) error {
		var err error
		if removed, err = collectSubtree(ctx, tx, folder); err != nil {
			return err
		}

		prompts, err := tx.Prompts().ListByFolders(ctx, removed)
		if err != nil {
			return err
		}
		now := utils.Now()
		for _, p := range prompts {
			p.FolderID = nil
			p.UpdatedAt = now
			if err = tx.Prompts().Put(ctx, p); err != nil {
				return err
			}
			moved = append(moved, p.ID)
		}

		for _, folderID := range removed {
			if err = tx.Folders().Delete(ctx, folderID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "folderService.DeleteFolder").Str("id", id).Msg("failed to delete folder")
		return txError(err)
	}

	s.publish(ctx, models.KindFolder, models.OpDeleted, removed...)
	s.publish(ctx, models.KindPrompt, models.OpUpdated, moved...)

	for _, folderID := range removed {
		s.sync.PushDelete(ctx, models.KindFolder, folder.OwnerID, folderID)
	}
	s.sync.PushNow(ctx, models.KindPrompt, moved...)

	return nil
}

func (s *folderService) ListFolders(ctx context.Context) ([]models.Folder, error) {
	return s.local.Folders().List(ctx, utils.OwnerPtrFromContext(ctx))
}

func (s *folderService) getScoped(ctx context.Context, id string) (models.Folder, error) {
	folder, ok, err := s.local.Folders().Get(ctx, id)
	if err != nil {
		return models.Folder{}, err
	}
	if !ok || !inScope(ctx, folder.OwnerID) {
		return models.Folder{}, fmt.Errorf("%w: folder %s", ErrNotFound, id)
	}
	return folder, nil
}

// collectSubtree returns root's id followed by the ids of all descendants,
// breadth first.
func collectSubtree(ctx context.Context, tx *store.Tx, root models.Folder) ([]string, error) {
	ids := []string{root.ID}
	seen := map[string]bool{root.ID: true}
	for i := 0; i < len(ids); i++ {
		parentID := ids[i]
		children, err := tx.Folders().ListByParent(ctx, root.OwnerID, &parentID)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			if !seen[child.ID] {
				seen[child.ID] = true
				ids = append(ids, child.ID)
			}
		}
	}
	return ids, nil
}
