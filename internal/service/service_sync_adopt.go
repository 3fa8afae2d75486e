package service

import (
	"context"

	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

// AdoptLocalData re-owns rows created while signed out. An unowned tag
// whose name the owner already uses is merged into the owner's tag.
// Adopted rows are pushed before returning; push failures are reported to
// sync listeners only.
func (s *syncService) AdoptLocalData(ctx context.Context) (int, error) {
	owner, ok := utils.OwnerFromContext(ctx)
	if !ok {
		return 0, ErrNoActiveOwner
	}

	var changes []models.ChangeEvent
	tables := []store.Table{store.TableFolders, store.TableTags, store.TablePrompts, store.TableVersions}
	err := s.local.Transaction(ctx, tables, func(ctx context.Context, tx *store.Tx) error {
		changes = changes[:0]
		now := utils.Now()

		tags, err := tx.Tags().List(ctx, nil)
		if err != nil {
			return err
		}
		for _, tag := range tags {
			existing, found, err := tx.Tags().FindByName(ctx, &owner, tag.Name)
			if err != nil {
				return err
			}
			if found {
				if _, err = retagPrompts(ctx, tx, tag.ID, existing.ID, now); err != nil {
					return err
				}
				if err = tx.Tags().Delete(ctx, tag.ID); err != nil {
					return err
				}
				changes = append(changes, models.ChangeEvent{Kind: models.KindTag, Op: models.OpDeleted, ID: tag.ID})
				continue
			}

			tag.OwnerID = &owner
			tag.LastSyncedAt = nil
			if err = tx.Tags().Put(ctx, tag); err != nil {
				return err
			}
			changes = append(changes, models.ChangeEvent{Kind: models.KindTag, Op: models.OpUpdated, ID: tag.ID})
		}

		folders, err := tx.Folders().List(ctx, nil)
		if err != nil {
			return err
		}
		for _, folder := range folders {
			folder.OwnerID = &owner
			folder.LastSyncedAt = nil
			if err = tx.Folders().Put(ctx, folder); err != nil {
				return err
			}
			changes = append(changes, models.ChangeEvent{Kind: models.KindFolder, Op: models.OpUpdated, ID: folder.ID})
		}

		prompts, err := tx.Prompts().List(ctx, nil, models.PromptFilter{AllFolders: true})
		if err != nil {
			return err
		}
		for _, prompt := range prompts {
			prompt.OwnerID = &owner
			prompt.LastSyncedAt = nil
			if err = tx.Prompts().Put(ctx, prompt); err != nil {
				return err
			}
			changes = append(changes, models.ChangeEvent{Kind: models.KindPrompt, Op: models.OpUpdated, ID: prompt.ID})
		}

		versions, err := tx.Versions().ListAll(ctx)
		if err != nil {
			return err
		}
		for _, version := range versions {
			if version.OwnerID != nil {
				continue
			}
			version.OwnerID = &owner
			version.LastSyncedAt = nil
			if err = tx.Versions().Put(ctx, version); err != nil {
				return err
			}
			changes = append(changes, models.ChangeEvent{Kind: models.KindVersion, Op: models.OpUpdated, ID: version.ID})
		}

		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncService.AdoptLocalData").Msg("failed to adopt local data")
		return 0, txError(err)
	}

	for _, change := range changes {
		s.bus.Publish(ctx, change)
	}
	_ = s.PushPending(ctx)

	return len(changes), nil
}
