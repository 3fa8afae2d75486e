// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-prompt-keeper/internal/events"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

type promptService struct {
	localDeps
}

func NewPromptService(local *store.LocalStore, sync SyncService, bus *events.Bus) PromptService {
	return &promptService{localDeps: newLocalDeps(local, sync, bus)}
}

func (s *promptService) CreatePrompt(ctx context.Context, in models.PromptInput) (models.Prompt, error) {
	log := logger.FromContext(ctx)

	in, err := s.checkInput(ctx, in)
	if err != nil {
		return models.Prompt{}, err
	}

	owner := utils.OwnerPtrFromContext(ctx)
	now := utils.Now()
	prompt := models.Prompt{
		ID:        s.ids.Generate(),
		OwnerID:   owner,
		Title:     in.Title,
		Content:   in.Content,
		Notes:     in.Notes,
		TagIDs:    in.TagIDs,
		FolderID:  in.FolderID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	version := newVersion(s.ids.Generate(), prompt, now)

	err = s.local.Transaction(ctx, []store.Table{store.TablePrompts, store.TableVersions}, func(ctx context.Context, tx *store.Tx) error {
		if err := tx.Prompts().Put(ctx, prompt); err != nil {
			return err
		}
		return tx.Versions().Put(ctx, version)
	})
	if err != nil {
		log.Err(err).Str("func", "promptService.CreatePrompt").Msg("failed to create prompt")
		return models.Prompt{}, txError(err)
	}

	s.publish(ctx, models.KindPrompt, models.OpCreated, prompt.ID)
	s.publish(ctx, models.KindVersion, models.OpCreated, version.ID)
	s.sync.SchedulePush(ctx, models.KindPrompt, prompt.ID)
	s.sync.SchedulePush(ctx, models.KindVersion, version.ID)

	return prompt, nil
}

func (s *promptService) UpdatePrompt(ctx context.Context, id string, in models.PromptInput) (models.Prompt, error) {
	log := logger.FromContext(ctx)

	if _, err := s.getScoped(ctx, id); err != nil {
		return models.Prompt{}, err
	}
	in, err := s.checkInput(ctx, in)
	if err != nil {
		return models.Prompt{}, err
	}

	var (
		updated models.Prompt
		version *models.PromptVersion
		changed bool
	)
	err = s.local.Transaction(ctx, []store.Table{store.TablePrompts, store.TableVersions}, func(ctx context.Context, tx *store.Tx) error {
		current, ok, err := tx.Prompts().Get(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: prompt %s", ErrNotFound, id)
		}

		updated = current
		updated.Title = in.Title
		updated.Content = in.Content
		updated.Notes = in.Notes
		updated.TagIDs = in.TagIDs
		updated.FolderID = in.FolderID
		if promptFieldsEqual(current, updated) {
			return nil
		}

		changed = true
		now := utils.Now()
		updated.UpdatedAt = now
		if err = tx.Prompts().Put(ctx, updated); err != nil {
			return err
		}

		if current.ContentEquals(in.Content, in.Notes) {
			return nil
		}
		v := newVersion(s.ids.Generate(), updated, now)
		version = &v
		return tx.Versions().Put(ctx, v)
	})
	if err != nil {
		log.Err(err).Str("func", "promptService.UpdatePrompt").Str("id", id).Msg("failed to update prompt")
		return models.Prompt{}, txError(err)
	}
	if !changed {
		return updated, nil
	}

	s.publish(ctx, models.KindPrompt, models.OpUpdated, updated.ID)
	s.sync.SchedulePush(ctx, models.KindPrompt, updated.ID)
	if version != nil {
		s.publish(ctx, models.KindVersion, models.OpCreated, version.ID)
		s.sync.SchedulePush(ctx, models.KindVersion, version.ID)
	}

	return updated, nil
}

func (s *promptService) DeletePrompt(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	prompt, err := s.getScoped(ctx, id)
	if err != nil {
		return err
	}

	var versionIDs []string
	err = s.local.Transaction(ctx, []store.Table{store.TablePrompts, store.TableVersions}, func(ctx context.Context, tx *store.Tx) error {
		versions, err := tx.Versions().ListByPrompt(ctx, id)
		if err != nil {
			return err
		}
		for _, v := range versions {
			versionIDs = append(versionIDs, v.ID)
		}

		if err = tx.Versions().DeleteByPrompt(ctx, id); err != nil {
			return err
		}
		return tx.Prompts().Delete(ctx, id)
	})
	if err != nil {
		log.Err(err).Str("func", "promptService.DeletePrompt").Str("id", id).Msg("failed to delete prompt")
		return txError(err)
	}

	s.publish(ctx, models.KindPrompt, models.OpDeleted, id)
	s.publish(ctx, models.KindVersion, models.OpDeleted, versionIDs...)

	// the remote delete of a prompt takes its versions with it
	s.sync.PushDelete(ctx, models.KindPrompt, prompt.OwnerID, id)

	return nil
}

func (s *promptService) GetPrompt(ctx context.Context, id string) (models.Prompt, bool, error) {
	prompt, ok, err := s.local.Prompts().Get(ctx, id)
	if err != nil || !ok || !inScope(ctx, prompt.OwnerID) {
		return models.Prompt{}, false, err
	}
	return prompt, true, nil
}

func (s *promptService) GetPromptByID(ctx context.Context, id string) (models.Prompt, bool, error) {
	return s.local.Prompts().Get(ctx, id)
}

func (s *promptService) ListPrompts(ctx context.Context, filter models.PromptFilter) ([]models.Prompt, error) {
	return s.local.Prompts().List(ctx, utils.OwnerPtrFromContext(ctx), filter)
}

func (s *promptService) ListVersions(ctx context.Context, promptID string) ([]models.PromptVersion, error) {
	if _, ok, err := s.GetPrompt(ctx, promptID); err != nil || !ok {
		return []models.PromptVersion{}, err
	}
	return s.local.Versions().ListByPrompt(ctx, promptID)
}

func (s *promptService) RestoreVersion(ctx context.Context, versionID string) (models.Prompt, error) {
	version, err := s.getVersionScoped(ctx, versionID)
	if err != nil {
		return models.Prompt{}, err
	}

	prompt, err := s.getScoped(ctx, version.PromptID)
	if err != nil {
		return models.Prompt{}, err
	}

	return s.UpdatePrompt(ctx, prompt.ID, models.PromptInput{
		Title:    prompt.Title,
		Content:  version.Content,
		Notes:    version.Notes,
		TagIDs:   prompt.TagIDs,
		FolderID: prompt.FolderID,
	})
}

func (s *promptService) NameVersion(ctx context.Context, versionID, message string) (models.PromptVersion, error) {
	log := logger.FromContext(ctx)

	if _, err := s.getVersionScoped(ctx, versionID); err != nil {
		return models.PromptVersion{}, err
	}

	var named models.PromptVersion
	err := s.local.Transaction(ctx, []store.Table{store.TableVersions}, func(ctx context.Context, tx *store.Tx) error {
		version, ok, err := tx.Versions().Get(ctx, versionID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: version %s", ErrNotFound, versionID)
		}

		version.CommitMessage = strings.TrimSpace(message)
		version.LastSyncedAt = nil
		named = version
		return tx.Versions().Put(ctx, version)
	})
	if err != nil {
		log.Err(err).Str("func", "promptService.NameVersion").Str("id", versionID).Msg("failed to name version")
		return models.PromptVersion{}, txError(err)
	}

	s.publish(ctx, models.KindVersion, models.OpUpdated, named.ID)
	s.sync.SchedulePush(ctx, models.KindVersion, named.ID)

	return named, nil
}

func (s *promptService) getScoped(ctx context.Context, id string) (models.Prompt, error) {
	prompt, ok, err := s.GetPrompt(ctx, id)
	if err != nil {
		return models.Prompt{}, err
	}
	if !ok {
		return models.Prompt{}, fmt.Errorf("%w: prompt %s", ErrNotFound, id)
	}
	return prompt, nil
}

func (s *promptService) getVersionScoped(ctx context.Context, id string) (models.PromptVersion, error) {
	version, ok, err := s.local.Versions().Get(ctx, id)
	if err != nil {
		return models.PromptVersion{}, err
	}
	if !ok || !inScope(ctx, version.OwnerID) {
		return models.PromptVersion{}, fmt.Errorf("%w: version %s", ErrNotFound, id)
	}
	return version, nil
}

// checkInput normalises in and verifies that its tag and folder references
// exist in the active owner scope.
func (s *promptService) checkInput(ctx context.Context, in models.PromptInput) (models.PromptInput, error) {
	title, err := requireName(in.Title, "title")
	if err != nil {
		return in, err
	}
	in.Title = title
	in.TagIDs = uniqueIDs(in.TagIDs)

	for _, tagID := range in.TagIDs {
		tag, ok, err := s.local.Tags().Get(ctx, tagID)
		if err != nil {
			return in, err
		}
		if !ok || !inScope(ctx, tag.OwnerID) {
			return in, fmt.Errorf("%w: %s", ErrTagOutOfScope, tagID)
		}
	}

	if in.FolderID != nil {
		folder, ok, err := s.local.Folders().Get(ctx, *in.FolderID)
		if err != nil {
			return in, err
		}
		if !ok || !inScope(ctx, folder.OwnerID) {
			return in, fmt.Errorf("%w: unknown folder %s", ErrInvalidInput, *in.FolderID)
		}
	}

	return in, nil
}

func newVersion(id string, prompt models.Prompt, at time.Time) models.PromptVersion {
	return models.PromptVersion{
		ID:        id,
		PromptID:  prompt.ID,
		OwnerID:   prompt.OwnerID,
		Content:   prompt.Content,
		Notes:     prompt.Notes,
		CreatedAt: at,
	}
}

func promptFieldsEqual(a, b models.Prompt) bool {
	return a.Title == b.Title &&
		a.Content == b.Content &&
		a.Notes == b.Notes &&
		slices.Equal(a.TagIDs, b.TagIDs) &&
		equalPtr(a.FolderID, b.FolderID)
}
