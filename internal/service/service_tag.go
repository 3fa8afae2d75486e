package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-prompt-keeper/internal/events"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

type tagService struct {
	localDeps
}

func NewTagService(local *store.LocalStore, sync SyncService, bus *events.Bus) TagService {
	return &tagService{localDeps: newLocalDeps(local, sync, bus)}
}

func (s *tagService) CreateTag(ctx context.Context, name string) (models.Tag, error) {
	log := logger.FromContext(ctx)

	name, err := requireName(name, "tag name")
	if err != nil {
		return models.Tag{}, err
	}

	owner := utils.OwnerPtrFromContext(ctx)
	existing, ok, err := s.local.Tags().FindByName(ctx, owner, name)
	if err != nil {
		return models.Tag{}, err
	}
	if ok {
		return existing, nil
	}

	now := utils.Now()
	tag := models.Tag{ID: s.ids.Generate(), OwnerID: owner, Name: name, CreatedAt: now, UpdatedAt: now}

	err = s.local.Transaction(ctx, []store.Table{store.TableTags}, func(ctx context.Context, tx *store.Tx) error {
		return tx.Tags().Put(ctx, tag)
	})
	if errors.Is(err, store.ErrUniqueViolation) {
		// created concurrently under the same name
		if existing, ok, findErr := s.local.Tags().FindByName(ctx, owner, name); findErr == nil && ok {
			return existing, nil
		}
	}
	if err != nil {
		log.Err(err).Str("func", "tagService.CreateTag").Msg("failed to create tag")
		return models.Tag{}, txError(err)
	}

	s.publish(ctx, models.KindTag, models.OpCreated, tag.ID)
	s.sync.SchedulePush(ctx, models.KindTag, tag.ID)

	return tag, nil
}

func (s *tagService) RenameTag(ctx context.Context, id, name string) (models.Tag, error) {
	log := logger.FromContext(ctx)

	name, err := requireName(name, "tag name")
	if err != nil {
		return models.Tag{}, err
	}

	tag, err := s.getScoped(ctx, id)
	if err != nil {
		return models.Tag{}, err
	}
	if tag.Name == name {
		return tag, nil
	}

	other, ok, err := s.local.Tags().FindByName(ctx, tag.OwnerID, name)
	if err != nil {
		return models.Tag{}, err
	}
	if ok && other.ID != id {
		return models.Tag{}, fmt.Errorf("%w: %q", ErrDuplicateTagName, name)
	}

	tag.Name = name
	tag.UpdatedAt = utils.Now()
	err = s.local.Transaction(ctx, []store.Table{store.TableTags}, func(ctx context.Context, tx *store.Tx) error {
		return tx.Tags().Put(ctx, tag)
	})
	if errors.Is(err, store.ErrUniqueViolation) {
		return models.Tag{}, fmt.Errorf("%w: %q", ErrDuplicateTagName, name)
	}
	if err != nil {
		log.Err(err).Str("func", "tagService.RenameTag").Str("id", id).Msg("failed to rename tag")
		return models.Tag{}, txError(err)
	}

	s.publish(ctx, models.KindTag, models.OpUpdated, tag.ID)
	s.sync.SchedulePush(ctx, models.KindTag, tag.ID)

	return tag, nil
}

// DeleteTag removes the tag and strips it from every prompt that carries it.
// The rewritten prompts are pushed right after the remote delete.
func (s *tagService) DeleteTag(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	tag, err := s.getScoped(ctx, id)
	if err != nil {
		return err
	}

	var affected []string
	err = s.local.Transaction(ctx, []store.Table{store.TablePrompts, store.TableTags}, func(ctx context.Context, tx *store.Tx) error {
		var err error
		if affected, err = retagPrompts(ctx, tx, id, "", utils.Now()); err != nil {
			return err
		}
		return tx.Tags().Delete(ctx, id)
	})
	if err != nil {
		log.Err(err).Str("func", "tagService.DeleteTag").Str("id", id).Msg("failed to delete tag")
		return txError(err)
	}

	s.publish(ctx, models.KindTag, models.OpDeleted, id)
	s.publish(ctx, models.KindPrompt, models.OpUpdated, affected...)

	s.sync.PushDelete(ctx, models.KindTag, tag.OwnerID, id)
	s.sync.PushNow(ctx, models.KindPrompt, affected...)

	return nil
}

func (s *tagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.local.Tags().List(ctx, utils.OwnerPtrFromContext(ctx))
}

func (s *tagService) getScoped(ctx context.Context, id string) (models.Tag, error) {
	tag, ok, err := s.local.Tags().Get(ctx, id)
	if err != nil {
		return models.Tag{}, err
	}
	if !ok || !inScope(ctx, tag.OwnerID) {
		return models.Tag{}, fmt.Errorf("%w: tag %s", ErrNotFound, id)
	}
	return tag, nil
}

// retagPrompts replaces tagID with replacement in every prompt carrying it;
// an empty replacement removes the tag. Rewritten prompts get updatedAt at.
// It returns the ids of the rewritten prompts.
func retagPrompts(ctx context.Context, tx *store.Tx, tagID, replacement string, at time.Time) ([]string, error) {
	prompts, err := tx.Prompts().ListByTag(ctx, tagID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(prompts))
	for _, p := range prompts {
		tags := make([]string, 0, len(p.TagIDs))
		for _, t := range p.TagIDs {
			if t == tagID {
				if replacement == "" {
					continue
				}
				t = replacement
			}
			tags = append(tags, t)
		}

		p.TagIDs = uniqueIDs(tags)
		p.UpdatedAt = at
		if err = tx.Prompts().Put(ctx, p); err != nil {
			return nil, err
		}
		ids = append(ids, p.ID)
	}

	return ids, nil
}
