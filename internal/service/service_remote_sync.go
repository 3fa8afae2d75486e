package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

// remoteSyncService guards the remote mirror for the HTTP handlers. The
// authenticated owner comes from ctx; a row or a path naming a different
// owner is refused with ErrUnauthorizedAccessToDifferentUserData.
type remoteSyncService struct {
	remote store.RemoteRepository

	logger *logger.Logger
}

func NewRemoteSyncService(remote store.RemoteRepository, logger *logger.Logger) RemoteSyncService {
	return &remoteSyncService{remote: remote, logger: logger}
}

func (s *remoteSyncService) PullPrompts(ctx context.Context, ownerID string) ([]models.Prompt, error) {
	if err := s.checkOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.remote.PullPrompts(ctx, ownerID)
}

func (s *remoteSyncService) PullTags(ctx context.Context, ownerID string) ([]models.Tag, error) {
	if err := s.checkOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.remote.PullTags(ctx, ownerID)
}

func (s *remoteSyncService) PullFolders(ctx context.Context, ownerID string) ([]models.Folder, error) {
	if err := s.checkOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.remote.PullFolders(ctx, ownerID)
}

func (s *remoteSyncService) PullVersions(ctx context.Context, ownerID string) ([]models.PromptVersion, error) {
	if err := s.checkOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.remote.PullVersions(ctx, ownerID)
}

func (s *remoteSyncService) PushPrompt(ctx context.Context, prompt models.Prompt) error {
	owner, err := s.claimRow(ctx, prompt.ID, prompt.OwnerID)
	if err != nil {
		return err
	}
	prompt.OwnerID = owner
	return s.remote.PushPrompt(ctx, prompt)
}

func (s *remoteSyncService) PushTag(ctx context.Context, tag models.Tag) error {
	owner, err := s.claimRow(ctx, tag.ID, tag.OwnerID)
	if err != nil {
		return err
	}
	tag.OwnerID = owner
	return s.remote.PushTag(ctx, tag)
}

func (s *remoteSyncService) PushFolder(ctx context.Context, folder models.Folder) error {
	owner, err := s.claimRow(ctx, folder.ID, folder.OwnerID)
	if err != nil {
		return err
	}
	folder.OwnerID = owner
	return s.remote.PushFolder(ctx, folder)
}

func (s *remoteSyncService) PushVersion(ctx context.Context, version models.PromptVersion) error {
	owner, err := s.claimRow(ctx, version.ID, version.OwnerID)
	if err != nil {
		return err
	}
	if version.PromptID == "" {
		return ErrInvalidDataProvided
	}
	version.OwnerID = owner
	return s.remote.PushVersion(ctx, version)
}

func (s *remoteSyncService) Delete(ctx context.Context, kind models.EntityKind, ownerID, id string) error {
	if err := s.checkOwner(ctx, ownerID); err != nil {
		return err
	}
	if id == "" || !kind.Syncable() {
		return ErrInvalidDataProvided
	}
	return s.remote.Delete(ctx, kind, ownerID, id)
}

func (s *remoteSyncService) checkOwner(ctx context.Context, ownerID string) error {
	current, ok := utils.OwnerFromContext(ctx)
	if !ok {
		return ErrTokenIsExpiredOrInvalid
	}
	if ownerID != current {
		logger.FromContext(ctx).Warn().
			Str("func", "remoteSyncService.checkOwner").
			Str("owner", current).
			Str("requested", ownerID).
			Msg("access to different owner data refused")
		return ErrUnauthorizedAccessToDifferentUserData
	}
	return nil
}

// claimRow returns the owner a pushed row is stored under. A row without an
// owner is adopted by the caller.
func (s *remoteSyncService) claimRow(ctx context.Context, id string, rowOwner *string) (*string, error) {
	current, ok := utils.OwnerFromContext(ctx)
	if !ok {
		return nil, ErrTokenIsExpiredOrInvalid
	}
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrInvalidDataProvided)
	}
	if rowOwner != nil && *rowOwner != current {
		return nil, s.checkOwner(ctx, *rowOwner)
	}
	return &current, nil
}
