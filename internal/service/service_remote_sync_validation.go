package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-prompt-keeper/internal/validators"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

// remoteSyncValidationService rejects malformed pushed rows before they
// reach the owner checks and the database.
type remoteSyncValidationService struct {
	RemoteSyncService
	validator validators.Validator
}

func NewRemoteSyncValidationService(inner RemoteSyncService) RemoteSyncService {
	return &remoteSyncValidationService{
		RemoteSyncService: inner,
		validator:         validators.NewRowValidator(),
	}
}

func (v *remoteSyncValidationService) PushPrompt(ctx context.Context, prompt models.Prompt) error {
	if err := v.validate(ctx, prompt); err != nil {
		return err
	}
	return v.RemoteSyncService.PushPrompt(ctx, prompt)
}

func (v *remoteSyncValidationService) PushTag(ctx context.Context, tag models.Tag) error {
	if err := v.validate(ctx, tag); err != nil {
		return err
	}
	return v.RemoteSyncService.PushTag(ctx, tag)
}

func (v *remoteSyncValidationService) PushFolder(ctx context.Context, folder models.Folder) error {
	if err := v.validate(ctx, folder); err != nil {
		return err
	}
	return v.RemoteSyncService.PushFolder(ctx, folder)
}

func (v *remoteSyncValidationService) PushVersion(ctx context.Context, version models.PromptVersion) error {
	if err := v.validate(ctx, version); err != nil {
		return err
	}
	return v.RemoteSyncService.PushVersion(ctx, version)
}

func (v *remoteSyncValidationService) validate(ctx context.Context, row any) error {
	if err := v.validator.Validate(ctx, row); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
