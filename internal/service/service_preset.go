package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-prompt-keeper/internal/events"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

// Execution preset parameter bounds.
const (
	MaxTemperature = 2.0
	MaxTopP        = 1.0
)

// presetService manages execution presets. Presets stay on the device, so
// nothing here talks to the sync engine.
type presetService struct {
	localDeps
}

func NewPresetService(local *store.LocalStore, bus *events.Bus) PresetService {
	return &presetService{localDeps: newLocalDeps(local, nil, bus)}
}

func (s *presetService) CreatePreset(ctx context.Context, in models.PresetInput) (models.ExecutionPreset, error) {
	log := logger.FromContext(ctx)

	in, err := validatePreset(in)
	if err != nil {
		return models.ExecutionPreset{}, err
	}
	if err = s.checkNameFree(ctx, in.Name, ""); err != nil {
		return models.ExecutionPreset{}, err
	}

	now := utils.Now()
	preset := applyPresetInput(models.ExecutionPreset{ID: s.ids.Generate(), CreatedAt: now}, in)
	preset.UpdatedAt = now

	if err = s.put(ctx, preset); err != nil {
		log.Err(err).Str("func", "presetService.CreatePreset").Msg("failed to create preset")
		return models.ExecutionPreset{}, err
	}

	s.publish(ctx, models.KindPreset, models.OpCreated, preset.ID)
	return preset, nil
}

func (s *presetService) UpdatePreset(ctx context.Context, id string, in models.PresetInput) (models.ExecutionPreset, error) {
	log := logger.FromContext(ctx)

	in, err := validatePreset(in)
	if err != nil {
		return models.ExecutionPreset{}, err
	}

	preset, ok, err := s.local.Presets().Get(ctx, id)
	if err != nil {
		return models.ExecutionPreset{}, err
	}
	if !ok {
		return models.ExecutionPreset{}, fmt.Errorf("%w: preset %s", ErrNotFound, id)
	}
	if err = s.checkNameFree(ctx, in.Name, id); err != nil {
		return models.ExecutionPreset{}, err
	}

	preset = applyPresetInput(preset, in)
	preset.UpdatedAt = utils.Now()
	if err = s.put(ctx, preset); err != nil {
		log.Err(err).Str("func", "presetService.UpdatePreset").Str("id", id).Msg("failed to update preset")
		return models.ExecutionPreset{}, err
	}

	s.publish(ctx, models.KindPreset, models.OpUpdated, preset.ID)
	return preset, nil
}

func (s *presetService) DeletePreset(ctx context.Context, id string) error {
	if _, ok, err := s.local.Presets().Get(ctx, id); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("%w: preset %s", ErrNotFound, id)
	}

	err := s.local.Transaction(ctx, []store.Table{store.TablePresets}, func(ctx context.Context, tx *store.Tx) error {
		return tx.Presets().Delete(ctx, id)
	})
	if err != nil {
		return txError(err)
	}

	s.publish(ctx, models.KindPreset, models.OpDeleted, id)
	return nil
}

func (s *presetService) GetPreset(ctx context.Context, id string) (models.ExecutionPreset, bool, error) {
	return s.local.Presets().Get(ctx, id)
}

func (s *presetService) ListPresets(ctx context.Context) ([]models.ExecutionPreset, error) {
	return s.local.Presets().List(ctx)
}

func (s *presetService) checkNameFree(ctx context.Context, name, selfID string) error {
	other, ok, err := s.local.Presets().FindByName(ctx, name)
	if err != nil {
		return err
	}
	if ok && other.ID != selfID {
		return fmt.Errorf("%w: %q", ErrDuplicatePresetName, name)
	}
	return nil
}

func (s *presetService) put(ctx context.Context, preset models.ExecutionPreset) error {
	err := s.local.Transaction(ctx, []store.Table{store.TablePresets}, func(ctx context.Context, tx *store.Tx) error {
		return tx.Presets().Put(ctx, preset)
	})
	if errors.Is(err, store.ErrUniqueViolation) {
		return fmt.Errorf("%w: %q", ErrDuplicatePresetName, preset.Name)
	}
	return txError(err)
}

func validatePreset(in models.PresetInput) (models.PresetInput, error) {
	name, err := requireName(in.Name, "preset name")
	if err != nil {
		return in, err
	}
	in.Name = name
	in.Model = strings.TrimSpace(in.Model)

	switch {
	case in.Temperature < 0 || in.Temperature > MaxTemperature:
		return in, fmt.Errorf("%w: temperature must be within [0, %g]", ErrInvalidInput, MaxTemperature)
	case in.TopP < 0 || in.TopP > MaxTopP:
		return in, fmt.Errorf("%w: top_p must be within [0, %g]", ErrInvalidInput, MaxTopP)
	case in.MaxTokens < 0:
		return in, fmt.Errorf("%w: max_tokens must not be negative", ErrInvalidInput)
	}
	return in, nil
}

func applyPresetInput(p models.ExecutionPreset, in models.PresetInput) models.ExecutionPreset {
	p.Name = in.Name
	p.Model = in.Model
	p.Temperature = in.Temperature
	p.MaxTokens = in.MaxTokens
	p.TopP = in.TopP
	p.SystemPrompt = in.SystemPrompt
	return p
}
