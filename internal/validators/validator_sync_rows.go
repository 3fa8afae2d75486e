package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

const (
	FieldID            = "id"
	FieldTitle         = "title"
	FieldName          = "name"
	FieldPromptID      = "prompt_id"
	FieldParentID      = "parent_id"
	FieldFormatVersion = "format_version"
	FieldRows          = "rows"
)

// RowValidator validates prompts, tags, folders, versions and whole
// snapshots.
type RowValidator struct{}

func NewRowValidator() Validator {
	return &RowValidator{}
}

func (v *RowValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Prompt:
		return v.validatePrompt(value, fields...)
	case *models.Prompt:
		return v.validatePrompt(*value, fields...)

	case models.Tag:
		return v.validateTag(value, fields...)
	case *models.Tag:
		return v.validateTag(*value, fields...)

	case models.Folder:
		return v.validateFolder(value, fields...)
	case *models.Folder:
		return v.validateFolder(*value, fields...)

	case models.PromptVersion:
		return v.validateVersion(value, fields...)
	case *models.PromptVersion:
		return v.validateVersion(*value, fields...)

	case models.Snapshot:
		return v.validateSnapshot(ctx, value, fields...)
	case *models.Snapshot:
		return v.validateSnapshot(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *RowValidator) validatePrompt(p models.Prompt, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if p.ID == "" {
				return ErrEmptyID
			}
		case FieldTitle:
			if blank(p.Title) {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RowValidator) validateTag(t models.Tag, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if t.ID == "" {
				return ErrEmptyID
			}
		case FieldName:
			if blank(t.Name) {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RowValidator) validateFolder(folder models.Folder, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldParentID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if folder.ID == "" {
				return ErrEmptyID
			}
		case FieldName:
			if blank(folder.Name) {
				return ErrEmptyName
			}
		case FieldParentID:
			if folder.ParentID != nil && *folder.ParentID == folder.ID {
				return ErrSelfParent
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RowValidator) validateVersion(version models.PromptVersion, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldPromptID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if version.ID == "" {
				return ErrEmptyID
			}
		case FieldPromptID:
			if version.PromptID == "" {
				return ErrEmptyPromptID
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateSnapshot checks the format version and every row. Presets are
// checked by the preset rules of the importer.
func (v *RowValidator) validateSnapshot(ctx context.Context, s models.Snapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFormatVersion, FieldRows}
	}

	for _, f := range fields {
		switch f {
		case FieldFormatVersion:
			if s.FormatVersion != models.SnapshotFormatVersion {
				return fmt.Errorf("%w: %d", ErrUnsupportedFormat, s.FormatVersion)
			}
		case FieldRows:
			if err := v.validateSnapshotRows(ctx, s); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RowValidator) validateSnapshotRows(ctx context.Context, s models.Snapshot) error {
	seen := make(map[string]bool)
	check := func(kind string, i int, id string, row any) error {
		if err := v.Validate(ctx, row); err != nil {
			return fmt.Errorf("%s at index %d: %w", kind, i, err)
		}
		key := kind + "/" + id
		if seen[key] {
			return fmt.Errorf("%w: %s %s", ErrDuplicateSnapshotIDs, kind, id)
		}
		seen[key] = true
		return nil
	}

	for i, t := range s.Tags {
		if err := check("tag", i, t.ID, t); err != nil {
			return err
		}
	}
	for i, f := range s.Folders {
		if err := check("folder", i, f.ID, f); err != nil {
			return err
		}
	}
	for i, p := range s.Prompts {
		if err := check("prompt", i, p.ID, p); err != nil {
			return err
		}
	}
	for i, pv := range s.Versions {
		if err := check("version", i, pv.ID, pv); err != nil {
			return err
		}
	}
	for i, p := range s.Presets {
		if p.ID == "" {
			return fmt.Errorf("preset at index %d: %w", i, ErrEmptyID)
		}
	}
	return nil
}
