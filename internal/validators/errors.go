package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID              = errors.New("id is required")
	ErrEmptyTitle           = errors.New("title is required")
	ErrEmptyName            = errors.New("name is required")
	ErrEmptyPromptID        = errors.New("version must reference a prompt")
	ErrSelfParent           = errors.New("folder cannot be its own parent")
	ErrUnsupportedFormat    = errors.New("unsupported snapshot format")
	ErrDuplicateSnapshotIDs = errors.New("snapshot contains duplicate ids")
)
