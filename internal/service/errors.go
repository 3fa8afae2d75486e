package service

import (
	"errors"
	"fmt"
)

// Local store taxonomy. Callers match with errors.Is.
var (
	// ErrNotFound is returned by mutations that target an id which does not
	// exist in the active owner scope. Reads report absence with a bool.
	ErrNotFound = errors.New("not found")

	// ErrConstraintViolation is the parent of every rejected write. Nothing
	// is written when it is returned.
	ErrConstraintViolation = errors.New("constraint violation")

	ErrDuplicateTagName        = fmt.Errorf("%w: tag name already exists", ErrConstraintViolation)
	ErrFolderCycle             = fmt.Errorf("%w: folder cannot be moved under itself or its descendant", ErrConstraintViolation)
	ErrDuplicatePresetName     = fmt.Errorf("%w: preset name already exists", ErrConstraintViolation)
	ErrDuplicateCredentialName = fmt.Errorf("%w: credential name already exists", ErrConstraintViolation)
	ErrTagOutOfScope           = fmt.Errorf("%w: tag does not belong to the active owner", ErrConstraintViolation)
	ErrInvalidInput            = fmt.Errorf("%w: invalid input", ErrConstraintViolation)

	// ErrCipherFailure wraps a credential secret that cannot be decrypted.
	// The credential has to be added again.
	ErrCipherFailure = errors.New("credential secret cannot be decrypted, re-add this credential")

	// ErrSyncFailure wraps remote failures. Local data is never rolled back
	// because of it.
	ErrSyncFailure = errors.New("sync failure")

	// ErrTransactionFailure wraps a local transaction that was rolled back.
	ErrTransactionFailure = errors.New("transaction failure")

	// ErrNoActiveOwner is returned by operations that need a signed in account.
	ErrNoActiveOwner = errors.New("no active owner")

	// ErrNoSyncServer is returned by session operations when the client has
	// no sync server configured.
	ErrNoSyncServer = errors.New("no sync server configured")
)

// Server and session errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrLoginAlreadyExists  = errors.New("login already exists")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrUnauthorizedAccessToDifferentUserData = errors.New("unauthorized access to different user data")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// isDomainError reports whether err already belongs to the taxonomy and
// must reach the caller unchanged.
func isDomainError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConstraintViolation) ||
		errors.Is(err, ErrCipherFailure)
}

// txError maps the error of a rolled back local transaction.
func txError(err error) error {
	if err == nil || isDomainError(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrTransactionFailure, err)
}
