package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for the local
// database file.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify reports a file held by another process as retryable.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	code, _, ok := sqliteError(err)
	if ok && (code == sqlite3.ErrBusy || code == sqlite3.ErrLocked) {
		return Retryable
	}
	return NonRetryable
}

func (c *SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	_, ext, ok := sqliteError(err)
	return ok && (ext == sqlite3.ErrConstraintUnique || ext == sqlite3.ErrConstraintPrimaryKey)
}

func sqliteError(err error) (sqlite3.ErrNo, sqlite3.ErrNoExtended, bool) {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return 0, 0, false
	}
	return sqliteErr.Code, sqliteErr.ExtendedCode, true
}
