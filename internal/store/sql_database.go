package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/migrations"
)

// Dialect identifies the SQL engine behind a [DB].
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

// DB wraps a connection pool together with the engine-specific error
// classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// DBTX is the subset of *sql.DB and *sql.Tx repositories run statements on.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Migrate applies pending schema steps for the DB's dialect and returns the
// resulting schema version.
func (db *DB) Migrate(ctx context.Context) (int64, error) {
	switch db.dialect {
	case DialectSQLite:
		return migrations.MigrateSQLite(ctx, db.DB)
	case DialectPostgres:
		return migrations.MigratePostgres(ctx, db.DB)
	default:
		return 0, fmt.Errorf("migration error: unsupported dialect %q", db.dialect)
	}
}

// isUniqueViolation reports whether err was caused by a unique index.
func (db *DB) isUniqueViolation(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.IsUniqueViolation(err)
}

func (db *DB) isRetryable(err error) bool {
	if err == nil || db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// markTransient adds [ErrTransient] to err when a retry may help.
func (db *DB) markTransient(err error) error {
	if db.isRetryable(err) {
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}
	return err
}
