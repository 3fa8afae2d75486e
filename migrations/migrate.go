// Package migrations embeds the ordered schema steps of both stores and
// applies them with goose. Every step is additive and guarded with
// IF NOT EXISTS; goose records applied versions so no step runs twice.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

//go:embed postgres/*.sql
var postgresMigrations embed.FS

// ErrNilDB is returned when a migration is requested without a connection.
var ErrNilDB = errors.New("migration error: db is nil")

// MigrateSQLite brings the local store up to date and returns the schema
// version it ends at.
func MigrateSQLite(ctx context.Context, db *sql.DB) (int64, error) {
	return migrate(ctx, db, goose.DialectSQLite3, sqliteMigrations, "sqlite")
}

// MigratePostgres brings the remote store up to date and returns the schema
// version it ends at.
func MigratePostgres(ctx context.Context, db *sql.DB) (int64, error) {
	return migrate(ctx, db, goose.DialectPostgres, postgresMigrations, "postgres")
}

// SQLiteVersion returns the schema version recorded in the local database
// without applying anything.
func SQLiteVersion(ctx context.Context, db *sql.DB) (int64, error) {
	if db == nil {
		return 0, ErrNilDB
	}

	sub, err := fs.Sub(sqliteMigrations, "sqlite")
	if err != nil {
		return 0, fmt.Errorf("migration error reading embedded sqlite steps: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, sub)
	if err != nil {
		return 0, fmt.Errorf("migration error creating provider: %w", err)
	}

	return provider.GetDBVersion(ctx)
}

// LatestSQLiteVersion is the schema version the current code expects locally.
func LatestSQLiteVersion() (int64, error) {
	return latestVersion(sqliteMigrations, "sqlite")
}

func migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect, fsys embed.FS, dir string) (int64, error) {
	if db == nil {
		return 0, ErrNilDB
	}

	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return 0, fmt.Errorf("migration error reading embedded %s steps: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, sub)
	if err != nil {
		return 0, fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration error reading version: %w", err)
	}

	return version, nil
}

func latestVersion(fsys embed.FS, dir string) (int64, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return 0, err
	}

	var latest int64
	for _, e := range entries {
		v, err := goose.NumericComponent(e.Name())
		if err != nil {
			return 0, fmt.Errorf("bad migration file name %q: %w", e.Name(), err)
		}
		latest = max(latest, v)
	}

	return latest, nil
}
