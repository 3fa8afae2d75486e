// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigratePostgres_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // не используем напрямую, goose сам будет ходить в DB

	_, err = MigratePostgres(context.Background(), db)
	if err == nil {
		t.Fatal("expected error from MigratePostgres, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	_, err := MigrateSQLite(context.Background(), db)
	assert.ErrorIs(t, err, ErrNilDB)
}

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// TestMigrateSQLite_UpAndIdempotent applies every step on an empty database
// and verifies that a second run is a no-op ending at the same version.
func TestMigrateSQLite_UpAndIdempotent(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	latest, err := LatestSQLiteVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(4), latest)

	v1, err := MigrateSQLite(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, latest, v1)

	v2, err := MigrateSQLite(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)

	for _, table := range []string{"prompts", "prompt_tags", "tags", "folders", "prompt_versions",
		"execution_presets", "credentials", "device_slots", "pending_deletes"} {
		var name string
		err := db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
	}
}

// TestMigrateSQLite_KeepsExistingData verifies that re-running migrations
// never touches rows written in between.
func TestMigrateSQLite_KeepsExistingData(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	_, err := MigrateSQLite(ctx, db)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO device_slots (key, value) VALUES ('k', 'v')`)
	require.NoError(t, err)

	_, err = MigrateSQLite(ctx, db)
	require.NoError(t, err)

	var value string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT value FROM device_slots WHERE key = 'k'`).Scan(&value))
	assert.Equal(t, "v", value)
}

func TestMigrateSQLite_TagNameUniquePerOwner(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()
	_, err := MigrateSQLite(ctx, db)
	require.NoError(t, err)

	insert := `INSERT INTO tags (id, owner_id, name, created_at, updated_at) VALUES (?, ?, ?, '2026-01-01', '2026-01-01')`
	_, err = db.ExecContext(ctx, insert, "t1", "alice", "work")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, insert, "t2", "bob", "work")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, insert, "t3", nil, "work")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, insert, "t4", "alice", "work")
	assert.Error(t, err)
	_, err = db.ExecContext(ctx, insert, "t5", nil, "work")
	assert.Error(t, err)
}

func TestSQLiteVersion(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	applied, err := MigrateSQLite(ctx, db)
	require.NoError(t, err)

	current, err := SQLiteVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, applied, current)
}
