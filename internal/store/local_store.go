// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-prompt-keeper/internal/config"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/migrations"
)

// Table names a lockable unit of the local store. Prompt tag links belong
// to [TablePrompts].
type Table string

const (
	TablePrompts        Table = "prompts"
	TableTags           Table = "tags"
	TableFolders        Table = "folders"
	TableVersions       Table = "prompt_versions"
	TablePresets        Table = "execution_presets"
	TableCredentials    Table = "credentials"
	TableDeviceSlots    Table = "device_slots"
	TablePendingDeletes Table = "pending_deletes"
)

// AllTables lists every table of the local store.
var AllTables = []Table{
	TablePrompts, TableTags, TableFolders, TableVersions,
	TablePresets, TableCredentials, TableDeviceSlots, TablePendingDeletes,
}

// LocalStore is the device-local database. Reads may use the repositories
// returned by its accessors directly; writes that touch more than one row
// go through [LocalStore.Transaction].
type LocalStore struct {
	db     *DB
	locks  map[Table]*sync.Mutex
	logger *logger.Logger
}

// NewLocalStore opens (or creates) the local database at cfg.DSN and
// applies pending schema steps.
func NewLocalStore(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*LocalStore, error) {
	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	version, err := db.Migrate(ctx)
	if err != nil {
		_ = db.Close()
		log.Err(err).Str("func", "NewLocalStore").Msg("migration failed")
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	log.Debug().Str("func", "NewLocalStore").Int64("schema_version", version).Msg("local store is ready")

	return newLocalStore(db, log), nil
}

func newLocalStore(db *DB, log *logger.Logger) *LocalStore {
	locks := make(map[Table]*sync.Mutex, len(AllTables))
	for _, t := range AllTables {
		locks[t] = &sync.Mutex{}
	}
	return &LocalStore{db: db, locks: locks, logger: log}
}

func (s *LocalStore) Close() error {
	return s.db.Close()
}

// SchemaVersion returns the schema version recorded in the database.
func (s *LocalStore) SchemaVersion(ctx context.Context) (int64, error) {
	return migrations.SQLiteVersion(ctx, s.db.DB)
}

func (s *LocalStore) Prompts() PromptRepository   { return newPromptRepository(s.db, s.db.DB) }
func (s *LocalStore) Tags() TagRepository         { return newTagRepository(s.db, s.db.DB) }
func (s *LocalStore) Folders() FolderRepository   { return newFolderRepository(s.db, s.db.DB) }
func (s *LocalStore) Versions() VersionRepository { return newVersionRepository(s.db, s.db.DB) }
func (s *LocalStore) Presets() PresetRepository   { return newPresetRepository(s.db, s.db.DB) }
func (s *LocalStore) Credentials() CredentialRepository {
	return newCredentialRepository(s.db, s.db.DB)
}
func (s *LocalStore) Slots() SlotRepository { return newSlotRepository(s.db, s.db.DB) }
func (s *LocalStore) PendingDeletes() PendingDeleteRepository {
	return newPendingDeleteRepository(s.db, s.db.DB)
}

// Transaction runs fn atomically over the declared tables.
//
// Locks for the declared tables are taken in a fixed order before the SQL
// transaction begins, so concurrent transactions over overlapping tables
// serialise instead of failing. Repositories obtained from tx for tables
// that were not declared fail with [ErrTableNotInTransaction].
//
// Any error returned by fn, or a panic, rolls everything back. fn's error
// is returned unchanged; begin and commit failures wrap
// [ErrTransactionFailed]. fn must not use the store's direct accessors.
func (s *LocalStore) Transaction(ctx context.Context, tables []Table, fn func(ctx context.Context, tx *Tx) error) (err error) {
	log := logger.FromContext(ctx)

	scope, err := s.lock(tables)
	if err != nil {
		return err
	}
	defer s.unlock(scope)

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "LocalStore.Transaction").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w: %w", ErrTransactionFailed, ErrBeginningTransaction, s.db.markTransient(err))
	}

	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := sqlTx.Rollback(); rbErr != nil {
				log.Err(rbErr).Str("func", "LocalStore.Transaction").Msg("failed to rollback transaction")
			}
		}
	}()

	tx := &Tx{db: s.db, tx: sqlTx, tables: make(map[Table]struct{}, len(scope))}
	for _, t := range scope {
		tx.tables[t] = struct{}{}
	}

	if err = fn(ctx, tx); err != nil {
		log.Debug().Err(err).Str("func", "LocalStore.Transaction").Msg("transaction rolled back")
		return err
	}

	if err = sqlTx.Commit(); err != nil {
		log.Err(err).Str("func", "LocalStore.Transaction").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w: %w", ErrTransactionFailed, ErrCommitingTransaction, s.db.markTransient(err))
	}

	return nil
}

// lock acquires table mutexes in sorted order and returns the deduplicated
// scope.
func (s *LocalStore) lock(tables []Table) ([]Table, error) {
	scope := slices.Clone(tables)
	slices.Sort(scope)
	scope = slices.Compact(scope)

	for _, t := range scope {
		if _, ok := s.locks[t]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTable, t)
		}
	}
	for _, t := range scope {
		s.locks[t].Lock()
	}
	return scope, nil
}

func (s *LocalStore) unlock(scope []Table) {
	for i := len(scope) - 1; i >= 0; i-- {
		s.locks[scope[i]].Unlock()
	}
}

// Tx hands out repositories bound to one SQL transaction.
type Tx struct {
	db     *DB
	tx     *sql.Tx
	tables map[Table]struct{}
}

func (t *Tx) conn(table Table) DBTX {
	if _, ok := t.tables[table]; !ok {
		return deniedConn{table: table}
	}
	return t.tx
}

func (t *Tx) Prompts() PromptRepository {
	return newPromptRepository(t.db, t.conn(TablePrompts))
}

func (t *Tx) Tags() TagRepository {
	return newTagRepository(t.db, t.conn(TableTags))
}

func (t *Tx) Folders() FolderRepository {
	return newFolderRepository(t.db, t.conn(TableFolders))
}

func (t *Tx) Versions() VersionRepository {
	return newVersionRepository(t.db, t.conn(TableVersions))
}

func (t *Tx) Presets() PresetRepository {
	return newPresetRepository(t.db, t.conn(TablePresets))
}

func (t *Tx) Credentials() CredentialRepository {
	return newCredentialRepository(t.db, t.conn(TableCredentials))
}

func (t *Tx) Slots() SlotRepository {
	return newSlotRepository(t.db, t.conn(TableDeviceSlots))
}

func (t *Tx) PendingDeletes() PendingDeleteRepository {
	return newPendingDeleteRepository(t.db, t.conn(TablePendingDeletes))
}

// deniedConn stands in for a table outside the transaction scope.
type deniedConn struct {
	table Table
}

func (d deniedConn) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, fmt.Errorf("%w: %s", ErrTableNotInTransaction, d.table)
}

func (d deniedConn) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, fmt.Errorf("%w: %s", ErrTableNotInTransaction, d.table)
}
