package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

var versionColumns = []string{
	"id", "prompt_id", "owner_id", "content", "notes", "commit_message", "created_at", "last_synced_at",
}

type versionRepository struct {
	sqlRepository
}

func newVersionRepository(db *DB, conn DBTX) VersionRepository {
	return &versionRepository{sqlRepository{db: db, conn: conn}}
}

// Put inserts a version or, for an existing id, updates the fields that may
// change after creation: owner, commit message and sync state.
func (r *versionRepository) Put(ctx context.Context, v models.PromptVersion) error {
	q := sqliteSQL.Insert("prompt_versions").
		Columns(versionColumns...).
		Values(v.ID, v.PromptID, nullableString(v.OwnerID), v.Content, v.Notes, v.CommitMessage,
			v.CreatedAt.UTC(), nullableTime(v.LastSyncedAt)).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			commit_message = excluded.commit_message,
			last_synced_at = excluded.last_synced_at`)
	_, err := r.exec(ctx, q, "versionRepository.Put")
	return err
}

func (r *versionRepository) Get(ctx context.Context, id string) (models.PromptVersion, bool, error) {
	return queryOne(ctx, r.conn, r.selectVersions().Where(sq.Eq{"id": id}), "versionRepository.Get", scanVersion)
}

// ListByPrompt returns the history of one prompt, newest first.
func (r *versionRepository) ListByPrompt(ctx context.Context, promptID string) ([]models.PromptVersion, error) {
	q := r.selectVersions().Where(sq.Eq{"prompt_id": promptID}).OrderBy("created_at DESC", "rowid DESC")
	return queryAll(ctx, r.conn, q, "versionRepository.ListByPrompt", scanVersion)
}

func (r *versionRepository) ListAll(ctx context.Context) ([]models.PromptVersion, error) {
	return queryAll(ctx, r.conn, r.selectVersions().OrderBy("created_at", "rowid"), "versionRepository.ListAll", scanVersion)
}

// ListPending returns versions of ownerID that were never pushed.
func (r *versionRepository) ListPending(ctx context.Context, ownerID string) ([]models.PromptVersion, error) {
	q := r.selectVersions().
		Where(sq.Eq{"owner_id": ownerID, "last_synced_at": nil}).
		OrderBy("created_at", "rowid")
	return queryAll(ctx, r.conn, q, "versionRepository.ListPending", scanVersion)
}

func (r *versionRepository) DeleteByPrompt(ctx context.Context, promptID string) error {
	_, err := r.exec(ctx, sqliteSQL.Delete("prompt_versions").Where(sq.Eq{"prompt_id": promptID}), "versionRepository.DeleteByPrompt")
	return err
}

func (r *versionRepository) DeleteAll(ctx context.Context) error {
	_, err := r.exec(ctx, sqliteSQL.Delete("prompt_versions"), "versionRepository.DeleteAll")
	return err
}

func (r *versionRepository) MarkSynced(ctx context.Context, id string, at time.Time) error {
	_, err := r.exec(ctx, buildMarkSyncedQuery("prompt_versions", id, at), "versionRepository.MarkSynced")
	return err
}

func (r *versionRepository) selectVersions() sq.SelectBuilder {
	return sqliteSQL.Select(versionColumns...).From("prompt_versions")
}

func scanVersion(row rowScanner) (models.PromptVersion, error) {
	var (
		v          models.PromptVersion
		ownerID    sql.NullString
		lastSynced sql.NullTime
	)
	if err := row.Scan(&v.ID, &v.PromptID, &ownerID, &v.Content, &v.Notes, &v.CommitMessage,
		&v.CreatedAt, &lastSynced); err != nil {
		return models.PromptVersion{}, err
	}
	v.OwnerID = stringPtr(ownerID)
	v.CreatedAt = v.CreatedAt.UTC()
	v.LastSyncedAt = timePtr(lastSynced)
	return v, nil
}
