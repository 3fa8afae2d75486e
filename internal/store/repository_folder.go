package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

var folderColumns = []string{"id", "owner_id", "name", "parent_id", "created_at", "updated_at", "last_synced_at"}

type folderRepository struct {
	sqlRepository
}

func newFolderRepository(db *DB, conn DBTX) FolderRepository {
	return &folderRepository{sqlRepository{db: db, conn: conn}}
}

func (r *folderRepository) Put(ctx context.Context, f models.Folder) error {
	q := sqliteSQL.Insert("folders").
		Columns(folderColumns...).
		Values(f.ID, nullableString(f.OwnerID), f.Name, nullableString(f.ParentID),
			f.CreatedAt.UTC(), f.UpdatedAt.UTC(), nullableTime(f.LastSyncedAt)).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			name = excluded.name,
			parent_id = excluded.parent_id,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			last_synced_at = excluded.last_synced_at`)
	_, err := r.exec(ctx, q, "folderRepository.Put")
	return err
}

func (r *folderRepository) Get(ctx context.Context, id string) (models.Folder, bool, error) {
	return queryOne(ctx, r.conn, r.selectFolders().Where(sq.Eq{"id": id}), "folderRepository.Get", scanFolder)
}

// ListByParent returns the direct children of parentID; a nil parentID
// lists root folders.
func (r *folderRepository) ListByParent(ctx context.Context, ownerID *string, parentID *string) ([]models.Folder, error) {
	q := r.selectFolders().
		Where(ownerScope(ownerID)).
		Where(sq.Eq{"parent_id": nullableString(parentID)}).
		OrderBy("name", "id")
	return queryAll(ctx, r.conn, q, "folderRepository.ListByParent", scanFolder)
}

func (r *folderRepository) List(ctx context.Context, ownerID *string) ([]models.Folder, error) {
	return queryAll(ctx, r.conn, r.selectFolders().Where(ownerScope(ownerID)).OrderBy("name", "id"), "folderRepository.List", scanFolder)
}

func (r *folderRepository) ListAll(ctx context.Context) ([]models.Folder, error) {
	return queryAll(ctx, r.conn, r.selectFolders().OrderBy("created_at", "id"), "folderRepository.ListAll", scanFolder)
}

func (r *folderRepository) ListPending(ctx context.Context, ownerID string) ([]models.Folder, error) {
	return queryAll(ctx, r.conn, r.selectFolders().Where(pendingScope(ownerID)), "folderRepository.ListPending", scanFolder)
}

func (r *folderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.exec(ctx, sqliteSQL.Delete("folders").Where(sq.Eq{"id": id}), "folderRepository.Delete")
	return err
}

func (r *folderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.exec(ctx, sqliteSQL.Delete("folders"), "folderRepository.DeleteAll")
	return err
}

func (r *folderRepository) MarkSynced(ctx context.Context, id string, at time.Time) error {
	_, err := r.exec(ctx, buildMarkSyncedQuery("folders", id, at), "folderRepository.MarkSynced")
	return err
}

func (r *folderRepository) selectFolders() sq.SelectBuilder {
	return sqliteSQL.Select(folderColumns...).From("folders")
}

func scanFolder(row rowScanner) (models.Folder, error) {
	var (
		f          models.Folder
		ownerID    sql.NullString
		parentID   sql.NullString
		lastSynced sql.NullTime
	)
	if err := row.Scan(&f.ID, &ownerID, &f.Name, &parentID, &f.CreatedAt, &f.UpdatedAt, &lastSynced); err != nil {
		return models.Folder{}, err
	}
	f.OwnerID = stringPtr(ownerID)
	f.ParentID = stringPtr(parentID)
	f.CreatedAt = f.CreatedAt.UTC()
	f.UpdatedAt = f.UpdatedAt.UTC()
	f.LastSyncedAt = timePtr(lastSynced)
	return f, nil
}
