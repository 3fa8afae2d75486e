package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

var tagColumns = []string{"id", "owner_id", "name", "created_at", "updated_at", "last_synced_at"}

type tagRepository struct {
	sqlRepository
}

func newTagRepository(db *DB, conn DBTX) TagRepository {
	return &tagRepository{sqlRepository{db: db, conn: conn}}
}

// Put upserts a tag. A name already used by another tag of the same owner
// fails with [ErrUniqueViolation].
func (r *tagRepository) Put(ctx context.Context, t models.Tag) error {
	q := sqliteSQL.Insert("tags").
		Columns(tagColumns...).
		Values(t.ID, nullableString(t.OwnerID), t.Name, t.CreatedAt.UTC(), t.UpdatedAt.UTC(), nullableTime(t.LastSyncedAt)).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			name = excluded.name,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			last_synced_at = excluded.last_synced_at`)
	_, err := r.exec(ctx, q, "tagRepository.Put")
	return err
}

func (r *tagRepository) Get(ctx context.Context, id string) (models.Tag, bool, error) {
	return queryOne(ctx, r.conn, r.selectTags().Where(sq.Eq{"id": id}), "tagRepository.Get", scanTag)
}

func (r *tagRepository) FindByName(ctx context.Context, ownerID *string, name string) (models.Tag, bool, error) {
	q := r.selectTags().Where(ownerScope(ownerID)).Where(sq.Eq{"name": name})
	return queryOne(ctx, r.conn, q, "tagRepository.FindByName", scanTag)
}

func (r *tagRepository) List(ctx context.Context, ownerID *string) ([]models.Tag, error) {
	return queryAll(ctx, r.conn, r.selectTags().Where(ownerScope(ownerID)).OrderBy("name"), "tagRepository.List", scanTag)
}

func (r *tagRepository) ListAll(ctx context.Context) ([]models.Tag, error) {
	return queryAll(ctx, r.conn, r.selectTags().OrderBy("name", "id"), "tagRepository.ListAll", scanTag)
}

func (r *tagRepository) ListPending(ctx context.Context, ownerID string) ([]models.Tag, error) {
	return queryAll(ctx, r.conn, r.selectTags().Where(pendingScope(ownerID)), "tagRepository.ListPending", scanTag)
}

func (r *tagRepository) Delete(ctx context.Context, id string) error {
	_, err := r.exec(ctx, sqliteSQL.Delete("tags").Where(sq.Eq{"id": id}), "tagRepository.Delete")
	return err
}

func (r *tagRepository) DeleteAll(ctx context.Context) error {
	_, err := r.exec(ctx, sqliteSQL.Delete("tags"), "tagRepository.DeleteAll")
	return err
}

func (r *tagRepository) MarkSynced(ctx context.Context, id string, at time.Time) error {
	_, err := r.exec(ctx, buildMarkSyncedQuery("tags", id, at), "tagRepository.MarkSynced")
	return err
}

func (r *tagRepository) selectTags() sq.SelectBuilder {
	return sqliteSQL.Select(tagColumns...).From("tags")
}

func scanTag(row rowScanner) (models.Tag, error) {
	var (
		t          models.Tag
		ownerID    sql.NullString
		lastSynced sql.NullTime
	)
	if err := row.Scan(&t.ID, &ownerID, &t.Name, &t.CreatedAt, &t.UpdatedAt, &lastSynced); err != nil {
		return models.Tag{}, err
	}
	t.OwnerID = stringPtr(ownerID)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	t.LastSyncedAt = timePtr(lastSynced)
	return t, nil
}
