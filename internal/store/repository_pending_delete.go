package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

type pendingDeleteRepository struct {
	sqlRepository
}

func newPendingDeleteRepository(db *DB, conn DBTX) PendingDeleteRepository {
	return &pendingDeleteRepository{sqlRepository{db: db, conn: conn}}
}

func (r *pendingDeleteRepository) Add(ctx context.Context, p models.PendingDelete) error {
	q := sqliteSQL.Insert("pending_deletes").
		Columns("kind", "entity_id", "owner_id", "deleted_at").
		Values(string(p.Kind), p.ID, p.OwnerID, p.DeletedAt.UTC()).
		Suffix("ON CONFLICT(kind, entity_id) DO UPDATE SET owner_id = excluded.owner_id, deleted_at = excluded.deleted_at")
	_, err := r.exec(ctx, q, "pendingDeleteRepository.Add")
	return err
}

// List returns the deletes still owed to the remote for ownerID, oldest first.
func (r *pendingDeleteRepository) List(ctx context.Context, ownerID string) ([]models.PendingDelete, error) {
	q := sqliteSQL.Select("kind", "entity_id", "owner_id", "deleted_at").
		From("pending_deletes").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("deleted_at")
	return queryAll(ctx, r.conn, q, "pendingDeleteRepository.List", func(row rowScanner) (models.PendingDelete, error) {
		var (
			p    models.PendingDelete
			kind string
		)
		err := row.Scan(&kind, &p.ID, &p.OwnerID, &p.DeletedAt)
		p.Kind = models.EntityKind(kind)
		p.DeletedAt = p.DeletedAt.UTC()
		return p, err
	})
}

func (r *pendingDeleteRepository) Has(ctx context.Context, kind models.EntityKind, id string) (bool, error) {
	q := sqliteSQL.Select("1").From("pending_deletes").Where(sq.Eq{"kind": string(kind), "entity_id": id})
	_, found, err := queryOne(ctx, r.conn, q, "pendingDeleteRepository.Has", func(row rowScanner) (int, error) {
		var one int
		err := row.Scan(&one)
		return one, err
	})
	return found, err
}

func (r *pendingDeleteRepository) Remove(ctx context.Context, kind models.EntityKind, id string) error {
	q := sqliteSQL.Delete("pending_deletes").Where(sq.Eq{"kind": string(kind), "entity_id": id})
	_, err := r.exec(ctx, q, "pendingDeleteRepository.Remove")
	return err
}
