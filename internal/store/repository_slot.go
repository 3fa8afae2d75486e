package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

// Well-known device slot keys.
const (
	SlotSessionToken = "session.token"
	SlotOwnerID      = "session.owner_id"
)

type slotRepository struct {
	sqlRepository
}

func newSlotRepository(db *DB, conn DBTX) SlotRepository {
	return &slotRepository{sqlRepository{db: db, conn: conn}}
}

func (r *slotRepository) GetSlot(ctx context.Context, key string) (string, bool, error) {
	q := sqliteSQL.Select("value").From("device_slots").Where(sq.Eq{"key": key})
	return queryOne(ctx, r.conn, q, "slotRepository.GetSlot", func(row rowScanner) (string, error) {
		var value string
		err := row.Scan(&value)
		return value, err
	})
}

func (r *slotRepository) PutSlot(ctx context.Context, key, value string) error {
	q := sqliteSQL.Insert("device_slots").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	_, err := r.exec(ctx, q, "slotRepository.PutSlot")
	return err
}

func (r *slotRepository) DeleteSlot(ctx context.Context, key string) error {
	_, err := r.exec(ctx, sqliteSQL.Delete("device_slots").Where(sq.Eq{"key": key}), "slotRepository.DeleteSlot")
	return err
}
