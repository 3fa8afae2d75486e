package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
)

var (
	sqliteSQL   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	postgresSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

type rowScanner interface {
	Scan(dest ...any) error
}

// sqlRepository carries what every repository needs: the DB for error
// classification and the connection statements run on, which is either the
// pool or a transaction.
type sqlRepository struct {
	db   *DB
	conn DBTX
}

func (r sqlRepository) exec(ctx context.Context, q sq.Sqlizer, funcName string) (sql.Result, error) {
	log := logger.FromContext(ctx)

	query, args, err := q.ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	// A statement on the pool is repeated once; inside a transaction the
	// whole transaction has to be retried instead.
	if _, pooled := r.conn.(*sql.DB); pooled && r.db.isRetryable(err) {
		log.Warn().Err(err).Str("func", funcName).Msg("transient failure, retrying statement")
		res, err = r.conn.ExecContext(ctx, query, args...)
	}
	if err != nil {
		if r.db.isUniqueViolation(err) {
			log.Debug().Err(err).Str("func", funcName).Msg("unique constraint violated")
			return nil, fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		}
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.markTransient(err))
	}

	return res, nil
}

func queryAll[T any](ctx context.Context, conn DBTX, q sq.Sqlizer, funcName string, scan func(rowScanner) (T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := q.ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0, 16)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func queryOne[T any](ctx context.Context, conn DBTX, q sq.Sqlizer, funcName string, scan func(rowScanner) (T, error)) (T, bool, error) {
	var zero T

	items, err := queryAll(ctx, conn, q, funcName, scan)
	if err != nil {
		return zero, false, err
	}
	if len(items) == 0 {
		return zero, false, nil
	}
	return items[0], true, nil
}

// ownerScope selects rows of one owner, or the unowned rows when ownerID
// is nil.
func ownerScope(ownerID *string) sq.Eq {
	if ownerID == nil {
		return sq.Eq{"owner_id": nil}
	}
	return sq.Eq{"owner_id": *ownerID}
}

// pendingScope selects rows of ownerID that changed since their last push.
func pendingScope(ownerID string) sq.And {
	return sq.And{
		sq.Eq{"owner_id": ownerID},
		sq.Or{sq.Eq{"last_synced_at": nil}, sq.Expr("last_synced_at < updated_at")},
	}
}

func nullableString(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullableTime(p *time.Time) any {
	if p == nil {
		return nil
	}
	return p.UTC()
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}
