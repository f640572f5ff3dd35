package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/query"
)

// listInTx runs one listing: the matching-total COUNT and the page SELECT
// composed from the entity metadata, executed inside a single read-only
// transaction so the total and the page are taken from the same snapshot.
//
// The scan callback maps one result row onto the entity struct; it receives
// the *sql.Rows positioned on the current row and must not advance it.
//
// Malformed pagination windows surface as query.ErrInvalidWindow before any
// statement is executed.
func listInTx[T any](ctx context.Context, db *DB, entity query.Entity, spec query.Spec, scan func(rows *sql.Rows) (T, error)) ([]T, int64, error) {
	log := logger.FromContext(ctx)

	if err := spec.Validate(); err != nil {
		return nil, 0, err
	}

	countSQL, countArgs, err := entity.Count(spec)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	selectSQL, selectArgs, err := entity.Select(spec)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		log.Err(err).Str("table", entity.Table).Msg("error beginning listing transaction")
		return nil, 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	var total int64
	if err := tx.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("table", entity.Table).Msg("error counting matching records")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := tx.QueryContext(ctx, selectSQL, selectArgs...)
	if err != nil {
		log.Err(err).Str("table", entity.Table).Msg("error selecting page")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0, spec.Limit)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			log.Err(err).Str("table", entity.Table).Msg("error scanning page row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return items, total, nil
}
