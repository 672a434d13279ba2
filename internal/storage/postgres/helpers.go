package postgres

import (
	"errors"

	"hr-recruiting-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// classifyError maps pgx/pgconn errors onto the storage sentinel errors.
// Unique violations and broken references are both surfaced as conflicts;
// everything else passes through for the caller to wrap.
func classifyError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation:
			return storage.ErrConflict
		}
	}
	return err
}

// collectList scans rows into a slice of T, returning an empty slice (not
// nil) when the result set is empty.
func collectList[T any](rows pgx.Rows) ([]T, error) {
	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
