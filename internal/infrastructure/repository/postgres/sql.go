package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// insertReturning runs an INSERT ending in "ON CONFLICT ... DO NOTHING
// RETURNING *" and reports whether a row was written. A conflict yields no
// row, which is not an error.
func insertReturning(ctx context.Context, q sqlx.QueryerContext, dest any, query string, args ...any) (bool, error) {
	if err := sqlx.GetContext(ctx, q, dest, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func intPtrToNull(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullInt64ToIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}

func stringPtrToNull(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func nullStringToStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	out := v.String
	return &out
}
