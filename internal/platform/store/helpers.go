package store

import (
	"context"
	"fmt"
)

// ExecOne runs a write and asserts exactly one row was affected
func ExecOne(ctx context.Context, q RowQuerier, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if n := tag.RowsAffected(); n != 1 {
		return fmt.Errorf("expected 1 row affected, got %d", n)
	}
	return nil
}

// Scalar scans the first column of the first row into T
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (T, error) {
	var v T
	err := q.QueryRow(ctx, sql, args...).Scan(&v)
	return v, err
}

// Many maps every row with scan; the result is never nil
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	rs, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rs.Close()
	out := make([]T, 0)
	for rs.Next() {
		item, err := scan(rs)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rs.Err()
}
