package store

import (
	"context"
	"errors"
	"time"

	"dreammap/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxQuerier is the surface shared by the pool and a transaction
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// traced implements RowQuerier over a pgxQuerier and emits trace events
type traced struct {
	q      pgxQuerier
	tracer pg.QueryTracer
	slowUS int64
}

func (t traced) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := t.q.Exec(ctx, sql, args...)
	t.emit(ctx, sql, args, start, err)
	return ct, err
}

func (t traced) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := t.q.Query(ctx, sql, args...)
	t.emit(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rows{r: rs}, nil
}

func (t traced) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	return row{
		r:     t.q.QueryRow(ctx, sql, args...),
		after: func(err error) { t.emit(ctx, sql, args, start, err) },
	}
}

func (t traced) emit(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if t.tracer == nil {
		return
	}
	us := time.Since(start).Microseconds()
	t.tracer.OnQuery(ctx, pg.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: us,
		Err:       err,
		Slow:      t.slowUS >= 0 && us >= t.slowUS,
	})
}

// pgAdapter is the pool backed TxRunner
type pgAdapter struct {
	traced
	p *pg.PG
}

func newPGAdapter(p *pg.PG) *pgAdapter {
	return &pgAdapter{
		traced: traced{q: p.Pool, tracer: p.Tracer, slowUS: int64(p.SlowMs) * 1000},
		p:      p,
	}
}

// Pool exposes the underlying pool for tooling such as migrations
func (a *pgAdapter) Pool() *pgxpool.Pool { return a.p.Pool }

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil || a.p == nil {
		return errors.New("pg: nil adapter")
	}
	return a.p.Pool.Ping(ctx)
}

func (a *pgAdapter) Close() error { a.p.Close(); return nil }

func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.p.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(traced{q: tx, tracer: a.tracer, slowUS: a.slowUS}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

type row struct {
	r     pgx.Row
	after func(error)
}

func (x row) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}

type rows struct{ r pgx.Rows }

func (x rows) Next() bool            { return x.r.Next() }
func (x rows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x rows) Err() error            { return x.r.Err() }
func (x rows) Close()                { x.r.Close() }
func (x rows) Columns() []string {
	f := x.r.FieldDescriptions()
	out := make([]string, len(f))
	for i := range f {
		out[i] = f[i].Name
	}
	return out
}
