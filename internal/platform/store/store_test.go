package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"dreammap/internal/platform/config"
	"dreammap/internal/platform/store/ch"
)

// openCH hands a *ch.CH out as the Clickhouse seam
var _ Clickhouse = (*ch.CH)(nil)

func TestOpen_NothingEnabled(t *testing.T) {
	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.PG != nil || s.CH != nil || s.RDS != nil {
		t.Fatalf("expected no backends: %+v", s)
	}
	if s.PGPool() != nil {
		t.Fatal("expected nil pool")
	}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("guard: %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestGuard_NilStore(t *testing.T) {
	var s *Store
	if err := s.Guard(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestOpen_OptionError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Open(context.Background(), Config{}, func(*Store) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
}

func TestConfigFrom(t *testing.T) {
	c := config.FromMap(map[string]string{
		"SERVICE_PGSQL_ENABLED":      "true",
		"SERVICE_PGSQL_URL":          "postgres://u:p@db/dreams",
		"SERVICE_PGSQL_MAX_CONNS":    "4",
		"SERVICE_REDIS_ENABLED":      "1",
		"SERVICE_REDIS_DB":           "2",
		"SERVICE_CLICKHOUSE_ENABLED": "false",
	})
	got := ConfigFrom(c, "dreammap-api")
	if !got.PG.Enabled || got.PG.URL != "postgres://u:p@db/dreams" || got.PG.MaxConns != 4 {
		t.Fatalf("pg %+v", got.PG)
	}
	if !got.RDS.Enabled || got.RDS.DB != 2 || got.RDS.Addr != "127.0.0.1:6379" {
		t.Fatalf("redis %+v", got.RDS)
	}
	if got.CH.Enabled || got.AppName != "dreammap-api" {
		t.Fatalf("cfg %+v", got)
	}
}

func TestPingRetry(t *testing.T) {
	calls := 0
	err := pingRetry(context.Background(), 3, time.Second, func(context.Context) error {
		calls++
		if calls < 2 {
			return errors.New("not yet")
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Fatalf("err %v calls %d", err, calls)
	}

	calls = 0
	err = pingRetry(context.Background(), 2, time.Second, func(context.Context) error {
		calls++
		return errors.New("down")
	})
	if err == nil || calls != 2 {
		t.Fatalf("err %v calls %d", err, calls)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = pingRetry(ctx, 10, time.Second, func(context.Context) error { return errors.New("down") })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
}

type fakeRows struct {
	vals []int
	i    int
	err  error
}

func (f *fakeRows) Next() bool { f.i++; return f.i <= len(f.vals) }
func (f *fakeRows) Scan(dest ...any) error {
	*(dest[0].(*int)) = f.vals[f.i-1]
	return nil
}
func (f *fakeRows) Err() error        { return f.err }
func (f *fakeRows) Close()            {}
func (f *fakeRows) Columns() []string { return []string{"n"} }

type fakeTag int64

func (t fakeTag) String() string      { return "UPDATE" }
func (t fakeTag) RowsAffected() int64 { return int64(t) }

type fakeQ struct {
	rows     *fakeRows
	affected int64
}

func (f fakeQ) Exec(context.Context, string, ...any) (CommandTag, error) {
	return fakeTag(f.affected), nil
}
func (f fakeQ) Query(context.Context, string, ...any) (Rows, error) { return f.rows, nil }
func (f fakeQ) QueryRow(context.Context, string, ...any) Row        { return f.rows }

func scanInt(r Row) (int, error) {
	var n int
	err := r.Scan(&n)
	return n, err
}

func TestHelpers(t *testing.T) {
	ctx := context.Background()

	got, err := Many(ctx, fakeQ{rows: &fakeRows{vals: []int{1, 2, 3}}}, scanInt, "q")
	if err != nil || len(got) != 3 || got[2] != 3 {
		t.Fatalf("many %v %v", got, err)
	}
	empty, err := Many(ctx, fakeQ{rows: &fakeRows{}}, scanInt, "q")
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("empty %v %v", empty, err)
	}

	n, err := Scalar[int](ctx, fakeQ{rows: &fakeRows{vals: []int{7}, i: 1}}, "q")
	if err != nil || n != 7 {
		t.Fatalf("scalar %v %v", n, err)
	}

	if err := ExecOne(ctx, fakeQ{affected: 1}, "u"); err != nil {
		t.Fatalf("exec one: %v", err)
	}
	if err := ExecOne(ctx, fakeQ{affected: 0}, "u"); err == nil {
		t.Fatal("expected error for 0 rows")
	}
}
