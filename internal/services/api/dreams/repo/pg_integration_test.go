//go:build integration_pg

package repo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dreammap/internal/core/dream"
	perr "dreammap/internal/platform/errors"
	"dreammap/internal/platform/store"
	"dreammap/internal/platform/store/migrate"
	"dreammap/internal/services/api/dreams/repo"
	rlrepo "dreammap/internal/services/api/ratelimit/repo"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "dreammap",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections"),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		cancel()
		t.Fatalf("start postgres: %v", err)
	}
	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("container host: %v", err)
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("mapped port: %v", err)
	}
	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/dreammap?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
}

func TestPGRepo_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	s, err := store.Open(ctx, store.Config{
		AppName: "dreammap-integration",
		PG: store.PGConfig{
			Enabled:        true,
			URL:            dsn,
			MaxConns:       4,
			ConnectRetries: 10,
			PingTimeout:    5 * time.Second,
		},
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer func() { _ = s.Close(context.Background()) }()

	if _, err := migrate.Postgres(ctx, s.PGPool()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	dreams := repo.NewPG().Bind(s.PG)
	now := time.UnixMilli(1_700_000_000_000)
	for _, r := range repo.Seed(now, nil) {
		if err := dreams.Insert(ctx, r); err != nil {
			t.Fatalf("insert %s: %v", r.ID, err)
		}
	}

	err = dreams.Insert(ctx, repo.Seed(now, nil)[0])
	if !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("want duplicate key, got %v", err)
	}

	all, err := dreams.List(ctx, repo.Filter{Limit: 500})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 || all[0].ID != "seed-5" || all[4].ID != "seed-4" {
		t.Fatalf("order %+v", all)
	}
	if all[0].Location.Lat != 48.8566 || all[0].OwnerID != repo.SeedOwner {
		t.Fatalf("round trip %+v", all[0])
	}

	surreal, err := dreams.List(ctx, repo.Filter{Category: dream.Surreal, Limit: 10})
	if err != nil || len(surreal) != 1 || surreal[0].ID != "seed-1" {
		t.Fatalf("filter %+v %v", surreal, err)
	}

	// the dreams table doubles as the limiter history
	history := rlrepo.NewPG().Bind(s.PG)
	ts, err := history.Timestamps(ctx, repo.SeedOwner, now.Add(-5_000_000*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	if len(ts) != 2 {
		t.Fatalf("history %v", ts)
	}
	if !ts[0].Before(ts[1]) {
		t.Fatalf("history not ascending %v", ts)
	}
}
