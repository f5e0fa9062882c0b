package main

import (
	"context"
	"flag"
	"time"

	"dreammap/internal/adapters/analytics"
	"dreammap/internal/core/fuzz"
	"dreammap/internal/platform/config"
	"dreammap/internal/platform/logger"
	"dreammap/internal/platform/store"
	"dreammap/internal/platform/store/migrate"

	drepo "dreammap/internal/services/api/dreams/repo"
)

func main() {
	if _, err := config.LoadDotenv(); err != nil {
		logger.Get().Warn().Err(err).Msg("dotenv load failed")
	}

	var (
		fMigrateOnly = flag.Bool("migrate-only", false, "apply migrations and exit without seeding")
		fExact       = flag.Bool("exact", false, "store demo positions without jitter")
	)
	flag.Parse()

	l := logger.Named("seed")
	root := config.New()

	// postgres is mandatory here; clickhouse is used when enabled
	cfg := store.ConfigFrom(root, "dreammap-seed")
	cfg.PG.Enabled = true
	cfg.PG.URL = root.Prefix("SERVICE_PGSQL_").MustString("URL")

	ctx := context.Background()
	st, err := store.Open(ctx, cfg, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if err := migrate.Run(ctx, st); err != nil {
		l.Panic().Err(err).Msg("migrations failed")
	}
	if *fMigrateOnly {
		l.Info().Msg("migrations applied")
		return
	}

	var f *fuzz.Fuzzer
	if !*fExact {
		f = fuzz.New(nil)
	}
	recs := drepo.Seed(time.Now(), f)

	written, err := drepo.SeedInto(ctx, st.PG, recs)
	if err != nil {
		l.Panic().Err(err).Msg("seed insert failed")
	}

	events := analytics.NewSink(st.CH, 5*time.Second)
	if err := events.Publish(ctx, written...); err != nil {
		l.Warn().Err(err).Msg("analytics publish failed")
	}
	l.Info().Int("inserted", len(written)).Int("total", len(recs)).Msg("seed complete")
}
