// @title         Dreammap API
// @version       0.1.0
// @description   Anonymous dream submissions and per-region dream statistics

package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dreammap/internal/modkit/repokit"
	"dreammap/internal/platform/config"
	"dreammap/internal/platform/logger"
	phttp "dreammap/internal/platform/net/http"
	"dreammap/internal/platform/net/middleware"
	"dreammap/internal/platform/store"
	"dreammap/internal/platform/store/migrate"

	"dreammap/internal/services/api"
)

func main() {
	// .env before anything reads the environment
	loaded, dotErr := config.LoadDotenv()

	l := logger.Get()
	if dotErr != nil {
		l.Warn().Err(dotErr).Msg("dotenv load failed")
	} else if len(loaded) > 0 {
		l.Debug().Strs("files", loaded).Msg("dotenv loaded")
	}

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// every backend is optional; the api degrades to in-memory stores
	st, err := store.Open(ctx, store.ConfigFrom(root, "dreammap-api"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail fast when an enabled backend went away after the open
	repokit.MustGuard(ctx, st)

	if apiCfg.MayBool("MIGRATE", true) {
		if err := migrate.Run(ctx, st); err != nil {
			l.Panic().Err(err).Msg("migrations failed")
		}
	}

	// per client ip token buckets in front of every versioned route
	var throttle *middleware.Limiters
	if rps := apiCfg.MayFloat64("THROTTLE_RPS", 5); rps > 0 {
		throttle = middleware.NewLimiters(rps, apiCfg.MayInt("THROTTLE_BURST", 20), apiCfg.MayDuration("THROTTLE_IDLE", 15*time.Minute))
		throttle.Janitor(ctx, time.Minute)
	}

	// http server (reads CORE_API_PORT and timeouts)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	mods := api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			Throttle:       throttle,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)
	defer func() {
		for _, m := range mods {
			if c, ok := m.(io.Closer); ok {
				if err := c.Close(); err != nil {
					l.Error().Err(err).Str("module", m.Name()).Msg("module close failed")
				}
			}
		}
	}()

	// run until signalled
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
