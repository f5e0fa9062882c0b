package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"strings"
	"time"

	"dreammap/internal/platform/config"
	"dreammap/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the chi mux and the stdlib server
type Server struct {
	addr            string
	mux             *chi.Mux
	srv             *stdhttp.Server
	shutdownTimeout time.Duration
}

// NewServer reads PORT and timeouts from cfg (already prefixed, e.g.
// CORE_API_). opts receive the mux before any module mounts.
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("PORT", "4000")
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr:            addr,
		mux:             m,
		shutdownTimeout: cfg.MayDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
			ReadTimeout:       cfg.MayDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout:      cfg.MayDuration("WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:       cfg.MayDuration("IDLE_TIMEOUT", 2*time.Minute),
		},
	}
}

// Router returns the platform Router over the mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Handler returns the root handler
func (s *Server) Handler() stdhttp.Handler { return s.mux }

// Addr returns the listen address
func (s *Server) Addr() string { return s.addr }

// Run serves until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.addr).Msg("http listening")
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("http shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
