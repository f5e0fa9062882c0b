package pg

import (
	"context"
	"strings"

	"dreammap/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one traced statement
type QueryEvent struct {
	SQL       string
	Args      []any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives query events
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs every statement at debug or above regardless of the root level
func Tracer(root logger.Logger) QueryTracer {
	l := root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()
	return &zlTracer{log: l}
}

type zlTracer struct{ log logger.Logger }

func (z *zlTracer) OnQuery(_ context.Context, ev QueryEvent) {
	evt := z.log.Debug()
	switch {
	case ev.Err != nil:
		evt = z.log.Error().Err(ev.Err)
	case ev.Slow:
		evt = z.log.Warn()
	}
	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000).
		Bool("slow", ev.Slow).
		Str("sql", Compact(ev.SQL)).
		Int("args", len(ev.Args)).
		Msg("pg query")
}

// Compact folds whitespace runs into single spaces
func Compact(s string) string { return strings.Join(strings.Fields(s), " ") }
