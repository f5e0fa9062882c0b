// Package logger wraps zerolog with process defaults and request scoped
// child loggers
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"dreammap/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project logging type
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level        string
	Format       string // console | json
	Service      string
	Component    string
	Writer       io.Writer
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// FromEnv reads LOG_* through the raw reader (config depends on us)
func FromEnv() Options {
	rc := raw.New().Prefix("LOG_")
	return Options{
		Level:       strings.ToLower(rc.Get("LEVEL", "info")),
		Format:      strings.ToLower(rc.Get("FORMAT", "console")),
		Service:     rc.Get("SERVICE", ""),
		Component:   rc.Get("COMPONENT", ""),
		WithCaller:  rc.GetBool("CALLER", false),
		SampleEvery: rc.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	once sync.Once
	root atomic.Pointer[zerolog.Logger]
)

// Init builds the root logger from opt. Only the first call has effect.
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
		l := New(opt)
		root.Store(l)
	})
}

// New builds a standalone logger without touching the root
func New(opt Options) *Logger {
	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	b := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		b = b.Str("go_version", bi.GoVersion)
	}
	if opt.Service != "" {
		b = b.Str("service", opt.Service)
	}
	if opt.Component != "" {
		b = b.Str("component", opt.Component)
	}
	for k, v := range opt.StaticFields {
		b = b.Str(k, v)
	}
	if opt.WithCaller {
		b = b.Caller()
	}

	l := b.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return &l
}

// Get returns the root logger, initializing it from the environment on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

// Nop returns a disabled logger
func Nop() *Logger {
	l := zerolog.Nop()
	return &l
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

type ctxKey struct{ name string }

var (
	keyRequestID = ctxKey{"request_id"}
	keyDreamerID = ctxKey{"dreamer_id"}
)

// WithRequest stores request scoped fields for C
func WithRequest(ctx context.Context, reqID, dreamerID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, keyRequestID, reqID)
	}
	if dreamerID != "" {
		ctx = context.WithValue(ctx, keyDreamerID, dreamerID)
	}
	return ctx
}

// C returns a child of the root logger carrying request_id and dreamer_id
func C(ctx context.Context) *Logger {
	b := Get().With()
	if s, ok := ctx.Value(keyRequestID).(string); ok && s != "" {
		b = b.Str("request_id", s)
	}
	if s, ok := ctx.Value(keyDreamerID).(string); ok && s != "" {
		b = b.Str("dreamer_id", s)
	}
	l := b.Logger()
	return &l
}

// Named returns a child of the root logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
