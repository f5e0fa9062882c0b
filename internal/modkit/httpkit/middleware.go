package httpkit

import (
	"net/http"
	"time"

	"dreammap/internal/platform/config"
	"dreammap/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout   time.Duration
	SlowLog   time.Duration
	Origins   []string
	Throttle  *middleware.Limiters
	SkipPaths []string
}

// StackOptionsFrom reads CORE_API_* knobs (cfg already prefixed)
func StackOptionsFrom(cfg config.Conf) StackOptions {
	return StackOptions{
		Timeout: cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		SlowLog: cfg.MayDuration("SLOW_LOG", 500*time.Millisecond),
		Origins: cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
	}
}

// CommonStack is the middleware every API scope gets, outermost first
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	mws := []func(http.Handler) http.Handler{
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
	}
	mws = append(mws, middleware.Defaults(o.Timeout)...)
	mws = append(mws,
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowLog, Skip: o.SkipPaths}),
		middleware.Throttle(o.Throttle),
		middleware.StripSlashes(),
	)
	return mws
}

// Dreamer requires (or optionally resolves) the X-Dreamer-ID header
func Dreamer(required bool) func(http.Handler) http.Handler {
	return middleware.Dreamer(required)
}
