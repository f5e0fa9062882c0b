// Package middleware wraps chi middleware without leaking chi types and adds
// the in house request middlewares
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	pstrings "dreammap/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the stdlib middleware shape
type Middleware = func(http.Handler) http.Handler

// RequestID attaches or propagates X-Request-ID and stores it on context
func RequestID() Middleware { return chimw.RequestID }

// RealIP sets RemoteAddr from X-Real-IP or X-Forwarded-For
func RealIP() Middleware { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// NoCache sets headers disabling client and proxy caching
func NoCache() Middleware { return chimw.NoCache }

// Compress wraps chi's compressor
func Compress(level int) Middleware {
	c := chimw.NewCompressor(level)
	return c.Handler
}

// StripSlashes strips a trailing slash from the request path
func StripSlashes() Middleware { return chimw.StripSlashes }

// AllowContentType whitelists request content types
func AllowContentType(ct ...string) Middleware { return chimw.AllowContentType(ct...) }

// Heartbeat answers GET path with 200 for load balancer checks
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// ThrottleBacklog limits in-flight requests with a bounded backlog
func ThrottleBacklog(limit, backlog int, wait time.Duration) Middleware {
	return chimw.ThrottleBacklog(limit, backlog, wait)
}

// CORSOptions is a narrow surface over go-chi/cors
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// CORS wraps go-chi/cors. The dreamer header is allowed by default so
// browser clients can submit.
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{"GET", "POST", "OPTIONS"}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{
			"Accept",
			"Content-Type",
			HeaderDreamerID,
			"X-Request-ID",
		}),
		ExposedHeaders:   pstrings.IfEmpty(o.ExposedHeaders, []string{"X-Request-ID", "Retry-After"}),
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}

// Defaults is the base stack every API router gets
func Defaults(timeout time.Duration) []Middleware {
	return []Middleware{
		RealIP(),
		RequestID(),
		ClientIP(),
		RecoverJSON,
		Timeout(timeout),
		Compress(flate.DefaultCompression),
		NoCache(),
	}
}
