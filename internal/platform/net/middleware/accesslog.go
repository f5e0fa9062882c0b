package middleware

import (
	"net/http"
	"time"

	"dreammap/internal/platform/logger"
	pnet "dreammap/internal/platform/net"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow logs requests at warn level once elapsed >= Slow; 0 disables
	Slow time.Duration
	// Skip lists paths that are never logged (health probes)
	Skip []string
}

type captureWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	n, err := cw.ResponseWriter.Write(b)
	cw.bytes += n
	return n, err
}

func (cw *captureWriter) Unwrap() http.ResponseWriter { return cw.ResponseWriter }

// AccessLog writes one line per request through the request scoped logger
func AccessLog(opt AccessLogOptions) Middleware {
	skip := make(map[string]struct{}, len(opt.Skip))
	for _, p := range opt.Skip {
		skip[p] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}
			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(cw, r)

			elapsed := time.Since(start)
			log := logger.C(r.Context())
			evt := log.Info()
			switch {
			case cw.status >= 500:
				evt = log.Error()
			case opt.Slow > 0 && elapsed >= opt.Slow:
				evt = log.Warn()
			}
			evt.Int("status", cw.status).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("ip", pnet.ClientIP(r.Context())).
				Int("bytes", cw.bytes).
				Msg("request done")
		})
	}
}
