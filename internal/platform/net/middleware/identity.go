package middleware

import (
	"net"
	"net/http"
	"strings"

	perr "dreammap/internal/platform/errors"
	"dreammap/internal/platform/logger"
	pnet "dreammap/internal/platform/net"
	phttp "dreammap/internal/platform/net/http"

	"github.com/google/uuid"
)

// HeaderDreamerID carries the anonymous per-device identity
const HeaderDreamerID = "X-Dreamer-ID"

// ParseDreamerID normalizes a dreamer id; ok is false for blank or non uuid
// values
func ParseDreamerID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// Dreamer resolves X-Dreamer-ID onto the request context and logger. When
// required, a missing or malformed header answers 401.
func Dreamer(required bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(HeaderDreamerID)
			id, ok := ParseDreamerID(raw)
			if !ok {
				if required || raw != "" {
					phttp.RespondError(w, r, perr.WithField(
						perr.Unauthorizedf("%s header must be a uuid", HeaderDreamerID), HeaderDreamerID))
					return
				}
				next.ServeHTTP(w, r)
				return
			}
			ctx := pnet.WithDreamer(r.Context(), id)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIP stores the caller host on the context. Run after RealIP.
func ClientIP() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if host, _, err := net.SplitHostPort(ip); err == nil {
				ip = host
			}
			ctx := pnet.WithClientIP(r.Context(), ip)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), "")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
