package middleware

import (
	"net/http"
	"runtime/debug"

	perr "dreammap/internal/platform/errors"
	"dreammap/internal/platform/logger"
	pnet "dreammap/internal/platform/net"
	phttp "dreammap/internal/platform/net/http"
)

// RecoverJSON turns a panic into a JSON 500 envelope and logs the stack
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")
			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			phttp.RespondError(w, r, perr.PanicErrf("internal server error"))
		}()
		next.ServeHTTP(w, r)
	})
}
