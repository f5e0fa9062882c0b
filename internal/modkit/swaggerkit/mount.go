// Package swaggerkit serves the OpenAPI document and the swagger UI
package swaggerkit

import (
	"net/http"

	phttp "dreammap/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount serves /api/docs/ and /api/docs/doc.json when enabled
func Mount(r phttp.Router, enabled bool, titleSuffix string) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(titleSuffix))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
