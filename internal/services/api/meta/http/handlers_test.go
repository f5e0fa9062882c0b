package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "dreammap/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func serve(t *testing.T, d Deps, path string) (int, map[string]any) {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, d)
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	var env struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s: %v", path, err)
	}
	return rr.Code, env.Data
}

func ok(context.Context) error   { return nil }
func down(context.Context) error { return errors.New("connection refused") }

func TestReady(t *testing.T) {
	cases := []struct {
		name   string
		checks map[string]Pinger
		code   int
		status string
	}{
		{"all ok", map[string]Pinger{"pg": PingFunc(ok), "redis": PingFunc(ok)}, 200, "ok"},
		{"skipped", map[string]Pinger{"pg": PingFunc(ok)}, 200, "degraded"},
		{"failing", map[string]Pinger{"pg": PingFunc(down), "redis": PingFunc(ok)}, 503, "fail"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, data := serve(t, Deps{ServiceName: "dreammap-api", Checks: tc.checks, Order: []string{"pg", "redis"}}, "/ready")
			if code != tc.code || data["status"] != tc.status {
				t.Fatalf("code %d data %v", code, data)
			}
			if n := len(data["checks"].([]any)); n != 2 {
				t.Fatalf("checks %d", n)
			}
		})
	}
}

func TestHealthVersionService(t *testing.T) {
	d := Deps{ServiceName: "dreammap-api", StartedAt: time.Now().Add(-time.Minute)}

	code, data := serve(t, d, "/health")
	if code != 200 || data["ok"] != true || data["service"] != "dreammap-api" {
		t.Fatalf("health %d %v", code, data)
	}
	code, data = serve(t, d, "/version")
	if code != 200 || data["service"] != "dreammap-api" {
		t.Fatalf("version %d %v", code, data)
	}
	code, data = serve(t, d, "/service")
	if code != 200 || data["uptime"].(float64) < 59 {
		t.Fatalf("service %d %v", code, data)
	}
}
