package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	docs "dreammap/internal/services/api/docs"
)

// SpecMutator adjusts the parsed spec before it is served
type SpecMutator func(map[string]any)

var (
	mutMu    sync.Mutex
	mutators []SpecMutator
)

// docReader is a seam for tests
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a spec mutator; modules call it from their constructors
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mutMu.Lock()
	mutators = append(mutators, m)
	mutMu.Unlock()
}

// Spec renders the document with the shared error responses applied
func Spec(titleSuffix string) (map[string]any, error) {
	var spec map[string]any
	if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
		return nil, err
	}

	ensureOAS3(spec, "/api/v1")
	if titleSuffix != "" {
		if info, ok := spec["info"].(map[string]any); ok {
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + titleSuffix
			}
		}
	}
	ensureErrorSchema(spec)
	addDefaultResponse(spec, "400", "Bad Request", 400, "text must not be blank")
	addDefaultResponse(spec, "500", "Internal Server Error", 500, "internal server error")

	mutMu.Lock()
	ms := append([]SpecMutator(nil), mutators...)
	mutMu.Unlock()
	for _, m := range ms {
		m(spec)
	}
	return spec, nil
}

func serveDocJSON(titleSuffix string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		spec, err := Spec(titleSuffix)
		if err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureOAS3 lifts swagger 2 documents to 3.0.3 (the UI does not render
// 3.1) and sets servers when missing
func ensureOAS3(spec map[string]any, url string) {
	if _, ok := spec["swagger"]; ok {
		delete(spec, "swagger")
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

// ensureErrorSchema adds the error envelope schema
func ensureErrorSchema(spec map[string]any) {
	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	str := map[string]any{"type": "string"}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Error envelope",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      str,
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       str,
			"field":       str,
			"details":     map[string]any{"type": "object"},
			"request_id":  str,
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultResponse gives every operation a response for code when absent
func addDefaultResponse(spec map[string]any, code, desc string, status int, msg string) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	resp := map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      desc,
					"error":       msg,
				},
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses := child(op, "responses")
			if _, exists := responses[code]; !exists {
				responses[code] = resp
			}
		}
	}
}
