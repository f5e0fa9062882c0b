package httpkit

import (
	"net/http"

	phttp "dreammap/internal/platform/net/http"
)

// Get mounts a body-less GET handler
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// PostJSON mounts a POST handler that binds and validates T, answering 200
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h))
}

// CreateJSON mounts a POST handler that binds and validates T, answering 201
func CreateJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandlerStatus(http.StatusCreated, h))
}

// Post mounts a body-less POST handler
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, Call(h))
}
