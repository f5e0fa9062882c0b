package http

import "net/http"

// GetJSON mounts a JSON GET handler
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, JSONHandlerNoBody(h))
}

// PostJSON mounts a JSON POST handler answering 200
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSONHandler(h))
}

// CreateJSON mounts a JSON POST handler answering 201
func CreateJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSONHandlerStatus(http.StatusCreated, h))
}
