// Package httpkit re-exports the platform http helpers for modules so they
// do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "dreammap/internal/platform/net/http"
)

type (
	// Response is the return-style handler result
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error maps err to its status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Handle adapts a Response returning function
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// Call adapts a body-less handler; a returned Response is written as is
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}

// URLParam returns a path parameter
func URLParam(r *http.Request, name string) string { return phttp.URLParam(r, name) }
