package http

import (
	"net/http"

	"dreammap/internal/platform/net/http/bind"
)

// JSONHandler decodes and validates a T body, calls fn and writes a 200
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return JSONHandlerStatus(http.StatusOK, fn)
}

// JSONHandlerStatus is JSONHandler with a custom success status
func JSONHandlerStatus[T any](status int, fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return Error(err)
		}
		return Response{Status: status, Body: out}
	})
}

// JSONHandlerNoBody calls fn without reading a body and writes a 200
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	})
}
