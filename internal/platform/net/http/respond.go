package http

import (
	"encoding/json"
	stdhttp "net/http"

	"dreammap/internal/platform/logger"
	pnet "dreammap/internal/platform/net"
)

// JSON writes v with status as application/json
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Get().Debug().Err(err).Msg("write response body")
	}
}

// RespondOK writes a 200 envelope
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	status, env := pnet.OK(data, pnet.RequestID(r.Context()))
	JSON(w, status, env)
}

// RespondError writes the error envelope for err
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := pnet.Failure(err, pnet.RequestID(r.Context()))
	JSON(w, status, env)
}

// Response is returned by return-style handlers. A Body that is an error
// selects the error envelope and its mapped status.
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// Handle adapts a Response returning function to a Handler
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	JSON(w, status, pnet.Success(status, resp.Body, pnet.RequestID(r.Context())))
}

// WithHeader returns a copy of resp with an extra header
func (resp Response) WithHeader(key, value string) Response {
	h := resp.Header.Clone()
	if h == nil {
		h = stdhttp.Header{}
	}
	h.Add(key, value)
	resp.Header = h
	return resp
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created returns a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response carrying err
func Error(err error) Response { return Response{Body: err} }
