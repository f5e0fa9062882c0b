package net

import (
	"net/http"

	perr "dreammap/internal/platform/errors"
)

// Envelope is the body of every API response
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Success builds a success envelope for status
func Success(status int, data any, reqID string) Envelope {
	return Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  reqID,
		Data:       data,
	}
}

// OK builds a 200 envelope
func OK(data any, reqID string) (int, Envelope) {
	return http.StatusOK, Success(http.StatusOK, data, reqID)
}

// Created builds a 201 envelope
func Created(data any, reqID string) (int, Envelope) {
	return http.StatusCreated, Success(http.StatusCreated, data, reqID)
}

// Failure maps err to its status and error envelope; nil err is a 200
func Failure(err error, reqID string) (int, Envelope) {
	if err == nil {
		return OK(nil, reqID)
	}
	status, w := perr.HTTP(err)
	return status, Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		Field:      w.Field,
		Details:    w.Details,
		RequestID:  reqID,
	}
}
