// Package errors provides a structured error type with wrapping and metadata
package errors

// Import as perr everywhere

import (
	stderrs "errors"
	"fmt"
	"maps"
	"net/http"
)

// ErrorCode is the machine facing error class. Values are part of the wire
// format; append only.
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeUnavailable is for transient dependency failures
	ErrorCodeUnavailable

	// ErrorCodeTooManyRequests is for rate limiting (edge throttle and dream quota)
	ErrorCodeTooManyRequests

	// ErrorCodeConflict is for state conflicts
	ErrorCodeConflict

	// ErrorCodeUnauthorized is for a missing or malformed dreamer identity
	ErrorCodeUnauthorized

	// ErrorCodeForbidden is for access control failures
	ErrorCodeForbidden

	// ErrorCodeInvalidArgument is for bad query or path parameters
	ErrorCodeInvalidArgument

	// ErrorCodeValidation is for body validation failures
	ErrorCodeValidation

	// ErrorCodeJSON is for undecodable bodies
	ErrorCodeJSON

	// ErrorCodeNotFound is for missing resources
	ErrorCodeNotFound

	// ErrorCodeDuplicateKey is for unique constraint violations
	ErrorCodeDuplicateKey

	// ErrorCodeDB is for general storage errors
	ErrorCodeDB
)

var codeNames = [...]string{
	ErrorCodeUnknown:         "unknown",
	ErrorCodePanic:           "panic",
	ErrorCodeUnavailable:     "unavailable",
	ErrorCodeTooManyRequests: "too_many_requests",
	ErrorCodeConflict:        "conflict",
	ErrorCodeUnauthorized:    "unauthorized",
	ErrorCodeForbidden:       "forbidden",
	ErrorCodeInvalidArgument: "invalid_argument",
	ErrorCodeValidation:      "validation",
	ErrorCodeJSON:            "json",
	ErrorCodeNotFound:        "not_found",
	ErrorCodeDuplicateKey:    "duplicate_key",
	ErrorCodeDB:              "db",
}

// String returns the snake_case name of c
func (c ErrorCode) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// HTTPStatusCode maps an ErrorCode to an HTTP status
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case ErrorCodeDuplicateKey, ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeValidation, ErrorCodeJSON:
		return http.StatusBadRequest
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodeForbidden:
		return http.StatusForbidden
	case ErrorCodeTooManyRequests:
		return http.StatusTooManyRequests
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrNotFound is a convenience sentinel
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error carries a code, a developer facing message, an optional field and
// operation label, optional wire details and the wrapped cause
type Error struct {
	orig    error
	msg     string
	code    ErrorCode
	field   string
	op      string
	details map[string]any
}

// Wire is the JSON form of an Error
type Wire struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Field   string         `json:"field,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements error
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.msg
	if e.op != "" {
		msg = e.op + ": " + msg
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", msg, e.orig)
	}
	return msg
}

// Unwrap returns the cause
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Message returns the message without op or cause
func (e *Error) Message() string { return e.msg }

// Field returns the offending field
func (e *Error) Field() string { return e.field }

// Op returns the operation label
func (e *Error) Op() string { return e.op }

// Details returns a copy of the wire details
func (e *Error) Details() map[string]any { return maps.Clone(e.details) }

// ToWire converts to the wire payload
func (e *Error) ToWire() Wire {
	return Wire{Code: e.code, Message: e.msg, Field: e.field, Details: maps.Clone(e.details)}
}

// WireFrom converts any error into a Wire; nil gives the zero Wire
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf returns the code of the outermost *Error, Unknown otherwise
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return err != nil && CodeOf(err) == code }

// HTTPStatus maps any error to an HTTP status
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// As finds the outermost *Error in the chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is is errors.Is re-exported so callers need a single errors import
func Is(err, target error) bool { return stderrs.Is(err, target) }

// copy-on-write mutators; foreign errors pass through unchanged

// WithField sets the offending field
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp sets the operation label
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// WithDetail adds one key to the wire details
func WithDetail(err error, key string, value any) error {
	if e, ok := As(err); ok {
		c := *e
		c.details = maps.Clone(e.details)
		if c.details == nil {
			c.details = map[string]any{}
		}
		c.details[key] = value
		return &c
	}
	return err
}

// New returns an *Error
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns an *Error with a formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap wraps orig
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf wraps orig with a formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf wraps only a non-nil err
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

// NotFoundf returns a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidArgf returns an invalid argument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// Validationf returns a validation error
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// JSONErrf returns a JSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf returns a panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Unauthorizedf returns an unauthorized error
func Unauthorizedf(format string, a ...any) error { return Newf(ErrorCodeUnauthorized, format, a...) }

// TooManyf returns a rate limit error
func TooManyf(format string, a ...any) error { return Newf(ErrorCodeTooManyRequests, format, a...) }

// Unavailablef returns an unavailable error
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

// Internalf returns an unclassified error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }

// HTTP returns status and wire together
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	return HTTPStatus(err), WireFrom(err)
}

// Retryable reports whether err is a transient storage condition
func Retryable(err error) bool { return IsRetryable(err) || IsRedisRetryable(err) }
