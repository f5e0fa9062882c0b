// Package net holds transport neutral request context helpers and the
// response envelope
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const (
	keyDreamerID ctxKey = "dreamer_id"
	keyClientIP  ctxKey = "client_ip"
)

// WithRequest stores the request id (readable through chi as well) and the
// dreamer id
func WithRequest(ctx context.Context, reqID, dreamerID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return WithDreamer(ctx, dreamerID)
}

// WithDreamer stores the anonymous dreamer id resolved for the request
func WithDreamer(ctx context.Context, dreamerID string) context.Context {
	if dreamerID != "" {
		ctx = context.WithValue(ctx, keyDreamerID, dreamerID)
	}
	return ctx
}

// WithClientIP stores the caller address after proxy headers are applied
func WithClientIP(ctx context.Context, ip string) context.Context {
	if ip != "" {
		ctx = context.WithValue(ctx, keyClientIP, ip)
	}
	return ctx
}

// RequestID returns the request id, "" if none
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// DreamerID returns the dreamer id, "" if none
func DreamerID(ctx context.Context) string {
	v, _ := ctx.Value(keyDreamerID).(string)
	return v
}

// ClientIP returns the stored caller address, "" if none
func ClientIP(ctx context.Context) string {
	v, _ := ctx.Value(keyClientIP).(string)
	return v
}
