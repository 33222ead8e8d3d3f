// Package utils provides helpers shared by the signer and peer binaries:
// trace-id context keys, HMAC body hashing, JSON request and response
// plumbing, the resty client wrapper and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so values set here never
// collide with string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey stores the trace id of the HTTP exchange a signing request
// arrived on, or the one a peer wants to propagate to the signer.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace id stored by WithTraceID.
// ok is false when the value is missing, empty or of another type.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
