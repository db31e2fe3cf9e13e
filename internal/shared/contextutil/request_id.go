package contextutil

import "context"

// Unexported key type keeps context keys collision-safe.
type contextKey string

const requestIDKey contextKey = "request_id"

// GetRequestID extracts the request ID from a context, or "".
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithRequestID injects a request ID into a context (also used by tests).
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}
