package context

import (
	"context"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	userIDKey
	sessionIDKey
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithUserID adds the authenticated user ID to the context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// WithSessionID adds the payment session being operated on to the context
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string { return value(ctx, requestIDKey) }

// GetUserID retrieves the user ID from context
func GetUserID(ctx context.Context) string { return value(ctx, userIDKey) }

// GetSessionID retrieves the payment session ID from context
func GetSessionID(ctx context.Context) string { return value(ctx, sessionIDKey) }

// Values returns the non-empty correlation values in ctx keyed by their log field name
func Values(ctx context.Context) map[string]string {
	out := make(map[string]string, 3)
	for name, key := range map[string]ctxKey{
		"request_id": requestIDKey,
		"user_id":    userIDKey,
		"session_id": sessionIDKey,
	} {
		if v := value(ctx, key); v != "" {
			out[name] = v
		}
	}
	return out
}

func value(ctx context.Context, key ctxKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}
