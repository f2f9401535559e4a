package auth

import "context"

// contextKey is an unexported type for context keys to prevent collisions
type contextKey string

const (
	principalKey contextKey = "soar_principal"
	requestIDKey contextKey = "soar_request_id"
)

// WithPrincipal stores the authenticated caller in the context
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext returns the authenticated caller, or nil for unauthenticated
// transports such as stdio
func FromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey).(*Principal)
	return p
}

// WithRequestID adds a request ID to the context for log correlation
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
