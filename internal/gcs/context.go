package gcs

import (
	"context"
)

type contextKey struct{}

// WithGCSManager adds a GCS manager to the context
func WithGCSManager(ctx context.Context, mgr *Manager) context.Context {
	return context.WithValue(ctx, contextKey{}, mgr)
}

// GetGCSManager retrieves the GCS manager from the context
func GetGCSManager(ctx context.Context) *Manager {
	if mgr, ok := ctx.Value(contextKey{}).(*Manager); ok {
		return mgr
	}
	return nil
}
