package middleware

import (
	"context"

	"fleet_dispatch/internal/models"
)

// Viewer is the caller identity resolved from a bearer credential. It is
// rebuilt per request and threaded explicitly; nothing about the caller lives
// in package state.
type Viewer struct {
	AccountID uint
	Role      models.AccountRole
}

type viewerKey struct{}

// WithViewer attaches the viewer to a request context.
func WithViewer(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, v)
}

// ViewerFrom extracts the viewer set by the auth middleware, if any.
func ViewerFrom(ctx context.Context) (Viewer, bool) {
	v, ok := ctx.Value(viewerKey{}).(Viewer)
	return v, ok
}
