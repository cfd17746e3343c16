package auth

import (
	"context"
	"net/http"
)

// Identity is the authenticated user as seen by the rest of the app: an
// opaque user id (the token subject) and a display name. Handlers read it
// from the request context and pass the id down explicitly; nothing below
// the HTTP layer touches ambient auth state.
type Identity struct {
	UserID string
	Name   string
}

type contextKey struct{}

// WithIdentity returns a context carrying the identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity attached to the context, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}

// FromRequest is a convenience wrapper over FromContext.
func FromRequest(r *http.Request) (Identity, bool) {
	return FromContext(r.Context())
}
