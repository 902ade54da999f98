package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the header carrying the run correlation id on every Canvas request.
const Header = "X-Request-ID"

type contextKey struct{}

// New returns a fresh correlation id.
func New() string {
	return uuid.NewString()
}

// WithValue stores id on ctx.
func WithValue(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// Value returns the correlation id stored on ctx, if any.
func Value(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}
