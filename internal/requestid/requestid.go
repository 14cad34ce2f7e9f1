// Package requestid carries a per-request correlation id through contexts.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header used to accept and echo request ids.
const Header = "X-Request-ID"

const maxLength = 64

type contextKey struct{}

// New generates a random request id.
func New() string {
	return uuid.NewString()
}

// Sanitize returns id when it is usable as a request id, or a fresh one otherwise.
func Sanitize(id string) string {
	if id == "" || len(id) > maxLength {
		return New()
	}
	return id
}

// WithID returns a copy of ctx carrying id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request id stored in ctx, or "".
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
