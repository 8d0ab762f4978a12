// Package requestid carries the per-request ULID through the context.
package requestid

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type requestIDKeyType struct{}

var requestIDKey requestIDKeyType

// New returns a fresh, lexically sortable request id.
func New() string {
	return ulid.Make().String()
}

// InjectRequestID injects a given requestID into a context.
func InjectRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ExtractRequestID extracts a requestID from a context if it exists.
// If none is found, then "" is returned.
func ExtractRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
