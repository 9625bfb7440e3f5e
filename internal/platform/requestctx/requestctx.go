// Package requestctx carries the request correlation id across the gateway
// and the customers server.
package requestctx

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"
)

// MetadataKey is the gRPC metadata key holding the request id.
const MetadataKey = "x-request-id"

type requestIDContextKey struct{}

// WithRequestID stores a request id in context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

// RequestIDFromContext returns the request id stored in context.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDContextKey{}).(string)
	return value
}

// OutgoingContext copies the context request id into outgoing gRPC metadata.
func OutgoingContext(ctx context.Context) context.Context {
	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, MetadataKey, requestID)
}

// FromIncomingMetadata returns the request id a caller sent in gRPC metadata.
func FromIncomingMetadata(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, value := range md.Get(MetadataKey) {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}
