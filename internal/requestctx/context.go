package requestctx

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"
)

const (
	HeaderKey   = "X-Request-ID"
	MetadataKey = "x-request-id"
)

type requestIDKey struct{}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by the transport middleware, falling back to
// incoming gRPC metadata.
func RequestID(ctx context.Context) string {
	if val, ok := ctx.Value(requestIDKey{}).(string); ok {
		return val
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(MetadataKey); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}

// Ensure keeps a caller supplied id or mints a new one.
func Ensure(ctx context.Context, supplied string) (context.Context, string) {
	id := supplied
	if id == "" {
		id = RequestID(ctx)
	}
	if id == "" {
		id = uuid.NewString()
	}
	return WithRequestID(ctx, id), id
}
