package grpc

import (
	"context"
	"log"
	"time"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"github.com/louisbranch/customers/internal/platform/requestctx"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultServerOptions returns the tracing stats handler plus the unary chain
// every service server runs: panic recovery first, then request logging.
func DefaultServerOptions(logf func(string, ...any)) []gogrpc.ServerOption {
	if logf == nil {
		logf = log.Printf
	}
	return []gogrpc.ServerOption{
		gogrpc.StatsHandler(otelgrpc.NewServerHandler()),
		gogrpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(
			RecoveryInterceptor(logf),
			LoggingInterceptor(logf),
		)),
	}
}

// RecoveryInterceptor turns a handler panic into a codes.Internal status.
func RecoveryInterceptor(logf func(string, ...any)) gogrpc.UnaryServerInterceptor {
	return grpc_recovery.UnaryServerInterceptor(
		grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
			if logf != nil {
				logf("grpc panic recovered: %v", p)
			}
			return status.Error(codes.Internal, "internal error")
		}),
	)
}

// LoggingInterceptor logs method, status code, duration and caller request id
// of each unary call.
func LoggingInterceptor(logf func(string, ...any)) gogrpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *gogrpc.UnaryServerInfo, handler gogrpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if logf != nil {
			requestID := requestctx.FromIncomingMetadata(ctx)
			if requestID == "" {
				requestID = "-"
			}
			logf("grpc method=%s code=%s duration=%s request_id=%s", info.FullMethod, status.Code(err), time.Since(start), requestID)
		}
		return resp, err
	}
}
