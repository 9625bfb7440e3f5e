package grpc

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/louisbranch/customers/internal/platform/requestctx"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type logRecorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *logRecorder) logf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *logRecorder) joined() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.lines, "\n")
}

func TestRecoveryInterceptorConvertsPanic(t *testing.T) {
	rec := &logRecorder{}
	interceptor := RecoveryInterceptor(rec.logf)
	info := &gogrpc.UnaryServerInfo{FullMethod: "/test.Service/Boom"}

	_, err := interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		panic("boom")
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.Internal)
	}
	if !strings.Contains(rec.joined(), "boom") {
		t.Fatalf("logs = %q, want panic value", rec.joined())
	}
}

func TestLoggingInterceptorRecordsMethodAndCode(t *testing.T) {
	rec := &logRecorder{}
	interceptor := LoggingInterceptor(rec.logf)
	info := &gogrpc.UnaryServerInfo{FullMethod: "/test.Service/Get"}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(requestctx.MetadataKey, "gw-1"))
	resp, err := interceptor(ctx, "req", info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.NotFound, "missing")
	})
	if resp != nil || status.Code(err) != codes.NotFound {
		t.Fatalf("resp, err = %v, %v", resp, err)
	}
	logs := rec.joined()
	if !strings.Contains(logs, "method=/test.Service/Get") || !strings.Contains(logs, "code=NotFound") || !strings.Contains(logs, "request_id=gw-1") {
		t.Fatalf("logs = %q", logs)
	}
}

func TestDefaultServerOptionsBuildsServer(t *testing.T) {
	server := gogrpc.NewServer(DefaultServerOptions(nil)...)
	server.Stop()
}
