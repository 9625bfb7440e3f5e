// Package server wires the customers HTTP gateway process.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	customerv1 "github.com/louisbranch/customers/api/customer/v1"
	platformgrpc "github.com/louisbranch/customers/internal/platform/grpc"
	"github.com/louisbranch/customers/internal/platform/grpc/codec"
	"github.com/louisbranch/customers/internal/platform/timeouts"
	"github.com/louisbranch/customers/internal/services/customers/client"
	httpapi "github.com/louisbranch/customers/internal/services/gateway/api/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Config defines the inputs for the gateway process.
type Config struct {
	HTTPAddr          string
	RPCAddr           string
	Codec             string
	MapNotFound       bool
	WaitForServer     bool
	DialTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Server hosts the gateway HTTP process and its customers connection.
type Server struct {
	listener        net.Listener
	shutdownTimeout time.Duration
	httpServer      *http.Server
	client          *client.Client
	probeStop       context.CancelFunc
	probeDone       chan struct{}
}

// NewServer builds a gateway server.
func NewServer(config Config) (*Server, error) {
	return NewServerWithContext(context.Background(), config)
}

// NewServerWithContext builds a gateway server. With WaitForServer set it
// blocks until the customers server reports SERVING or DialTimeout passes.
func NewServerWithContext(ctx context.Context, config Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	rpcAddr := strings.TrimSpace(config.RPCAddr)
	if rpcAddr == "" {
		return nil, errors.New("rpc address is required")
	}
	if config.Codec == "" {
		config.Codec = codec.Protowire
	}
	if config.ReadHeaderTimeout <= 0 {
		config.ReadHeaderTimeout = timeouts.ReadHeader
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = timeouts.Shutdown
	}
	if config.DialTimeout <= 0 {
		config.DialTimeout = timeouts.GRPCDial
	}

	customers, err := dialCustomers(ctx, config, rpcAddr)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	handler, err := httpapi.NewHandler(customers, httpapi.Options{
		MapNotFound: config.MapNotFound,
		Registerer:  registry,
		Gatherer:    registry,
	})
	if err != nil {
		_ = customers.Close()
		return nil, fmt.Errorf("build gateway handler: %w", err)
	}

	listener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		_ = customers.Close()
		return nil, fmt.Errorf("listen on %s: %w", httpAddr, err)
	}

	s := &Server{
		listener:        listener,
		shutdownTimeout: config.ShutdownTimeout,
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: config.ReadHeaderTimeout,
		},
		client: customers,
	}
	if !config.WaitForServer {
		s.startHealthProbe(rpcAddr)
	}
	return s, nil
}

func dialCustomers(ctx context.Context, config Config, rpcAddr string) (*client.Client, error) {
	opts := []client.Option{client.WithCodec(config.Codec)}
	if !config.WaitForServer {
		c, err := client.Dial(rpcAddr, opts...)
		if err != nil {
			return nil, fmt.Errorf("dial customers gRPC %s: %w", rpcAddr, err)
		}
		return c, nil
	}

	logf := func(format string, args ...any) {
		log.Printf("customers %s", fmt.Sprintf(format, args...))
	}
	conn, err := platformgrpc.DialWithHealth(
		ctx,
		nil,
		rpcAddr,
		config.DialTimeout,
		logf,
		platformgrpc.DefaultClientDialOptions()...,
	)
	if err != nil {
		return nil, fmt.Errorf("dial customers gRPC %s: %w", rpcAddr, err)
	}
	c, err := client.Adopt(conn, opts...)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return c, nil
}

// startHealthProbe logs when the customers server becomes SERVING without
// holding up startup.
func (s *Server) startHealthProbe(rpcAddr string) {
	conn := s.client.Conn()
	if conn == nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.probeStop = cancel
	s.probeDone = make(chan struct{})
	go func() {
		defer close(s.probeDone)
		logf := func(format string, args ...any) {
			log.Printf("customers %s %s", rpcAddr, fmt.Sprintf(format, args...))
		}
		if err := platformgrpc.WaitForHealth(ctx, conn, customerv1.CustomerServiceName, logf); err != nil && ctx.Err() == nil {
			log.Printf("customers %s health probe stopped: %v", rpcAddr, err)
		}
	}()
}

// Addr returns the listener address for the gateway.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a gateway until the context ends.
func Run(ctx context.Context, config Config) error {
	server, err := NewServerWithContext(ctx, config)
	if err != nil {
		return fmt.Errorf("init gateway server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve gateway: %w", err)
	}
	return nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("gateway server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("gateway listening on %s", s.Addr())
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		<-serveErr
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the listener, the health probe and the customers connection.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.probeStop != nil {
		s.probeStop()
		<-s.probeDone
		s.probeStop = nil
	}
	if s.client != nil {
		if err := s.client.Close(); err != nil {
			log.Printf("close customers connection: %v", err)
		}
		s.client = nil
	}
}
