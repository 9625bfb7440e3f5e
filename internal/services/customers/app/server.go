// Package server wires the customers runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"

	customerv1 "github.com/louisbranch/customers/api/customer/v1"
	"github.com/louisbranch/customers/internal/platform/discovery"
	platformgrpc "github.com/louisbranch/customers/internal/platform/grpc"
	customerservice "github.com/louisbranch/customers/internal/services/customers/api/grpc/customers"
	"github.com/louisbranch/customers/internal/services/customers/storage"
	"github.com/louisbranch/customers/internal/services/customers/storage/memory"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

// Server hosts the customer gRPC API over an in-memory store.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *memory.Store
}

// NewWithAddr creates a customers server for the provided address, seeded
// with the default customer records.
func NewWithAddr(addr string) (*Server, error) {
	return NewWithStore(addr, nil)
}

// NewWithStore creates a customers server for addr backed by store. A nil
// store is replaced by a freshly seeded one.
func NewWithStore(addr string, store *memory.Store) (*Server, error) {
	if store == nil {
		seeded, err := memory.NewStore(storage.SeedCustomers()...)
		if err != nil {
			return nil, fmt.Errorf("seed customer store: %w", err)
		}
		store = seeded
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	grpcServer := grpc.NewServer(platformgrpc.DefaultServerOptions(log.Printf)...)
	customerv1.RegisterCustomerServiceServer(grpcServer, customerservice.NewService(store))
	healthServer := platformgrpc.RegisterHealth(grpcServer, customerv1.CustomerServiceName)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a customers server on addr until context
// cancellation. An empty addr uses the conventional customers address.
func Run(ctx context.Context, addr string) error {
	server, err := NewWithAddr(discovery.OrDefaultGRPCAddr(addr, discovery.ServiceCustomers))
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("customers server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		return serveResult(<-serveErr)
	case err := <-serveErr:
		return serveResult(err)
	}
}

// Close releases customers server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
}

func serveResult(err error) error {
	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("serve gRPC: %w", err)
}
