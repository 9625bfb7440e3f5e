// Package gateway parses gateway flags and launches the HTTP gateway.
package gateway

import (
	"context"
	"flag"
	"fmt"
	"net"
	"strings"

	"github.com/caarlos0/env/v11"
	entrypoint "github.com/louisbranch/customers/internal/platform/cmd"
	"github.com/louisbranch/customers/internal/platform/discovery"
	"github.com/louisbranch/customers/internal/platform/grpc/codec"
	server "github.com/louisbranch/customers/internal/services/gateway/app"
)

// Config holds gateway command configuration.
type Config struct {
	HTTPAddr      string `env:"GATEWAY_HTTP_ADDR"`
	RPCAddr       string `env:"RPC_ADDR"`
	Codec         string `env:"RPC_CODEC" envDefault:"protowire"`
	MapNotFound   bool   `env:"GATEWAY_MAP_NOT_FOUND"`
	WaitForServer bool   `env:"GATEWAY_WAIT_FOR_SERVER"`
}

// portEnv is the unprefixed PORT variable, used for the HTTP address when
// CUSTOMERS_GATEWAY_HTTP_ADDR is unset.
type portEnv struct {
	Port string `env:"PORT"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		var port portEnv
		if err := env.Parse(&port); err != nil {
			return Config{}, fmt.Errorf("parse env: %w", err)
		}
		if p := strings.TrimSpace(port.Port); p != "" {
			cfg.HTTPAddr = net.JoinHostPort("", p)
		}
	}
	cfg.HTTPAddr = discovery.OrDefaultHTTPAddr(cfg.HTTPAddr, discovery.ServiceGateway)
	cfg.RPCAddr = discovery.OrDefaultGRPCAddr(cfg.RPCAddr, discovery.ServiceCustomers)
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "The gateway HTTP listen address")
	fs.StringVar(&cfg.RPCAddr, "rpc-addr", cfg.RPCAddr, "The customers gRPC server address")
	fs.StringVar(&cfg.Codec, "codec", cfg.Codec, "Wire codec for customers calls ("+strings.Join(codec.Names(), ", ")+")")
	fs.BoolVar(&cfg.MapNotFound, "map-not-found", cfg.MapNotFound, "Answer NotFound failures with 404 instead of 500")
	fs.BoolVar(&cfg.WaitForServer, "wait-for-server", cfg.WaitForServer, "Block startup until the customers server is healthy")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if !codec.Valid(cfg.Codec) {
		return Config{}, fmt.Errorf("unknown codec %q, want one of %v", cfg.Codec, codec.Names())
	}
	return cfg, nil
}

// Run starts the gateway HTTP process.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGateway, func(ctx context.Context) error {
		return server.Run(ctx, server.Config{
			HTTPAddr:      cfg.HTTPAddr,
			RPCAddr:       cfg.RPCAddr,
			Codec:         cfg.Codec,
			MapNotFound:   cfg.MapNotFound,
			WaitForServer: cfg.WaitForServer,
		})
	})
}
