// Package customers parses customers service flags and launches the service.
package customers

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/customers/internal/platform/cmd"
	"github.com/louisbranch/customers/internal/platform/discovery"
	server "github.com/louisbranch/customers/internal/services/customers/app"
)

// Config holds customers command configuration.
type Config struct {
	Addr string `env:"RPC_ADDR"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Addr = discovery.OrDefaultGRPCAddr(cfg.Addr, discovery.ServiceCustomers)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The customers gRPC listen address")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the customers gRPC service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCustomers, func(ctx context.Context) error {
		return server.Run(ctx, cfg.Addr)
	})
}
