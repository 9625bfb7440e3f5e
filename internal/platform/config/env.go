package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Prefix namespaces every environment variable read by the customers processes.
const Prefix = "CUSTOMERS_"

// ParseEnv loads configuration from environment variables.
//
// Struct tags name the variable without Prefix, so `env:"RPC_ADDR"` reads
// CUSTOMERS_RPC_ADDR.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: Prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
