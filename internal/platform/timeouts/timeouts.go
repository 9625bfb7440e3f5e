// Package timeouts defines shared timeout constants used by the customers
// server and gateway processes.
package timeouts

import "time"

// GRPCDial caps the wait time for the gateway's startup health probe of the
// customers server.
const GRPCDial = 2 * time.Second

// HealthProbe caps a single health check attempt.
const HealthProbe = time.Second

// ReadHeader limits how long the gateway HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long a server waits for in-flight requests during
// graceful shutdown.
const Shutdown = 5 * time.Second
