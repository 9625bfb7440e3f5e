// Package discovery centralizes the default addresses processes use to find
// each other when nothing is configured.
package discovery

import "strings"

const (
	// ServiceCustomers is the customers gRPC service identity.
	ServiceCustomers = "customers"
	// ServiceGateway is the customers HTTP gateway identity.
	ServiceGateway = "gateway"
)

var grpcAddrs = map[string]string{
	ServiceCustomers: "127.0.0.1:30043",
}

var httpAddrs = map[string]string{
	ServiceGateway: ":3000",
}

// DefaultGRPCAddr returns the conventional gRPC address for a service.
func DefaultGRPCAddr(service string) string {
	return grpcAddrs[strings.TrimSpace(service)]
}

// DefaultHTTPAddr returns the conventional HTTP bind address for a service.
func DefaultHTTPAddr(service string) string {
	return httpAddrs[strings.TrimSpace(service)]
}

// OrDefaultGRPCAddr returns value when set, otherwise the service convention.
func OrDefaultGRPCAddr(value, service string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return DefaultGRPCAddr(service)
}

// OrDefaultHTTPAddr returns value when set, otherwise the service convention.
func OrDefaultHTTPAddr(value, service string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return DefaultHTTPAddr(service)
}
