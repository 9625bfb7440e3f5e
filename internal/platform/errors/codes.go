// Package errors provides structured domain errors that cross the gRPC boundary
// as status values with machine-readable details.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Customer errors
	CodeCustomerNotFound     Code = "CUSTOMER_NOT_FOUND"
	CodeCustomerRequestEmpty Code = "CUSTOMER_REQUEST_EMPTY"
	CodeCustomerInvalidText  Code = "CUSTOMER_INVALID_TEXT"
	CodeCustomerIDExhausted  Code = "CUSTOMER_ID_EXHAUSTED"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeCustomerRequestEmpty, CodeCustomerInvalidText:
		return codes.InvalidArgument

	case CodeCustomerNotFound:
		return codes.NotFound

	case CodeCustomerIDExhausted:
		return codes.ResourceExhausted

	default:
		return codes.Internal
	}
}
