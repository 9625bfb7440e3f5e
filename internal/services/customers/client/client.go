// Package client is the typed stub gateways and tools use to call the
// customers server.
//
// Every method returns either a payload or a *Error, never both. Calls carry
// no deadline of their own; callers bound them through the context. A request
// id stored with requestctx travels to the server as gRPC metadata.
package client

import (
	"context"
	"errors"
	"fmt"

	customerv1 "github.com/louisbranch/customers/api/customer/v1"
	apperrors "github.com/louisbranch/customers/internal/platform/errors"
	platformgrpc "github.com/louisbranch/customers/internal/platform/grpc"
	"github.com/louisbranch/customers/internal/platform/grpc/codec"
	"github.com/louisbranch/customers/internal/platform/requestctx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind classifies a failed call.
type Kind string

// Kinds reported by Error.Kind.
const (
	// KindNotFound is a codes.NotFound status.
	KindNotFound Kind = "not_found"
	// KindInvalidArgument is a codes.InvalidArgument status.
	KindInvalidArgument Kind = "invalid_argument"
	// KindTransport is a call that did not complete: Unavailable,
	// DeadlineExceeded or Canceled.
	KindTransport Kind = "transport"
	// KindUnexpected is any other failure status.
	KindUnexpected Kind = "unexpected"
)

var (
	// ErrNotFound matches errors for customers the server does not have.
	ErrNotFound = &Error{Kind: KindNotFound}
	// ErrInvalidArgument matches errors for requests the server rejected.
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	// ErrTransport matches errors where the call never completed on the server.
	ErrTransport = &Error{Kind: KindTransport}
	// ErrUnexpected matches every other failure status.
	ErrUnexpected = &Error{Kind: KindUnexpected}
)

// Error is the failure side of a stub call.
type Error struct {
	Kind    Kind
	Code    codes.Code
	Reason  string
	Message string
	Method  string
	// Metadata is the ErrorInfo metadata sent by the server, such as the
	// customer_id of a NotFound.
	Metadata map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "customers client error"
	}
	if e.Method == "" {
		return fmt.Sprintf("customers %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("customers %s %s: %s", e.Method, e.Kind, e.Message)
}

// Is matches sentinel errors by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// GRPCStatus rebuilds the status the server returned, so status.Code keeps
// working on stub errors.
func (e *Error) GRPCStatus() *status.Status {
	if e == nil {
		return status.New(codes.Unknown, "")
	}
	return status.New(e.Code, e.Message)
}

// KindOf classifies a gRPC status code.
func KindOf(code codes.Code) Kind {
	switch code {
	case codes.NotFound:
		return KindNotFound
	case codes.InvalidArgument:
		return KindInvalidArgument
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return KindTransport
	default:
		return KindUnexpected
	}
}

func newError(method string, err error) *Error {
	st := status.Convert(err)
	return &Error{
		Kind:    KindOf(st.Code()),
		Code:    st.Code(),
		Reason:   apperrors.ReasonFromStatus(st),
		Message:  st.Message(),
		Method:   method,
		Metadata: apperrors.MetadataFromStatus(st),
	}
}

// Option configures a Client.
type Option func(*options)

type options struct {
	codec       string
	dialOptions []grpc.DialOption
}

// WithCodec selects the wire codec used for every call.
func WithCodec(name string) Option {
	return func(o *options) {
		o.codec = name
	}
}

// WithDialOptions appends dial options used by Dial.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *options) {
		o.dialOptions = append(o.dialOptions, opts...)
	}
}

// Client calls the customer.v1 service over one long-lived connection.
type Client struct {
	rpc      customerv1.CustomerServiceClient
	conn     *grpc.ClientConn
	callOpts []grpc.CallOption
}

// Dial creates a client for addr. The connection is established lazily on
// the first call.
func Dial(addr string, opts ...Option) (*Client, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	dialOpts := append(platformgrpc.DefaultClientDialOptions(), o.dialOptions...)
	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dial customers server %s: %w", addr, err)
	}
	c := newClient(conn, o)
	c.conn = conn
	return c, nil
}

// New wraps an existing connection. Close leaves conn open.
func New(conn grpc.ClientConnInterface, opts ...Option) (*Client, error) {
	if conn == nil {
		return nil, errors.New("customers client connection is required")
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return newClient(conn, o), nil
}

func buildOptions(opts []Option) (options, error) {
	o := options{codec: codec.Protowire}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !codec.Valid(o.codec) {
		return options{}, fmt.Errorf("unknown codec %q, want one of %v", o.codec, codec.Names())
	}
	return o, nil
}

func newClient(conn grpc.ClientConnInterface, o options) *Client {
	return &Client{
		rpc:      customerv1.NewCustomerServiceClient(conn),
		callOpts: []grpc.CallOption{grpc.CallContentSubtype(o.codec)},
	}
}

// Adopt wraps conn and takes ownership of it: Close closes conn.
func Adopt(conn *grpc.ClientConn, opts ...Option) (*Client, error) {
	if conn == nil {
		return nil, errors.New("customers client connection is required")
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	c := newClient(conn, o)
	c.conn = conn
	return c, nil
}

// Conn returns the connection owned by the client, or nil for New.
func (c *Client) Conn() *grpc.ClientConn {
	if c == nil {
		return nil
	}
	return c.conn
}

// Close releases the connection created by Dial or passed to Adopt.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// GetAll lists every customer.
func (c *Client) GetAll(ctx context.Context) (*customerv1.CustomerList, error) {
	resp, err := c.rpc.GetAll(requestctx.OutgoingContext(ctx), &customerv1.Empty{}, c.callOpts...)
	if err != nil {
		return nil, newError("GetAll", err)
	}
	return resp, nil
}

// Get fetches one customer by id.
func (c *Client) Get(ctx context.Context, customerID string) (*customerv1.Customer, error) {
	resp, err := c.rpc.Get(requestctx.OutgoingContext(ctx), &customerv1.CustomerRequestId{Id: customerID}, c.callOpts...)
	if err != nil {
		return nil, newError("Get", err)
	}
	return resp, nil
}

// Insert creates a customer; the server assigns its id.
func (c *Client) Insert(ctx context.Context, in *customerv1.Customer) (*customerv1.Customer, error) {
	resp, err := c.rpc.Insert(requestctx.OutgoingContext(ctx), in, c.callOpts...)
	if err != nil {
		return nil, newError("Insert", err)
	}
	return resp, nil
}

// Update overwrites name, age and address of the customer with in.Id.
func (c *Client) Update(ctx context.Context, in *customerv1.Customer) (*customerv1.Customer, error) {
	resp, err := c.rpc.Update(requestctx.OutgoingContext(ctx), in, c.callOpts...)
	if err != nil {
		return nil, newError("Update", err)
	}
	return resp, nil
}

// Remove deletes one customer by id.
func (c *Client) Remove(ctx context.Context, customerID string) (*customerv1.RemoveResponse, error) {
	resp, err := c.rpc.Remove(requestctx.OutgoingContext(ctx), &customerv1.CustomerRequestId{Id: customerID}, c.callOpts...)
	if err != nil {
		return nil, newError("Remove", err)
	}
	return resp, nil
}
