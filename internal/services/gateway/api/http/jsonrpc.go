package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
	"github.com/louisbranch/customers/internal/platform/httpx"
)

// JSONRPCServiceName prefixes every JSON-RPC method, e.g. "Customers.GetAll".
const JSONRPCServiceName = "Customers"

// Empty is the params object of methods that take no input.
type Empty struct{}

// GetArgs addresses one customer for Customers.Get.
type GetArgs struct {
	ID string `json:"id"`
}

// JSONRPCService exposes the customer operations as JSON-RPC 2.0 methods.
// Params use the same shapes and validation as the form and JSON routes.
type JSONRPCService struct {
	client CustomerClient
}

func newJSONRPCServer(c CustomerClient) (http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json2.NewCodec(), "application/json")
	if err := server.RegisterService(&JSONRPCService{client: c}, JSONRPCServiceName); err != nil {
		return nil, fmt.Errorf("register json-rpc service: %w", err)
	}
	return server, nil
}

// GetAll lists every customer.
func (s *JSONRPCService) GetAll(r *http.Request, _ *Empty, reply *CustomerList) error {
	resp, err := s.client.GetAll(httpx.RequestContext(r))
	if err != nil {
		return jsonRPCError(err)
	}
	reply.Customers = make([]Customer, 0, len(resp.GetCustomers()))
	for i := range resp.GetCustomers() {
		reply.Customers = append(reply.Customers, toJSON(&resp.GetCustomers()[i]))
	}
	return nil
}

// Get fetches one customer by id.
func (s *JSONRPCService) Get(r *http.Request, args *GetArgs, reply *Customer) error {
	resp, err := s.client.Get(httpx.RequestContext(r), args.ID)
	if err != nil {
		return jsonRPCError(err)
	}
	*reply = toJSON(resp)
	return nil
}

// Insert creates a customer and returns it with its new id.
func (s *JSONRPCService) Insert(r *http.Request, args *CustomerBody, reply *Customer) error {
	in, err := args.toCustomer(false)
	if err != nil {
		return &json2.Error{Code: json2.E_BAD_PARAMS, Message: err.Error()}
	}
	created, err := s.client.Insert(httpx.RequestContext(r), in)
	if err != nil {
		return jsonRPCError(err)
	}
	*reply = toJSON(created)
	return nil
}

// Update overwrites name, age and address of an existing customer.
func (s *JSONRPCService) Update(r *http.Request, args *CustomerBody, reply *Customer) error {
	in, err := args.toCustomer(true)
	if err != nil {
		return &json2.Error{Code: json2.E_BAD_PARAMS, Message: err.Error()}
	}
	updated, err := s.client.Update(httpx.RequestContext(r), in)
	if err != nil {
		return jsonRPCError(err)
	}
	*reply = toJSON(updated)
	return nil
}

// Remove deletes one customer by customer_id.
func (s *JSONRPCService) Remove(r *http.Request, args *RemoveBody, reply *Message) error {
	customerID, err := args.customerID()
	if err != nil {
		return &json2.Error{Code: json2.E_BAD_PARAMS, Message: err.Error()}
	}
	resp, err := s.client.Remove(httpx.RequestContext(r), customerID)
	if err != nil {
		return jsonRPCError(err)
	}
	reply.Message = resp.GetMessage()
	return nil
}

func jsonRPCError(err error) *json2.Error {
	clientErr := asClientError(err)
	return &json2.Error{
		Code:    json2.E_SERVER,
		Message: clientErr.Message,
		Data:    toRPCError(clientErr),
	}
}
