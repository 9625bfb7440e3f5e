// Package customers implements the customer.v1 gRPC service.
package customers

import (
	"context"
	"errors"
	"unicode/utf8"

	customerv1 "github.com/louisbranch/customers/api/customer/v1"
	apperrors "github.com/louisbranch/customers/internal/platform/errors"
	"github.com/louisbranch/customers/internal/platform/id"
	"github.com/louisbranch/customers/internal/services/customers/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// RemovedMessage acknowledges a successful Remove.
	RemovedMessage = "Customer removed successfully"

	maxInsertAttempts = 5
)

// Service exposes customer.v1 gRPC operations.
type Service struct {
	customerv1.UnimplementedCustomerServiceServer
	store storage.CustomerStore
	newID func() (string, error)
}

// NewService creates a customer service backed by store.
func NewService(store storage.CustomerStore) *Service {
	return &Service{
		store: store,
		newID: id.NewID,
	}
}

// GetAll returns every stored customer in insertion order.
func (s *Service) GetAll(ctx context.Context, in *customerv1.Empty) (*customerv1.CustomerList, error) {
	if in == nil {
		return nil, requestEmpty("get all")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	records, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, storeError("list customers", "", err)
	}
	resp := &customerv1.CustomerList{Customers: make([]customerv1.Customer, 0, len(records))}
	for _, record := range records {
		resp.Customers = append(resp.Customers, customerToProto(record))
	}
	return resp, nil
}

// Get returns one customer by id.
func (s *Service) Get(ctx context.Context, in *customerv1.CustomerRequestId) (*customerv1.Customer, error) {
	if in == nil {
		return nil, requestEmpty("get")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	record, err := s.store.GetCustomer(ctx, in.GetId())
	if err != nil {
		return nil, storeError("get customer", in.GetId(), err)
	}
	out := customerToProto(record)
	return &out, nil
}

// Insert stores a new customer under a freshly generated id. Any id sent by
// the caller is ignored.
func (s *Service) Insert(ctx context.Context, in *customerv1.Customer) (*customerv1.Customer, error) {
	if in == nil {
		return nil, requestEmpty("insert")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := validText(in, false); err != nil {
		return nil, err
	}

	record := customerFromProto(in)
	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		customerID, err := s.nextID()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeUnknown, "generate customer id", err)
		}
		record.ID = customerID

		err = s.store.CreateCustomer(ctx, record)
		if err == nil {
			out := customerToProto(record)
			return &out, nil
		}
		if !errors.Is(err, storage.ErrAlreadyExists) {
			return nil, storeError("create customer", customerID, err)
		}
	}
	return nil, apperrors.New(apperrors.CodeCustomerIDExhausted, "could not allocate a unique customer id")
}

// Update overwrites name, age and address of an existing customer.
func (s *Service) Update(ctx context.Context, in *customerv1.Customer) (*customerv1.Customer, error) {
	if in == nil {
		return nil, requestEmpty("update")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := validText(in, true); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateCustomer(ctx, customerFromProto(in))
	if err != nil {
		return nil, storeError("update customer", in.GetId(), err)
	}
	out := customerToProto(updated)
	return &out, nil
}

// Remove deletes one customer by id.
func (s *Service) Remove(ctx context.Context, in *customerv1.CustomerRequestId) (*customerv1.RemoveResponse, error) {
	if in == nil {
		return nil, requestEmpty("remove")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	if err := s.store.DeleteCustomer(ctx, in.GetId()); err != nil {
		return nil, storeError("delete customer", in.GetId(), err)
	}
	return &customerv1.RemoveResponse{Message: RemovedMessage}, nil
}

func (s *Service) ready() error {
	if s == nil || s.store == nil {
		return status.Error(codes.Internal, "customer store is not configured")
	}
	return nil
}

func (s *Service) nextID() (string, error) {
	if s.newID == nil {
		return id.NewID()
	}
	return s.newID()
}

func requestEmpty(op string) error {
	return apperrors.New(apperrors.CodeCustomerRequestEmpty, op+" request is required")
}

// validText rejects string fields that are not valid UTF-8, which the
// protobuf wire format cannot carry.
func validText(in *customerv1.Customer, checkID bool) error {
	if checkID && !utf8.ValidString(in.GetId()) {
		return invalidText("id")
	}
	if !utf8.ValidString(in.GetName()) {
		return invalidText("name")
	}
	if !utf8.ValidString(in.GetAddress()) {
		return invalidText("address")
	}
	return nil
}

func invalidText(field string) error {
	return apperrors.WithMetadata(apperrors.CodeCustomerInvalidText, field+" must be valid UTF-8", map[string]string{
		"field": field,
	})
}

func storeError(op, customerID string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperrors.WithMetadata(apperrors.CodeCustomerNotFound, "customer not found", map[string]string{
			"customer_id": customerID,
		})
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, op+": "+err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, op+": "+err.Error())
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}

func customerToProto(record storage.Customer) customerv1.Customer {
	return customerv1.Customer{
		Id:      record.ID,
		Name:    record.Name,
		Age:     record.Age,
		Address: record.Address,
	}
}

func customerFromProto(in *customerv1.Customer) storage.Customer {
	return storage.Customer{
		ID:      in.GetId(),
		Name:    in.GetName(),
		Age:     in.GetAge(),
		Address: in.GetAddress(),
	}
}
