// Package memory provides the process-local customer store.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/louisbranch/customers/internal/services/customers/storage"
)

// Store keeps customer records in memory, in insertion order. A single mutex
// serializes every read and read/modify/write sequence.
type Store struct {
	mu        sync.Mutex
	customers []storage.Customer
}

var _ storage.CustomerStore = (*Store)(nil)

// NewStore creates a store holding copies of seed, in order.
func NewStore(seed ...storage.Customer) (*Store, error) {
	s := &Store{customers: make([]storage.Customer, 0, len(seed))}
	for _, c := range seed {
		if s.indexOf(c.ID) >= 0 {
			return nil, fmt.Errorf("seed customer %q: %w", c.ID, storage.ErrAlreadyExists)
		}
		s.customers = append(s.customers, c)
	}
	return s, nil
}

// ListCustomers returns every record in insertion order.
func (s *Store) ListCustomers(ctx context.Context) ([]storage.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]storage.Customer, len(s.customers))
	copy(out, s.customers)
	return out, nil
}

// GetCustomer returns the record with id.
func (s *Store) GetCustomer(ctx context.Context, id string) (storage.Customer, error) {
	if err := ctx.Err(); err != nil {
		return storage.Customer{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return storage.Customer{}, storage.ErrNotFound
	}
	return s.customers[idx], nil
}

// CreateCustomer appends customer. Its id must not already be stored.
func (s *Store) CreateCustomer(ctx context.Context, customer storage.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(customer.ID) >= 0 {
		return storage.ErrAlreadyExists
	}
	s.customers = append(s.customers, customer)
	return nil
}

// UpdateCustomer overwrites name, age and address of the record with
// customer.ID. The id itself never changes.
func (s *Store) UpdateCustomer(ctx context.Context, customer storage.Customer) (storage.Customer, error) {
	if err := ctx.Err(); err != nil {
		return storage.Customer{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(customer.ID)
	if idx < 0 {
		return storage.Customer{}, storage.ErrNotFound
	}
	existing := &s.customers[idx]
	existing.Name = customer.Name
	existing.Age = customer.Age
	existing.Address = customer.Address
	return *existing, nil
}

// DeleteCustomer removes the record with id, keeping the order of the rest.
func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return storage.ErrNotFound
	}
	s.customers = append(s.customers[:idx], s.customers[idx+1:]...)
	return nil
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id string) int {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return i
		}
	}
	return -1
}
