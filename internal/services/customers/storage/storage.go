// Package storage defines persistence contracts for customer records.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates a requested customer record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a customer with the same id is already stored.
	ErrAlreadyExists = errors.New("record already exists")
)

// Customer stores one customer record.
type Customer struct {
	ID      string
	Name    string
	Age     int32
	Address string
}

// CustomerStore persists customer records in insertion order.
//
// Implementations return copies; callers never share memory with the store.
type CustomerStore interface {
	ListCustomers(ctx context.Context) ([]Customer, error)
	GetCustomer(ctx context.Context, id string) (Customer, error)
	CreateCustomer(ctx context.Context, customer Customer) error
	// UpdateCustomer overwrites name, age and address of the record with
	// customer.ID and returns the stored result.
	UpdateCustomer(ctx context.Context, customer Customer) (Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// SeedCustomers returns the records a fresh customers server starts with.
func SeedCustomers() []Customer {
	return []Customer{
		{ID: "1", Name: "Chirag Goel", Age: 30, Address: "123 Bangalore"},
		{ID: "2", Name: "Akshay Saini", Age: 25, Address: "Uttarakhand"},
	}
}
