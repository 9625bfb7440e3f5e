// Package customerv1 is the customer.v1 contract shared by the customers
// server and its clients: message types, their wire layouts and the gRPC
// service descriptor. customer.proto is the reference definition; field
// numbers here must match it.
package customerv1

// Empty is the request of operations that take no input.
type Empty struct{}

// Customer is one customer record.
type Customer struct {
	Id      string `avro:"id"`
	Name    string `avro:"name"`
	Age     int32  `avro:"age"`
	Address string `avro:"address"`
}

// GetId returns the customer id, or "" for a nil customer.
func (x *Customer) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

// GetName returns the customer name, or "" for a nil customer.
func (x *Customer) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

// GetAge returns the customer age, or 0 for a nil customer.
func (x *Customer) GetAge() int32 {
	if x != nil {
		return x.Age
	}
	return 0
}

// GetAddress returns the customer address, or "" for a nil customer.
func (x *Customer) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

// CustomerList is the response of GetAll.
type CustomerList struct {
	Customers []Customer `avro:"customers"`
}

// GetCustomers returns the listed customers, or nil for a nil list.
func (x *CustomerList) GetCustomers() []Customer {
	if x != nil {
		return x.Customers
	}
	return nil
}

// CustomerRequestId addresses one customer by id.
type CustomerRequestId struct {
	Id string `avro:"id"`
}

// GetId returns the requested id, or "" for a nil request.
func (x *CustomerRequestId) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

// RemoveResponse acknowledges a removal.
type RemoveResponse struct {
	Message string `avro:"message"`
}

// GetMessage returns the acknowledgement text, or "" for a nil response.
func (x *RemoveResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}
