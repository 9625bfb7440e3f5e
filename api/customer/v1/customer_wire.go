package customerv1

import (
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers, as declared in customer.proto.
const (
	customerIDField      protowire.Number = 1
	customerNameField    protowire.Number = 2
	customerAgeField     protowire.Number = 3
	customerAddressField protowire.Number = 4

	customerListCustomersField protowire.Number = 1
	requestIDField             protowire.Number = 1
	removeMessageField         protowire.Number = 1
)

// skipField tells consumeFields to skip a field it does not know.
const skipField = -1 << 30

// MarshalBinary encodes x in protobuf wire format.
func (x *Empty) MarshalBinary() ([]byte, error) { return nil, nil }

// UnmarshalBinary decodes protobuf wire format into x, skipping unknown fields.
func (x *Empty) UnmarshalBinary(b []byte) error {
	return consumeFields("customer.v1.Empty", b, func(protowire.Number, protowire.Type, []byte) (int, error) {
		return skipField, nil
	})
}

// MarshalBinary encodes x in protobuf wire format.
func (x *Customer) MarshalBinary() ([]byte, error) {
	return x.appendWire(nil)
}

func (x *Customer) appendWire(b []byte) ([]byte, error) {
	if x == nil {
		return b, nil
	}
	var err error
	if b, err = appendString(b, customerIDField, x.Id); err != nil {
		return nil, fmt.Errorf("customer.v1.Customer: %w", err)
	}
	if b, err = appendString(b, customerNameField, x.Name); err != nil {
		return nil, fmt.Errorf("customer.v1.Customer: %w", err)
	}
	b = appendInt32(b, customerAgeField, x.Age)
	if b, err = appendString(b, customerAddressField, x.Address); err != nil {
		return nil, fmt.Errorf("customer.v1.Customer: %w", err)
	}
	return b, nil
}

// UnmarshalBinary decodes protobuf wire format into x, skipping unknown fields.
func (x *Customer) UnmarshalBinary(b []byte) error {
	*x = Customer{}
	return consumeFields("customer.v1.Customer", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case customerIDField:
			return consumeString(num, typ, b, &x.Id)
		case customerNameField:
			return consumeString(num, typ, b, &x.Name)
		case customerAgeField:
			return consumeInt32(num, typ, b, &x.Age)
		case customerAddressField:
			return consumeString(num, typ, b, &x.Address)
		default:
			return skipField, nil
		}
	})
}

// MarshalBinary encodes x in protobuf wire format.
func (x *CustomerList) MarshalBinary() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	var b []byte
	for i := range x.Customers {
		item, err := x.Customers[i].appendWire(nil)
		if err != nil {
			return nil, fmt.Errorf("customer.v1.CustomerList: customers[%d]: %w", i, err)
		}
		b = protowire.AppendTag(b, customerListCustomersField, protowire.BytesType)
		b = protowire.AppendBytes(b, item)
	}
	return b, nil
}

// UnmarshalBinary decodes protobuf wire format into x, skipping unknown fields.
func (x *CustomerList) UnmarshalBinary(b []byte) error {
	*x = CustomerList{}
	return consumeFields("customer.v1.CustomerList", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != customerListCustomersField {
			return skipField, nil
		}
		if typ != protowire.BytesType {
			return 0, wrongType(num, typ, protowire.BytesType)
		}
		item, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return n, nil
		}
		var c Customer
		if err := c.UnmarshalBinary(item); err != nil {
			return 0, err
		}
		x.Customers = append(x.Customers, c)
		return n, nil
	})
}

// MarshalBinary encodes x in protobuf wire format.
func (x *CustomerRequestId) MarshalBinary() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	b, err := appendString(nil, requestIDField, x.Id)
	if err != nil {
		return nil, fmt.Errorf("customer.v1.CustomerRequestId: %w", err)
	}
	return b, nil
}

// UnmarshalBinary decodes protobuf wire format into x, skipping unknown fields.
func (x *CustomerRequestId) UnmarshalBinary(b []byte) error {
	*x = CustomerRequestId{}
	return consumeFields("customer.v1.CustomerRequestId", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != requestIDField {
			return skipField, nil
		}
		return consumeString(num, typ, b, &x.Id)
	})
}

// MarshalBinary encodes x in protobuf wire format.
func (x *RemoveResponse) MarshalBinary() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	b, err := appendString(nil, removeMessageField, x.Message)
	if err != nil {
		return nil, fmt.Errorf("customer.v1.RemoveResponse: %w", err)
	}
	return b, nil
}

// UnmarshalBinary decodes protobuf wire format into x, skipping unknown fields.
func (x *RemoveResponse) UnmarshalBinary(b []byte) error {
	*x = RemoveResponse{}
	return consumeFields("customer.v1.RemoveResponse", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != removeMessageField {
			return skipField, nil
		}
		return consumeString(num, typ, b, &x.Message)
	})
}

// consumeFields walks every field in b. visit returns the bytes it consumed,
// a negative protowire error code, or skipField.
func consumeFields(message string, b []byte, visit func(protowire.Number, protowire.Type, []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%s: %w", message, protowire.ParseError(n))
		}
		b = b[n:]

		n, err := visit(num, typ, b)
		if err != nil {
			return fmt.Errorf("%s: %w", message, err)
		}
		if n == skipField {
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return fmt.Errorf("%s: field %d: %w", message, num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}

func consumeString(num protowire.Number, typ protowire.Type, b []byte, dst *string) (int, error) {
	if typ != protowire.BytesType {
		return 0, wrongType(num, typ, protowire.BytesType)
	}
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return n, nil
	}
	if !utf8.ValidString(v) {
		return 0, fmt.Errorf("field %d: invalid UTF-8", num)
	}
	*dst = v
	return n, nil
}

func consumeInt32(num protowire.Number, typ protowire.Type, b []byte, dst *int32) (int, error) {
	if typ != protowire.VarintType {
		return 0, wrongType(num, typ, protowire.VarintType)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return n, nil
	}
	*dst = int32(v)
	return n, nil
}

func appendString(b []byte, num protowire.Number, v string) ([]byte, error) {
	if v == "" {
		return b, nil
	}
	if !utf8.ValidString(v) {
		return nil, fmt.Errorf("field %d: invalid UTF-8", num)
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v), nil
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	// Negative values are sign-extended to ten bytes, as protobuf int32 requires.
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func wrongType(num protowire.Number, got, want protowire.Type) error {
	return fmt.Errorf("field %d: wire type %d, want %d", num, got, want)
}
