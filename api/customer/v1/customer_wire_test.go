package customerv1

import (
	"bytes"
	"strings"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestCustomerMarshalMatchesProtobufLayout(t *testing.T) {
	got, err := (&Customer{Id: "1", Name: "A", Age: 30, Address: "B"}).MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := []byte{
		0x0a, 0x01, '1', // id = 1
		0x12, 0x01, 'A', // name = 2
		0x18, 0x1e, // age = 3
		0x22, 0x01, 'B', // address = 4
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("bytes = % x, want % x", got, want)
	}
}

func TestCustomerMarshalOmitsZeroValues(t *testing.T) {
	got, err := (&Customer{Name: "Chirag Goel"}).MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got[0] != 0x12 {
		t.Fatalf("first tag = %#x, want name tag 0x12", got[0])
	}
	empty, err := (&Customer{}).MarshalBinary()
	if err != nil {
		t.Fatalf("marshal empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("empty customer encoded to %d bytes", len(empty))
	}
}

func TestCustomerNegativeAgeIsSignExtended(t *testing.T) {
	in := &Customer{Age: -1}
	data, err := in.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// tag + ten byte varint
	if len(data) != 11 {
		t.Fatalf("encoded length = %d, want 11", len(data))
	}
	var out Customer
	if err := out.UnmarshalBinary(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Age != -1 {
		t.Fatalf("age = %d, want -1", out.Age)
	}
}

func TestCustomerListRoundTripKeepsOrder(t *testing.T) {
	in := &CustomerList{Customers: []Customer{
		{Id: "1", Name: "Chirag Goel", Age: 30, Address: "123 Bangalore"},
		{Id: "2", Name: "Akshay Saini", Age: 25, Address: "Uttarakhand"},
	}}
	data, err := in.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out CustomerList
	if err := out.UnmarshalBinary(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.Customers) != 2 {
		t.Fatalf("customers len = %d, want 2", len(out.Customers))
	}
	for i := range in.Customers {
		if out.Customers[i] != in.Customers[i] {
			t.Fatalf("customers[%d] = %+v, want %+v", i, out.Customers[i], in.Customers[i])
		}
	}
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 9, protowire.BytesType)
	b = protowire.AppendString(b, "future field")
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "abc")
	b = protowire.AppendTag(b, 10, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)

	var req CustomerRequestId
	if err := req.UnmarshalBinary(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Id != "abc" {
		t.Fatalf("id = %q, want abc", req.Id)
	}

	var empty Empty
	if err := empty.UnmarshalBinary(b); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
}

func TestUnmarshalResetsMessage(t *testing.T) {
	out := Customer{Id: "stale", Name: "stale"}
	if err := out.UnmarshalBinary([]byte{0x12, 0x01, 'N'}); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Id != "" || out.Name != "N" {
		t.Fatalf("customer = %+v, want only name set", out)
	}
}

func TestUnmarshalRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "wrong wire type for id", data: []byte{0x08, 0x01}, want: "wire type"},
		{name: "wrong wire type for age", data: []byte{0x1a, 0x01, 'x'}, want: "wire type"},
		{name: "truncated string", data: []byte{0x0a, 0x05, 'a'}, want: "field 1"},
		{name: "invalid utf8", data: []byte{0x12, 0x01, 0xff}, want: "UTF-8"},
		{name: "truncated tag", data: []byte{0x80}, want: "customer.v1.Customer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out Customer
			err := out.UnmarshalBinary(tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestCustomerListRejectsMalformedItem(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte{0x08, 0x01})

	var out CustomerList
	if err := out.UnmarshalBinary(b); err == nil {
		t.Fatal("expected nested customer error")
	}
}

func TestMarshalRejectsInvalidUTF8(t *testing.T) {
	if _, err := (&Customer{Name: "\xff"}).MarshalBinary(); err == nil {
		t.Fatal("expected invalid UTF-8 error")
	}
	if _, err := (&CustomerList{Customers: []Customer{{Address: "\xfe"}}}).MarshalBinary(); err == nil {
		t.Fatal("expected invalid UTF-8 error in list item")
	}
}

func TestNilGetters(t *testing.T) {
	var c *Customer
	if c.GetId() != "" || c.GetName() != "" || c.GetAge() != 0 || c.GetAddress() != "" {
		t.Fatal("expected zero values from nil customer")
	}
	var list *CustomerList
	if list.GetCustomers() != nil {
		t.Fatal("expected nil customers from nil list")
	}
	var req *CustomerRequestId
	if req.GetId() != "" {
		t.Fatal("expected empty id from nil request")
	}
	var resp *RemoveResponse
	if resp.GetMessage() != "" {
		t.Fatal("expected empty message from nil response")
	}
}
