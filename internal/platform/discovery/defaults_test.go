package discovery

import "testing"

func TestDefaultAddrs(t *testing.T) {
	if got := DefaultGRPCAddr(ServiceCustomers); got != "127.0.0.1:30043" {
		t.Fatalf("DefaultGRPCAddr(customers) = %q", got)
	}
	if got := DefaultHTTPAddr(" " + ServiceGateway + " "); got != ":3000" {
		t.Fatalf("DefaultHTTPAddr(gateway) = %q", got)
	}
	if got := DefaultGRPCAddr(ServiceGateway); got != "" {
		t.Fatalf("DefaultGRPCAddr(gateway) = %q, want empty", got)
	}
	if got := DefaultHTTPAddr("unknown"); got != "" {
		t.Fatalf("DefaultHTTPAddr(unknown) = %q, want empty", got)
	}
}

func TestOrDefaultAddrs(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{name: "grpc explicit", got: OrDefaultGRPCAddr(" host:1 ", ServiceCustomers), want: "host:1"},
		{name: "grpc blank", got: OrDefaultGRPCAddr("  ", ServiceCustomers), want: "127.0.0.1:30043"},
		{name: "http explicit", got: OrDefaultHTTPAddr(":8080", ServiceGateway), want: ":8080"},
		{name: "http blank", got: OrDefaultHTTPAddr("", ServiceGateway), want: ":3000"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s = %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}
