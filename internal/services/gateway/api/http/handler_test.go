package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	customerv1 "github.com/louisbranch/customers/api/customer/v1"
	"github.com/louisbranch/customers/internal/services/customers/client"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeClient struct {
	calls    []string
	inserted *customerv1.Customer
	updated  *customerv1.Customer
	removed  string
	err      error
	panicOn  string
}

func (f *fakeClient) record(name string) error {
	f.calls = append(f.calls, name)
	if f.panicOn == name {
		panic("fake client panic")
	}
	return f.err
}

func (f *fakeClient) GetAll(context.Context) (*customerv1.CustomerList, error) {
	if err := f.record("GetAll"); err != nil {
		return nil, err
	}
	return &customerv1.CustomerList{Customers: []customerv1.Customer{
		{Id: "1", Name: "Chirag Goel", Age: 30, Address: "123 Bangalore"},
		{Id: "2", Name: "Akshay Saini", Age: 25, Address: "Uttarakhand"},
	}}, nil
}

func (f *fakeClient) Get(_ context.Context, customerID string) (*customerv1.Customer, error) {
	if err := f.record("Get"); err != nil {
		return nil, err
	}
	return &customerv1.Customer{Id: customerID, Name: "Chirag Goel", Age: 30, Address: "123 Bangalore"}, nil
}

func (f *fakeClient) Insert(_ context.Context, in *customerv1.Customer) (*customerv1.Customer, error) {
	if err := f.record("Insert"); err != nil {
		return nil, err
	}
	f.inserted = in
	out := *in
	out.Id = "generated"
	return &out, nil
}

func (f *fakeClient) Update(_ context.Context, in *customerv1.Customer) (*customerv1.Customer, error) {
	if err := f.record("Update"); err != nil {
		return nil, err
	}
	f.updated = in
	return in, nil
}

func (f *fakeClient) Remove(_ context.Context, customerID string) (*customerv1.RemoveResponse, error) {
	if err := f.record("Remove"); err != nil {
		return nil, err
	}
	f.removed = customerID
	return &customerv1.RemoveResponse{Message: MessageRemoved}, nil
}

func newTestHandler(t *testing.T, c CustomerClient, opts Options) http.Handler {
	t.Helper()
	h, err := NewHandler(c, opts)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	return h
}

func doJSON(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rr.Body.String(), err)
	}
	return body
}

func TestNewHandlerRequiresClient(t *testing.T) {
	if _, err := NewHandler(nil, Options{}); err == nil {
		t.Fatal("expected error for nil client")
	}
}

func TestListReturnsCustomerList(t *testing.T) {
	h := newTestHandler(t, &fakeClient{}, Options{})

	rr := doJSON(h, http.MethodGet, "/", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got CustomerList
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Customers) != 2 || got.Customers[0].Name != "Chirag Goel" || got.Customers[1].ID != "2" {
		t.Fatalf("customers = %+v", got.Customers)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing request id header")
	}
}

func TestGetByID(t *testing.T) {
	fc := &fakeClient{}
	h := newTestHandler(t, fc, Options{})

	rr := doJSON(h, http.MethodGet, "/customers/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := decodeBody(t, rr)
	if body["id"] != "1" || body["age"] != float64(30) {
		t.Fatalf("body = %v", body)
	}
}

func TestCreateWithJSONBody(t *testing.T) {
	fc := &fakeClient{}
	h := newTestHandler(t, fc, Options{})

	rr := doJSON(h, http.MethodPost, "/create", `{"id":"ignored","name":"X","age":1,"address":"Y"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rr.Code, rr.Body.String())
	}
	if body := decodeBody(t, rr); body["message"] != MessageCreated {
		t.Fatalf("body = %v", body)
	}
	want := customerv1.Customer{Name: "X", Age: 1, Address: "Y"}
	if fc.inserted == nil || *fc.inserted != want {
		t.Fatalf("inserted = %+v, want %+v", fc.inserted, want)
	}
}

func TestCreateWithFormBody(t *testing.T) {
	fc := &fakeClient{}
	h := newTestHandler(t, fc, Options{})

	form := url.Values{"name": {"Form"}, "age": {"42"}, "address": {"Street 1"}}
	req := httptest.NewRequest(http.MethodPost, "/create", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rr.Code, rr.Body.String())
	}
	want := customerv1.Customer{Name: "Form", Age: 42, Address: "Street 1"}
	if fc.inserted == nil || *fc.inserted != want {
		t.Fatalf("inserted = %+v, want %+v", fc.inserted, want)
	}
}

func TestCreateAcceptsNumericStringAge(t *testing.T) {
	fc := &fakeClient{}
	h := newTestHandler(t, fc, Options{})

	rr := doJSON(h, http.MethodPost, "/create", `{"name":"X","age":"27","address":"Y"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	if fc.inserted.GetAge() != 27 {
		t.Fatalf("age = %d, want 27", fc.inserted.GetAge())
	}
}

func TestBoundaryValidationSkipsRPC(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		want string
	}{
		{name: "create missing name", path: "/create", body: `{"age":1,"address":"Y"}`, want: "name is required"},
		{name: "create missing age", path: "/create", body: `{"name":"X","address":"Y"}`, want: "age is required"},
		{name: "create null address", path: "/create", body: `{"name":"X","age":1,"address":null}`, want: "address is required"},
		{name: "create bad age", path: "/create", body: `{"name":"X","age":"old","address":"Y"}`, want: "age must be a 32-bit integer"},
		{name: "create age overflow", path: "/create", body: `{"name":"X","age":4294967296,"address":"Y"}`, want: "age must be a 32-bit integer"},
		{name: "create empty body", path: "/create", body: ``, want: "request body is required"},
		{name: "create malformed", path: "/create", body: `{"name":`, want: "invalid JSON body"},
		{name: "update missing id", path: "/update", body: `{"name":"X","age":1,"address":"Y"}`, want: "id is required"},
		{name: "remove missing id", path: "/remove", body: `{"id":"1"}`, want: "customer_id is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fc := &fakeClient{}
			h := newTestHandler(t, fc, Options{})

			rr := doJSON(h, http.MethodPost, tc.path, tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rr.Code)
			}
			msg, _ := decodeBody(t, rr)["error"].(string)
			if !strings.Contains(msg, tc.want) {
				t.Fatalf("error = %q, want %q", msg, tc.want)
			}
			if len(fc.calls) != 0 {
				t.Fatalf("rpc calls = %v, want none", fc.calls)
			}
		})
	}
}

func TestFormBodyRejectsInvalidUTF8(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		want string
	}{
		{name: "create name", path: "/create", body: "name=bad%FF&age=1&address=Y", want: "name must be valid UTF-8"},
		{name: "create address", path: "/create", body: "name=X&age=1&address=%C3%28", want: "address must be valid UTF-8"},
		{name: "update id", path: "/update", body: "id=%FF&name=X&age=1&address=Y", want: "id must be valid UTF-8"},
		{name: "remove customer id", path: "/remove", body: "customer_id=%FE", want: "customer_id must be valid UTF-8"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fc := &fakeClient{}
			h := newTestHandler(t, fc, Options{})

			req := httptest.NewRequest(http.MethodPost, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400, body %s", rr.Code, rr.Body.String())
			}
			if got := decodeBody(t, rr)["error"]; got != tc.want {
				t.Fatalf("error = %v, want %q", got, tc.want)
			}
			if len(fc.calls) != 0 {
				t.Fatalf("rpc calls = %v, want none", fc.calls)
			}
		})
	}
}

func TestUpdateAndRemove(t *testing.T) {
	fc := &fakeClient{}
	h := newTestHandler(t, fc, Options{})

	rr := doJSON(h, http.MethodPost, "/update", `{"id":"2","name":"N","age":9,"address":"A"}`)
	if rr.Code != http.StatusOK || decodeBody(t, rr)["message"] != MessageUpdated {
		t.Fatalf("update status = %d body = %s", rr.Code, rr.Body.String())
	}
	if fc.updated.GetId() != "2" || fc.updated.GetName() != "N" {
		t.Fatalf("updated = %+v", fc.updated)
	}

	form := url.Values{"customer_id": {"2"}}
	req := httptest.NewRequest(http.MethodPost, "/remove", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK || decodeBody(t, rr)["message"] != MessageRemoved {
		t.Fatalf("remove status = %d body = %s", rr.Code, rr.Body.String())
	}
	if fc.removed != "2" {
		t.Fatalf("removed = %q, want 2", fc.removed)
	}
}

func TestRPCFailureIs500ByDefault(t *testing.T) {
	notFound := &client.Error{
		Kind:    client.KindNotFound,
		Code:    codes.NotFound,
		Reason:  "CUSTOMER_NOT_FOUND",
		Message: "customer not found",
		Method:  "Remove",
	}
	fc := &fakeClient{err: notFound}
	h := newTestHandler(t, fc, Options{})

	rr := doJSON(h, http.MethodPost, "/remove", `{"customer_id":"99"}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	body := decodeBody(t, rr)
	if body["code"] != "NotFound" || body["kind"] != "not_found" || body["details"] != "customer not found" || body["reason"] != "CUSTOMER_NOT_FOUND" {
		t.Fatalf("body = %v", body)
	}
}

func TestMapNotFoundReturns404(t *testing.T) {
	fc := &fakeClient{err: &client.Error{Kind: client.KindNotFound, Code: codes.NotFound, Message: "customer not found"}}
	h := newTestHandler(t, fc, Options{MapNotFound: true})

	if rr := doJSON(h, http.MethodGet, "/customers/99", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}

	fc.err = &client.Error{Kind: client.KindTransport, Code: codes.Unavailable, Message: "connection refused"}
	if rr := doJSON(h, http.MethodGet, "/customers/99", ""); rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 for transport failure", rr.Code)
	}
}

func TestRPCFailureFromPlainStatusError(t *testing.T) {
	fc := &fakeClient{err: status.Error(codes.Unavailable, "down")}
	h := newTestHandler(t, fc, Options{})

	rr := doJSON(h, http.MethodGet, "/", "")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if body := decodeBody(t, rr); body["kind"] != "transport" || body["code"] != "Unavailable" {
		t.Fatalf("body = %v", body)
	}
}

func TestUnknownErrorIsUnexpected(t *testing.T) {
	fc := &fakeClient{err: errors.New("boom")}
	h := newTestHandler(t, fc, Options{})

	rr := doJSON(h, http.MethodPost, "/create", `{"name":"X","age":1,"address":"Y"}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if body := decodeBody(t, rr); body["kind"] != "unexpected" {
		t.Fatalf("body = %v", body)
	}
}

func TestPanicInHandlerIs500(t *testing.T) {
	fc := &fakeClient{panicOn: "GetAll"}
	h := newTestHandler(t, fc, Options{})

	rr := doJSON(h, http.MethodGet, "/", "")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
}

func TestRoutingErrors(t *testing.T) {
	h := newTestHandler(t, &fakeClient{}, Options{})

	for _, path := range []string{"/create", "/update", "/remove", "/rpc"} {
		rr := doJSON(h, http.MethodGet, path, "")
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("GET %s status = %d, want 405", path, rr.Code)
		}
		if got := rr.Header().Get("Allow"); got != http.MethodPost {
			t.Fatalf("GET %s Allow = %q, want POST", path, got)
		}
		if got := decodeBody(t, rr)["error"]; got != "method not allowed" {
			t.Fatalf("GET %s error = %v", path, got)
		}
	}
	if rr := doJSON(h, http.MethodPost, "/", "{}"); rr.Code != http.StatusMethodNotAllowed || rr.Header().Get("Allow") != http.MethodGet {
		t.Fatalf("POST / = %d allow %q, want 405 GET", rr.Code, rr.Header().Get("Allow"))
	}
	if rr := doJSON(h, http.MethodGet, "/nope", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("GET /nope status = %d, want 404", rr.Code)
	}
	rr := doJSON(h, http.MethodGet, "/up", "")
	if rr.Code != http.StatusOK || rr.Body.String() != "OK" {
		t.Fatalf("GET /up = %d %q", rr.Code, rr.Body.String())
	}
}

func TestMetricsRecordedAndExposed(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := newTestHandler(t, &fakeClient{}, Options{Registerer: reg, Gatherer: reg})

	doJSON(h, http.MethodGet, "/", "")
	doJSON(h, http.MethodGet, "/customers/1", "")
	doJSON(h, http.MethodPost, "/create", `{}`)

	count, err := testutil.GatherAndCount(reg, "customers_gateway_requests_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if count != 3 {
		t.Fatalf("request series = %d, want 3", count)
	}

	rr := doJSON(h, http.MethodGet, "/metrics", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d", rr.Code)
	}
	for _, want := range []string{
		`customers_gateway_requests_total{method="GET",route="/",status="200"} 1`,
		`customers_gateway_requests_total{method="POST",route="/create",status="400"} 1`,
		`route="/customers/{id}"`,
	} {
		if !strings.Contains(rr.Body.String(), want) {
			t.Fatalf("metrics output missing %q", want)
		}
	}
}

func TestNewMetricsRejectsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewMetrics(reg); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := NewMetrics(reg); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}
