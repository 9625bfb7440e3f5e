// Package httpapi translates gateway HTTP requests into customer.v1 calls
// and their outcomes back into HTTP responses.
package httpapi

import (
	"context"
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/gorilla/mux"
	customerv1 "github.com/louisbranch/customers/api/customer/v1"
	"github.com/louisbranch/customers/internal/platform/httpx"
	"github.com/louisbranch/customers/internal/platform/requestctx"
	"github.com/louisbranch/customers/internal/services/customers/client"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Acknowledgements returned by the write routes.
const (
	MessageCreated = "Customer added successfully"
	MessageUpdated = "Customer updated successfully"
	MessageRemoved = "Customer removed successfully"
)

// CustomerClient is the subset of the customers stub the gateway calls.
type CustomerClient interface {
	GetAll(ctx context.Context) (*customerv1.CustomerList, error)
	Get(ctx context.Context, customerID string) (*customerv1.Customer, error)
	Insert(ctx context.Context, in *customerv1.Customer) (*customerv1.Customer, error)
	Update(ctx context.Context, in *customerv1.Customer) (*customerv1.Customer, error)
	Remove(ctx context.Context, customerID string) (*customerv1.RemoveResponse, error)
}

// Options configures the gateway handler.
type Options struct {
	// MapNotFound answers NotFound failures with 404 instead of 500.
	MapNotFound bool
	// Registerer receives the gateway collectors. Nil disables request metrics.
	Registerer prometheus.Registerer
	// Gatherer backs /metrics. Nil leaves /metrics unmounted.
	Gatherer prometheus.Gatherer
}

// Customer is the HTTP shape of one customer.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Age     int32  `json:"age"`
	Address string `json:"address"`
}

// CustomerList is the body of a successful list.
type CustomerList struct {
	Customers []Customer `json:"customers"`
}

// Message acknowledges a successful write.
type Message struct {
	Message string `json:"message"`
}

// RPCError is the body of every response for a failed call.
type RPCError struct {
	Code    string `json:"code"`
	Kind    string `json:"kind"`
	Details string `json:"details"`
	Reason  string `json:"reason"`
}

type handler struct {
	client      CustomerClient
	mapNotFound bool
}

// NewHandler builds the gateway router around c.
func NewHandler(c CustomerClient, opts Options) (http.Handler, error) {
	if c == nil {
		return nil, errors.New("customer client is required")
	}
	h := &handler{client: c, mapNotFound: opts.MapNotFound}

	router := mux.NewRouter().StrictSlash(false)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteJSONError(w, http.StatusNotFound, "not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.MethodNotAllowed(allowedMethods(router, r.URL.Path)).ServeHTTP(w, r)
	})

	if opts.Registerer != nil {
		metrics, err := NewMetrics(opts.Registerer)
		if err != nil {
			return nil, err
		}
		router.Use(metrics.Middleware)
	}

	add := func(method, path, name string, fn http.HandlerFunc) {
		router.Path(path).Methods(method).Name(name).Handler(otelhttp.NewHandler(fn, name))
	}
	add(http.MethodGet, "/", "customers.list", h.list)
	add(http.MethodGet, "/customers/{id}", "customers.get", h.get)
	add(http.MethodPost, "/create", "customers.create", h.create)
	add(http.MethodPost, "/update", "customers.update", h.update)
	add(http.MethodPost, "/remove", "customers.remove", h.remove)
	router.Path("/up").Methods(http.MethodGet).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteText(w, http.StatusOK, "OK")
	})
	jsonRPC, err := newJSONRPCServer(c)
	if err != nil {
		return nil, err
	}
	router.Path("/rpc").Methods(http.MethodPost).Name("customers.jsonrpc").Handler(otelhttp.NewHandler(jsonRPC, "customers.jsonrpc"))
	if opts.Gatherer != nil {
		router.Path("/metrics").Methods(http.MethodGet).Handler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	return httpx.Chain(router, httpx.RequestID(), httpx.RecoverPanic()), nil
}

// allowedMethods lists the methods routed for path, for the Allow header.
func allowedMethods(router *mux.Router, path string) string {
	var allow []string
	_ = router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		pattern, err := route.GetPathRegexp()
		if err != nil {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			return nil
		}
		re, err := regexp.Compile(pattern)
		if err != nil || !re.MatchString(path) {
			return nil
		}
		allow = append(allow, methods...)
		return nil
	})
	return strings.Join(allow, ", ")
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	resp, err := h.client.GetAll(httpx.RequestContext(r))
	if err != nil {
		h.writeRPCError(w, r, err)
		return
	}
	out := CustomerList{Customers: make([]Customer, 0, len(resp.GetCustomers()))}
	for i := range resp.GetCustomers() {
		out.Customers = append(out.Customers, toJSON(&resp.GetCustomers()[i]))
	}
	_ = httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.client.Get(httpx.RequestContext(r), mux.Vars(r)["id"])
	if err != nil {
		h.writeRPCError(w, r, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, toJSON(resp))
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeCustomerBody(w, r)
	if err != nil {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	in, err := body.toCustomer(false)
	if err != nil {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.client.Insert(httpx.RequestContext(r), in)
	if err != nil {
		h.writeRPCError(w, r, err)
		return
	}
	log.Printf("%s id=%s", MessageCreated, created.GetId())
	_ = httpx.WriteJSON(w, http.StatusOK, Message{Message: MessageCreated})
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	body, err := decodeCustomerBody(w, r)
	if err != nil {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	in, err := body.toCustomer(true)
	if err != nil {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.client.Update(httpx.RequestContext(r), in)
	if err != nil {
		h.writeRPCError(w, r, err)
		return
	}
	log.Printf("%s id=%s", MessageUpdated, updated.GetId())
	_ = httpx.WriteJSON(w, http.StatusOK, Message{Message: MessageUpdated})
}

func (h *handler) remove(w http.ResponseWriter, r *http.Request) {
	customerID, err := decodeRemoveBody(w, r)
	if err != nil {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.client.Remove(httpx.RequestContext(r), customerID); err != nil {
		h.writeRPCError(w, r, err)
		return
	}
	log.Printf("%s id=%s", MessageRemoved, customerID)
	_ = httpx.WriteJSON(w, http.StatusOK, Message{Message: MessageRemoved})
}

// asClientError classifies err the way the customers stub does.
func asClientError(err error) *client.Error {
	var clientErr *client.Error
	if errors.As(err, &clientErr) {
		return clientErr
	}
	st := status.Convert(err)
	return &client.Error{
		Kind:    client.KindOf(st.Code()),
		Code:    st.Code(),
		Message: st.Message(),
	}
}

func toRPCError(clientErr *client.Error) RPCError {
	return RPCError{
		Code:    clientErr.Code.String(),
		Kind:    string(clientErr.Kind),
		Details: clientErr.Message,
		Reason:  clientErr.Reason,
	}
}

func (h *handler) writeRPCError(w http.ResponseWriter, r *http.Request, err error) {
	clientErr := asClientError(err)
	statusCode := http.StatusInternalServerError
	if h.mapNotFound && clientErr.Code == codes.NotFound {
		statusCode = http.StatusNotFound
	}
	log.Printf(
		"rpc failed method=%s code=%s kind=%s customer_id=%s path=%s request_id=%s",
		clientErr.Method,
		clientErr.Code,
		clientErr.Kind,
		clientErr.Metadata["customer_id"],
		r.URL.Path,
		requestctx.RequestIDFromContext(r.Context()),
	)
	_ = httpx.WriteJSON(w, statusCode, toRPCError(clientErr))
}

func toJSON(c *customerv1.Customer) Customer {
	return Customer{
		ID:      c.GetId(),
		Name:    c.GetName(),
		Age:     c.GetAge(),
		Address: c.GetAddress(),
	}
}
