package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/louisbranch/customers/internal/platform/httpx"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records gateway request counts and latencies by route and status.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates gateway collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "customers",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Count of gateway HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "customers",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Histogram of gateway HTTP response times in seconds.",
			Buckets:   []float64{.001, .003, .005, .01, .025, .05, .1, .2, .3, .5, 1, 2, 5},
		}, []string{"route", "method", "status"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, collector := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Middleware implements mux.MiddlewareFunc.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}
		rec := httpx.NewStatusRecorder(w)

		defer func() {
			code := strconv.Itoa(rec.Status)
			m.requests.WithLabelValues(route, r.Method, code).Inc()
			m.duration.WithLabelValues(route, r.Method, code).Observe(time.Since(start).Seconds())
		}()

		next.ServeHTTP(rec, r)
	})
}
