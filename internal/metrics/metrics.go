package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg           *prometheus.Registry
	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	OrdersCreated prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "backoffice_http_requests_total"},
		[]string{"method", "path", "status"},
	)
	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backoffice_http_request_duration_seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{Name: "backoffice_orders_created_total"})

	r.MustRegister(httpRequests, httpDuration, ordersCreated)
	return &Registry{
		reg:           r,
		HTTPRequests:  httpRequests,
		HTTPDuration:  httpDuration,
		OrdersCreated: ordersCreated,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
