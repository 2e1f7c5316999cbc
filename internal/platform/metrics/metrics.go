package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the portal.
type Metrics struct {
	Logins           prometheus.Counter
	Payments         prometheus.Counter
	Reservations     *prometheus.CounterVec
	Visitors         prometheus.Counter
	Publications     *prometheus.CounterVec
	RequestLatencyMs *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		Logins: promauto.NewCounter(prometheus.CounterOpts{
			Name: "comunidad_logins_total",
			Help: "Total number of resident logins",
		}),
		Payments: promauto.NewCounter(prometheus.CounterOpts{
			Name: "comunidad_invoice_payments_total",
			Help: "Total number of invoices marked paid",
		}),
		Reservations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "comunidad_reservations_total",
			Help: "Total number of amenity reservations by outcome",
		}, []string{"outcome"}),
		Visitors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "comunidad_visitors_registered_total",
			Help: "Total number of visitors registered",
		}),
		Publications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "comunidad_publications_total",
			Help: "Total number of admin publications by kind",
		}, []string{"kind"}),
		RequestLatencyMs: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "comunidad_http_request_duration_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250},
		}, []string{"route"}),
	}
}
