package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fleet"

// Result labels for ReportsTotal.
const (
	ResultValid    = "valid"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
)

type Metrics struct {
	ReportsTotal    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	CatalogVehicles prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New registers the service collectors with reg. A nil reg gets a fresh
// private registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		ReportsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_total",
			Help:      "Car reports processed, by validation result",
		}, []string{"result"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status code",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "code"}),

		CatalogVehicles: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_vehicles",
			Help:      "Vehicles loaded into the catalog at startup",
		}),

		gatherer: reg,
	}
}

func (m *Metrics) ObserveReport(result string) {
	if m == nil {
		return
	}
	m.ReportsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
