package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "emojiboard"

// Metrics bundles every metric group the server exposes.
type Metrics struct {
	HTTP    *HTTPMetrics
	Dataset *DatasetMetrics
	Table   *TableMetrics
	Chart   *ChartMetrics
}

// New creates and registers all metric groups on reg.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTP:    NewHTTPMetrics(reg),
		Dataset: NewDatasetMetrics(reg),
		Table:   NewTableMetrics(reg),
		Chart:   NewChartMetrics(reg),
	}
}

// NewRegistry creates a Prometheus registry with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// Handler returns an http.Handler that serves Prometheus metrics.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
