package metrics

import "github.com/prometheus/client_golang/prometheus"

// TableMetrics holds Prometheus metrics for table projections.
type TableMetrics struct {
	Renders *prometheus.CounterVec
	Rows    prometheus.Histogram
}

// NewTableMetrics creates and registers table metrics on the given registry.
func NewTableMetrics(reg prometheus.Registerer) *TableMetrics {
	m := &TableMetrics{
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "table",
			Name:      "renders_total",
			Help:      "Total number of table renders, by sort key.",
		}, []string{"sort_key"}),
		Rows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "table",
			Name:      "rows",
			Help:      "Number of rows per table render after filtering.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
	}

	reg.MustRegister(m.Renders, m.Rows)
	return m
}
