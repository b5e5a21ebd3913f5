package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChartMetrics holds Prometheus metrics for chart builds.
type ChartMetrics struct {
	Builds *prometheus.CounterVec
}

// NewChartMetrics creates and registers chart metrics on the given registry.
func NewChartMetrics(reg prometheus.Registerer) *ChartMetrics {
	m := &ChartMetrics{
		Builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chart",
			Name:      "builds_total",
			Help:      "Total number of chart builds, by format.",
		}, []string{"format"}),
	}

	reg.MustRegister(m.Builds)
	return m
}
