package metrics

import "github.com/prometheus/client_golang/prometheus"

// DatasetMetrics holds Prometheus metrics for the startup dataset load.
type DatasetMetrics struct {
	Loads        *prometheus.CounterVec
	LoadDuration prometheus.Histogram
	Records      *prometheus.GaugeVec
}

// NewDatasetMetrics creates and registers dataset metrics on the given registry.
func NewDatasetMetrics(reg prometheus.Registerer) *DatasetMetrics {
	m := &DatasetMetrics{
		Loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "loads_total",
			Help:      "Total number of dataset loads, by result.",
		}, []string{"result"}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "load_duration_seconds",
			Help:      "Duration of the dataset load in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		Records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "records",
			Help:      "Number of records loaded, by dataset.",
		}, []string{"dataset"}),
	}

	reg.MustRegister(m.Loads, m.LoadDuration, m.Records)
	return m
}
