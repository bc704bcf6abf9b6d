package dataset

import (
	"time"

	"github.com/go-sif/hiero"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus collectors for Dataset execution
type Metrics struct {
	LeafDuration *prometheus.HistogramVec
	LeafFailures *prometheus.CounterVec
	Aborted      *prometheus.CounterVec
}

// NewMetrics creates and registers all metrics with the provided registry
func NewMetrics(reg prometheus.Registerer) *Metrics {
	leafDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hiero_dataset_leaf_duration_seconds",
		Help:    "Time spent executing an operation against a single partition",
		Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
	}, []string{"operation"})

	leafFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hiero_dataset_leaf_failures_total",
		Help: "Total partition operations which returned an error",
	}, []string{"operation"})

	aborted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hiero_dataset_aborted_total",
		Help: "Total dataset operations abandoned because of a partition failure or cancellation",
	}, []string{"operation"})

	reg.MustRegister(leafDuration, leafFailures, aborted)

	return &Metrics{
		LeafDuration: leafDuration,
		LeafFailures: leafFailures,
		Aborted:      aborted,
	}
}

func (m *Metrics) observeLeaf(op hiero.OperationType, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.LeafDuration.WithLabelValues(string(op)).Observe(elapsed.Seconds())
	if err != nil {
		m.LeafFailures.WithLabelValues(string(op)).Inc()
	}
}

func (m *Metrics) observeAbort(op hiero.OperationType) {
	if m == nil {
		return
	}
	m.Aborted.WithLabelValues(string(op)).Inc()
}
