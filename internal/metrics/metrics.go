package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the instruments used to observe the roster.
// It includes a counter of use cases by outcome, a gauge with the current
// department size, and a histogram for the duration of department operations.
type Metrics struct {
	Operations        *prometheus.CounterVec
	RosterSize        *prometheus.GaugeVec
	OperationDuration *prometheus.HistogramVec
	InvalidInputs     prometheus.Counter
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		Operations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "roster_operations_total",
			Help: "Total number of roster use cases by operation and outcome.",
		}, []string{"operation", "status"}),
		RosterSize: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "roster_employees",
			Help: "Number of employees currently owned by the department.",
		}, []string{"department"}),
		OperationDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roster_operation_duration_seconds",
			Help:    "Duration of department operations.",
			Buckets: prometheus.ExponentialBuckets(0.000001, 10, 6), //nolint:mnd // 1us .. 0.1s
		}, []string{"operation"}), // operation: 'add', 'remove', 'list', 'find'
		InvalidInputs: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "roster_invalid_inputs_total",
			Help: "Total number of malformed values typed into the shell.",
		}),
	}

	return metrics
}

// WriteTextfile dumps every metric of the gatherer to path in the text exposition format,
// so it can be picked up by the node exporter textfile collector.
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		return fmt.Errorf("failed to write metrics to '%s': %w", path, err)
	}

	return nil
}
