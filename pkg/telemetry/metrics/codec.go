package metrics

import (
	"vyper-hq/vast/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Codec results used as the result label.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// CodecMetrics tracks dict encode and decode calls.
//
// Metrics:
//   - vast_codec_operations_total: calls by operation and result
type CodecMetrics struct {
	operations *prometheus.CounterVec
}

// NewCodecMetrics creates and registers codec metrics with the provided registry.
func NewCodecMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *CodecMetrics {
	cm := &CodecMetrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "codec_operations_total",
				Help:      "Total number of dict codec operations",
			},
			[]string{"operation", "result"},
		),
	}

	registry.MustRegister(cm.operations)
	return cm
}

// Record counts one codec call.
func (cm *CodecMetrics) Record(operation string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	cm.operations.WithLabelValues(operation, result).Inc()
}
