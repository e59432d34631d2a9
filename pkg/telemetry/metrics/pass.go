package metrics

import (
	"time"

	"vyper-hq/vast/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Pass names used as the pass label.
const (
	PassAnnotate = "annotate"
	PassFold     = "fold"
)

// PassMetrics tracks the tree passes.
//
// Metrics:
//   - vast_nodes_annotated_total: nodes numbered by the annotator
//   - vast_literals_folded_total: negated literals rewritten by the folder
//   - vast_pass_duration_seconds: pass duration histogram by pass
type PassMetrics struct {
	nodesAnnotated prometheus.Counter
	literalsFolded prometheus.Counter
	passDuration   *prometheus.HistogramVec
}

// NewPassMetrics creates and registers pass metrics with the provided registry.
func NewPassMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *PassMetrics {
	pm := &PassMetrics{
		nodesAnnotated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "nodes_annotated_total",
			Help:      "Total number of nodes numbered by the annotator",
		}),
		literalsFolded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "literals_folded_total",
			Help:      "Total number of negated literals folded",
		}),
		passDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "pass_duration_seconds",
				Help:      "Duration of tree passes in seconds",
				// Passes over real contracts finish in well under a second.
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"pass"},
		),
	}

	registry.MustRegister(pm.nodesAnnotated, pm.literalsFolded, pm.passDuration)
	return pm
}

// RecordAnnotate records an annotation pass.
func (pm *PassMetrics) RecordAnnotate(nodes int, duration time.Duration) {
	pm.nodesAnnotated.Add(float64(nodes))
	pm.passDuration.WithLabelValues(PassAnnotate).Observe(duration.Seconds())
}

// RecordFold records a folding pass.
func (pm *PassMetrics) RecordFold(folded int, duration time.Duration) {
	pm.literalsFolded.Add(float64(folded))
	pm.passDuration.WithLabelValues(PassFold).Observe(duration.Seconds())
}
