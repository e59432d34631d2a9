package metrics

import (
	"fmt"
	"time"

	"vyper-hq/vast/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector records pipeline metrics on its own registry.
//
// A collector built from a disabled configuration accepts every call and
// records nothing, so callers never need to check whether metrics are on.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	passMetrics  *PassMetrics
	codecMetrics *CodecMetrics
}

// NewCollector creates a collector with the specified configuration and
// registry. If registry is nil, a fresh registry is created.
//
// Example:
//
//	cfg := &config.MetricsConfig{Enabled: true, Namespace: "vast"}
//	collector := metrics.NewCollector(cfg, nil)
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if cfg == nil {
		cfg = &config.MetricsConfig{}
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}

	return &Collector{
		config:       cfg,
		registry:     registry,
		passMetrics:  NewPassMetrics(cfg, registry),
		codecMetrics: NewCodecMetrics(cfg, registry),
	}
}

// Noop returns a disabled collector.
func Noop() *Collector {
	return NewCollector(&config.MetricsConfig{}, nil)
}

// Enabled reports whether the collector records anything.
func (c *Collector) Enabled() bool {
	return c != nil && c.config.Enabled
}

// Registry returns the registry the collector's metrics live on.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordAnnotate records one annotation pass over nodes nodes.
func (c *Collector) RecordAnnotate(nodes int, duration time.Duration) {
	if !c.Enabled() {
		return
	}
	c.passMetrics.RecordAnnotate(nodes, duration)
}

// RecordFold records one folding pass that rewrote folded literals.
func (c *Collector) RecordFold(folded int, duration time.Duration) {
	if !c.Enabled() {
		return
	}
	c.passMetrics.RecordFold(folded, duration)
}

// RecordCodec records one encode or decode call.
//
// Parameters:
//   - operation: "encode" or "decode"
//   - err: the error returned by the call, nil on success
func (c *Collector) RecordCodec(operation string, err error) {
	if !c.Enabled() {
		return
	}
	c.codecMetrics.Record(operation, err)
}

// WriteTextfile writes the registry to path in the prometheus text format,
// for pickup by the node exporter textfile collector. A disabled collector
// writes nothing.
func (c *Collector) WriteTextfile(path string) error {
	if !c.Enabled() || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %q: %w", path, err)
	}
	return nil
}
