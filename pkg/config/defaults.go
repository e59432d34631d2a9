package config

import "time"

// Default values applied by ApplyDefaults.
const (
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultMetricsNamespace = "vast"
	DefaultOutputFormat     = "json"
	DefaultOutputIndent     = 2

	DefaultTracingSampler  = "always"
	DefaultTracingExporter = "otlp"
	DefaultTracingEndpoint = "localhost:4317"
	DefaultServiceName     = "vast"
	DefaultTracingTimeout  = 10 * time.Second
)

// Default returns a configuration populated with default values.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills every zero-valued field that has a default.
// Fields already set are left unchanged.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}

	if cfg.Tracing.Sampler == "" {
		cfg.Tracing.Sampler = DefaultTracingSampler
	}
	if cfg.Tracing.Exporter == "" {
		cfg.Tracing.Exporter = DefaultTracingExporter
	}
	if cfg.Tracing.Endpoint == "" {
		cfg.Tracing.Endpoint = DefaultTracingEndpoint
	}
	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = DefaultServiceName
	}
	if cfg.Tracing.Timeout == 0 {
		cfg.Tracing.Timeout = DefaultTracingTimeout
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
	if cfg.Output.Indent == 0 {
		cfg.Output.Indent = DefaultOutputIndent
	}

	if cfg.Categories == nil {
		cfg.Categories = map[string]string{}
	}
}
