package config

import "time"

// Config is the root configuration structure for vast.
type Config struct {
	// Logging controls the structured logger used by the CLI and the pipeline.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics controls the prometheus collector and the textfile it is
	// flushed to at the end of a run.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing controls OpenTelemetry spans around the pipeline passes.
	Tracing TracingConfig `yaml:"tracing"`

	// Output controls how annotated documents are written.
	Output OutputConfig `yaml:"output"`

	// Source describes the source unit the trees were parsed from.
	Source SourceConfig `yaml:"source"`

	// Categories maps definition names to their category tag
	// (e.g. "Point": "struct"). Unlisted definitions stay unresolved.
	Categories map[string]string `yaml:"categories"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum level to log: debug, info, warn, error.
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: json, text or console.
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes the caller file and line in each record.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains metrics configuration.
type MetricsConfig struct {
	// Enabled turns on metric collection.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Namespace prefixes every metric name.
	// Default: "vast"
	Namespace string `yaml:"namespace"`

	// TextfilePath, when set, receives the registry in the prometheus text
	// format after each command.
	TextfilePath string `yaml:"textfile_path"`
}

// TracingConfig contains OpenTelemetry tracing configuration.
type TracingConfig struct {
	// Enabled turns on span export.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Sampler determines the sampling strategy.
	// Options: "always", "never", "ratio"
	// Default: "always"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of runs to sample (0.0 to 1.0).
	// Only used when Sampler is "ratio".
	SampleRatio float64 `yaml:"sample_ratio"`

	// Exporter is the span exporter. Only "otlp" (gRPC) is supported.
	// Default: "otlp"
	Exporter string `yaml:"exporter"`

	// Endpoint is the collector address.
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// ServiceName is reported as the service.name resource attribute.
	// Default: "vast"
	ServiceName string `yaml:"service_name"`

	// Insecure disables TLS to the collector.
	Insecure bool `yaml:"insecure"`

	// Timeout bounds each export.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`
}

// OutputConfig contains settings for written documents.
type OutputConfig struct {
	// Format is the document encoding: json or yaml.
	// Default: "json"
	Format string `yaml:"format"`

	// Indent is the number of spaces used per nesting level.
	// Default: 2
	Indent int `yaml:"indent"`
}

// SourceConfig describes the source unit.
type SourceConfig struct {
	// Index is the source unit index written as the third component of
	// every src summary.
	// Default: 0
	Index int `yaml:"index"`
}
