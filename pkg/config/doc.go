// Package config provides configuration management for vast.
//
// Configuration is read from a YAML file, completed with defaults and then
// validated. Every validation failure is collected and reported together as
// a ValidationError.
//
//	cfg, err := config.LoadConfig("vast.yaml")
//
// # Environment Variable Overrides
//
// LoadConfigWithEnvOverrides additionally applies the following variables,
// which always take precedence over the file:
//
//   - VAST_LOG_LEVEL overrides logging.level
//   - VAST_LOG_FORMAT overrides logging.format
//   - VAST_OUTPUT_FORMAT overrides output.format
//   - VAST_METRICS_ENABLED overrides metrics.enabled
//   - VAST_SOURCE_INDEX overrides source.index
//   - VAST_TRACING_ENABLED overrides tracing.enabled
//   - VAST_TRACING_ENDPOINT overrides tracing.endpoint
//
// # Example Configuration
//
//	logging:
//	  level: debug
//	  format: json
//	metrics:
//	  enabled: true
//	  textfile_path: /var/lib/node_exporter/vast.prom
//	tracing:
//	  enabled: true
//	  endpoint: localhost:4317
//	  insecure: true
//	output:
//	  format: yaml
//	  indent: 4
//	source:
//	  index: 0
//	categories:
//	  Point: struct
//	  Token: contract
package config
