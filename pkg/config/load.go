package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadConfigWithEnvOverrides.
const (
	EnvLogLevel        = "VAST_LOG_LEVEL"
	EnvLogFormat       = "VAST_LOG_FORMAT"
	EnvOutputFormat    = "VAST_OUTPUT_FORMAT"
	EnvMetricsEnabled  = "VAST_METRICS_ENABLED"
	EnvSourceIndex     = "VAST_SOURCE_INDEX"
	EnvTracingEnabled  = "VAST_TRACING_ENABLED"
	EnvTracingEndpoint = "VAST_TRACING_ENDPOINT"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration file %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from path and then applies
// the VAST_* environment variables, which take precedence over the file.
// An empty path, or a path that does not exist when allowMissing is set,
// starts from the defaults.
//
// The loading sequence is:
// 1. Load YAML from file (or defaults)
// 2. Apply environment variable overrides
// 3. Validate final configuration
func LoadConfigWithEnvOverrides(path string, allowMissing bool) (*Config, error) {
	var cfg *Config
	switch {
	case path == "":
		cfg = Default()
	default:
		loaded, err := LoadConfig(path)
		if err != nil {
			if !allowMissing || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
			loaded = Default()
		}
		cfg = loaded
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration invalid after environment overrides: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	// env caches os.Environ on first use; reload so each call sees the current environment.
	env.Load()
	cfg.Logging.Level = env.Str(EnvLogLevel, cfg.Logging.Level)
	cfg.Logging.Format = env.Str(EnvLogFormat, cfg.Logging.Format)
	cfg.Output.Format = env.Str(EnvOutputFormat, cfg.Output.Format)
	if env.Has(EnvMetricsEnabled) {
		cfg.Metrics.Enabled = env.Bool(EnvMetricsEnabled)
	}
	if env.Has(EnvTracingEnabled) {
		cfg.Tracing.Enabled = env.Bool(EnvTracingEnabled)
	}
	cfg.Tracing.Endpoint = env.Str(EnvTracingEndpoint, cfg.Tracing.Endpoint)
	cfg.Source.Index = env.Int(EnvSourceIndex, cfg.Source.Index)
}
