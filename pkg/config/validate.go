package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "output.format").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
type ValidationError struct {
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

var (
	validLogLevels    = []string{"debug", "info", "warn", "error"}
	validLogFormats   = []string{"json", "text", "console"}
	validOutputFormat = []string{"json", "yaml"}
	validCategories   = []string{"contract", "struct"}
	validSamplers     = []string{"always", "never", "ratio"}
	validExporters    = []string{"otlp"}

	metricNamespace = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// Validate checks the configuration and returns a ValidationError listing
// every rule that fails, or nil.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateLogging(&cfg.Logging)...)
	errs = append(errs, validateMetrics(&cfg.Metrics)...)
	errs = append(errs, validateTracing(&cfg.Tracing)...)
	errs = append(errs, validateOutput(&cfg.Output)...)
	errs = append(errs, validateSource(&cfg.Source)...)
	errs = append(errs, validateCategories(cfg.Categories)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateLogging(cfg *LoggingConfig) []FieldError {
	var errs []FieldError
	if !contains(validLogLevels, strings.ToLower(cfg.Level)) {
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validLogLevels, ", "), cfg.Level),
		})
	}
	if !contains(validLogFormats, strings.ToLower(cfg.Format)) {
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validLogFormats, ", "), cfg.Format),
		})
	}
	return errs
}

func validateMetrics(cfg *MetricsConfig) []FieldError {
	if !cfg.Enabled {
		return nil
	}
	var errs []FieldError
	if !metricNamespace.MatchString(cfg.Namespace) {
		errs = append(errs, FieldError{
			Field:   "metrics.namespace",
			Message: fmt.Sprintf("must be a valid metric name prefix, got %q", cfg.Namespace),
		})
	}
	return errs
}

func validateTracing(cfg *TracingConfig) []FieldError {
	if !cfg.Enabled {
		return nil
	}
	var errs []FieldError
	if !contains(validSamplers, cfg.Sampler) {
		errs = append(errs, FieldError{
			Field:   "tracing.sampler",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validSamplers, ", "), cfg.Sampler),
		})
	}
	if cfg.Sampler == "ratio" && (cfg.SampleRatio < 0 || cfg.SampleRatio > 1) {
		errs = append(errs, FieldError{
			Field:   "tracing.sample_ratio",
			Message: fmt.Sprintf("must be between 0.0 and 1.0, got %g", cfg.SampleRatio),
		})
	}
	if !contains(validExporters, cfg.Exporter) {
		errs = append(errs, FieldError{
			Field:   "tracing.exporter",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validExporters, ", "), cfg.Exporter),
		})
	}
	if cfg.Endpoint == "" {
		errs = append(errs, FieldError{Field: "tracing.endpoint", Message: "cannot be empty when tracing is enabled"})
	}
	if cfg.Timeout < 0 {
		errs = append(errs, FieldError{
			Field:   "tracing.timeout",
			Message: fmt.Sprintf("must be non-negative, got %s", cfg.Timeout),
		})
	}
	return errs
}

func validateOutput(cfg *OutputConfig) []FieldError {
	var errs []FieldError
	if !contains(validOutputFormat, strings.ToLower(cfg.Format)) {
		errs = append(errs, FieldError{
			Field:   "output.format",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validOutputFormat, ", "), cfg.Format),
		})
	}
	if cfg.Indent < 0 || cfg.Indent > 8 {
		errs = append(errs, FieldError{
			Field:   "output.indent",
			Message: fmt.Sprintf("must be between 0 and 8, got %d", cfg.Indent),
		})
	}
	return errs
}

func validateSource(cfg *SourceConfig) []FieldError {
	if cfg.Index < 0 {
		return []FieldError{{
			Field:   "source.index",
			Message: fmt.Sprintf("must be non-negative, got %d", cfg.Index),
		}}
	}
	return nil
}

func validateCategories(categories map[string]string) []FieldError {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []FieldError
	for _, name := range names {
		if name == "" {
			errs = append(errs, FieldError{Field: "categories", Message: "definition name cannot be empty"})
			continue
		}
		if !contains(validCategories, categories[name]) {
			errs = append(errs, FieldError{
				Field:   "categories." + name,
				Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validCategories, ", "), categories[name]),
			})
		}
	}
	return errs
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
