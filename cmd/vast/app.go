package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"vyper-hq/vast/pkg/config"
	"vyper-hq/vast/pkg/telemetry/logging"
	"vyper-hq/vast/pkg/telemetry/metrics"
	"vyper-hq/vast/pkg/telemetry/tracing"
	"vyper-hq/vast/pkg/vyast"
	"vyper-hq/vast/pkg/vyast/ast"
)

// shutdownTimeout bounds the final span flush.
const shutdownTimeout = 5 * time.Second

// app holds what every command needs: configuration, telemetry and the
// pipeline built from them.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	metrics  *metrics.Collector
	tracer   *tracing.Tracer
	pipeline *vyast.Pipeline
	textfile string
}

// newApp loads the configuration and builds the logger, metrics collector,
// tracer and pipeline. A missing config file is only an error when --config
// was given explicitly.
func newApp(cmd *cobra.Command) (*app, error) {
	allowMissing := cmd == nil || !cmd.Flags().Changed("config")
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile, allowMissing)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{
		Level:     level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
		Writer:    errWriter(cmd),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	metricsCfg := cfg.Metrics
	textfile := metricsCfg.TextfilePath
	if metricsOut != "" {
		metricsCfg.Enabled = true
		textfile = metricsOut
	}
	collector := metrics.NewCollector(&metricsCfg, nil)

	tracer, err := tracing.New(&cfg.Tracing, tracing.WithServiceVersion(Version))
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		metrics: collector,
		tracer:  tracer,
		pipeline: vyast.NewPipeline(
			vyast.WithLogger(logger),
			vyast.WithMetrics(collector),
			vyast.WithTracer(tracer),
		),
		textfile: textfile,
	}, nil
}

// close flushes pending spans and writes metrics to the textfile, if one is
// configured.
func (a *app) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.tracer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to flush spans: %w", err))
	}
	if err := a.metrics.WriteTextfile(a.textfile); err != nil {
		errs = append(errs, fmt.Errorf("failed to write metrics: %w", err))
	}
	return errors.Join(errs...)
}

// categories returns the configured categories overlaid with those in path.
func (a *app) categories(path string) (map[string]ast.Category, error) {
	merged := make(map[string]string, len(a.cfg.Categories))
	for name, tag := range a.cfg.Categories {
		merged[name] = tag
	}
	if path != "" {
		fromFile, err := loadCategories(path)
		if err != nil {
			return nil, err
		}
		for name, tag := range fromFile {
			merged[name] = tag
		}
	}
	return toCategories(merged)
}

// loadCategories reads a name to tag mapping from a YAML or JSON file.
func loadCategories(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories %q: %w", path, err)
	}
	var out map[string]string
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse categories %q: %w", path, err)
	}
	return out, nil
}

func toCategories(in map[string]string) (map[string]ast.Category, error) {
	out := make(map[string]ast.Category, len(in))
	var bad []string
	for name, tag := range in {
		switch c := ast.Category(tag); c {
		case ast.CategoryContract, ast.CategoryStruct:
			out[name] = c
		default:
			bad = append(bad, fmt.Sprintf("%s=%q", name, tag))
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return nil, fmt.Errorf("invalid categories %s (want contract or struct)", strings.Join(bad, ", "))
	}
	return out, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

func errWriter(cmd *cobra.Command) io.Writer {
	if cmd == nil {
		return os.Stderr
	}
	return cmd.ErrOrStderr()
}
