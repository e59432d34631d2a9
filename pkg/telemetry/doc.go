// Package telemetry groups the observability packages used by vast.
//
// # Components
//
//   - logging: slog loggers configured from the logging section, with the
//     unit id, contract and pass taken from the context
//   - metrics: Prometheus counters and histograms for the tree passes and
//     the dict codec, written to a textfile after each command
//   - tracing: OpenTelemetry spans around each run, pass and codec call,
//     exported over OTLP gRPC
//
// # Usage
//
//	logger, _ := logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//	tracer, _ := tracing.New(&cfg.Tracing)
//	defer tracer.Shutdown(context.Background())
//
//	pipeline := vyast.NewPipeline(
//		vyast.WithLogger(logger),
//		vyast.WithMetrics(collector),
//		vyast.WithTracer(tracer),
//	)
//
// Every component is cheap when disabled: the metrics collector drops
// records and the tracer hands out noop spans.
package telemetry
