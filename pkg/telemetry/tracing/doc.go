// Package tracing provides OpenTelemetry tracing for the tree pipeline.
//
// A run produces one "vyast.Run" span with a child span per pass, and codec
// calls produce "vyast.encode" and "vyast.decode" spans:
//
//	vyast.Run            vast.unit.id, vast.contract, vast.nodes, vast.folded
//	├── vyast.annotate   vast.nodes, vast.source.index
//	└── vyast.fold       vast.folded
//
// Spans are exported over OTLP gRPC:
//
//	tracing:
//	  enabled: true
//	  sampler: always
//	  endpoint: localhost:4317
//	  insecure: true
//
// When tracing is disabled the tracer is a noop and spans cost almost nothing.
// Tests can capture spans with WithSpanProcessor and the SDK's span recorder:
//
//	recorder := tracetest.NewSpanRecorder()
//	tracer, _ := tracing.New(cfg, tracing.WithSpanProcessor(recorder))
package tracing
