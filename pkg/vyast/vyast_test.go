package vyast

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"vyper-hq/vast/internal/testtrees"
	"vyper-hq/vast/pkg/config"
	"vyper-hq/vast/pkg/telemetry/logging"
	"vyper-hq/vast/pkg/telemetry/metrics"
	"vyper-hq/vast/pkg/telemetry/tracing"
	"vyper-hq/vast/pkg/vyast/ast"
	"vyper-hq/vast/pkg/vyast/dict"
	vErrors "vyper-hq/vast/pkg/vyast/errors"
)

func TestNewUnit(t *testing.T) {
	unit := NewUnit("token", nil, nil)
	if _, err := uuid.Parse(unit.ID); err != nil {
		t.Errorf("ID %q is not a uuid: %v", unit.ID, err)
	}
	if other := NewUnit("token", nil, nil); other.ID == unit.ID {
		t.Error("units share an id")
	}
	if unit.Categories == nil {
		t.Error("Categories should be initialized")
	}
}

func TestPipeline_Run(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Config{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New() error = %v", err)
	}
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(&config.MetricsConfig{Enabled: true, Namespace: "vast"}, registry)

	unit := NewUnit("test", ast.NewSource(testtrees.FunctionSource, 0), testtrees.Function())
	p := NewPipeline(WithLogger(logger), WithMetrics(collector))

	root, err := p.Run(context.Background(), unit)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if root != unit.Tree {
		t.Error("Run() did not store the root in the unit")
	}
	if len(ast.Find(root, "UnaryOp")) != 0 {
		t.Error("Run() left a foldable UnaryOp")
	}

	out := buf.String()
	for _, want := range []string{`"msg":"unit annotated"`, `"unit_id":"` + unit.ID + `"`, `"contract":"test"`, `"folded":1`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}

	const expected = `
# HELP vast_literals_folded_total Total number of negated literals folded
# TYPE vast_literals_folded_total counter
vast_literals_folded_total 1
`
	if err := testutil.GatherAndCompare(registry, strings.NewReader(expected), "vast_literals_folded_total"); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestPipeline_RunNoTree(t *testing.T) {
	p := NewPipeline(WithLogger(logging.Discard()))

	if _, err := p.Run(context.Background(), nil); !errors.Is(err, ErrNoTree) {
		t.Errorf("Run(nil) error = %v, want ErrNoTree", err)
	}
	if _, err := p.Run(context.Background(), NewUnit("x", nil, nil)); !errors.Is(err, ErrNoTree) {
		t.Errorf("Run(empty unit) error = %v, want ErrNoTree", err)
	}
	if _, err := p.Encode(context.Background(), NewUnit("x", nil, nil)); !errors.Is(err, ErrNoTree) {
		t.Errorf("Encode(empty unit) error = %v, want ErrNoTree", err)
	}
}

func TestPipeline_EncodeDecode(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(&config.MetricsConfig{Enabled: true, Namespace: "vast"}, registry)
	p := NewPipeline(WithLogger(logging.Discard()), WithMetrics(collector))

	src := ast.NewSource(testtrees.StructSource, 0)
	unit := NewUnit("origin", src, testtrees.Structs())
	unit.Categories["Point"] = ast.CategoryStruct
	unit.Categories["Token"] = ast.CategoryContract

	ctx := context.Background()
	if _, err := p.Run(ctx, unit); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	m, err := p.Encode(ctx, unit)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	back, err := p.Decode(ctx, "origin", m, src)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !ast.Equal(unit.Tree, back.Tree) {
		t.Error("decoded tree differs from the encoded one")
	}
	if back.ID == unit.ID {
		t.Error("decoded unit should get a fresh id")
	}

	m["ast_type"] = "Modul"
	if _, err := p.Decode(ctx, "origin", m, src); !errors.Is(err, vErrors.ErrUnknownVariant) {
		t.Errorf("Decode() error = %v, want ErrUnknownVariant", err)
	}

	const expected = `
# HELP vast_codec_operations_total Total number of dict codec operations
# TYPE vast_codec_operations_total counter
vast_codec_operations_total{operation="decode",result="error"} 1
vast_codec_operations_total{operation="decode",result="success"} 1
vast_codec_operations_total{operation="encode",result="success"} 1
`
	if err := testutil.GatherAndCompare(registry, strings.NewReader(expected), "vast_codec_operations_total"); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestPipeline_DecodeRaw(t *testing.T) {
	p := NewPipeline(WithLogger(logging.Discard()))
	raw := map[string]any{
		"ast_type": "Module", "body": []any{},
		"lineno": 1, "col_offset": 0, "end_lineno": 1, "end_col_offset": 0,
	}

	ctx := context.Background()
	if _, err := p.Decode(ctx, "empty", raw, nil); !errors.Is(err, vErrors.ErrMissingField) {
		t.Fatalf("Decode() error = %v, want ErrMissingField", err)
	}
	unit, err := p.Decode(ctx, "empty", raw, nil, dict.Raw())
	if err != nil {
		t.Fatalf("Decode(Raw) error = %v", err)
	}
	if _, ok := unit.Tree.(*ast.Module); !ok {
		t.Errorf("Tree = %T, want *ast.Module", unit.Tree)
	}
}

func TestAnnotate(t *testing.T) {
	src := ast.NewSource(testtrees.FunctionSource, 0)
	root := Annotate(testtrees.Function(), src, nil)

	if root.Metadata().NodeID != 0 {
		t.Errorf("root NodeID = %d, want 0", root.Metadata().NodeID)
	}
	if root.Metadata().Source != src {
		t.Error("root Source not set")
	}
	if Annotate(nil, src, nil) != nil {
		t.Error("Annotate(nil) should return nil")
	}
}

func TestPipeline_Defaults(t *testing.T) {
	p := NewPipeline(WithLogger(nil), WithMetrics(nil), WithTracer(nil))
	if p.logger == nil || p.metrics == nil || p.tracer == nil {
		t.Fatal("nil options should keep the defaults")
	}
	if p.metrics.Enabled() {
		t.Error("default collector should be disabled")
	}
	if p.tracer.Enabled() {
		t.Error("default tracer should be disabled")
	}
	// The default collector accepts records without a registry in use.
	p.metrics.RecordAnnotate(1, time.Millisecond)
}

func TestPipeline_Spans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracer, err := tracing.New(&config.TracingConfig{Enabled: true, Sampler: tracing.SamplerAlways},
		tracing.WithSpanProcessor(recorder))
	if err != nil {
		t.Fatalf("tracing.New() error = %v", err)
	}
	defer tracer.Shutdown(context.Background())

	var buf bytes.Buffer
	logger, err := logging.New(logging.Config{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New() error = %v", err)
	}
	p := NewPipeline(WithLogger(logger), WithTracer(tracer))

	ctx := context.Background()
	unit := NewUnit("basic", ast.NewSource(testtrees.BasicSource, 2), testtrees.Basic())
	if _, err := p.Run(ctx, unit); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, err := p.Decode(ctx, "bad", map[string]any{"ast_type": "Modul"}, nil); err == nil {
		t.Fatal("Decode() should fail")
	}

	byName := map[string]int{}
	spans := recorder.Ended()
	for i, s := range spans {
		byName[s.Name()] = i
	}
	for _, name := range []string{"vyast.Run", "vyast.annotate", "vyast.fold", "vyast.decode"} {
		if _, ok := byName[name]; !ok {
			t.Fatalf("span %q not recorded; got %d spans", name, len(spans))
		}
	}

	run := spans[byName["vyast.Run"]]
	annotateSpan := spans[byName["vyast.annotate"]]
	if annotateSpan.Parent().SpanID() != run.SpanContext().SpanID() {
		t.Error("annotate span should be a child of the run span")
	}
	wantAttrs := []attribute.KeyValue{
		attribute.String(tracing.AttrUnitID, unit.ID),
		attribute.String(tracing.AttrContract, "basic"),
		attribute.Int(tracing.AttrNodes, 6),
		attribute.Int(tracing.AttrFolded, 0),
	}
	for _, want := range wantAttrs {
		if !hasAttr(run.Attributes(), want) {
			t.Errorf("run span missing %s=%s: %v", want.Key, want.Value.Emit(), run.Attributes())
		}
	}
	if !hasAttr(annotateSpan.Attributes(), attribute.Int(tracing.AttrSourceIndex, 2)) {
		t.Errorf("annotate span missing source index: %v", annotateSpan.Attributes())
	}

	decode := spans[byName["vyast.decode"]]
	if decode.Status().Code != codes.Error {
		t.Errorf("decode status = %v, want Error", decode.Status().Code)
	}

	if !strings.Contains(buf.String(), `"trace_id":"`+run.SpanContext().TraceID().String()+`"`) {
		t.Errorf("log record missing trace id:\n%s", buf.String())
	}
}

func hasAttr(attrs []attribute.KeyValue, want attribute.KeyValue) bool {
	for _, a := range attrs {
		if a.Key == want.Key && a.Value == want.Value {
			return true
		}
	}
	return false
}
