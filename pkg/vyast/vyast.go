// Package vyast runs the post-parse passes over a compilation unit and
// converts the result to and from its dict form.
//
// A Pipeline annotates a raw tree and folds its negated literals:
//
//	unit := vyast.NewUnit("token", source, tree)
//	root, err := vyast.NewPipeline(vyast.WithLogger(logger)).Run(ctx, unit)
//
// The passes themselves live in the annotate, fold and dict subpackages and
// can be used on their own; the pipeline adds ids, logging, metrics and
// spans.
package vyast

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"vyper-hq/vast/pkg/telemetry/logging"
	"vyper-hq/vast/pkg/telemetry/metrics"
	"vyper-hq/vast/pkg/telemetry/tracing"
	"vyper-hq/vast/pkg/vyast/annotate"
	"vyper-hq/vast/pkg/vyast/ast"
	"vyper-hq/vast/pkg/vyast/dict"
	"vyper-hq/vast/pkg/vyast/fold"
)

// ErrNoTree is returned by Run and Encode for a unit without a tree.
var ErrNoTree = errors.New("unit has no tree")

// Unit is one compilation unit on its way from the parser to semantic
// analysis.
type Unit struct {
	// ID identifies the unit in logs.
	ID string

	// Name is the contract name.
	Name string

	Source *ast.Source
	Tree   ast.Node

	// Categories maps definition names to their category.
	Categories map[string]ast.Category
}

// NewUnit creates a unit with a fresh id.
func NewUnit(name string, source *ast.Source, tree ast.Node) *Unit {
	return &Unit{
		ID:         uuid.New().String(),
		Name:       name,
		Source:     source,
		Tree:       tree,
		Categories: map[string]ast.Category{},
	}
}

// Pipeline runs the annotator and the literal folder.
type Pipeline struct {
	logger  *slog.Logger
	metrics *metrics.Collector
	tracer  *tracing.Tracer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics sets the metrics collector. The default records nothing.
func WithMetrics(collector *metrics.Collector) Option {
	return func(p *Pipeline) {
		if collector != nil {
			p.metrics = collector
		}
	}
}

// WithTracer sets the tracer. The default records no spans.
func WithTracer(tracer *tracing.Tracer) Option {
	return func(p *Pipeline) {
		if tracer != nil {
			p.tracer = tracer
		}
	}
}

// NewPipeline creates a pipeline.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		logger:  slog.Default(),
		metrics: metrics.Noop(),
		tracer:  tracing.Noop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run annotates and folds the unit's tree in place and returns its root,
// which is also stored back into the unit.
func (p *Pipeline) Run(ctx context.Context, unit *Unit) (ast.Node, error) {
	if unit == nil || unit.Tree == nil {
		return nil, ErrNoTree
	}
	ctx = unitContext(ctx, unit)
	ctx, span := p.tracer.Start(ctx, "vyast.Run",
		trace.WithAttributes(tracing.UnitAttributes(unit.ID, unit.Name)...))
	defer span.End()

	_, annotateSpan := p.tracer.Start(ctx, "vyast.annotate")
	start := time.Now()
	nodes := annotate.Annotate(unit.Tree, unit.Source, unit.Categories)
	p.metrics.RecordAnnotate(nodes, time.Since(start))
	annotateSpan.SetAttributes(attribute.Int(tracing.AttrNodes, nodes))
	if unit.Source != nil {
		annotateSpan.SetAttributes(attribute.Int(tracing.AttrSourceIndex, unit.Source.Index))
	}
	annotateSpan.End()

	_, foldSpan := p.tracer.Start(ctx, "vyast.fold")
	start = time.Now()
	root, folded := fold.Fold(unit.Tree)
	p.metrics.RecordFold(folded, time.Since(start))
	foldSpan.SetAttributes(attribute.Int(tracing.AttrFolded, folded))
	foldSpan.End()
	unit.Tree = root

	span.SetAttributes(tracing.PassAttributes(nodes, folded)...)
	tracing.SetStatus(span, nil)

	attrs := []any{"nodes", nodes, "folded", folded}
	if id := tracing.TraceID(ctx); id != "" {
		attrs = append(attrs, "trace_id", id)
	}
	p.logger.InfoContext(ctx, "unit annotated", attrs...)
	return root, nil
}

// Encode converts the unit's tree to its dict form.
func (p *Pipeline) Encode(ctx context.Context, unit *Unit) (map[string]any, error) {
	if unit == nil || unit.Tree == nil {
		return nil, ErrNoTree
	}
	ctx = unitContext(ctx, unit)
	ctx, span := p.codecSpan(ctx, "encode", unit)
	defer span.End()

	m, err := dict.Encode(unit.Tree)
	p.metrics.RecordCodec("encode", err)
	tracing.SetStatus(span, err)
	if err != nil {
		p.logger.DebugContext(ctx, "encode failed", "error", err)
		return nil, err
	}
	return m, nil
}

// Decode rebuilds a unit from its dict form. The tree is taken as is: it is
// neither annotated nor folded again. opts are passed to dict.Decode after
// dict.WithSource.
func (p *Pipeline) Decode(ctx context.Context, name string, m map[string]any, source *ast.Source, opts ...dict.Option) (*Unit, error) {
	unit := NewUnit(name, source, nil)
	ctx = unitContext(ctx, unit)
	ctx, span := p.codecSpan(ctx, "decode", unit)
	defer span.End()

	tree, err := dict.Decode(m, append([]dict.Option{dict.WithSource(source)}, opts...)...)
	p.metrics.RecordCodec("decode", err)
	tracing.SetStatus(span, err)
	if err != nil {
		p.logger.DebugContext(ctx, "decode failed", "error", err)
		return nil, err
	}
	unit.Tree = tree
	return unit, nil
}

func (p *Pipeline) codecSpan(ctx context.Context, operation string, unit *Unit) (context.Context, trace.Span) {
	attrs := append(tracing.UnitAttributes(unit.ID, unit.Name), attribute.String(tracing.AttrOperation, operation))
	return p.tracer.Start(ctx, "vyast."+operation, trace.WithAttributes(attrs...))
}

// Annotate annotates and folds root with default settings and returns the
// new root.
func Annotate(root ast.Node, source *ast.Source, categories map[string]ast.Category) ast.Node {
	if root == nil {
		return nil
	}
	annotate.Annotate(root, source, categories)
	folded, _ := fold.Fold(root)
	return folded
}

func unitContext(ctx context.Context, unit *Unit) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithUnitID(ctx, unit.ID)
	if unit.Name != "" {
		ctx = logging.WithContract(ctx, unit.Name)
	}
	return ctx
}
