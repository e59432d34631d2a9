package logging

import (
	"context"
	"log/slog"
)

// Context keys for common log fields.
type contextKey string

const (
	// UnitIDKey is the context key for the id of the unit being processed.
	UnitIDKey contextKey = "unit_id"

	// ContractKey is the context key for the contract name.
	ContractKey contextKey = "contract"

	// PassKey is the context key for the running pass.
	PassKey contextKey = "pass"
)

var contextKeys = []contextKey{UnitIDKey, ContractKey, PassKey}

// WithUnitID adds a unit id to the context.
func WithUnitID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, UnitIDKey, id)
}

// GetUnitID retrieves the unit id from the context.
func GetUnitID(ctx context.Context) string {
	if id, ok := ctx.Value(UnitIDKey).(string); ok {
		return id
	}
	return ""
}

// WithContract adds a contract name to the context.
func WithContract(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ContractKey, name)
}

// GetContract retrieves the contract name from the context.
func GetContract(ctx context.Context) string {
	if name, ok := ctx.Value(ContractKey).(string); ok {
		return name
	}
	return ""
}

// WithPass adds the name of the running pass to the context.
func WithPass(ctx context.Context, pass string) context.Context {
	return context.WithValue(ctx, PassKey, pass)
}

// GetPass retrieves the pass name from the context.
func GetPass(ctx context.Context) string {
	if pass, ok := ctx.Value(PassKey).(string); ok {
		return pass
	}
	return ""
}

// extractContextFields returns the non-empty context fields as slog attrs.
func extractContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	var attrs []slog.Attr
	for _, key := range contextKeys {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			attrs = append(attrs, slog.String(string(key), v))
		}
	}
	return attrs
}

// contextHandler adds the context fields to every record logged with a
// context.
type contextHandler struct {
	slog.Handler
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs := extractContextFields(ctx); len(attrs) > 0 {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name)}
}
