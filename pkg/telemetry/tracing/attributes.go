package tracing

import (
	"go.opentelemetry.io/otel/attribute"
)

// Span attribute keys, in the "vast.*" namespace.
const (
	AttrUnitID      = "vast.unit.id"
	AttrContract    = "vast.contract"
	AttrSourceIndex = "vast.source.index"
	AttrNodes       = "vast.nodes"
	AttrFolded      = "vast.folded"
	AttrOperation   = "vast.codec.operation"
)

// UnitAttributes returns the attributes identifying a compilation unit.
// An empty contract name is left out.
func UnitAttributes(unitID, contract string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String(AttrUnitID, unitID)}
	if contract != "" {
		attrs = append(attrs, attribute.String(AttrContract, contract))
	}
	return attrs
}

// PassAttributes returns the results of the annotation and folding passes.
func PassAttributes(nodes, folded int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int(AttrNodes, nodes),
		attribute.Int(AttrFolded, folded),
	}
}
