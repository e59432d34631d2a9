package ast

import "math/big"

// Node is implemented by every variant of the grammar.
// Each variant is a struct that embeds Meta and lists its grammar slots
// through Fields, in declaration order.
type Node interface {
	// Type returns the variant tag (e.g., "AnnAssign", "Name").
	Type() string
	// Metadata returns the node's metadata block for reading and stamping.
	Metadata() *Meta
	// Fields returns the node's grammar slots in a fixed order.
	Fields() []Field
}

// Definition is implemented by definition-style nodes. Only definitions carry
// a category; the annotator resolves it by DefinitionName.
type Definition interface {
	Node
	DefinitionName() string
}

// Category tags a definition with the kind of thing it declares.
type Category string

const (
	CategoryContract Category = "contract" // Contract or interface declaration
	CategoryStruct   Category = "struct"   // Struct declaration
)

// Meta is the metadata block shared by all node variants.
type Meta struct {
	NodeID   int       // Unique within one annotated tree, assigned in pre-order
	Source   *Source   // Shared original source (never copied per node)
	Span     Span      // Source position set by the parser
	Src      string    // "<start_byte>:<byte_length>:<source_index>"
	Category *Category // Definitions only; nil when unresolved
}

// Metadata returns the receiver, promoting the method to every variant.
func (m *Meta) Metadata() *Meta {
	return m
}

// FieldKind is the shape of a grammar slot.
type FieldKind int

const (
	ChildField  FieldKind = iota // A single child node
	ListField                    // An ordered list of child nodes
	ScalarField                  // A leaf value
)

// String returns the kind name.
func (k FieldKind) String() string {
	switch k {
	case ChildField:
		return "child"
	case ListField:
		return "list"
	case ScalarField:
		return "scalar"
	default:
		return "unknown"
	}
}

// Field is one grammar slot of a node. Slots hold pointers into the node so
// passes can read and replace children in place.
type Field struct {
	Name     string    // Canonical key in the dict form
	Kind     FieldKind // Shape of the slot
	Child    *Node     // Set for ChildField
	List     *[]Node   // Set for ListField
	Scalar   any       // Set for ScalarField: *string, *int, *float64, **big.Int or **bool
	Nullable bool      // ChildField may hold nil
}

// ChildSlot describes a required child slot.
func ChildSlot(name string, slot *Node) Field {
	return Field{Name: name, Kind: ChildField, Child: slot}
}

// OptionalChildSlot describes a child slot that may be nil.
func OptionalChildSlot(name string, slot *Node) Field {
	return Field{Name: name, Kind: ChildField, Child: slot, Nullable: true}
}

// ListSlot describes an ordered list slot.
func ListSlot(name string, slot *[]Node) Field {
	return Field{Name: name, Kind: ListField, List: slot}
}

// ScalarSlot describes a leaf slot. The pointer type determines the scalar kind.
func ScalarSlot(name string, slot any) Field {
	return Field{Name: name, Kind: ScalarField, Scalar: slot}
}

// Children returns the non-nil child nodes of n in slot order.
func Children(n Node) []Node {
	var out []Node
	for _, f := range n.Fields() {
		switch f.Kind {
		case ChildField:
			if *f.Child != nil {
				out = append(out, *f.Child)
			}
		case ListField:
			out = append(out, (*f.List)...)
		}
	}
	return out
}

// BigInt is a small helper for building integer literals.
func BigInt(v int64) *big.Int {
	return big.NewInt(v)
}
