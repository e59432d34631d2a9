package ast

import "math/big"

// Name is a reference to an identifier. Ctx is Load, Store or Del.
type Name struct {
	Meta
	ID  string
	Ctx Node
}

func (n *Name) Type() string { return "Name" }
func (n *Name) Fields() []Field {
	return []Field{
		ScalarSlot("id", &n.ID),
		ChildSlot("ctx", &n.Ctx),
	}
}

// Attribute is a member access "value.attr".
type Attribute struct {
	Meta
	Value Node
	Attr  string
	Ctx   Node
}

func (n *Attribute) Type() string { return "Attribute" }
func (n *Attribute) Fields() []Field {
	return []Field{
		ChildSlot("value", &n.Value),
		ScalarSlot("attr", &n.Attr),
		ChildSlot("ctx", &n.Ctx),
	}
}

// Subscript is "value[slice]"; also used for sized types such as bytes[11].
type Subscript struct {
	Meta
	Value Node
	Slice Node
	Ctx   Node
}

func (n *Subscript) Type() string { return "Subscript" }
func (n *Subscript) Fields() []Field {
	return []Field{
		ChildSlot("value", &n.Value),
		ChildSlot("slice", &n.Slice),
		ChildSlot("ctx", &n.Ctx),
	}
}

// Index is the slice of a Subscript holding a single index expression.
type Index struct {
	Meta
	Value Node
}

func (n *Index) Type() string { return "Index" }
func (n *Index) Fields() []Field {
	return []Field{ChildSlot("value", &n.Value)}
}

// Call is a function call with positional Args and keyword arguments.
type Call struct {
	Meta
	Func     Node
	Args     []Node
	Keywords []Node // []*Keyword
}

func (n *Call) Type() string { return "Call" }
func (n *Call) Fields() []Field {
	return []Field{
		ChildSlot("func", &n.Func),
		ListSlot("args", &n.Args),
		ListSlot("keywords", &n.Keywords),
	}
}

// Keyword is a keyword argument of a call.
type Keyword struct {
	Meta
	Arg   string
	Value Node
}

func (n *Keyword) Type() string { return "keyword" }
func (n *Keyword) Fields() []Field {
	return []Field{
		ScalarSlot("arg", &n.Arg),
		ChildSlot("value", &n.Value),
	}
}

// BinOp is a binary arithmetic or bitwise operation "left op right".
type BinOp struct {
	Meta
	Left  Node
	Op    Node
	Right Node
}

func (n *BinOp) Type() string { return "BinOp" }
func (n *BinOp) Fields() []Field {
	return []Field{
		ChildSlot("left", &n.Left),
		ChildSlot("op", &n.Op),
		ChildSlot("right", &n.Right),
	}
}

// UnaryOp applies USub, Not or Invert to an operand.
type UnaryOp struct {
	Meta
	Op      Node
	Operand Node
}

func (n *UnaryOp) Type() string { return "UnaryOp" }
func (n *UnaryOp) Fields() []Field {
	return []Field{
		ChildSlot("op", &n.Op),
		ChildSlot("operand", &n.Operand),
	}
}

// BoolOp joins two or more Values with And or Or.
type BoolOp struct {
	Meta
	Op     Node
	Values []Node
}

func (n *BoolOp) Type() string { return "BoolOp" }
func (n *BoolOp) Fields() []Field {
	return []Field{
		ChildSlot("op", &n.Op),
		ListSlot("values", &n.Values),
	}
}

// Compare is a chained comparison; len(Ops) == len(Comparators).
type Compare struct {
	Meta
	Left        Node
	Ops         []Node
	Comparators []Node
}

func (n *Compare) Type() string { return "Compare" }
func (n *Compare) Fields() []Field {
	return []Field{
		ChildSlot("left", &n.Left),
		ListSlot("ops", &n.Ops),
		ListSlot("comparators", &n.Comparators),
	}
}

// Tuple is a parenthesized, comma separated sequence of expressions.
type Tuple struct {
	Meta
	Elts []Node
	Ctx  Node
}

func (n *Tuple) Type() string { return "Tuple" }
func (n *Tuple) Fields() []Field {
	return []Field{
		ListSlot("elts", &n.Elts),
		ChildSlot("ctx", &n.Ctx),
	}
}

// List is a bracketed list literal.
type List struct {
	Meta
	Elts []Node
	Ctx  Node
}

func (n *List) Type() string { return "List" }
func (n *List) Fields() []Field {
	return []Field{
		ListSlot("elts", &n.Elts),
		ChildSlot("ctx", &n.Ctx),
	}
}

// Dict is a mapping literal; Keys and Values have the same length.
type Dict struct {
	Meta
	Keys   []Node
	Values []Node
}

func (n *Dict) Type() string { return "Dict" }
func (n *Dict) Fields() []Field {
	return []Field{
		ListSlot("keys", &n.Keys),
		ListSlot("values", &n.Values),
	}
}

// Int is an integer literal of arbitrary precision.
type Int struct {
	Meta
	N *big.Int
}

func (n *Int) Type() string { return "Int" }
func (n *Int) Fields() []Field {
	return []Field{ScalarSlot("n", &n.N)}
}

// Decimal is a fixed-point literal such as 3.31337.
type Decimal struct {
	Meta
	N float64
}

func (n *Decimal) Type() string { return "Decimal" }
func (n *Decimal) Fields() []Field {
	return []Field{ScalarSlot("n", &n.N)}
}

// Hex is a hexadecimal literal, used for addresses. Value keeps the source
// spelling including the 0x prefix.
type Hex struct {
	Meta
	Value string
}

func (n *Hex) Type() string { return "Hex" }
func (n *Hex) Fields() []Field {
	return []Field{ScalarSlot("value", &n.Value)}
}

// Str is a string literal.
type Str struct {
	Meta
	S string
}

func (n *Str) Type() string { return "Str" }
func (n *Str) Fields() []Field {
	return []Field{ScalarSlot("s", &n.S)}
}

// Bytes is a byte string literal. S holds the raw bytes.
type Bytes struct {
	Meta
	S string
}

func (n *Bytes) Type() string { return "Bytes" }
func (n *Bytes) Fields() []Field {
	return []Field{ScalarSlot("s", &n.S)}
}

// NameConstant is True, False (Value set) or None (Value nil).
type NameConstant struct {
	Meta
	Value *bool
}

func (n *NameConstant) Type() string { return "NameConstant" }
func (n *NameConstant) Fields() []Field {
	return []Field{ScalarSlot("value", &n.Value)}
}

// Bool returns a pointer to v, for NameConstant values.
func Bool(v bool) *bool {
	return &v
}

// IsNumericLiteral reports whether n is an Int or Decimal literal.
func IsNumericLiteral(n Node) bool {
	switch n.(type) {
	case *Int, *Decimal:
		return true
	default:
		return false
	}
}
