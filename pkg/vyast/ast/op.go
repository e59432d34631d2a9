package ast

// Expression contexts, operators and comparison operators are nodes without
// fields. They take part in numbering like every other node.

// Expression contexts.

// Load marks a name that is read.
type Load struct{ Meta }

func (*Load) Type() string { return "Load" }

func (*Load) Fields() []Field { return nil }

// Store marks an assignment target.
type Store struct{ Meta }

func (*Store) Type() string { return "Store" }

func (*Store) Fields() []Field { return nil }

// Del marks a name that is deleted.
type Del struct{ Meta }

func (*Del) Type() string { return "Del" }

func (*Del) Fields() []Field { return nil }

// Binary operators.

// Add is "+".
type Add struct{ Meta }

func (*Add) Type() string { return "Add" }

func (*Add) Fields() []Field { return nil }

// Sub is binary "-".
type Sub struct{ Meta }

func (*Sub) Type() string { return "Sub" }

func (*Sub) Fields() []Field { return nil }

// Mult is "*".
type Mult struct{ Meta }

func (*Mult) Type() string { return "Mult" }

func (*Mult) Fields() []Field { return nil }

// Div is "/".
type Div struct{ Meta }

func (*Div) Type() string { return "Div" }

func (*Div) Fields() []Field { return nil }

// Mod is "%".
type Mod struct{ Meta }

func (*Mod) Type() string { return "Mod" }

func (*Mod) Fields() []Field { return nil }

// Pow is "**".
type Pow struct{ Meta }

func (*Pow) Type() string { return "Pow" }

func (*Pow) Fields() []Field { return nil }

// BitAnd is "&".
type BitAnd struct{ Meta }

func (*BitAnd) Type() string { return "BitAnd" }

func (*BitAnd) Fields() []Field { return nil }

// BitOr is "|".
type BitOr struct{ Meta }

func (*BitOr) Type() string { return "BitOr" }

func (*BitOr) Fields() []Field { return nil }

// BitXor is "^".
type BitXor struct{ Meta }

func (*BitXor) Type() string { return "BitXor" }

func (*BitXor) Fields() []Field { return nil }

// Unary operators.

// USub is unary "-". The folder removes it in front of numeric literals.
type USub struct{ Meta }

func (*USub) Type() string { return "USub" }

func (*USub) Fields() []Field { return nil }

// Not is "not".
type Not struct{ Meta }

func (*Not) Type() string { return "Not" }

func (*Not) Fields() []Field { return nil }

// Invert is "~".
type Invert struct{ Meta }

func (*Invert) Type() string { return "Invert" }

func (*Invert) Fields() []Field { return nil }

// Boolean operators.

// And is "and".
type And struct{ Meta }

func (*And) Type() string { return "And" }

func (*And) Fields() []Field { return nil }

// Or is "or".
type Or struct{ Meta }

func (*Or) Type() string { return "Or" }

func (*Or) Fields() []Field { return nil }

// Comparison operators.

// Eq is "==".
type Eq struct{ Meta }

func (*Eq) Type() string { return "Eq" }

func (*Eq) Fields() []Field { return nil }

// NotEq is "!=".
type NotEq struct{ Meta }

func (*NotEq) Type() string { return "NotEq" }

func (*NotEq) Fields() []Field { return nil }

// Lt is "<".
type Lt struct{ Meta }

func (*Lt) Type() string { return "Lt" }

func (*Lt) Fields() []Field { return nil }

// LtE is "<=".
type LtE struct{ Meta }

func (*LtE) Type() string { return "LtE" }

func (*LtE) Fields() []Field { return nil }

// Gt is ">".
type Gt struct{ Meta }

func (*Gt) Type() string { return "Gt" }

func (*Gt) Fields() []Field { return nil }

// GtE is ">=".
type GtE struct{ Meta }

func (*GtE) Type() string { return "GtE" }

func (*GtE) Fields() []Field { return nil }

// In is "in".
type In struct{ Meta }

func (*In) Type() string { return "In" }

func (*In) Fields() []Field { return nil }

// NotIn is "not in".
type NotIn struct{ Meta }

func (*NotIn) Type() string { return "NotIn" }

func (*NotIn) Fields() []Field { return nil }
