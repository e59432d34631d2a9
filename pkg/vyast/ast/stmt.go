package ast

// Module is the root of a compilation unit.
type Module struct {
	Meta
	Body []Node
}

func (n *Module) Type() string { return "Module" }
func (n *Module) Fields() []Field {
	return []Field{ListSlot("body", &n.Body)}
}

// ClassDef declares a contract, interface or struct. It is the only
// definition-style node.
type ClassDef struct {
	Meta
	Name          string
	Bases         []Node
	Body          []Node
	DecoratorList []Node
}

func (n *ClassDef) Type() string           { return "ClassDef" }
func (n *ClassDef) DefinitionName() string { return n.Name }
func (n *ClassDef) Fields() []Field {
	return []Field{
		ScalarSlot("name", &n.Name),
		ListSlot("bases", &n.Bases),
		ListSlot("body", &n.Body),
		ListSlot("decorator_list", &n.DecoratorList),
	}
}

// FunctionDef declares a function.
type FunctionDef struct {
	Meta
	Name          string
	Args          Node // *Arguments
	Body          []Node
	DecoratorList []Node
	Returns       Node // nil when no return annotation
}

func (n *FunctionDef) Type() string { return "FunctionDef" }
func (n *FunctionDef) Fields() []Field {
	return []Field{
		ScalarSlot("name", &n.Name),
		ChildSlot("args", &n.Args),
		ListSlot("body", &n.Body),
		ListSlot("decorator_list", &n.DecoratorList),
		OptionalChildSlot("returns", &n.Returns),
	}
}

// Arguments is the parameter list of a function.
type Arguments struct {
	Meta
	Args     []Node // []*Arg
	Defaults []Node
}

func (n *Arguments) Type() string { return "arguments" }
func (n *Arguments) Fields() []Field {
	return []Field{
		ListSlot("args", &n.Args),
		ListSlot("defaults", &n.Defaults),
	}
}

// Arg is a single function parameter.
type Arg struct {
	Meta
	Arg        string
	Annotation Node
}

func (n *Arg) Type() string { return "arg" }
func (n *Arg) Fields() []Field {
	return []Field{
		ScalarSlot("arg", &n.Arg),
		OptionalChildSlot("annotation", &n.Annotation),
	}
}

// AnnAssign is an annotated declaration, with or without a value.
type AnnAssign struct {
	Meta
	Target     Node
	Annotation Node
	Value      Node // nil for a bare declaration
	Simple     int
}

func (n *AnnAssign) Type() string { return "AnnAssign" }
func (n *AnnAssign) Fields() []Field {
	return []Field{
		ChildSlot("target", &n.Target),
		ChildSlot("annotation", &n.Annotation),
		OptionalChildSlot("value", &n.Value),
		ScalarSlot("simple", &n.Simple),
	}
}

// Assign is a plain assignment.
type Assign struct {
	Meta
	Targets []Node
	Value   Node
}

func (n *Assign) Type() string { return "Assign" }
func (n *Assign) Fields() []Field {
	return []Field{
		ListSlot("targets", &n.Targets),
		ChildSlot("value", &n.Value),
	}
}

// AugAssign is an augmented assignment such as "x += 1".
type AugAssign struct {
	Meta
	Target Node
	Op     Node
	Value  Node
}

func (n *AugAssign) Type() string { return "AugAssign" }
func (n *AugAssign) Fields() []Field {
	return []Field{
		ChildSlot("target", &n.Target),
		ChildSlot("op", &n.Op),
		ChildSlot("value", &n.Value),
	}
}

// Return leaves a function. Value is nil for a bare return.
type Return struct {
	Meta
	Value Node
}

func (n *Return) Type() string { return "Return" }
func (n *Return) Fields() []Field {
	return []Field{OptionalChildSlot("value", &n.Value)}
}

// Expr is an expression used as a statement.
type Expr struct {
	Meta
	Value Node
}

func (n *Expr) Type() string { return "Expr" }
func (n *Expr) Fields() []Field {
	return []Field{ChildSlot("value", &n.Value)}
}

// If is a conditional; elif chains nest in Orelse.
type If struct {
	Meta
	Test   Node
	Body   []Node
	Orelse []Node
}

func (n *If) Type() string { return "If" }
func (n *If) Fields() []Field {
	return []Field{
		ChildSlot("test", &n.Test),
		ListSlot("body", &n.Body),
		ListSlot("orelse", &n.Orelse),
	}
}

// For iterates Target over Iter.
type For struct {
	Meta
	Target Node
	Iter   Node
	Body   []Node
	Orelse []Node
}

func (n *For) Type() string { return "For" }
func (n *For) Fields() []Field {
	return []Field{
		ChildSlot("target", &n.Target),
		ChildSlot("iter", &n.Iter),
		ListSlot("body", &n.Body),
		ListSlot("orelse", &n.Orelse),
	}
}

// Assert checks Test; Msg is optional.
type Assert struct {
	Meta
	Test Node
	Msg  Node
}

func (n *Assert) Type() string { return "Assert" }
func (n *Assert) Fields() []Field {
	return []Field{
		ChildSlot("test", &n.Test),
		OptionalChildSlot("msg", &n.Msg),
	}
}

// Raise aborts execution. Exc and Cause may be nil.
type Raise struct {
	Meta
	Exc   Node
	Cause Node
}

func (n *Raise) Type() string { return "Raise" }
func (n *Raise) Fields() []Field {
	return []Field{
		OptionalChildSlot("exc", &n.Exc),
		OptionalChildSlot("cause", &n.Cause),
	}
}

// Pass is an empty statement.
type Pass struct{ Meta }

func (n *Pass) Type() string    { return "Pass" }
func (n *Pass) Fields() []Field { return nil }

// Break leaves the innermost loop.
type Break struct{ Meta }

func (n *Break) Type() string    { return "Break" }
func (n *Break) Fields() []Field { return nil }

// Continue starts the next loop iteration.
type Continue struct{ Meta }

func (n *Continue) Type() string    { return "Continue" }
func (n *Continue) Fields() []Field { return nil }
