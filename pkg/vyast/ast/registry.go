package ast

import "sort"

// constructors maps every variant tag to a function returning an empty node.
var constructors = map[string]func() Node{
	"Module":       func() Node { return &Module{} },
	"ClassDef":     func() Node { return &ClassDef{} },
	"FunctionDef":  func() Node { return &FunctionDef{} },
	"arguments":    func() Node { return &Arguments{} },
	"arg":          func() Node { return &Arg{} },
	"AnnAssign":    func() Node { return &AnnAssign{} },
	"Assign":       func() Node { return &Assign{} },
	"AugAssign":    func() Node { return &AugAssign{} },
	"Return":       func() Node { return &Return{} },
	"Expr":         func() Node { return &Expr{} },
	"If":           func() Node { return &If{} },
	"For":          func() Node { return &For{} },
	"Assert":       func() Node { return &Assert{} },
	"Raise":        func() Node { return &Raise{} },
	"Pass":         func() Node { return &Pass{} },
	"Break":        func() Node { return &Break{} },
	"Continue":     func() Node { return &Continue{} },
	"Name":         func() Node { return &Name{} },
	"Attribute":    func() Node { return &Attribute{} },
	"Subscript":    func() Node { return &Subscript{} },
	"Index":        func() Node { return &Index{} },
	"Call":         func() Node { return &Call{} },
	"keyword":      func() Node { return &Keyword{} },
	"BinOp":        func() Node { return &BinOp{} },
	"UnaryOp":      func() Node { return &UnaryOp{} },
	"BoolOp":       func() Node { return &BoolOp{} },
	"Compare":      func() Node { return &Compare{} },
	"Tuple":        func() Node { return &Tuple{} },
	"List":         func() Node { return &List{} },
	"Dict":         func() Node { return &Dict{} },
	"Int":          func() Node { return &Int{} },
	"Decimal":      func() Node { return &Decimal{} },
	"Hex":          func() Node { return &Hex{} },
	"Str":          func() Node { return &Str{} },
	"Bytes":        func() Node { return &Bytes{} },
	"NameConstant": func() Node { return &NameConstant{} },
	"Load":         func() Node { return &Load{} },
	"Store":        func() Node { return &Store{} },
	"Del":          func() Node { return &Del{} },
	"Add":          func() Node { return &Add{} },
	"Sub":          func() Node { return &Sub{} },
	"Mult":         func() Node { return &Mult{} },
	"Div":          func() Node { return &Div{} },
	"Mod":          func() Node { return &Mod{} },
	"Pow":          func() Node { return &Pow{} },
	"BitAnd":       func() Node { return &BitAnd{} },
	"BitOr":        func() Node { return &BitOr{} },
	"BitXor":       func() Node { return &BitXor{} },
	"USub":         func() Node { return &USub{} },
	"Not":          func() Node { return &Not{} },
	"Invert":       func() Node { return &Invert{} },
	"And":          func() Node { return &And{} },
	"Or":           func() Node { return &Or{} },
	"Eq":           func() Node { return &Eq{} },
	"NotEq":        func() Node { return &NotEq{} },
	"Lt":           func() Node { return &Lt{} },
	"LtE":          func() Node { return &LtE{} },
	"Gt":           func() Node { return &Gt{} },
	"GtE":          func() Node { return &GtE{} },
	"In":           func() Node { return &In{} },
	"NotIn":        func() Node { return &NotIn{} },
}

// New returns an empty node for the given variant tag.
// The boolean is false if the tag is not part of the grammar.
func New(tag string) (Node, bool) {
	ctor, ok := constructors[tag]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Types returns every variant tag in sorted order.
func Types() []string {
	tags := make([]string, 0, len(constructors))
	for tag := range constructors {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
