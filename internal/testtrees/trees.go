// Package testtrees builds raw, unannotated trees by hand, shaped the way the
// parser produces them, for use in tests.
//
// Context and operator nodes carry the span of the node that owns them.
package testtrees

import (
	"math/big"

	"vyper-hq/vast/pkg/vyast/ast"
)

// Sp builds a span.
func Sp(startLine, startCol, endLine, endCol int) ast.Span {
	return ast.Span{StartLine: startLine, StartCol: startCol, EndLine: endLine, EndCol: endCol}
}

func at(span ast.Span) ast.Meta {
	return ast.Meta{Span: span}
}

// Name builds a Name with a Load context.
func Name(id string, span ast.Span) *ast.Name {
	return &ast.Name{Meta: at(span), ID: id, Ctx: &ast.Load{Meta: at(span)}}
}

// Target builds a Name with a Store context.
func Target(id string, span ast.Span) *ast.Name {
	return &ast.Name{Meta: at(span), ID: id, Ctx: &ast.Store{Meta: at(span)}}
}

// Int builds an integer literal.
func Int(v int64, span ast.Span) *ast.Int {
	return &ast.Int{Meta: at(span), N: big.NewInt(v)}
}

// Neg builds a unary negation of operand.
func Neg(operand ast.Node, span ast.Span) *ast.UnaryOp {
	return &ast.UnaryOp{Meta: at(span), Op: &ast.USub{Meta: at(span)}, Operand: operand}
}

// Decl builds an annotated declaration; value may be nil.
func Decl(target string, annotation, value ast.Node, span, targetSpan ast.Span) *ast.AnnAssign {
	n := &ast.AnnAssign{
		Meta:       at(span),
		Target:     Target(target, targetSpan),
		Annotation: annotation,
		Simple:     1,
	}
	if value != nil {
		n.Value = value
	}
	return n
}

// BasicSource is a module that declares a single storage field.
const BasicSource = "\na: int128\n    "

// Basic returns the tree of BasicSource:
//
//	Module
//	└── AnnAssign (a: int128)
func Basic() *ast.Module {
	return &ast.Module{
		Meta: at(Sp(1, 0, 3, 4)),
		Body: []ast.Node{
			Decl("a", Name("int128", Sp(2, 3, 2, 9)), nil, Sp(2, 0, 2, 9), Sp(2, 0, 2, 1)),
		},
	}
}

// FunctionSource declares a function with typed locals of every literal kind.
const FunctionSource = `
@public
def test() -> int128:
    a: uint256 = 100
    b: int128 = -22
    c: decimal = 3.31337
    d: bytes[11] = b"oh hai mark"
    e: address = 0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef
    f: bool = False
    return 123
    `

// Function returns the tree of FunctionSource.
func Function() *ast.Module {
	bytesType := &ast.Subscript{
		Meta:  at(Sp(7, 7, 7, 16)),
		Value: Name("bytes", Sp(7, 7, 7, 12)),
		Slice: &ast.Index{Meta: at(Sp(7, 13, 7, 15)), Value: Int(11, Sp(7, 13, 7, 15))},
		Ctx:   &ast.Load{Meta: at(Sp(7, 7, 7, 16))},
	}

	fn := &ast.FunctionDef{
		Meta: at(Sp(3, 0, 10, 14)),
		Name: "test",
		Args: &ast.Arguments{Meta: at(Sp(3, 9, 3, 9))},
		Body: []ast.Node{
			Decl("a", Name("uint256", Sp(4, 7, 4, 14)), Int(100, Sp(4, 17, 4, 20)),
				Sp(4, 4, 4, 20), Sp(4, 4, 4, 5)),
			Decl("b", Name("int128", Sp(5, 7, 5, 13)), Neg(Int(22, Sp(5, 17, 5, 19)), Sp(5, 16, 5, 19)),
				Sp(5, 4, 5, 19), Sp(5, 4, 5, 5)),
			Decl("c", Name("decimal", Sp(6, 7, 6, 14)), &ast.Decimal{Meta: at(Sp(6, 17, 6, 24)), N: 3.31337},
				Sp(6, 4, 6, 24), Sp(6, 4, 6, 5)),
			Decl("d", bytesType, &ast.Bytes{Meta: at(Sp(7, 19, 7, 33)), S: "oh hai mark"},
				Sp(7, 4, 7, 33), Sp(7, 4, 7, 5)),
			Decl("e", Name("address", Sp(8, 7, 8, 14)),
				&ast.Hex{Meta: at(Sp(8, 17, 8, 59)), Value: "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"},
				Sp(8, 4, 8, 59), Sp(8, 4, 8, 5)),
			Decl("f", Name("bool", Sp(9, 7, 9, 11)), &ast.NameConstant{Meta: at(Sp(9, 14, 9, 19)), Value: ast.Bool(false)},
				Sp(9, 4, 9, 19), Sp(9, 4, 9, 5)),
			&ast.Return{Meta: at(Sp(10, 4, 10, 14)), Value: Int(123, Sp(10, 11, 10, 14))},
		},
		DecoratorList: []ast.Node{Name("public", Sp(2, 1, 2, 7))},
		Returns:       Name("int128", Sp(3, 14, 3, 20)),
	}

	return &ast.Module{
		Meta: at(Sp(1, 0, 11, 4)),
		Body: []ast.Node{fn},
	}
}

// StructSource declares a struct and a contract interface used by a function.
const StructSource = `
struct Point:
    x: int128
    y: int128

contract Token:
    def balanceOf(owner: address) -> uint256: constant

@public
def origin(p: Point) -> int128:
    if p.x == -1:
        return -(-5)
    return -p.y
`

// Structs returns the tree of StructSource, with two ClassDef nodes.
func Structs() *ast.Module {
	point := &ast.ClassDef{
		Meta: at(Sp(2, 0, 4, 13)),
		Name: "Point",
		Body: []ast.Node{
			Decl("x", Name("int128", Sp(3, 7, 3, 13)), nil, Sp(3, 4, 3, 13), Sp(3, 4, 3, 5)),
			Decl("y", Name("int128", Sp(4, 7, 4, 13)), nil, Sp(4, 4, 4, 13), Sp(4, 4, 4, 5)),
		},
	}

	token := &ast.ClassDef{
		Meta: at(Sp(6, 0, 7, 54)),
		Name: "Token",
		Body: []ast.Node{
			&ast.FunctionDef{
				Meta: at(Sp(7, 4, 7, 54)),
				Name: "balanceOf",
				Args: &ast.Arguments{
					Meta: at(Sp(7, 18, 7, 32)),
					Args: []ast.Node{
						&ast.Arg{Meta: at(Sp(7, 18, 7, 32)), Arg: "owner", Annotation: Name("address", Sp(7, 25, 7, 32))},
					},
				},
				Body: []ast.Node{
					&ast.Expr{Meta: at(Sp(7, 46, 7, 54)), Value: Name("constant", Sp(7, 46, 7, 54))},
				},
				Returns: Name("uint256", Sp(7, 37, 7, 44)),
			},
		},
	}

	px := func(line, col int, attr string) *ast.Attribute {
		end := col + 2 + len(attr)
		return &ast.Attribute{
			Meta:  at(Sp(line, col, line, end)),
			Value: Name("p", Sp(line, col, line, col+1)),
			Attr:  attr,
			Ctx:   &ast.Load{Meta: at(Sp(line, col, line, end))},
		}
	}

	origin := &ast.FunctionDef{
		Meta: at(Sp(10, 0, 13, 15)),
		Name: "origin",
		Args: &ast.Arguments{
			Meta: at(Sp(10, 11, 10, 19)),
			Args: []ast.Node{
				&ast.Arg{Meta: at(Sp(10, 11, 10, 19)), Arg: "p", Annotation: Name("Point", Sp(10, 14, 10, 19))},
			},
		},
		Body: []ast.Node{
			&ast.If{
				Meta: at(Sp(11, 4, 12, 20)),
				Test: &ast.Compare{
					Meta:        at(Sp(11, 7, 11, 16)),
					Left:        px(11, 7, "x"),
					Ops:         []ast.Node{&ast.Eq{Meta: at(Sp(11, 7, 11, 16))}},
					Comparators: []ast.Node{Neg(Int(1, Sp(11, 15, 11, 16)), Sp(11, 14, 11, 16))},
				},
				Body: []ast.Node{
					&ast.Return{
						Meta:  at(Sp(12, 8, 12, 20)),
						Value: Neg(Neg(Int(5, Sp(12, 18, 12, 19)), Sp(12, 17, 12, 19)), Sp(12, 15, 12, 20)),
					},
				},
			},
			&ast.Return{Meta: at(Sp(13, 4, 13, 15)), Value: Neg(px(13, 12, "y"), Sp(13, 11, 13, 15))},
		},
		DecoratorList: []ast.Node{Name("public", Sp(9, 1, 9, 7))},
		Returns:       Name("int128", Sp(10, 24, 10, 30)),
	}

	return &ast.Module{
		Meta: at(Sp(1, 0, 14, 0)),
		Body: []ast.Node{point, token, origin},
	}
}
