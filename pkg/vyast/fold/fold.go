// Package fold rewrites negated numeric literals into negative literals.
//
// A UnaryOp{USub} whose operand is an Int or Decimal is replaced, in its
// parent's slot, by the operand with its value negated. The promoted literal
// takes the start position of the unary node so diagnostics point at the
// minus sign; its end position, node id and src summary are kept.
//
//	-22      UnaryOp(USub, Int(22))          => Int(-22)
//	-(-22)   UnaryOp(USub, UnaryOp(USub, 22)) => Int(22)
//	-x       UnaryOp(USub, Name(x))          => unchanged
package fold

import (
	"math/big"

	"vyper-hq/vast/pkg/vyast/ast"
)

// Fold rewrites the tree rooted at root bottom-up and returns the root, which
// is only replaced if it is itself a foldable unary node, together with the
// number of literals folded.
func Fold(root ast.Node) (ast.Node, int) {
	if root == nil {
		return nil, 0
	}
	f := &folder{}
	return f.fold(root), f.folded
}

type folder struct {
	folded int
}

func (f *folder) fold(n ast.Node) ast.Node {
	for _, field := range n.Fields() {
		switch field.Kind {
		case ast.ChildField:
			if *field.Child != nil {
				*field.Child = f.fold(*field.Child)
			}
		case ast.ListField:
			list := *field.List
			for i := range list {
				list[i] = f.fold(list[i])
			}
		}
	}

	unary, ok := n.(*ast.UnaryOp)
	if !ok {
		return n
	}
	if _, neg := unary.Op.(*ast.USub); !neg {
		return n
	}

	switch lit := unary.Operand.(type) {
	case *ast.Int:
		if lit.N == nil {
			return n
		}
		lit.N = new(big.Int).Neg(lit.N)
	case *ast.Decimal:
		lit.N = -lit.N
	default:
		return n
	}

	promoted := unary.Operand.Metadata()
	promoted.Span.StartLine = unary.Span.StartLine
	promoted.Span.StartCol = unary.Span.StartCol
	f.folded++
	return unary.Operand
}
