package fold

import (
	"math/big"
	"testing"

	"vyper-hq/vast/internal/testtrees"
	"vyper-hq/vast/pkg/vyast/annotate"
	"vyper-hq/vast/pkg/vyast/ast"
)

func TestFold_NegativeInt(t *testing.T) {
	tree := testtrees.Function()
	annotate.Annotate(tree, ast.NewSource(testtrees.FunctionSource, 0), nil)

	decl := tree.Body[0].(*ast.FunctionDef).Body[1].(*ast.AnnAssign)
	operand := decl.Value.(*ast.UnaryOp).Operand.(*ast.Int)
	wantID, wantSrc := operand.NodeID, operand.Src

	root, folded := Fold(tree)
	if root != ast.Node(tree) {
		t.Error("Fold() replaced a root that is not a unary node")
	}
	if folded != 1 {
		t.Errorf("Fold() = %d folds, want 1", folded)
	}

	lit, ok := decl.Value.(*ast.Int)
	if !ok {
		t.Fatalf("Value = %T, want *ast.Int", decl.Value)
	}
	if lit.N.Cmp(big.NewInt(-22)) != 0 {
		t.Errorf("N = %s, want -22", lit.N)
	}
	if want := testtrees.Sp(5, 16, 5, 19); lit.Span != want {
		t.Errorf("Span = %s, want %s", lit.Span, want)
	}
	if lit.NodeID != wantID {
		t.Errorf("NodeID = %d, want %d", lit.NodeID, wantID)
	}
	if lit.Src != wantSrc {
		t.Errorf("Src = %q, want %q", lit.Src, wantSrc)
	}
	if n := len(ast.Find(tree, "UnaryOp")); n != 0 {
		t.Errorf("%d UnaryOp nodes left", n)
	}
}

func TestFold_Nested(t *testing.T) {
	tree := testtrees.Structs()

	_, folded := Fold(tree)
	if folded != 3 {
		t.Errorf("Fold() = %d folds, want 3", folded)
	}

	origin := tree.Body[2].(*ast.FunctionDef)
	cond := origin.Body[0].(*ast.If)

	minusOne := cond.Test.(*ast.Compare).Comparators[0].(*ast.Int)
	if minusOne.N.Int64() != -1 {
		t.Errorf("comparator = %s, want -1", minusOne.N)
	}

	five := cond.Body[0].(*ast.Return).Value.(*ast.Int)
	if five.N.Int64() != 5 {
		t.Errorf("-(-5) = %s, want 5", five.N)
	}
	if want := testtrees.Sp(12, 15, 12, 19); five.Span != want {
		t.Errorf("Span = %s, want %s", five.Span, want)
	}

	// Negation of a non-literal stays.
	ret := origin.Body[1].(*ast.Return)
	unary, ok := ret.Value.(*ast.UnaryOp)
	if !ok {
		t.Fatalf("-p.y = %T, want *ast.UnaryOp", ret.Value)
	}
	if _, ok := unary.Operand.(*ast.Attribute); !ok {
		t.Errorf("operand = %T, want *ast.Attribute", unary.Operand)
	}
}

func TestFold_Decimal(t *testing.T) {
	lit := &ast.Decimal{Meta: ast.Meta{Span: testtrees.Sp(1, 1, 1, 5)}, N: 2.5}
	root := testtrees.Neg(lit, testtrees.Sp(1, 0, 1, 5))

	got, folded := Fold(root)
	if folded != 1 {
		t.Errorf("Fold() = %d folds, want 1", folded)
	}
	d, ok := got.(*ast.Decimal)
	if !ok {
		t.Fatalf("root = %T, want *ast.Decimal", got)
	}
	if d.N != -2.5 {
		t.Errorf("N = %v, want -2.5", d.N)
	}
	if d.Span != testtrees.Sp(1, 0, 1, 5) {
		t.Errorf("Span = %s, want 1:0-1:5", d.Span)
	}
}

func TestFold_Untouched(t *testing.T) {
	span := testtrees.Sp(1, 0, 1, 4)
	tests := []struct {
		name string
		node ast.Node
	}{
		{
			name: "not over int",
			node: &ast.UnaryOp{Op: &ast.Not{}, Operand: testtrees.Int(1, span)},
		},
		{
			name: "invert over int",
			node: &ast.UnaryOp{Op: &ast.Invert{}, Operand: testtrees.Int(1, span)},
		},
		{
			name: "negate name",
			node: testtrees.Neg(testtrees.Name("x", span), span),
		},
		{
			name: "negate hex",
			node: testtrees.Neg(&ast.Hex{Value: "0x01"}, span),
		},
		{
			name: "int without value",
			node: testtrees.Neg(&ast.Int{}, span),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, folded := Fold(tt.node)
			if folded != 0 {
				t.Errorf("Fold() = %d folds, want 0", folded)
			}
			if got != tt.node {
				t.Errorf("Fold() replaced %s with %s", tt.node.Type(), got.Type())
			}
		})
	}
}

func TestFold_Nil(t *testing.T) {
	root, folded := Fold(nil)
	if root != nil || folded != 0 {
		t.Errorf("Fold(nil) = %v, %d", root, folded)
	}
}
