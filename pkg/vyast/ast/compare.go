package ast

import "math/big"

// Equal reports whether two trees have the same variant tags, metadata and
// field values at every level, with lists in the same order. Sources are
// equal when they are the same object or have the same text and index.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	if !metaEqual(a.Metadata(), b.Metadata()) {
		return false
	}
	fa, fb := a.Fields(), b.Fields()
	if len(fa) != len(fb) {
		return false
	}
	for i := range fa {
		if !fieldEqual(fa[i], fb[i]) {
			return false
		}
	}
	return true
}

func metaEqual(a, b *Meta) bool {
	if a.NodeID != b.NodeID || a.Span != b.Span || a.Src != b.Src {
		return false
	}
	if (a.Category == nil) != (b.Category == nil) {
		return false
	}
	if a.Category != nil && *a.Category != *b.Category {
		return false
	}
	return sourceEqual(a.Source, b.Source)
}

func sourceEqual(a, b *Source) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Text == b.Text && a.Index == b.Index
}

func fieldEqual(a, b Field) bool {
	if a.Name != b.Name || a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ChildField:
		return Equal(*a.Child, *b.Child)
	case ListField:
		la, lb := *a.List, *b.List
		if len(la) != len(lb) {
			return false
		}
		for i := range la {
			if !Equal(la[i], lb[i]) {
				return false
			}
		}
		return true
	case ScalarField:
		return scalarEqual(a.Scalar, b.Scalar)
	}
	return false
}

func scalarEqual(a, b any) bool {
	switch va := a.(type) {
	case *string:
		vb, ok := b.(*string)
		return ok && *va == *vb
	case *int:
		vb, ok := b.(*int)
		return ok && *va == *vb
	case *float64:
		vb, ok := b.(*float64)
		return ok && *va == *vb
	case **big.Int:
		vb, ok := b.(**big.Int)
		if !ok {
			return false
		}
		if *va == nil || *vb == nil {
			return *va == nil && *vb == nil
		}
		return (*va).Cmp(*vb) == 0
	case **bool:
		vb, ok := b.(**bool)
		if !ok {
			return false
		}
		if *va == nil || *vb == nil {
			return *va == nil && *vb == nil
		}
		return **va == **vb
	}
	return false
}
