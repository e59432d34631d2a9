// Package ast defines the syntax tree handed from the parser to semantic
// analysis.
//
// The tree is a closed set of variants, one struct per grammar production.
// Every variant embeds Meta, the metadata block stamped by the annotator:
//
//	node_id    unique per tree, assigned in pre-order
//	Source     the one *Source shared by all nodes of a compilation unit
//	Span       line/column range set by the parser
//	Src        "<start_byte>:<byte_length>:<source_index>"
//	Category   definitions only (ClassDef)
//
// # Grammar Slots
//
// Fields returns the ordered grammar slots of a node. Each slot points into
// the node, so a pass can replace a child in its parent:
//
//	for _, f := range n.Fields() {
//	    if f.Kind == ast.ChildField && *f.Child != nil {
//	        *f.Child = rewrite(*f.Child)
//	    }
//	}
//
// The annotator, the literal folder, the dict codec, Walk and Equal are all
// built on Fields. Adding a production means adding a struct, its Fields
// method and a registry entry; nothing else reflects over nodes.
//
// # Building Trees
//
//	src := ast.NewSource("\na: int128\n", 0)
//	tree := &ast.Module{Body: []ast.Node{
//	    &ast.AnnAssign{
//	        Meta:       ast.Meta{Span: ast.Span{StartLine: 2, EndLine: 2, EndCol: 9}},
//	        Target:     &ast.Name{ID: "a", Ctx: &ast.Store{}},
//	        Annotation: &ast.Name{ID: "int128", Ctx: &ast.Load{}},
//	        Simple:     1,
//	    },
//	}}
package ast
