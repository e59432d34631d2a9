// Package dict converts syntax trees to and from their canonical dict form.
//
// A node encodes to a map[string]any holding its variant tag, its metadata and
// one entry per grammar field:
//
//	{
//	    "ast_type": "Name",
//	    "node_id": 2,
//	    "lineno": 2, "col_offset": 0, "end_lineno": 2, "end_col_offset": 1,
//	    "src": "1:1:0",
//	    "id": "a",
//	    "ctx": {"ast_type": "Store", ...},
//	}
//
// Child nodes become nested maps, lists of nodes become []any in order, and
// scalars are stored verbatim as string, int, float64, bool or nil. Integers
// that do not fit an int are stored as *big.Int. A nullable child that is
// unset encodes to an explicit nil. The "category" key appears only on
// definition nodes (ClassDef), with a nil value when unresolved.
//
// Decode is the inverse of Encode. It needs no schema beyond the variant tag:
// the tag selects the node shape and the shape lists the keys to read. Every
// key is required; unknown tags, missing keys, unexpected keys and values of
// the wrong kind are reported as *errors.Error and nothing is defaulted.
// The Raw option relaxes this for trees the annotator has not seen yet:
// node_id, src and category may then be left out.
//
// For every tree T produced by the annotator and the folder:
//
//	m, _ := dict.Encode(T)
//	back, _ := dict.Decode(m, dict.WithSource(src))
//	ast.Equal(T, back) // true
package dict
