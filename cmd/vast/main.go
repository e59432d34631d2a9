// Vast annotates, folds and converts Vyper-style syntax trees.
//
// It works on trees in their dict form, as JSON or YAML documents:
//   - Annotate a raw parser tree with node ids, source summaries and
//     categories, and fold negated literals
//   - Verify that fixture documents survive a decode and encode round trip
//   - Diff two documents in their canonical form
//
// Usage:
//
//	# Annotate a raw tree against its source
//	vast annotate --tree raw.json --source token.vy --out token.ast.json
//
//	# Re-run on every change to the tree or the source
//	vast annotate --tree raw.json --source token.vy --watch
//
//	# Check fixtures for round-trip conformance
//	vast verify testdata/*.json
//
//	# Compare two documents
//	vast diff want.yaml got.json
//
//	# List every node type
//	vast types --fields
package main

func main() {
	Execute()
}
