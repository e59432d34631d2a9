// Package fixture reads, writes and compares dict-form trees on disk.
//
// Documents are JSON or YAML. JSON numbers are decoded as json.Number and
// YAML integers as int or *big.Int, so large literals survive a round trip
// through either format. The dict decoder resolves each number against the
// kind of its grammar slot, which is why an integral Decimal written as
// "3" in JSON still decodes as a Decimal.
//
// A document is either a bare tree or a wrapper naming its contract:
//
//	contract_name: Token
//	ast:
//	  ast_type: Module
//	  node_id: 0
//	  ...
//
// Diff renders both sides as canonical YAML, with metadata keys first and
// fields in grammar order, and compares them line by line.
package fixture
