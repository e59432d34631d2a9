package fixture

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Document keys.
const (
	KeyContractName = "contract_name"
	KeyAST          = "ast"
)

// Document is a dict-form tree together with the contract it came from.
type Document struct {
	ContractName string
	AST          map[string]any
}

// Map returns the document in its on-disk shape. A document without a
// contract name is written as the bare tree.
func (d *Document) Map() map[string]any {
	if d.ContractName == "" {
		return d.AST
	}
	return map[string]any{
		KeyContractName: d.ContractName,
		KeyAST:          d.AST,
	}
}

// FromMap accepts either a wrapped document ({contract_name, ast}) or a bare
// tree whose root carries an ast_type.
func FromMap(m map[string]any) (*Document, error) {
	raw, wrapped := m[KeyAST]
	if !wrapped {
		return &Document{AST: m}, nil
	}

	tree, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must be a mapping, got %T", KeyAST, raw)
	}
	doc := &Document{AST: tree}
	switch name := m[KeyContractName].(type) {
	case nil:
	case string:
		doc.ContractName = name
	default:
		return nil, fmt.Errorf("%s must be a string, got %T", KeyContractName, name)
	}
	for k := range m {
		if k != KeyAST && k != KeyContractName {
			return nil, fmt.Errorf("unexpected document key %q", k)
		}
	}
	return doc, nil
}

// Read reads a document in the given format.
func Read(r io.Reader, format Format) (*Document, error) {
	var (
		m   map[string]any
		err error
	)
	switch format {
	case FormatYAML:
		m, err = ReadYAML(r)
	default:
		m, err = ReadJSON(r)
	}
	if err != nil {
		return nil, err
	}
	return FromMap(m)
}

// Write writes a document in the given format.
func Write(w io.Writer, doc *Document, format Format, indent int) error {
	switch format {
	case FormatYAML:
		return WriteYAML(w, doc.Map(), indent)
	default:
		return WriteJSON(w, doc.Map(), indent)
	}
}

// Load reads a document from path, picking the format from its extension.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	doc, err := Read(bytes.NewReader(data), FormatFor(path, FormatJSON))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Save writes a document to path.
func Save(path string, doc *Document, format Format, indent int) error {
	var buf bytes.Buffer
	if err := Write(&buf, doc, format, indent); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
