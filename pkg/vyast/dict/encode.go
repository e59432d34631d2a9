package dict

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"vyper-hq/vast/pkg/vyast/ast"
	vErrors "vyper-hq/vast/pkg/vyast/errors"
)

// Canonical metadata keys.
const (
	KeyType         = "ast_type"
	KeyNodeID       = "node_id"
	KeyLineno       = "lineno"
	KeyColOffset    = "col_offset"
	KeyEndLineno    = "end_lineno"
	KeyEndColOffset = "end_col_offset"
	KeySrc          = "src"
	KeyCategory     = "category"
)

// metaKeys lists the metadata keys present on every encoded node.
var metaKeys = []string{KeyNodeID, KeyLineno, KeyColOffset, KeyEndLineno, KeyEndColOffset, KeySrc}

// Encode converts a node into its canonical dict form. The result shares no
// memory with the tree.
func Encode(n ast.Node) (map[string]any, error) {
	if n == nil {
		return nil, vErrors.NewEncodeError(vErrors.ErrInvalidValue, "", "", "", "cannot encode a nil node")
	}
	return encodeNode(n, "")
}

// EncodeList converts an ordered list of nodes into a list of dicts.
func EncodeList(nodes []ast.Node) ([]any, error) {
	return encodeList(nodes, "")
}

func encodeNode(n ast.Node, path string) (map[string]any, error) {
	m := n.Metadata()
	out := map[string]any{
		KeyType:         n.Type(),
		KeyNodeID:       m.NodeID,
		KeyLineno:       m.Span.StartLine,
		KeyColOffset:    m.Span.StartCol,
		KeyEndLineno:    m.Span.EndLine,
		KeyEndColOffset: m.Span.EndCol,
		KeySrc:          m.Src,
	}
	if _, ok := n.(ast.Definition); ok {
		if m.Category != nil {
			out[KeyCategory] = string(*m.Category)
		} else {
			out[KeyCategory] = nil
		}
	}

	for _, f := range n.Fields() {
		fieldPath := joinPath(path, f.Name)
		switch f.Kind {
		case ast.ChildField:
			child := *f.Child
			if child == nil {
				if !f.Nullable {
					return nil, vErrors.NewEncodeError(vErrors.ErrInvalidValue, path, n.Type(), f.Name,
						"required child is nil")
				}
				out[f.Name] = nil
				continue
			}
			enc, err := encodeNode(child, fieldPath)
			if err != nil {
				return nil, err
			}
			out[f.Name] = enc
		case ast.ListField:
			enc, err := encodeList(*f.List, fieldPath)
			if err != nil {
				return nil, err
			}
			out[f.Name] = enc
		case ast.ScalarField:
			v, err := encodeScalar(f.Scalar)
			if err != nil {
				cause := vErrors.ErrUnsupportedKind
				if errors.Is(err, errNilInteger) {
					cause = vErrors.ErrInvalidValue
				}
				return nil, vErrors.NewEncodeError(cause, path, n.Type(), f.Name, err.Error())
			}
			out[f.Name] = v
		default:
			return nil, vErrors.NewEncodeError(vErrors.ErrUnsupportedKind, path, n.Type(), f.Name,
				fmt.Sprintf("unsupported slot kind %s", f.Kind))
		}
	}
	return out, nil
}

func encodeList(nodes []ast.Node, path string) ([]any, error) {
	out := make([]any, 0, len(nodes))
	for i, child := range nodes {
		itemPath := path + "[" + strconv.Itoa(i) + "]"
		if child == nil {
			return nil, vErrors.NewEncodeError(vErrors.ErrInvalidValue, itemPath, "", "", "list element is nil")
		}
		enc, err := encodeNode(child, itemPath)
		if err != nil {
			return nil, err
		}
		out = append(out, enc)
	}
	return out, nil
}

// encodeScalar returns the dict value of a scalar slot.
func encodeScalar(slot any) (any, error) {
	switch v := slot.(type) {
	case *string:
		return *v, nil
	case *int:
		return *v, nil
	case *float64:
		return *v, nil
	case **bool:
		if *v == nil {
			return nil, nil
		}
		return **v, nil
	case **big.Int:
		if *v == nil {
			return nil, errNilInteger
		}
		return encodeBigInt(*v), nil
	default:
		return nil, fmt.Errorf("unsupported field kind %T", slot)
	}
}

// encodeBigInt returns an int when the value fits, a detached copy otherwise.
func encodeBigInt(v *big.Int) any {
	if v.IsInt64() {
		i := v.Int64()
		if i >= math.MinInt && i <= math.MaxInt {
			return int(i)
		}
	}
	return new(big.Int).Set(v)
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
