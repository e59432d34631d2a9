package fixture

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"vyper-hq/vast/pkg/vyast/ast"
	"vyper-hq/vast/pkg/vyast/dict"
)

// headKeys are emitted first, in this order, on every node mapping.
var headKeys = []string{
	dict.KeyType,
	dict.KeyNodeID,
	dict.KeyLineno,
	dict.KeyColOffset,
	dict.KeyEndLineno,
	dict.KeyEndColOffset,
	dict.KeySrc,
	dict.KeyCategory,
}

// ReadYAML decodes one YAML mapping. Integers too large for an int become
// *big.Int and floats stay float64.
func ReadYAML(r io.Reader) (map[string]any, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML document: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("YAML document is not a mapping")
	}
	v, err := fromYAML(root)
	if err != nil {
		return nil, err
	}
	return v.(map[string]any), nil
}

// WriteYAML writes m as YAML. Node mappings list their metadata first and
// their fields in grammar order.
func WriteYAML(w io.Writer, m map[string]any, indent int) error {
	node, err := toYAML(m)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent(indent)
	}
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("failed to encode YAML document: %w", err)
	}
	return enc.Close()
}

func fromYAML(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return fromYAML(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", key.Line)
			}
			v, err := fromYAML(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[key.Value] = v
		}
		return m, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.ScalarNode:
		return scalarFromYAML(n)
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
	}
}

func scalarFromYAML(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return b, nil
	case "!!int":
		b, ok := new(big.Int).SetString(n.Value, 0)
		if !ok {
			return nil, fmt.Errorf("line %d: invalid integer %q", n.Line, n.Value)
		}
		if b.IsInt64() && b.Int64() >= math.MinInt && b.Int64() <= math.MaxInt {
			return int(b.Int64()), nil
		}
		return b, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return f, nil
	default:
		return n.Value, nil
	}
}

func toYAML(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case map[string]any:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range orderedKeys(x) {
			child, err := toYAML(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out.Content = append(out.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				child,
			)
		}
		return out, nil
	case []any:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, item := range x {
			child, err := toYAML(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out.Content = append(out.Content, child)
		}
		return out, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: x}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(x)}, nil
	case int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(x)}, nil
	case int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(x, 10)}, nil
	case *big.Int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: x.String()}, nil
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(x)}, nil
	case json.Number:
		return numberToYAML(x)
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}

// numberToYAML keeps integers exact and renders anything with a fraction or
// exponent as a float.
func numberToYAML(n json.Number) (*yaml.Node, error) {
	s := string(n)
	if !strings.ContainsAny(s, ".eE") {
		if _, ok := new(big.Int).SetString(s, 10); ok {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: s}, nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(f)}, nil
}

// formatFloat renders f so that it reads back as a float, never an int.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// orderedKeys returns the keys of m in canonical order: metadata first, then
// grammar fields for node mappings, then anything else sorted.
func orderedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	add := func(k string) {
		if _, ok := m[k]; ok && !seen[k] {
			keys = append(keys, k)
			seen[k] = true
		}
	}

	if tag, ok := m[dict.KeyType].(string); ok {
		for _, k := range headKeys {
			add(k)
		}
		if n, ok := ast.New(tag); ok {
			for _, f := range n.Fields() {
				add(f.Name)
			}
		}
	}

	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
