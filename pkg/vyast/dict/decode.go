package dict

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"sort"
	"strconv"

	"vyper-hq/vast/pkg/vyast/ast"
	vErrors "vyper-hq/vast/pkg/vyast/errors"
)

var (
	errUnsupportedSlot = errors.New("unsupported field kind")
	errNilInteger      = errors.New("integer value is null")
)

// Option configures decoding.
type Option func(*decoder)

// WithSource attaches source to every decoded node. The dict form does not
// carry source text, so without it decoded nodes have a nil Source.
func WithSource(source *ast.Source) Option {
	return func(d *decoder) {
		d.source = source
	}
}

// Raw accepts trees that have not been annotated yet. The keys the annotator
// owns (node_id, src and category) may be absent and decode to their zero
// values. When present they are still checked.
func Raw() Option {
	return func(d *decoder) {
		d.raw = true
	}
}

// Decode rebuilds a node from its canonical dict form.
func Decode(m map[string]any, opts ...Option) (ast.Node, error) {
	d := newDecoder(opts)
	return d.decodeNode(m, "")
}

// DecodeList rebuilds an ordered list of nodes.
func DecodeList(items []any, opts ...Option) ([]ast.Node, error) {
	d := newDecoder(opts)
	return d.decodeList(items, "")
}

type decoder struct {
	source *ast.Source
	raw    bool
}

func newDecoder(opts []Option) *decoder {
	d := &decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// decoded holds the value of one slot until the node is assembled.
type decoded struct {
	field ast.Field
	child ast.Node
	list  []ast.Node
	value any
}

func (d *decoder) decodeNode(m map[string]any, path string) (ast.Node, error) {
	if m == nil {
		return nil, vErrors.NewDecodeError(vErrors.ErrInvalidValue, path, "", "", "expected a node mapping, got null")
	}

	rawTag, ok := m[KeyType]
	if !ok {
		return nil, vErrors.NewDecodeError(vErrors.ErrMissingField, path, "", KeyType, "missing variant tag")
	}
	tag, ok := rawTag.(string)
	if !ok {
		return nil, vErrors.NewDecodeError(vErrors.ErrInvalidValue, path, "", KeyType,
			fmt.Sprintf("variant tag must be a string, got %T", rawTag))
	}

	n, ok := ast.New(tag)
	if !ok {
		return nil, vErrors.NewDecodeError(vErrors.ErrUnknownVariant, path, "", "",
			fmt.Sprintf("unknown variant tag %q", tag)).
			WithSuggestion(vErrors.SuggestVariant(tag, ast.Types()))
	}
	_, isDef := n.(ast.Definition)
	fields := n.Fields()

	if err := checkKeys(m, path, tag, fields, isDef); err != nil {
		return nil, err
	}

	meta, err := d.decodeMeta(m, path, tag, isDef)
	if err != nil {
		return nil, err
	}

	// Children are decoded before anything is stored into the new node.
	values := make([]decoded, 0, len(fields))
	for _, f := range fields {
		raw, present := m[f.Name]
		if !present {
			return nil, vErrors.NewDecodeError(vErrors.ErrMissingField, path, tag, f.Name, "missing required field")
		}
		v, err := d.decodeSlot(f, raw, path, tag)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	*n.Metadata() = meta
	for _, v := range values {
		assign(v)
	}
	return n, nil
}

func (d *decoder) decodeSlot(f ast.Field, raw any, path, tag string) (decoded, error) {
	out := decoded{field: f}
	fieldPath := joinPath(path, f.Name)

	switch f.Kind {
	case ast.ChildField:
		if raw == nil {
			if !f.Nullable {
				return out, vErrors.NewDecodeError(vErrors.ErrInvalidValue, path, tag, f.Name, "required child is null")
			}
			return out, nil
		}
		cm, ok := asMap(raw)
		if !ok {
			return out, vErrors.NewDecodeError(vErrors.ErrInvalidValue, path, tag, f.Name,
				fmt.Sprintf("expected a node mapping, got %T", raw))
		}
		child, err := d.decodeNode(cm, fieldPath)
		if err != nil {
			return out, err
		}
		out.child = child
	case ast.ListField:
		items, ok := raw.([]any)
		if !ok {
			return out, vErrors.NewDecodeError(vErrors.ErrInvalidValue, path, tag, f.Name,
				fmt.Sprintf("expected a list of nodes, got %T", raw))
		}
		list, err := d.decodeList(items, fieldPath)
		if err != nil {
			return out, err
		}
		out.list = list
	case ast.ScalarField:
		v, err := decodeScalar(f.Scalar, raw)
		if err != nil {
			cause := vErrors.ErrInvalidValue
			if errors.Is(err, errUnsupportedSlot) {
				cause = vErrors.ErrUnsupportedKind
			}
			return out, vErrors.NewDecodeError(cause, path, tag, f.Name, err.Error())
		}
		out.value = v
	}
	return out, nil
}

func (d *decoder) decodeList(items []any, path string) ([]ast.Node, error) {
	nodes := make([]ast.Node, 0, len(items))
	for i, item := range items {
		itemPath := path + "[" + strconv.Itoa(i) + "]"
		m, ok := asMap(item)
		if !ok {
			return nil, vErrors.NewDecodeError(vErrors.ErrInvalidValue, itemPath, "", "",
				fmt.Sprintf("expected a node mapping, got %T", item))
		}
		n, err := d.decodeNode(m, itemPath)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (d *decoder) decodeMeta(m map[string]any, path, tag string, isDef bool) (ast.Meta, error) {
	meta := ast.Meta{Source: d.source}

	ints := []struct {
		key   string
		dest  *int
		owned bool
	}{
		{KeyNodeID, &meta.NodeID, true},
		{KeyLineno, &meta.Span.StartLine, false},
		{KeyColOffset, &meta.Span.StartCol, false},
		{KeyEndLineno, &meta.Span.EndLine, false},
		{KeyEndColOffset, &meta.Span.EndCol, false},
	}
	for _, f := range ints {
		raw, ok := m[f.key]
		if !ok {
			if f.owned && d.raw {
				continue
			}
			return meta, vErrors.NewDecodeError(vErrors.ErrMissingField, path, tag, f.key, "missing required field")
		}
		v, err := toInt(raw)
		if err != nil {
			return meta, vErrors.NewDecodeError(vErrors.ErrInvalidValue, path, tag, f.key, err.Error())
		}
		*f.dest = v
	}

	if raw, ok := m[KeySrc]; ok {
		src, ok := raw.(string)
		if !ok {
			return meta, vErrors.NewDecodeError(vErrors.ErrInvalidValue, path, tag, KeySrc,
				fmt.Sprintf("expected a string, got %T", raw))
		}
		meta.Src = src
	} else if !d.raw {
		return meta, vErrors.NewDecodeError(vErrors.ErrMissingField, path, tag, KeySrc, "missing required field")
	}

	if isDef {
		raw, ok := m[KeyCategory]
		if !ok {
			if d.raw {
				return meta, nil
			}
			return meta, vErrors.NewDecodeError(vErrors.ErrMissingField, path, tag, KeyCategory, "missing required field")
		}
		switch v := raw.(type) {
		case nil:
		case string:
			cat := ast.Category(v)
			meta.Category = &cat
		default:
			return meta, vErrors.NewDecodeError(vErrors.ErrInvalidValue, path, tag, KeyCategory,
				fmt.Sprintf("expected a string or null, got %T", raw))
		}
	}
	return meta, nil
}

// checkKeys rejects keys that do not belong to the variant.
func checkKeys(m map[string]any, path, tag string, fields []ast.Field, isDef bool) error {
	valid := make(map[string]bool, len(fields)+len(metaKeys)+2)
	valid[KeyType] = true
	for _, k := range metaKeys {
		valid[k] = true
	}
	if isDef {
		valid[KeyCategory] = true
	}
	for _, f := range fields {
		valid[f.Name] = true
	}

	var unknown []string
	for k := range m {
		if !valid[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	names = append(names, metaKeys...)
	return vErrors.NewDecodeError(vErrors.ErrUnknownField, path, tag, unknown[0],
		fmt.Sprintf("unknown field %q", unknown[0])).
		WithSuggestion(vErrors.SuggestField(unknown[0], names))
}

// assign stores a decoded value into its slot.
func assign(v decoded) {
	switch v.field.Kind {
	case ast.ChildField:
		*v.field.Child = v.child
	case ast.ListField:
		*v.field.List = v.list
	case ast.ScalarField:
		switch slot := v.field.Scalar.(type) {
		case *string:
			*slot = v.value.(string)
		case *int:
			*slot = v.value.(int)
		case *float64:
			*slot = v.value.(float64)
		case **bool:
			*slot, _ = v.value.(*bool)
		case **big.Int:
			*slot, _ = v.value.(*big.Int)
		}
	}
}

// decodeScalar converts a dict value into the Go value held by slot.
// A **bool slot decodes null to a nil pointer. Integers are never null.
func decodeScalar(slot, raw any) (any, error) {
	switch slot.(type) {
	case *string:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string, got %T", raw)
		}
		return s, nil
	case *int:
		return toInt(raw)
	case *float64:
		return toFloat(raw)
	case **bool:
		switch v := raw.(type) {
		case nil:
			return (*bool)(nil), nil
		case bool:
			return &v, nil
		default:
			return nil, fmt.Errorf("expected a boolean or null, got %T", raw)
		}
	case **big.Int:
		if raw == nil {
			return nil, errNilInteger
		}
		return toBigInt(raw)
	default:
		return nil, fmt.Errorf("%w %T", errUnsupportedSlot, slot)
	}
}

func asMap(raw any) (map[string]any, bool) {
	m, ok := raw.(map[string]any)
	return m, ok && m != nil
}

func toInt(raw any) (int, error) {
	b, err := toBigInt(raw)
	if err != nil {
		return 0, err
	}
	if !b.IsInt64() || b.Int64() < math.MinInt || b.Int64() > math.MaxInt {
		return 0, fmt.Errorf("integer %s out of range", b)
	}
	return int(b.Int64()), nil
}

func toBigInt(raw any) (*big.Int, error) {
	switch v := raw.(type) {
	case int:
		return big.NewInt(int64(v)), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("expected an integer, got %v", v)
		}
		b, _ := new(big.Float).SetFloat64(v).Int(nil)
		return b, nil
	case json.Number:
		b, ok := new(big.Int).SetString(string(v), 10)
		if !ok {
			return nil, fmt.Errorf("expected an integer, got %s", v)
		}
		return b, nil
	case *big.Int:
		if v == nil {
			return nil, fmt.Errorf("expected an integer, got null")
		}
		return new(big.Int).Set(v), nil
	default:
		return nil, fmt.Errorf("expected an integer, got %T", raw)
	}
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case json.Number:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return 0, fmt.Errorf("expected a number, got %s", v)
		}
		return f, nil
	case string:
		return 0, fmt.Errorf("expected a number, got string")
	default:
		b, err := toBigInt(raw)
		if err != nil {
			return 0, fmt.Errorf("expected a number, got %T", raw)
		}
		f, _ := new(big.Float).SetInt(b).Float64()
		return f, nil
	}
}
