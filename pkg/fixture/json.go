package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
)

// ReadJSON decodes one JSON object. Numbers are kept as json.Number so that
// integers of any size reach the dict decoder intact.
func ReadJSON(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse JSON document: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("JSON document is not an object")
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after JSON document")
	}
	return m, nil
}

// WriteJSON writes m as indented JSON followed by a newline. Keys are sorted.
// Integral floats keep a fractional part so they read back as floats.
func WriteJSON(w io.Writer, m map[string]any, indent int) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(floatsToNumbers(m)); err != nil {
		return fmt.Errorf("failed to encode JSON document: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// floatsToNumbers returns a copy of v with every float64 replaced by its
// json.Number rendering.
func floatsToNumbers(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = floatsToNumbers(item)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = floatsToNumbers(item)
		}
		return out
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			// Left for the encoder to reject.
			return x
		}
		return json.Number(formatFloat(x))
	default:
		return v
	}
}
