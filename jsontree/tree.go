package jsontree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decode parses data into a raw tree. Numbers are kept as json.Number so that
// integers wider than 53 bits survive.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var node any
	if err := dec.Decode(&node); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decoding document: unexpected data after top-level value")
	}

	return node, nil
}

// IsNull reports whether data is empty or the JSON literal null.
func IsNull(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Object asserts that node is a JSON object.
func Object(node any) (map[string]any, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, &TypeError{Expected: "object", Got: KindOf(node)}
	}

	return obj, nil
}

// Array asserts that node is a JSON array.
func Array(node any) ([]any, error) {
	arr, ok := node.([]any)
	if !ok {
		return nil, &TypeError{Expected: "array", Got: KindOf(node)}
	}

	return arr, nil
}

// KindOf names the JSON kind of a raw tree value.
func KindOf(node any) string {
	switch node.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int64, int32, uint64:
		return "number"
	default:
		return fmt.Sprintf("%T", node)
	}
}
