package jsontree

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Signed is the set of types read by Int.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of types read by Uint.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Floating is the set of types read by Float.
type Floating interface {
	~float32 | ~float64
}

// Int reads a JSON number into a signed integer type. Null reads as zero.
func Int[T Signed](node any) (T, error) {
	if node == nil {
		return 0, nil
	}

	n, err := toInt64(node)
	if err != nil {
		return 0, err
	}

	v := T(n)
	if int64(v) != n {
		return 0, &RangeError{Value: strconv.FormatInt(n, 10), Target: fmt.Sprintf("%T", v)}
	}

	return v, nil
}

// Uint reads a JSON number into an unsigned integer type. Null reads as zero.
func Uint[T Unsigned](node any) (T, error) {
	if node == nil {
		return 0, nil
	}

	n, err := toUint64(node)
	if err != nil {
		return 0, err
	}

	v := T(n)
	if uint64(v) != n {
		return 0, &RangeError{Value: strconv.FormatUint(n, 10), Target: fmt.Sprintf("%T", v)}
	}

	return v, nil
}

// Float reads a JSON number into a floating point type. Null reads as zero.
func Float[T Floating](node any) (T, error) {
	if node == nil {
		return 0, nil
	}

	f, err := toFloat64(node)
	if err != nil {
		return 0, err
	}

	var v T
	if reflect.TypeOf(v).Kind() == reflect.Float32 && math.Abs(f) > math.MaxFloat32 && !math.IsInf(f, 0) {
		return 0, &RangeError{Value: strconv.FormatFloat(f, 'g', -1, 64), Target: fmt.Sprintf("%T", v)}
	}

	return T(f), nil
}

// String reads a JSON string. Null reads as the empty string.
func String[T ~string](node any) (T, error) {
	switch v := node.(type) {
	case nil:
		return "", nil
	case string:
		return T(v), nil
	default:
		return "", &TypeError{Expected: "string", Got: KindOf(node)}
	}
}

// Bool reads a JSON boolean. Null reads as false.
func Bool[T ~bool](node any) (T, error) {
	switch v := node.(type) {
	case nil:
		return false, nil
	case bool:
		return T(v), nil
	default:
		return false, &TypeError{Expected: "boolean", Got: KindOf(node)}
	}
}

// Bytes reads a base64 string, the form encoding/json writes byte slices in.
// Null reads as a nil slice.
func Bytes[T ~[]byte](node any) (T, error) {
	switch v := node.(type) {
	case nil:
		return nil, nil
	case string:
		b, err := base64.StdEncoding.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("decoding base64: %w", err)
		}
		return T(b), nil
	default:
		return nil, &TypeError{Expected: "string", Got: KindOf(node)}
	}
}

// EnumText returns the text an integer enum constant is matched against:
// the string itself for JSON strings, the canonical integer for numbers.
func EnumText(node any) (string, bool) {
	switch v := node.(type) {
	case string:
		return v, true
	case nil, bool, map[string]any, []any:
		return "", false
	default:
		n, err := toInt64(node)
		if err != nil {
			return "", false
		}
		return strconv.FormatInt(n, 10), true
	}
}

func toInt64(node any) (int64, error) {
	switch v := node.(type) {
	case json.Number:
		if n, err := strconv.ParseInt(string(v), 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return 0, &TypeError{Expected: "integer", Got: "number " + string(v)}
		}
		return floatToInt64(f)
	case float64:
		return floatToInt64(v)
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, &TypeError{Expected: "number", Got: KindOf(node)}
	}
}

func floatToInt64(f float64) (int64, error) {
	if f != math.Trunc(f) {
		return 0, &TypeError{Expected: "integer", Got: "number " + strconv.FormatFloat(f, 'g', -1, 64)}
	}

	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, &RangeError{Value: strconv.FormatFloat(f, 'g', -1, 64), Target: "int64"}
	}

	return int64(f), nil
}

func toUint64(node any) (uint64, error) {
	if num, ok := node.(json.Number); ok {
		if n, err := strconv.ParseUint(string(num), 10, 64); err == nil {
			return n, nil
		}
	}

	n, err := toInt64(node)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, &RangeError{Value: strconv.FormatInt(n, 10), Target: "unsigned integer"}
	}

	return uint64(n), nil
}

func toFloat64(node any) (float64, error) {
	switch v := node.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, &RangeError{Value: string(v), Target: "float64"}
		}
		return f, nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, &TypeError{Expected: "number", Got: KindOf(node)}
	}
}
