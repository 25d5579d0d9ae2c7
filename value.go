// File: strata/value.go
package strata

import (
	"fmt"
	"reflect"
	"strconv"
)

// Value wraps one node of a merged configuration tree together with its
// dotted path. It exposes further path lookups and typed scalar
// conversions; no operation mutates the underlying tree.
type Value struct {
	path string
	raw  any
}

// Path returns the dotted path of this node within the merged tree.
func (v *Value) Path() string {
	return v.path
}

// Raw returns the native value at this node. Mappings and sequences are
// deep-copied so the caller cannot mutate the merged tree through them.
func (v *Value) Raw() any {
	return copyTreeValue(v.raw)
}

// IsNil reports whether the node holds an explicit null.
func (v *Value) IsNil() bool {
	return v.raw == nil
}

// Get resolves a dotted path relative to this node. The node must be a
// mapping for any non-empty path.
func (v *Value) Get(path string) (*Value, error) {
	return walkPath(v.raw, v.path, path)
}

// String converts the node to a string.
// Attempts conversion from common scalar types if the value isn't already a string.
func (v *Value) String() (string, error) {
	if v.raw == nil {
		return "", nil // Treat null as empty string for convenience
	}

	if strVal, ok := v.raw.(string); ok {
		return strVal, nil
	}

	// Attempt conversion for common types
	switch val := v.raw.(type) {
	case fmt.Stringer:
		return val.String(), nil
	case []byte:
		return string(val), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10), nil
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	default:
		return "", &TypeMismatchError{Path: v.path, Want: "string", Got: v.raw}
	}
}

// Int64 converts the node to an int64.
// Attempts conversion from numeric types, parsable strings, and booleans.
func (v *Value) Int64() (int64, error) {
	if v.raw == nil {
		return 0, &TypeMismatchError{Path: v.path, Want: "int64", Got: nil}
	}

	if b, ok := v.raw.(bool); ok {
		if b {
			return 1, nil
		}
		return 0, nil
	}

	// Use reflection for broader compatibility with numeric types,
	// including json.Number which is a string kind.
	rv := reflect.ValueOf(v.raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		maxInt64 := uint64(^uint64(0) >> 1)
		if u > maxInt64 {
			return 0, fmt.Errorf("cannot convert unsigned integer %d to int64 at %s: overflow", u, v.path)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		// Truncate float to int
		return int64(rv.Float()), nil
	case reflect.String:
		s := rv.String()
		if i, err := strconv.ParseInt(s, 0, 64); err == nil { // Base 0 for auto-detection (e.g., "0xFF")
			return i, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f), nil // Truncate
		}
		return 0, &TypeMismatchError{Path: v.path, Want: "int64", Got: v.raw}
	default:
		return 0, &TypeMismatchError{Path: v.path, Want: "int64", Got: v.raw}
	}
}

// Float64 converts the node to a float64.
func (v *Value) Float64() (float64, error) {
	if v.raw == nil {
		return 0, &TypeMismatchError{Path: v.path, Want: "float64", Got: nil}
	}

	rv := reflect.ValueOf(v.raw)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.String:
		if f, err := strconv.ParseFloat(rv.String(), 64); err == nil {
			return f, nil
		}
		return 0, &TypeMismatchError{Path: v.path, Want: "float64", Got: v.raw}
	default:
		return 0, &TypeMismatchError{Path: v.path, Want: "float64", Got: v.raw}
	}
}

// Bool converts the node to a bool. Parsable strings and numeric values
// (non-zero means true) convert as well.
func (v *Value) Bool() (bool, error) {
	if v.raw == nil {
		return false, &TypeMismatchError{Path: v.path, Want: "bool", Got: nil}
	}

	if boolVal, ok := v.raw.(bool); ok {
		return boolVal, nil
	}

	rv := reflect.ValueOf(v.raw)
	switch rv.Kind() {
	case reflect.String:
		if b, err := strconv.ParseBool(rv.String()); err == nil {
			return b, nil
		}
		return false, &TypeMismatchError{Path: v.path, Want: "bool", Got: v.raw}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0, nil
	default:
		return false, &TypeMismatchError{Path: v.path, Want: "bool", Got: v.raw}
	}
}

// Slice returns the node as a sequence of wrapped values. Mapping
// elements stay path-addressable through Get on the returned values.
func (v *Value) Slice() ([]*Value, error) {
	seq, ok := v.raw.([]any)
	if !ok {
		return nil, &TypeMismatchError{Path: v.path, Want: "sequence", Got: v.raw}
	}

	out := make([]*Value, len(seq))
	for i, item := range seq {
		out[i] = &Value{path: fmt.Sprintf("%s[%d]", v.path, i), raw: item}
	}
	return out, nil
}

// Index returns the i-th element of a sequence node.
func (v *Value) Index(i int) (*Value, error) {
	seq, ok := v.raw.([]any)
	if !ok {
		return nil, &TypeMismatchError{Path: v.path, Want: "sequence", Got: v.raw}
	}
	if i < 0 || i >= len(seq) {
		return nil, &KeyNotFoundError{Path: fmt.Sprintf("%s[%d]", v.path, i)}
	}
	return &Value{path: fmt.Sprintf("%s[%d]", v.path, i), raw: seq[i]}, nil
}

// Len returns the element count of a sequence node.
func (v *Value) Len() (int, error) {
	seq, ok := v.raw.([]any)
	if !ok {
		return 0, &TypeMismatchError{Path: v.path, Want: "sequence", Got: v.raw}
	}
	return len(seq), nil
}

// Map returns a deep copy of a mapping node.
func (v *Value) Map() (map[string]any, error) {
	node, ok := v.raw.(map[string]any)
	if !ok {
		return nil, &TypeMismatchError{Path: v.path, Want: "mapping", Got: v.raw}
	}
	return copyTreeValue(node).(map[string]any), nil
}
