package value

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// UnsupportedTypeError is returned when a Go value has no configuration
// representation.
type UnsupportedTypeError struct {
	Path string
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unsupported value type %s", e.Type)
	}
	return fmt.Sprintf("unsupported value type %s at %q", e.Type, e.Path)
}

// Canonicalize converts decoder output into the canonical tree form used by
// the store: nil, bool, int64, float64, string, []any and map[string]any.
//
// Numbers decoded with json.Decoder.UseNumber become int64 when the literal is
// an integer that fits, float64 otherwise. Values implementing
// encoding.TextMarshaler (time.Time, TOML local dates) become strings.
// The result never shares mutable containers with the input.
func Canonicalize(v any) (any, error) {
	return canonicalize("", v)
}

// CanonicalizeMap is Canonicalize for a mapping root.
func CanonicalizeMap(m map[string]any) (map[string]any, error) {
	if m == nil {
		return map[string]any{}, nil
	}
	out, err := canonicalize("", m)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

func canonicalize(path string, v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool, string, int64:
		return t, nil
	case Value:
		return t.Interface(), nil
	case json.Number:
		return numberFromLiteral(path, t)
	case float64:
		return checkFloat(path, t)
	case float32:
		return checkFloat(path, float64(t))
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case uint:
		return fromUint(uint64(t)), nil
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		return fromUint(t), nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			c, err := canonicalize(join(path, k), item)
			if err != nil {
				return nil, err
			}
			out[k] = c
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			key, ok := k.(string)
			if !ok {
				return nil, &UnsupportedTypeError{Path: path, Type: fmt.Sprintf("map key %T", k)}
			}
			c, err := canonicalize(join(path, key), item)
			if err != nil {
				return nil, err
			}
			out[key] = c
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			c, err := canonicalize(fmt.Sprintf("%s[%d]", path, i), item)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	case []byte:
		return string(t), nil
	case encoding.TextMarshaler:
		text, err := t.MarshalText()
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %T at %q: %w", v, path, err)
		}
		return string(text), nil
	}

	return canonicalizeReflect(path, v)
}

// canonicalizeReflect handles typed maps and slices such as map[string]string
// or []string.
func canonicalizeReflect(path string, v any) (any, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, &UnsupportedTypeError{Path: path, Type: rv.Type().String()}
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			c, err := canonicalize(join(path, key), iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[key] = c
		}
		return out, nil
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			c, err := canonicalize(fmt.Sprintf("%s[%d]", path, i), rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
		return canonicalize(path, rv.Elem().Interface())
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromUint(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return checkFloat(path, rv.Float())
	}
	return nil, &UnsupportedTypeError{Path: path, Type: fmt.Sprintf("%T", v)}
}

func numberFromLiteral(path string, n json.Number) (any, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number %q at %q: %w", s, path, err)
	}
	return checkFloat(path, f)
}

func checkFloat(path string, f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &UnsupportedTypeError{Path: path, Type: "non-finite float"}
	}
	return f, nil
}

func fromUint(u uint64) any {
	if u > math.MaxInt64 {
		return float64(u)
	}
	return int64(u)
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
