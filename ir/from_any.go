package ir

import (
	"fmt"
	"reflect"

	"github.com/goccy/go-yaml"
)

// FromAny converts a Go value into a binding node. Maps must have
// string keys; a yaml.MapSlice keeps its field order; structs and
// pointers to structs become records; values with no binding
// representation (funcs, channels, ...) are an error.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case Record:
		return FromRecord(x), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromInt(int64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case yaml.MapSlice:
		fields := make([]string, 0, len(x))
		values := make([]*Node, 0, len(x))
		for _, item := range x {
			key := fmt.Sprintf("%v", item.Key)
			node, err := FromAny(item.Value)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", key, err)
			}
			fields = append(fields, key)
			values = append(values, node)
		}
		return FromKeys(fields, values), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, mv := range x {
			node, err := FromAny(mv)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			m[k] = node
		}
		return FromMap(m), nil
	case []any:
		vals := make([]*Node, len(x))
		for i, ev := range x {
			node, err := FromAny(ev)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			vals[i] = node
		}
		return FromSlice(vals), nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) (*Node, error) {
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Elem().Kind() == reflect.Struct {
			return FromRecord(RecordOf(rv.Interface())), nil
		}
		return fromReflect(rv.Elem())
	case reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Struct:
		return FromRecord(RecordOf(rv.Interface())), nil
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		vals := make([]*Node, n)
		for i := 0; i < n; i++ {
			node, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			vals[i] = node
		}
		return FromSlice(vals), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("cannot use map with %s keys as a binding value", rv.Type().Key())
		}
		m := make(map[string]*Node, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			node, err := FromAny(iter.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", iter.Key().String(), err)
			}
			m[iter.Key().String()] = node
		}
		return FromMap(m), nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return FromInt(int64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	default:
		return nil, fmt.Errorf("cannot use %s as a binding value", rv.Kind())
	}
}
