package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
)

// FromGo converts a Go value into a Node. Maps and slices convert eagerly,
// recursively, so the resulting subtree is fully navigable; anything else
// that is not a JSON scalar becomes an OpaqueKind leaf whose
// representability is checked at serialization time. Maps must have string
// keys; other key types fail with ErrKeyType.
func FromGo(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		// Cloning keeps single-parent back-references intact when the
		// node is already attached elsewhere.
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
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
		return fromUint(uint64(x))
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return fromNumberText(string(x)), nil
	case map[string]any:
		res := NewObject()
		for _, key := range slices.Sorted(maps.Keys(x)) {
			child, err := FromGo(x[key])
			if err != nil {
				return nil, err
			}
			res.SetField(key, child)
		}
		return res, nil
	case []any:
		res := NewArray()
		for _, elt := range x {
			child, err := FromGo(elt)
			if err != nil {
				return nil, err
			}
			res.Append(child)
		}
		return res, nil
	case []byte:
		// json encodes []byte as base64 text; defer to serialization.
		return Opaque(x), nil
	}
	return fromReflect(v)
}

func fromUint(u uint64) (*Node, error) {
	if u > uint64(1<<63-1) {
		return fromNumberText(strconv.FormatUint(u, 10)), nil
	}
	return FromInt(int64(u)), nil
}

// fromNumberText mirrors the parser's number classification: exact int64
// where possible, then float64, then the source text verbatim.
func fromNumberText(s string) *Node {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return FromFloat(f)
	}
	return &Node{Kind: NumberKind, Number: s}
}

func fromReflect(v any) (*Node, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromGo(rv.Elem().Interface())
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: %s", ErrKeyType, rv.Type().Key())
		}
		keys := make([]string, 0, rv.Len())
		for _, kv := range rv.MapKeys() {
			keys = append(keys, kv.String())
		}
		slices.Sort(keys)
		res := NewObject()
		for _, key := range keys {
			child, err := FromGo(rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key())).Interface())
			if err != nil {
				return nil, err
			}
			res.SetField(key, child)
		}
		return res, nil
	case reflect.Slice, reflect.Array:
		res := NewArray()
		for i := range rv.Len() {
			child, err := FromGo(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			res.Append(child)
		}
		return res, nil
	}
	return Opaque(v), nil
}

// ToGo converts a node back into a plain Go value: scalars to their Go
// forms, objects to map[string]any (insertion order is lost), arrays to
// []any, opaque leaves to their payload.
func ToGo(n *Node) any {
	switch n.Kind {
	case NullKind:
		return nil
	case BoolKind:
		return n.Bool
	case StringKind:
		return n.String
	case NumberKind:
		if n.Int64 != nil {
			return *n.Int64
		}
		if n.Float64 != nil {
			return *n.Float64
		}
		return json.Number(n.Number)
	case ObjectKind:
		res := make(map[string]any, len(n.Fields))
		for i, f := range n.Fields {
			res[f] = ToGo(n.Values[i])
		}
		return res
	case ArrayKind:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = ToGo(v)
		}
		return res
	case OpaqueKind:
		return n.Any
	}
	return nil
}
