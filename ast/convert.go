// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// ToValue converts a plain Go value into a Value. It accepts a string,
// bool, nil, int, int64, float64, []any, map[string]any, or a Value,
// which is returned unchanged. ToValue panics if v does not have one
// of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case nil:
		return Null
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case float64:
		return Number(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		out := Object{}
		for key, elt := range t {
			out = out.Set(key, ToValue(elt))
		}
		return out
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}

// ArrayOf constructs an array of the given values, each converted by
// ToValue.
func ArrayOf(vs ...any) Array {
	out := make(Array, len(vs))
	for i, v := range vs {
		out[i] = ToValue(v)
	}
	return out
}

// ObjectOf constructs an object from the given members, ordering them
// by key. A duplicate key retains the last value given for it.
func ObjectOf(ms ...*Member) Object {
	out := Object{}
	for _, m := range ms {
		out = out.Set(m.Key, m.Value)
	}
	return out
}

// Plain converts v into a representation using only plain Go types:
// map[string]any for objects, []any for arrays, and string, float64,
// bool, or nil for the remaining values.
func Plain(v Value) any {
	switch t := v.(type) {
	case Object:
		out := make(map[string]any, len(t))
		for _, m := range t {
			out[m.Key] = Plain(m.Value)
		}
		return out
	case Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = Plain(elt)
		}
		return out
	case String:
		return string(t)
	case Number:
		return float64(t)
	case Bool:
		return bool(t)
	default:
		return nil
	}
}
