// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"fmt"
	"math/big"
)

// ToValue converts a Go value into a Value. It handles nil, Value, string,
// bool, the built-in integer types, *big.Int, float64, []any, []Value, and
// map[string]any, converting elements and members recursively. A float64
// that is not finite, or a value of any other type, causes a panic.
//
// ToValue is intended for constructing values from literals in code, for
// example in tests.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case int:
		return NewInt(int64(t))
	case int8:
		return NewInt(int64(t))
	case int16:
		return NewInt(int64(t))
	case int32:
		return NewInt(int64(t))
	case int64:
		return NewInt(t)
	case uint:
		return NewBigInt(new(big.Int).SetUint64(uint64(t)))
	case uint8:
		return NewInt(int64(t))
	case uint16:
		return NewInt(int64(t))
	case uint32:
		return NewInt(int64(t))
	case uint64:
		return NewBigInt(new(big.Int).SetUint64(t))
	case *big.Int:
		return NewBigInt(t)
	case float64:
		f, err := FloatOf(t)
		if err != nil {
			panic(fmt.Sprintf("invalid number %v: %v", t, err))
		}
		return f
	case []Value:
		return NewList(t...)
	case []any:
		lst := &List{elems: make([]Value, len(t))}
		for i, elt := range t {
			lst.elems[i] = ToValue(elt)
		}
		return lst
	case map[string]any:
		obj := NewObject()
		for key, elt := range t {
			obj.Set(key, ToValue(elt))
		}
		return obj
	}
	panic(fmt.Sprintf("unsupported type %T", v))
}
