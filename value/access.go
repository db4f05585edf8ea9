// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package value

import "math/big"

// The accessors in this file convert a Value to a concrete variant. Applying
// one to a value of the wrong kind is a programming error, and panics with an
// *UnsupportedError.

// AsObject returns v as an *Object.
func AsObject(v Value) *Object {
	if o, ok := v.(*Object); ok {
		return o
	}
	panic(unsupported("AsObject", v, KindObject))
}

// AsList returns v as a *List.
func AsList(v Value) *List {
	if a, ok := v.(*List); ok {
		return a
	}
	panic(unsupported("AsList", v, KindList))
}

// AsString returns the text of a String value.
func AsString(v Value) string {
	if s, ok := v.(String); ok {
		return string(s)
	}
	panic(unsupported("AsString", v, KindString))
}

// AsBool returns the truth value of a Bool.
func AsBool(v Value) bool {
	if b, ok := v.(Bool); ok {
		return bool(b)
	}
	panic(unsupported("AsBool", v, KindBool))
}

// AsNumber returns the exact value of an *Int or *Float as a fraction.
func AsNumber(v Value) *big.Rat {
	if r, ok := Rat(v); ok {
		return r
	}
	panic(unsupported("AsNumber", v, KindInt, KindFloat))
}

// Len returns the number of elements of a list, the number of members of an
// object, or the number of code points in a string.
func Len(v Value) int {
	switch t := v.(type) {
	case *List:
		return t.Len()
	case *Object:
		return t.Len()
	case String:
		return len([]rune(string(t)))
	}
	panic(unsupported("Len", v, KindString, KindList, KindObject))
}
