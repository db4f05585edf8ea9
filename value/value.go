// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package value defines an in-memory model of JSON values, translation from
// the syntax trees produced by the jcheck parser, and serialization back to
// JSON text.
//
// A Value has one of seven concrete types:
//
//	JSON type | Go type  | Notes
//	--------- | -------- | ---------------------------------------------
//	null      | Null     | zero-sized; every Null is the same value
//	boolean   | Bool     |
//	string    | String   | decoded text, immutable
//	integer   | *Int     | arbitrary precision, immutable
//	number    | *Float   | exact decimal, immutable
//	array     | *List    | ordered, mutable
//	object    | *Object  | unique keys, mutable
//
// Numbers are never converted to binary floating point. An *Int and a *Float
// are Equal when they denote the same magnitude, so the values parsed from
// "2" and "2.0" compare equal even though they have different kinds.
package value

import (
	"strconv"

	"github.com/creachadair/jcheck"
)

// A Value is a JSON value. The concrete type is one of Null, Bool, String,
// *Int, *Float, *List, or *Object.
type Value interface {
	// Kind reports which variant of JSON value this is.
	Kind() Kind

	// JSON renders the value as compact JSON text.
	JSON() string

	// Clone returns a deep copy of the value. Containers are copied
	// recursively; immutable values may return themselves.
	Clone() Value

	isValue()
}

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindObject
)

var kindStr = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindList:   "list",
	KindObject: "object",
}

func (k Kind) String() string {
	if int(k) < len(kindStr) {
		return kindStr[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsNumber reports whether k is KindInt or KindFloat.
func (k Kind) IsNumber() bool { return k == KindInt || k == KindFloat }

// Null is the JSON null value.
type Null struct{}

func (Null) Kind() Kind     { return KindNull }
func (Null) JSON() string   { return "null" }
func (n Null) Clone() Value { return n }
func (Null) String() string { return "null" }
func (Null) isValue()       {}

// A Bool is a JSON Boolean value.
type Bool bool

func (Bool) Kind() Kind     { return KindBool }
func (b Bool) Clone() Value { return b }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Bool) JSON() string { return b.String() }
func (Bool) isValue()       {}

// A String is a JSON string value. It holds the decoded text, without
// quotation marks or escapes.
type String string

func (String) Kind() Kind     { return KindString }
func (s String) Clone() Value { return s }
func (s String) JSON() string { return jcheck.Quote(string(s)) }
func (String) isValue()       {}

// JSON renders v as compact JSON text. Object keys are emitted in the order
// given by each object's key ordering.
func JSON(v Value) string { return v.JSON() }
