// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// An Object is a collection of key-value members with unique keys. Setting a
// key that is already present replaces its value.
//
// Each object carries a key ordering, used only to decide the order in which
// members are serialized. The default is the natural lexicographic order of
// the keys. A zero Object is empty, uses the default order, and is ready for
// use.
type Object struct {
	members map[string]Value
	order   func(a, b string) int
}

// NewObject constructs an empty object with the default key ordering.
func NewObject() *Object { return new(Object) }

// NewObjectFunc constructs an empty object whose keys are serialized in the
// order given by cmp, which has the same contract as strings.Compare. If cmp
// == nil, the default order is used.
func NewObjectFunc(cmp func(a, b string) int) *Object { return &Object{order: cmp} }

func (*Object) Kind() Kind { return KindObject }
func (*Object) isValue()   {}

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.members) }

// Get returns the value of the member of o with the given key, and reports
// whether it was found.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.members[key]
	return v, ok
}

// Has reports whether o has a member with the given key.
func (o *Object) Has(key string) bool {
	_, ok := o.members[key]
	return ok
}

// Set sets the value of the member of o with the given key. A nil v is
// stored as Null.
func (o *Object) Set(key string, v Value) {
	if o.members == nil {
		o.members = make(map[string]Value)
	}
	o.members[key] = orNull(v)
}

// Remove removes the member of o with the given key, and returns its value.
// It reports false if no such member was present.
func (o *Object) Remove(key string) (Value, bool) {
	v, ok := o.members[key]
	if ok {
		delete(o.members, key)
	}
	return v, ok
}

// Order returns the key comparison function of o.
func (o *Object) Order() func(a, b string) int {
	if o.order == nil {
		return strings.Compare
	}
	return o.order
}

// SetOrder sets the key ordering of o. If cmp == nil, the default order is
// restored.
func (o *Object) SetOrder(cmp func(a, b string) int) { o.order = cmp }

// Keys returns the keys of o in key order.
func (o *Object) Keys() []string {
	return slices.SortedFunc(maps.Keys(o.members), o.Order())
}

// All returns an iterator over the members of o in key order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range o.Keys() {
			if !yield(key, o.members[key]) {
				return
			}
		}
	}
}

// BoolOr returns the value of the Boolean member with the given key, or def
// if o has no such member or its value is not a Bool.
func (o *Object) BoolOr(key string, def bool) bool {
	if b, ok := o.members[key].(Bool); ok {
		return bool(b)
	}
	return def
}

// StringOr returns the value of the string member with the given key, or def
// if o has no such member or its value is not a String.
func (o *Object) StringOr(key, def string) string {
	if s, ok := o.members[key].(String); ok {
		return string(s)
	}
	return def
}

// Clone returns a deep copy of o, including its key ordering.
func (o *Object) Clone() Value {
	out := &Object{order: o.order}
	if o.members != nil {
		out.members = make(map[string]Value, len(o.members))
		for key, v := range o.members {
			out.members[key] = v.Clone()
		}
	}
	return out
}

// JSON renders o as a compact JSON object.
func (o *Object) JSON() string {
	var sb strings.Builder
	writeJSON(&sb, o)
	return sb.String()
}
