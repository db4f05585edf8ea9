// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"iter"
	"slices"
	"strings"
)

// A List is an ordered sequence of values. A zero List is empty and ready
// for use.
type List struct {
	elems []Value
}

// NewList constructs a list containing vs. The list takes ownership of the
// values; a nil element is stored as Null.
func NewList(vs ...Value) *List {
	lst := &List{elems: make([]Value, 0, len(vs))}
	lst.Add(vs...)
	return lst
}

func (*List) Kind() Kind { return KindList }
func (*List) isValue()   {}

// Len reports the number of elements in a.
func (a *List) Len() int { return len(a.elems) }

// Has reports whether i is a valid index of a.
func (a *List) Has(i int) bool { return i >= 0 && i < len(a.elems) }

// At returns the element of a at index i. It panics if i is out of range.
func (a *List) At(i int) Value { return a.elems[i] }

// Set replaces the element of a at index i with v. It panics if i is out of
// range.
func (a *List) Set(i int, v Value) { a.elems[i] = orNull(v) }

// Add appends vs to the end of a.
func (a *List) Add(vs ...Value) {
	for _, v := range vs {
		a.elems = append(a.elems, orNull(v))
	}
}

// Remove removes and returns the element of a at index i, shifting later
// elements down. It panics if i is out of range.
func (a *List) Remove(i int) Value {
	v := a.elems[i]
	a.elems = slices.Delete(a.elems, i, i+1)
	return v
}

// All returns an iterator over the indices and elements of a, in order.
func (a *List) All() iter.Seq2[int, Value] { return slices.All(a.elems) }

// Values returns a copy of the elements of a.
func (a *List) Values() []Value { return slices.Clone(a.elems) }

// Clone returns a deep copy of a.
func (a *List) Clone() Value {
	out := &List{elems: make([]Value, len(a.elems))}
	for i, v := range a.elems {
		out.elems[i] = v.Clone()
	}
	return out
}

// JSON renders a as a compact JSON array.
func (a *List) JSON() string {
	var sb strings.Builder
	writeJSON(&sb, a)
	return sb.String()
}

func orNull(v Value) Value {
	if v == nil {
		return Null{}
	}
	return v
}
