// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package value

// Equal reports whether a and b are structurally equal. Lists are equal if
// they have equal elements in the same order; objects are equal if they have
// the same keys with equal values, regardless of key ordering. Numbers are
// equal if they have the same magnitude, whether they are *Int or *Float.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case *Int, *Float:
		c, ok := Compare(a, b)
		return ok && c == 0
	case *List:
		y, ok := b.(*List)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for i, elt := range x.elems {
			if !Equal(elt, y.elems[i]) {
				return false
			}
		}
		return true
	case *Object:
		y, ok := b.(*Object)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for key, v := range x.members {
			w, ok := y.members[key]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	}
	return false
}
