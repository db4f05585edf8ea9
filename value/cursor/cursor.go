// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor selects values inside the structure of a JSON value by
// following a path of object keys, list offsets, and functions.
package cursor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jcheck/value"
)

// A PathError reports that a path could not be followed to its end.
type PathError struct {
	Path []any // the elements followed, ending with the one that failed
	Err  error
}

// Error satisfies the error interface.
func (e *PathError) Error() string { return fmt.Sprintf("at %s: %v", Format(e.Path), e.Err) }

// Unwrap supports error wrapping.
func (e *PathError) Unwrap() error { return e.Err }

// Find follows path from v and returns the value it reaches. An empty path
// selects v itself. If the path cannot be followed, the error has concrete
// type [*PathError].
//
// A string element selects the member of an object with that key. Applied to
// a list, a string must be a decimal offset ("0", "12"), as in a JSON pointer.
//
// An int element selects the element of a list at that offset, or the value
// of the member of an object at that offset in key order. Negative offsets
// count backward from the end (-1 is last).
//
// A function element must have the signature
//
//	func(value.Value) (value.Value, error)
//
// and its result becomes the next value in the sequence.
func Find(v value.Value, path ...any) (value.Value, error) {
	cur := v
	for i, elt := range path {
		next, err := step(cur, elt)
		if err != nil {
			return nil, &PathError{Path: path[:i+1], Err: err}
		}
		cur = next
	}
	return cur, nil
}

// Path is as Find, but also requires the selected value to have type T.
func Path[T value.Value](v value.Value, path ...any) (T, error) {
	var zero T
	found, err := Find(v, path...)
	if err != nil {
		return zero, err
	}
	out, ok := found.(T)
	if !ok {
		return zero, &PathError{Path: path, Err: fmt.Errorf("got %v, want %T", found.Kind(), zero)}
	}
	return out, nil
}

func step(cur value.Value, elt any) (value.Value, error) {
	switch t := elt.(type) {
	case string:
		switch c := cur.(type) {
		case *value.Object:
			if v, ok := c.Get(t); ok {
				return v, nil
			}
			return nil, fmt.Errorf("key %q not found", t)
		case *value.List:
			n, err := strconv.Atoi(t)
			if err != nil || n < 0 || strconv.Itoa(n) != t {
				return nil, fmt.Errorf("invalid list offset %q", t)
			}
			return listElem(c, n)
		}
		return nil, fmt.Errorf("cannot select %q from %v", t, cur.Kind())

	case int:
		switch c := cur.(type) {
		case *value.List:
			return listElem(c, t)
		case *value.Object:
			keys := c.Keys()
			i, ok := offset(len(keys), t)
			if !ok {
				return nil, fmt.Errorf("object offset %d out of range (n=%d)", t, len(keys))
			}
			v, _ := c.Get(keys[i])
			return v, nil
		}
		return nil, fmt.Errorf("cannot select offset %d from %v", t, cur.Kind())

	case func(value.Value) (value.Value, error):
		return t(cur)
	}
	return nil, fmt.Errorf("invalid path element %T", elt)
}

func listElem(lst *value.List, n int) (value.Value, error) {
	i, ok := offset(lst.Len(), n)
	if !ok {
		return nil, fmt.Errorf("list offset %d out of range (n=%d)", n, lst.Len())
	}
	return lst.At(i), nil
}

func offset(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

var (
	pointerEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// Pointer splits a JSON pointer (RFC 6901) such as "/a/0/b~1c" into a path
// for Find. The empty pointer selects the whole document.
func Pointer(s string) ([]any, error) {
	if s == "" {
		return nil, nil
	} else if !strings.HasPrefix(s, "/") {
		return nil, errors.New("pointer must begin with /")
	}
	var path []any
	for tok := range strings.SplitSeq(s[1:], "/") {
		if strings.Count(tok, "~") != strings.Count(tok, "~0")+strings.Count(tok, "~1") {
			return nil, fmt.Errorf("invalid escape in %q", tok)
		}
		path = append(path, pointerUnescaper.Replace(tok))
	}
	return path, nil
}

// Format renders path as a JSON pointer. Function elements are rendered as
// "(func)".
func Format(path []any) string {
	var sb strings.Builder
	for _, elt := range path {
		sb.WriteByte('/')
		switch t := elt.(type) {
		case string:
			sb.WriteString(pointerEscaper.Replace(t))
		case int:
			sb.WriteString(strconv.Itoa(t))
		case func(value.Value) (value.Value, error):
			sb.WriteString("(func)")
		default:
			fmt.Fprintf(&sb, "(%T)", elt)
		}
	}
	return sb.String()
}
