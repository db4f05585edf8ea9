// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"fmt"

	"github.com/creachadair/jcheck"
)

// Parse parses text as a single JSON value.
//
// Errors from the parser have type *jcheck.SyntaxError or *jcheck.LexError.
// A string literal with a malformed escape is reported as a
// *jcheck.FormatError, and a number whose exponent is out of range as a
// *NumberError.
func Parse(text string) (Value, error) {
	root, err := jcheck.Parse(text)
	if err != nil {
		return nil, err
	}
	return FromTree(root)
}

// FromTree translates a syntax tree produced by the jcheck parser into a
// Value. A node with an unrecognized symbol or shape is reported as a
// *TranslationError; a number terminal whose text cannot be represented is
// reported as a *NumberError.
func FromTree(n jcheck.Node) (Value, error) {
	switch n.Symbol() {
	case jcheck.SymObject:
		obj := NewObject()
		for _, kid := range n.Children() {
			key, val, err := fromPair(kid)
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
		return obj, nil

	case jcheck.SymArray:
		lst := &List{elems: make([]Value, 0, len(n.Children()))}
		for _, kid := range n.Children() {
			v, err := FromTree(kid)
			if err != nil {
				return nil, err
			}
			lst.elems = append(lst.elems, v)
		}
		return lst, nil

	case jcheck.SymString:
		t, err := terminal(n)
		if err != nil {
			return nil, err
		}
		s, err := jcheck.Unquote(t.Text)
		if err != nil {
			return nil, err
		}
		return String(s), nil

	case jcheck.SymInteger:
		t, err := terminal(n)
		if err != nil {
			return nil, err
		}
		z, err := ParseInt(t.Text)
		if err != nil {
			return nil, err
		}
		return z, nil

	case jcheck.SymNumber:
		t, err := terminal(n)
		if err != nil {
			return nil, err
		}
		f, err := ParseFloat(t.Text)
		if err != nil {
			return nil, err
		}
		return f, nil

	case jcheck.SymTrue:
		return Bool(true), nil
	case jcheck.SymFalse:
		return Bool(false), nil
	case jcheck.SymNull:
		return Null{}, nil
	}
	return nil, &TranslationError{Symbol: n.Symbol(), Reason: "unknown symbol"}
}

func fromPair(n jcheck.Node) (string, Value, error) {
	kids := n.Children()
	if n.Symbol() != jcheck.SymPair || len(kids) != 2 {
		return "", nil, &TranslationError{
			Symbol: n.Symbol(),
			Reason: fmt.Sprintf("object member is not a pair (%d children)", len(kids)),
		}
	}
	if kids[0].Symbol() != jcheck.SymString {
		return "", nil, &TranslationError{Symbol: kids[0].Symbol(), Reason: "object key is not a string"}
	}
	key, err := FromTree(kids[0])
	if err != nil {
		return "", nil, err
	}
	val, err := FromTree(kids[1])
	if err != nil {
		return "", nil, err
	}
	return string(key.(String)), val, nil
}

func terminal(n jcheck.Node) (*jcheck.Terminal, error) {
	t, ok := n.(*jcheck.Terminal)
	if !ok {
		return nil, &TranslationError{Symbol: n.Symbol(), Reason: "expected a terminal node"}
	}
	return t, nil
}
