// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"fmt"
	"strings"
)

// TranslationError is the concrete type of errors reported when a syntax tree
// node cannot be translated into a Value. This indicates that the tree did not
// come from the jcheck parser, or that the parser and the value model
// disagree about the grammar.
type TranslationError struct {
	Symbol string // the symbol of the offending node
	Reason string
	Err    error // the underlying cause, if any
}

// Error satisfies the error interface.
func (e *TranslationError) Error() string {
	msg := fmt.Sprintf("cannot translate %q node: %s", e.Symbol, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap supports error wrapping.
func (e *TranslationError) Unwrap() error { return e.Err }

// NumberError is the concrete type of errors reported when the text of a
// number is malformed, or its exponent is outside the supported range
// (a signed 32-bit integer).
type NumberError struct {
	Text string // the offending text
	Err  error
}

// Error satisfies the error interface.
func (e *NumberError) Error() string {
	return fmt.Sprintf("invalid number %q: %v", abbrev(e.Text, 32), e.Err)
}

// Unwrap supports error wrapping.
func (e *NumberError) Unwrap() error { return e.Err }

func abbrev(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// UnsupportedError is the concrete type of the panic value reported when an
// operation is applied to a Value of the wrong kind. This is a programming
// error rather than a data error, so it is reported by panicking.
type UnsupportedError struct {
	Op   string // the operation attempted
	Kind Kind   // the kind of the value
	Want []Kind // the kinds supporting the operation
}

// Error satisfies the error interface.
func (e *UnsupportedError) Error() string {
	ws := make([]string, len(e.Want))
	for i, k := range e.Want {
		ws[i] = k.String()
	}
	return fmt.Sprintf("cannot call %s on %v value; must be %s", e.Op, e.Kind, strings.Join(ws, " or "))
}

func unsupported(op string, v Value, want ...Kind) *UnsupportedError {
	return &UnsupportedError{Op: op, Kind: v.Kind(), Want: want}
}
