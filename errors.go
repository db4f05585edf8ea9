// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import "fmt"

// LexError is the concrete type of errors reported by the Scanner when no
// token matches the remaining input.
type LexError struct {
	Location LineCol
	Rest     string // the unconsumed input
}

// Error satisfies the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("at %s: no token matches input %q", e.Location, abbrev(e.Rest, 24))
}

// SyntaxError is the concrete type of errors reported by the parser when the
// token stream does not match the grammar.
type SyntaxError struct {
	Location LineCol
	Expected string // description of the acceptable tokens
	Got      string // description of the token found
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: expected %s, got %s", e.Location, e.Expected, e.Got)
}

// FormatError is the concrete type of errors reported when a string literal
// contains a malformed escape sequence.
type FormatError struct {
	Text string // the offending literal
	Err  error
}

// Error satisfies the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid string %s: %v", abbrev(e.Text, 32), e.Err)
}

// Unwrap supports error wrapping.
func (e *FormatError) Unwrap() error { return e.Err }

func abbrev(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
