// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jcheck_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jcheck"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{"a\"b\\c", `"a\"b\\c"`},
		{"\t\n\r\f\b", `"\t\n\r\f\b"`},
		{"\x00\x1f", `"\u0000\u001f"`},
		{"caf\u00e9", "\"caf\u00e9\""},
	}
	for _, tc := range tests {
		got := jcheck.Quote(tc.input)
		if got != tc.want {
			t.Errorf("Quote(%q): got %#q, want %#q", tc.input, got, tc.want)
		}
		dec, err := jcheck.Unquote(got)
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", got, err)
		} else if dec != tc.input {
			t.Errorf("Unquote(%#q): got %q, want %q", got, dec, tc.input)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`"a\/b"`, "a/b"},
		{`"A\u00e9"`, "A\u00e9"},
		{`"\ud83d\udca9"`, "\U0001f4a9"},
		{`"\ud83d"`, "\ufffd"},
		{`"\udca9x"`, "\ufffdx"},
	}
	for _, tc := range tests {
		got, err := jcheck.Unquote(tc.input)
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", tc.input, err)
		} else if got != tc.want {
			t.Errorf("Unquote(%#q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	tests := []string{
		``,
		`"`,
		`abc`,
		`"abc`,
		`"\"`,
		`"\x"`,
		`"\u12"`,
		`"\uzzzz"`,
	}
	for _, input := range tests {
		got, err := jcheck.Unquote(input)
		var ferr *jcheck.FormatError
		if !errors.As(err, &ferr) {
			t.Errorf("Unquote(%#q): got %q, %v; want *FormatError", input, got, err)
		} else if ferr.Text != input {
			t.Errorf("Unquote(%#q): error text is %#q", input, ferr.Text)
		}
	}
}
