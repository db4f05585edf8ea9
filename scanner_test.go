// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck_test

import (
	"errors"
	"io"
	"testing"

	"github.com/creachadair/jcheck"
	"github.com/google/go-cmp/cmp"
)

// scanAll returns the tokens of input, failing t if the scanner reports an
// error other than io.EOF.
func scanAll(t *testing.T, input string) []jcheck.Lexeme {
	t.Helper()
	var out []jcheck.Lexeme
	s := jcheck.NewScanner(input)
	for {
		x, err := s.Next()
		if err == io.EOF {
			return out
		} else if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		out = append(out, x)
	}
}

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []jcheck.Token
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []jcheck.Token{jcheck.True, jcheck.False, jcheck.Null}},

		// Punctuation
		{"{ [ ] } , :", []jcheck.Token{
			jcheck.LBrace, jcheck.LSquare, jcheck.RSquare, jcheck.RBrace, jcheck.Comma, jcheck.Colon,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []jcheck.Token{jcheck.String, jcheck.String, jcheck.String}},
		{`"\"\\\/\b\f\n\r\t"`, []jcheck.Token{jcheck.String}},
		{`"\u0000\u01fc\uAA9c"`, []jcheck.Token{jcheck.String}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100`, []jcheck.Token{
			jcheck.Integer, jcheck.Integer, jcheck.Integer,
			jcheck.Number, jcheck.Number, jcheck.Number, jcheck.Number,
		}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []jcheck.Token{
			jcheck.LBrace, jcheck.True, jcheck.Comma, jcheck.String, jcheck.Colon,
			jcheck.Integer, jcheck.Null, jcheck.LSquare, jcheck.RSquare, jcheck.RBrace,
		}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jcheck.Token{
			jcheck.LBrace,
			jcheck.String, jcheck.Colon, jcheck.True, jcheck.Comma,
			jcheck.String, jcheck.Colon,
			jcheck.LSquare,
			jcheck.Null, jcheck.Comma, jcheck.Integer, jcheck.Comma, jcheck.Number,
			jcheck.RSquare,
			jcheck.RBrace,
		}},
		{`"a",1,true
       false["b"]
       `, []jcheck.Token{
			jcheck.String, jcheck.Comma, jcheck.Integer, jcheck.Comma, jcheck.True,
			jcheck.False, jcheck.LSquare, jcheck.String, jcheck.RSquare,
		}},
	}

	for _, test := range tests {
		var got []jcheck.Token
		for _, x := range scanAll(t, test.input) {
			got = append(got, x.Token)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerText(t *testing.T) {
	const input = `{"key":-1.50e+3,"x":[007]}`
	var got []string
	for _, x := range scanAll(t, `{"key":-1.50e+3,"x":[0]}`) {
		got = append(got, x.Text)
	}
	want := []string{`{`, `"key"`, `:`, `-1.50e+3`, `,`, `"x"`, `:`, `[`, `0`, `]`, `}`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Text (-want, +got):\n%s", diff)
	}

	// A leading zero ends an integer, so "007" scans as three integers.
	var toks []string
	for _, x := range scanAll(t, input) {
		toks = append(toks, x.Text)
	}
	if n := len(toks); n != 13 {
		t.Errorf("Input %#q: got %d tokens %q, want 13", input, n, toks)
	}
}

func TestScannerLocation(t *testing.T) {
	const input = "{\n  \"a\": [1,\r\n\ttrue],\r  \"b\" : null\n}"
	type pos struct {
		Text       string
		Line, Col  int
		Start, End int
	}
	var got []pos
	for _, x := range scanAll(t, input) {
		got = append(got, pos{x.Text, x.First.Line, x.First.Column, x.Pos, x.End})
	}
	want := []pos{
		{`{`, 1, 0, 0, 1},
		{`"a"`, 2, 2, 4, 7},
		{`:`, 2, 5, 7, 8},
		{`[`, 2, 7, 9, 10},
		{`1`, 2, 8, 10, 11},
		{`,`, 2, 9, 11, 12},
		{`true`, 3, 1, 15, 19},
		{`]`, 3, 5, 19, 20},
		{`,`, 3, 6, 20, 21},
		{`"b"`, 4, 2, 24, 27},
		{`:`, 4, 6, 28, 29},
		{`null`, 4, 8, 30, 34},
		{`}`, 5, 0, 35, 36},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Locations (-want, +got):\n%s", diff)
	}
}

func TestScannerColumns(t *testing.T) {
	const input = "[\"\u00e9\u4e16\", 1,\n\"\U0001f600\"]"
	type pos struct {
		Text       string
		Col, Last  int
		Start, End int
	}
	var got []pos
	for _, x := range scanAll(t, input) {
		got = append(got, pos{x.Text, x.First.Column, x.Last.Column, x.Pos, x.End})
	}
	want := []pos{
		{`[`, 0, 1, 0, 1},
		{"\"\u00e9\u4e16\"", 1, 5, 1, 8},
		{`,`, 5, 6, 8, 9},
		{`1`, 7, 8, 10, 11},
		{`,`, 8, 9, 11, 12},
		{"\"\U0001f600\"", 0, 3, 13, 19},
		{`]`, 3, 4, 19, 20},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Locations (-want, +got):\n%s", diff)
	}

	// Errors after non-ASCII text report code point columns.
	_, err := jcheck.Parse("{\"\u00e9\": tru}")
	var lerr *jcheck.LexError
	if !errors.As(err, &lerr) {
		t.Fatalf("Parse: got %v, want *LexError", err)
	} else if lerr.Location != (jcheck.LineCol{Line: 1, Column: 6}) {
		t.Errorf("LexError: got location %v, want 1:6", lerr.Location)
	}
	_, err = jcheck.Parse("[\"\u00e9\" 2]")
	var serr *jcheck.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Parse: got %v, want *SyntaxError", err)
	} else if serr.Location != (jcheck.LineCol{Line: 1, Column: 5}) {
		t.Errorf("SyntaxError: got location %v, want 1:5", serr.Location)
	}
}

func TestScannerPeek(t *testing.T) {
	s := jcheck.NewScanner(`[ true ]`)
	for _, want := range []jcheck.Token{jcheck.LSquare, jcheck.True, jcheck.RSquare} {
		p, err := s.Peek()
		if err != nil {
			t.Fatalf("Peek: unexpected error: %v", err)
		}
		if again, _ := s.Peek(); again != p {
			t.Errorf("Peek is not stable: got %v, then %v", p, again)
		}
		x, err := s.Next()
		if err != nil {
			t.Fatalf("Next: unexpected error: %v", err)
		}
		if x != p || x.Token != want {
			t.Errorf("Next: got %v, want %v (peeked %v)", x, want, p)
		}
	}
	if _, err := s.Peek(); err != io.EOF {
		t.Errorf("Peek at end: got %v, want EOF", err)
	}
	if _, err := s.Next(); err != io.EOF {
		t.Errorf("Next at end: got %v, want EOF", err)
	}
}

func TestScannerErrors(t *testing.T) {
	tests := []struct {
		input string
		line  int
		col   int
		rest  string
	}{
		{`@`, 1, 0, `@`},
		{`[1, nul]`, 1, 4, `nul]`},
		{"[\n  +1]", 2, 2, `+1]`},
		{`"unterminated`, 1, 0, `"unterminated`},
		{"\"tab\there\"", 1, 0, "\"tab\there\""},
		{`"bad \x escape"`, 1, 0, `"bad \x escape"`},
		{`.5`, 1, 0, `.5`},
		{`// comment`, 1, 0, `// comment`},
	}
	for _, tc := range tests {
		s := jcheck.NewScanner(tc.input)
		var err error
		for err == nil {
			_, err = s.Next()
		}
		var lerr *jcheck.LexError
		if !errors.As(err, &lerr) {
			t.Errorf("Input %#q: got %v, want *LexError", tc.input, err)
			continue
		}
		if lerr.Location.Line != tc.line || lerr.Location.Column != tc.col || lerr.Rest != tc.rest {
			t.Errorf("Input %#q: got error at %v with rest %q, want %d:%d with rest %q",
				tc.input, lerr.Location, lerr.Rest, tc.line, tc.col, tc.rest)
		}
		t.Logf("Got expected error: %v", err)
	}
}

func TestLexemeString(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`15`, "integer 15"},
		{`1.5`, "number 1.5"},
		{`"s"`, `string "s"`},
		{`true`, "true"},
		{`{`, `"{"`},
	}
	for _, tc := range tests {
		xs := scanAll(t, tc.input)
		if len(xs) != 1 {
			t.Fatalf("Input %#q: got %d tokens, want 1", tc.input, len(xs))
		}
		if got := xs[0].String(); got != tc.want {
			t.Errorf("Input %#q: got %q, want %q", tc.input, got, tc.want)
		}
	}
}
