// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import (
	"fmt"
	"io"
	"regexp"
	"unicode/utf8"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	Comma                // comma ","
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Colon                // colon ":"
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
	Integer              // number: integer with no fraction or exponent
	Number               // number with fraction and/or exponent
	String               // quoted string
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	Comma:   `","`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Colon:   `":"`,
	True:    "true",
	False:   "false",
	Null:    "null",
	Integer: "integer",
	Number:  "number",
	String:  "string",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// isLiteral reports whether t is a token whose text varies.
func (t Token) isLiteral() bool { return t == Integer || t == Number || t == String }

// A Lexeme is a single token scanned from the input, with its raw text and
// location.
type Lexeme struct {
	Token Token
	Text  string // the raw (undecoded) text of the token
	Location
}

// String renders a human-readable description of x for diagnostics.
func (x Lexeme) String() string {
	if x.Token.isLiteral() {
		return fmt.Sprintf("%v %s", x.Token, x.Text)
	}
	return x.Token.String()
}

const (
	skipSpace = iota + 1
	skipLine
)

type pattern struct {
	tok  Token
	skip int // if nonzero, the match is not emitted
	re   *regexp.Regexp
}

// Patterns are tried in order, and the first that matches a non-empty prefix
// of the remaining input is taken.
var patterns = []pattern{
	{tok: LBrace, re: regexp.MustCompile(`^\{`)},
	{tok: RBrace, re: regexp.MustCompile(`^\}`)},
	{tok: Comma, re: regexp.MustCompile(`^,`)},
	{tok: LSquare, re: regexp.MustCompile(`^\[`)},
	{tok: RSquare, re: regexp.MustCompile(`^\]`)},
	{tok: Colon, re: regexp.MustCompile(`^:`)},
	{tok: True, re: regexp.MustCompile(`^true`)},
	{tok: False, re: regexp.MustCompile(`^false`)},
	{tok: Null, re: regexp.MustCompile(`^null`)},
	{skip: skipSpace, re: regexp.MustCompile(`^[ \t]+`)},
	{skip: skipLine, re: regexp.MustCompile(`^(?:\r\n|\r|\n)`)},
	{tok: Number, re: regexp.MustCompile(`^` + intRE + `(?:` + fracRE + `(?:` + expRE + `)?|` + expRE + `)`)},
	{tok: Integer, re: regexp.MustCompile(`^` + intRE)},
	{tok: String, re: regexp.MustCompile(`^"(?:` + escRE + `|[^"\\\x00-\x1f])*"`)},
}

const (
	intRE  = `-?(?:0|[1-9][0-9]*)`
	fracRE = `\.[0-9]+`
	expRE  = `[eE][+-]?[0-9]+`
	escRE  = `\\(?:["\\/bfnrt]|u[0-9a-fA-F]{4})`
)

// A Scanner reads lexical tokens from a string. Each call to Next advances
// the scanner to the next token, or reports an error. Whitespace and line
// breaks separate tokens but are never reported.
type Scanner struct {
	text string
	pos  int // offset of the first unconsumed byte

	// Current line and column (0-based). Columns count code points.
	line, col int

	peeked bool
	next   Lexeme
	err    error
}

// NewScanner constructs a new lexical scanner that consumes text.
func NewScanner(text string) *Scanner { return &Scanner{text: text} }

// Next advances s to the next token of the input and returns it, or reports
// an error. At the end of the input, Next returns io.EOF. If no token matches
// the remaining input, the error has concrete type [*LexError].
func (s *Scanner) Next() (Lexeme, error) {
	if s.peeked {
		s.peeked = false
		return s.next, s.err
	}
	return s.scan()
}

// Peek returns the token that the next call to Next will return, without
// consuming it.
func (s *Scanner) Peek() (Lexeme, error) {
	if !s.peeked {
		s.next, s.err = s.scan()
		s.peeked = true
	}
	return s.next, s.err
}

// Pos returns the position of the first unconsumed byte of the input.
// If a token has been peeked but not consumed, Pos reports the position
// after it.
func (s *Scanner) Pos() LineCol { return LineCol{Line: s.line + 1, Column: s.col} }

// Rest returns the unconsumed remainder of the input.
func (s *Scanner) Rest() string { return s.text[s.pos:] }

func (s *Scanner) scan() (Lexeme, error) {
	for s.pos < len(s.text) {
		rest := s.text[s.pos:]
		p, n := matchPrefix(rest)
		if n == 0 {
			return Lexeme{}, &LexError{Location: s.Pos(), Rest: rest}
		}
		switch p.skip {
		case skipSpace:
			s.pos += n
			s.col += n // spaces and tabs are one byte each
			continue
		case skipLine:
			s.pos += n
			s.line++
			s.col = 0
			continue
		}

		first := s.Pos()
		start := s.pos
		s.pos += n
		s.col += utf8.RuneCountInString(rest[:n])
		return Lexeme{
			Token: p.tok,
			Text:  rest[:n],
			Location: Location{
				Span:  Span{Pos: start, End: s.pos},
				First: first,
				Last:  s.Pos(),
			},
		}, nil
	}
	return Lexeme{}, io.EOF
}

// matchPrefix returns the first pattern matching a non-empty prefix of text,
// and the length of the match. It returns 0 if no pattern matches.
func matchPrefix(text string) (pattern, int) {
	for _, p := range patterns {
		if m := p.re.FindStringIndex(text); m != nil && m[1] > 0 {
			return p, m[1]
		}
	}
	return pattern{}, 0
}
