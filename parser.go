// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Parse parses text as a single JSON value and returns its syntax tree.
// The input must contain exactly one value, optionally surrounded by
// whitespace.
//
// In case of a grammar error, the returned error has type [*SyntaxError]; if
// the input contains text that is not a valid token, the error has type
// [*LexError].
func Parse(text string) (Node, error) { return NewParser(text).Parse() }

// A Parser is a recursive-descent parser for JSON text. Each grammar
// production has a corresponding method that consumes exactly the tokens of
// that production or fails:
//
//	value := string | int | float | true | false | null | obj | arr
//	obj   := '{' (pair (',' pair)*)? '}'
//	pair  := string ':' value
//	arr   := '[' (value (',' value)*)? ']'
type Parser struct {
	s *Scanner
}

// NewParser constructs a parser that consumes text.
func NewParser(text string) *Parser { return &Parser{s: NewScanner(text)} }

// Parse parses a single value followed by the end of the input.
func (p *Parser) Parse() (_ Node, err error) {
	defer recoverParseError(&err)

	v := p.Value()
	if x, err := p.s.Peek(); err != io.EOF {
		p.check(err)
		p.syntaxError(x.First, "end of input", x.String())
	}
	return v, nil
}

// ParseValue parses a single value from the front of the remaining input,
// without requiring that the input end after it.
func (p *Parser) ParseValue() (_ Node, err error) {
	defer recoverParseError(&err)
	return p.Value(), nil
}

func recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		switch err := perr.(type) {
		case *SyntaxError:
			*errp = err
		case *LexError:
			*errp = err
		default:
			panic(perr)
		}
	}
}

var valueStart = []Token{String, Integer, Number, True, False, Null, LBrace, LSquare}

// Value parses the value production. It panics on error, and must only be
// called from within Parse or ParseValue.
func (p *Parser) Value() Node {
	x := p.peek(valueStart...)
	switch x.Token {
	case LBrace:
		return p.Object()
	case LSquare:
		return p.Array()
	default:
		return NewTerminal(p.pop(x.Token))
	}
}

// Object parses the obj production.
func (p *Parser) Object() *Tree {
	node := NewTree(SymObject)
	p.pop(LBrace)
	if x := p.peek(); x.Token == RBrace {
		p.pop(RBrace)
		return node
	}
	for {
		node.Add(p.Pair())
		if x := p.pop(Comma, RBrace); x.Token == RBrace {
			return node
		}
	}
}

// Pair parses the pair production.
func (p *Parser) Pair() *Tree {
	key := NewTerminal(p.pop(String))
	p.pop(Colon)
	return NewTree(SymPair, key, p.Value())
}

// Array parses the arr production.
func (p *Parser) Array() *Tree {
	node := NewTree(SymArray)
	p.pop(LSquare)
	if x := p.peek(); x.Token == RSquare {
		p.pop(RSquare)
		return node
	}
	for {
		node.Add(p.Value())
		if x := p.pop(Comma, RSquare); x.Token == RSquare {
			return node
		}
	}
}

// peek returns the next token without consuming it. If tokens are given, the
// next token must be one of them.
func (p *Parser) peek(tokens ...Token) Lexeme {
	x, err := p.s.Peek()
	p.require(x, err, tokens)
	return x
}

// pop consumes and returns the next token, which must be one of tokens.
func (p *Parser) pop(tokens ...Token) Lexeme {
	x, err := p.s.Next()
	p.require(x, err, tokens)
	return x
}

func (p *Parser) require(x Lexeme, err error, tokens []Token) {
	if err == io.EOF {
		p.syntaxError(p.s.Pos(), tokLabel(tokens), "end of input")
	}
	p.check(err)
	if len(tokens) != 0 && !slices.Contains(tokens, x.Token) {
		p.syntaxError(x.First, tokLabel(tokens), x.String())
	}
}

func (p *Parser) check(err error) {
	if err != nil {
		panic(err)
	}
}

func (p *Parser) syntaxError(loc LineCol, want, got string) {
	panic(&SyntaxError{Location: loc, Expected: want, Got: got})
}

// tokLabel makes a human-readable summary string for the given token types.
func tokLabel(tokens []Token) string {
	switch len(tokens) {
	case 0:
		return "more input"
	case 1:
		return tokens[0].String()
	}
	last := len(tokens) - 1
	ss := make([]string, last)
	for i, tok := range tokens[:last] {
		ss[i] = tok.String()
	}
	return fmt.Sprintf("%s or %s", strings.Join(ss, ", "), tokens[last])
}
