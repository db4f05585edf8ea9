// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import (
	"strings"
)

// Symbols labelling the nodes of a syntax tree.
const (
	SymObject  = "obj"
	SymArray   = "arr"
	SymPair    = "pair"
	SymString  = "string"
	SymInteger = "int"
	SymNumber  = "float"
	SymTrue    = "true"
	SymFalse   = "false"
	SymNull    = "null"
)

var tokenSym = [...]string{
	String:  SymString,
	Integer: SymInteger,
	Number:  SymNumber,
	True:    SymTrue,
	False:   SymFalse,
	Null:    SymNull,
}

// A Node is a node of a syntax tree. The concrete type is either *Tree or
// *Terminal.
type Node interface {
	// Symbol returns the grammar symbol labelling the node.
	Symbol() string

	// Children returns the child nodes, in input order.
	Children() []Node

	isNode()
}

// A Tree is an interior node of a syntax tree.
type Tree struct {
	sym  string
	kids []Node
}

// NewTree constructs a tree node with the given symbol and initial children.
func NewTree(symbol string, kids ...Node) *Tree { return &Tree{sym: symbol, kids: kids} }

// Symbol satisfies the Node interface.
func (t *Tree) Symbol() string { return t.sym }

// Children satisfies the Node interface. The caller must not modify the
// returned slice.
func (t *Tree) Children() []Node { return t.kids }

// Add appends n to the children of t.
func (t *Tree) Add(n Node) { t.kids = append(t.kids, n) }

// String renders an indented outline of t, for debugging.
func (t *Tree) String() string {
	var sb strings.Builder
	writeNode(&sb, t, "")
	return sb.String()
}

func (*Tree) isNode() {}

// A Terminal is a leaf of a syntax tree carrying the raw text of a token.
// Terminals have no children.
type Terminal struct {
	sym  string
	Text string // the raw (undecoded) text of the token
	Location
}

// NewTerminal constructs a terminal node for the given lexeme.
func NewTerminal(x Lexeme) *Terminal {
	var sym string
	if int(x.Token) < len(tokenSym) {
		sym = tokenSym[x.Token]
	}
	if sym == "" {
		sym = x.Token.String()
	}
	return &Terminal{sym: sym, Text: x.Text, Location: x.Location}
}

// Symbol satisfies the Node interface.
func (t *Terminal) Symbol() string { return t.sym }

// Children satisfies the Node interface. A terminal has no children.
func (*Terminal) Children() []Node { return nil }

func (t *Terminal) String() string { return t.sym + ": " + t.Text }

func (*Terminal) isNode() {}

func writeNode(sb *strings.Builder, n Node, indent string) {
	sb.WriteString(indent)
	if t, ok := n.(*Terminal); ok {
		sb.WriteString(t.String())
		sb.WriteByte('\n')
		return
	}
	sb.WriteString(n.Symbol())
	sb.WriteString(" {\n")
	for _, kid := range n.Children() {
		writeNode(sb, kid, indent+"  ")
	}
	sb.WriteString(indent)
	sb.WriteString("}\n")
}
