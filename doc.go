// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jcheck implements a JSON scanner and a recursive-descent parser
// that builds syntax trees.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON text. Construct a
// scanner from a string and call its Next method to iterate over the tokens.
// Next returns the next token, or reports an error:
//
//	s := jcheck.NewScanner(input)
//	for {
//	   x, err := s.Next()
//	   if err == io.EOF {
//	      break
//	   } else if err != nil {
//	      log.Fatalf("Scanning failed: %v", err)
//	   }
//	   log.Printf("Next token: %v at %v", x.Token, x.First)
//	}
//
// Whitespace and line breaks are consumed but not reported. Peek returns the
// next token without consuming it. If no token matches the input, the error
// has concrete type *jcheck.LexError and reports the unconsumed input.
//
// # Parsing
//
// Parse consumes exactly one JSON value and returns its syntax tree:
//
//	tree, err := jcheck.Parse(input)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Interior nodes of the tree have concrete type *jcheck.Tree and are labelled
// by grammar symbol ("obj", "arr", "pair"). Leaves have type *jcheck.Terminal
// and carry the raw text of their token ("string", "int", "float", "true",
// "false", "null"). A grammar error has concrete type *jcheck.SyntaxError,
// giving the line and column of the offending token along with what was
// expected there.
//
// The value subpackage translates syntax trees into JSON values, and the
// schema subpackage validates values against JSON Schema documents.
package jcheck
