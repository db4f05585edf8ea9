// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"strings"

	"github.com/creachadair/jcheck"
)

func writeJSON(sb *strings.Builder, v Value) {
	switch t := v.(type) {
	case *List:
		sb.WriteByte('[')
		for i, elt := range t.elems {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeJSON(sb, elt)
		}
		sb.WriteByte(']')
	case *Object:
		sb.WriteByte('{')
		for i, key := range t.Keys() {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(jcheck.Quote(key))
			sb.WriteByte(':')
			writeJSON(sb, t.members[key])
		}
		sb.WriteByte('}')
	default:
		sb.WriteString(v.JSON())
	}
}

// Pretty renders v as indented JSON text. Each element of a list and each
// member of an object is written on its own line, indented by width spaces
// per level of nesting, and object keys are followed by ": ". Empty lists and
// objects are written as [] and {}.
//
// For example, with width 2:
//
//	{
//	  "a": [
//	    1,
//	    true
//	  ],
//	  "b": {}
//	}
func Pretty(v Value, width int) string {
	var sb strings.Builder
	writePretty(&sb, v, strings.Repeat(" ", max(width, 0)), "")
	return sb.String()
}

// writePretty writes v to sb, where indent is the indentation unit and cur
// is the indentation of the line on which v begins.
func writePretty(sb *strings.Builder, v Value, indent, cur string) {
	next := cur + indent
	switch t := v.(type) {
	case *List:
		if t.Len() == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		for i, elt := range t.elems {
			if i > 0 {
				sb.WriteString(",\n")
			}
			sb.WriteString(next)
			writePretty(sb, elt, indent, next)
		}
		sb.WriteString("\n")
		sb.WriteString(cur)
		sb.WriteByte(']')
	case *Object:
		if t.Len() == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{\n")
		for i, key := range t.Keys() {
			if i > 0 {
				sb.WriteString(",\n")
			}
			sb.WriteString(next)
			sb.WriteString(jcheck.Quote(key))
			sb.WriteString(": ")
			writePretty(sb, t.members[key], indent, next)
		}
		sb.WriteString("\n")
		sb.WriteString(cur)
		sb.WriteByte('}')
	default:
		sb.WriteString(v.JSON())
	}
}
