// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes a string to escape characters for inclusion in a JSON string.
// The enclosing quotation marks are not added.
//
// Quotes and backslashes are escaped; control characters use their short
// escapes where JSON has one, and \u00XX otherwise. All other runes are
// copied unchanged.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	putByte := func(bs ...byte) { buf = append(buf, bs...) }

	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if r < utf8.RuneSelf {
			if r < ' ' {
				if b := controlEsc[r]; b != 0 {
					putByte('\\', b)
				} else {
					putByte('\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
				}
			} else if r == '\\' || r == '"' {
				putByte('\\', byte(r))
			} else {
				putByte(byte(r))
			}
		} else {
			buf = utf8.AppendRune(buf, r)
		}
		src = src.SliceFrom(n)
	}
	return buf
}
