// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. A \u escape
// for the high half of a surrogate pair is combined with an immediately
// following low half; an unpaired surrogate decodes to the Unicode
// replacement rune. Unquote reports an error for an incomplete or unknown
// escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		dec = mem.Append(dec, src)
		return dec, nil
	}

	putByte := func(bs ...byte) { dec = append(dec, bs...) }
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			putByte(byte(r))
		case 'b':
			putByte('\b')
		case 'f':
			putByte('\f')
		case 'n':
			putByte('\n')
		case 'r':
			putByte('\r')
		case 't':
			putByte('\t')
		case 'u':
			v, rest, err := readHex4(src)
			if err != nil {
				return nil, err
			}
			src = rest
			if utf16.IsSurrogate(v) {
				// Look for the low half of a pair: \uXXXX.
				if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
					if w, rest, err := readHex4(src.SliceFrom(2)); err == nil {
						if p := utf16.DecodeRune(v, w); p != utf8.RuneError {
							v, src = p, rest
						}
					}
				}
				if utf16.IsSurrogate(v) {
					v = utf8.RuneError
				}
			}
			dec = utf8.AppendRune(dec, v)
		default:
			return nil, fmt.Errorf("invalid escape %q", "\\"+string(r))
		}

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// readHex4 decodes the four hexadecimal digits at the front of src.
func readHex4(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 4 {
		return 0, src, errors.New("incomplete Unicode escape")
	}
	v, err := parseHex(src.SliceTo(4))
	if err != nil {
		return 0, src, fmt.Errorf("invalid Unicode escape: %w", err)
	}
	return rune(v), src.SliceFrom(4), nil
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
