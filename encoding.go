// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import (
	"errors"
	"strings"

	"github.com/creachadair/jcheck/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	q := escape.Quote(mem.S(src))
	return `"` + string(q) + `"`
}

// Unquote decodes a JSON string literal. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
// A malformed escape sequence is reported as a [*FormatError].
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", &FormatError{Text: src, Err: errors.New("missing quotations")}
	}
	dec, err := escape.Unquote(mem.S(src[1 : len(src)-1]))
	if err != nil {
		return "", &FormatError{Text: src, Err: err}
	}
	return string(dec), nil
}
