// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonlint

import (
	"errors"

	"github.com/creachadair/jsonlint/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	return `"` + string(escape.Quote(mem.S(src))) + `"`
}

// QuoteSingle encodes src as a single-quoted JSON5 string value.
func QuoteSingle(src string) string {
	return `'` + string(escape.QuoteWith(mem.S(src), '\'')) + `'`
}

// Unquote decodes a JSON string value. Quotation marks are removed, and escape
// sequences are replaced with their unescaped equivalents. Both double and
// single quotation marks are accepted.
//
// Unquote reports an error for an incomplete escape sequence.
func Unquote(src string) ([]byte, error) { return unquote(mem.S(src)) }

func unquote(src mem.RO) ([]byte, error) {
	n := src.Len()
	if n < 2 || src.At(0) != src.At(n-1) || (src.At(0) != '"' && src.At(0) != '\'') {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(src.Slice(1, n-1))
}
