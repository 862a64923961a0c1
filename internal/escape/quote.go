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
// The result does not include the enclosing quotation marks.
func Quote(src mem.RO) []byte { return QuoteWith(src, '"') }

// QuoteWith is like Quote, but escapes occurrences of the quotation mark q
// instead of the double quote. Use q == '\'' to produce the contents of a
// single-quoted JSON5 string. Double quotes are not escaped in that case.
func QuoteWith(src mem.RO, q byte) []byte {
	buf := make([]byte, 0, src.Len())
	putByte := func(bs ...byte) { buf = append(buf, bs...) }

	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if r < utf8.RuneSelf {
			if r < ' ' {
				if b := controlEsc[r]; b != 0 && b != ' ' {
					putByte('\\', b)
				} else {
					putByte('\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
				}
			} else if r == '\\' || byte(r) == q {
				putByte('\\', byte(r))
			} else {
				putByte(byte(r))
			}
			src = src.SliceFrom(n)
			continue
		}

		switch r {
		case 0x2028: // line separator
			buf = append(buf, `\u2028`...)
		case 0x2029: // paragraph separator
			buf = append(buf, `\u2029`...)
		default:
			if r == utf8.RuneError && n == 1 {
				// Invalid UTF-8 is replaced rather than copied through.
				buf = append(buf, `\ufffd`...)
				break
			}
			var rbuf [utf8.UTFMax]byte
			m := utf8.EncodeRune(rbuf[:], r)
			buf = append(buf, rbuf[:m]...)
		}

		src = src.SliceFrom(n)
	}
	return buf
}
