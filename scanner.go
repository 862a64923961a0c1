// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonlint

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"go4.org/mem"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid    Kind = iota // invalid token
	LBrace                 // left brace "{"
	RBrace                 // right brace "}"
	LSquare                // left square bracket "["
	RSquare                // right square bracket "]"
	Comma                  // comma ","
	Colon                  // colon ":"
	Key                    // object key (assigned by the parser)
	Integer                // number: integer with no fraction or exponent
	Number                 // number with fraction and/or exponent
	String                 // quoted string
	True                   // constant: true
	False                  // constant: false
	Null                   // constant: null
	Identifier             // bare identifier (JSON5)

	BlockComment // comment: /* ... */
	LineComment  // comment: // ...
)

var kindStr = [...]string{
	Invalid:    "invalid token",
	LBrace:     `"{"`,
	RBrace:     `"}"`,
	LSquare:    `"["`,
	RSquare:    `"]"`,
	Comma:      `","`,
	Colon:      `":"`,
	Key:        "key",
	Integer:    "integer",
	Number:     "number",
	String:     "string",
	True:       "true",
	False:      "false",
	Null:       "null",
	Identifier: "identifier",

	BlockComment: "block comment",
	LineComment:  "line comment",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// IsComment reports whether k is a comment kind.
func (k Kind) IsComment() bool { return k == BlockComment || k == LineComment }

// IsScalar reports whether k denotes a complete value: a number, string or
// constant.
func (k Kind) IsScalar() bool {
	switch k {
	case Integer, Number, String, True, False, Null:
		return true
	}
	return false
}

var bom = mem.S("\xef\xbb\xbf")

// A Scanner reads lexical tokens from an in-memory source. Each call to Next
// advances the scanner to the next token, or reports an error.
type Scanner struct {
	src  mem.RO
	raw  []byte // src as a byte slice, for error texts
	d    Dialect
	tok  Kind
	err  error
	hbom bool // src had an unaccepted byte-order mark

	pos, end int // start and end offsets of current token
	cur      int // offset of the next unread byte

	// Apparent line and column of the token start and the read position.
	// Lines are 1-based, columns are 0-based and count runes.
	pline, pcol int
	line, col   int
}

// NewScanner constructs a new lexical scanner that consumes src under the
// rules of dialect d. A leading byte-order mark is removed if d permits it,
// and the offsets reported by the scanner are relative to the remaining text.
func NewScanner(src []byte, d Dialect) *Scanner {
	s := &Scanner{d: d, line: 1}
	if mem.HasPrefix(mem.B(src), bom) {
		if d.IgnoreBOM {
			src = src[bom.Len():]
		} else {
			s.hbom = true
		}
	}
	s.raw = src
	s.src = mem.B(src)
	return s
}

// Source returns the text consumed by s, excluding any stripped byte-order
// mark.
func (s *Scanner) Source() []byte { return s.raw }

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF. Any other error has concrete
// type *SyntaxError.
func (s *Scanner) Next() error {
	if s.err != nil {
		return s.err
	}
	s.tok = Invalid
	if s.hbom {
		return s.failAt(0, 1, 0, nil, "unexpected byte-order mark")
	}

	for {
		s.mark()
		ch, ok := s.rune()
		if !ok {
			return s.setErr(io.EOF)
		}

		// Discard whitespace.
		if s.isSpace(ch) {
			s.newline(ch)
			continue
		}

		// Handle punctuation.
		if t, ok := selfDelim(ch); ok {
			s.tok = t
			return nil
		}

		switch {
		case isNumStart(ch), s.d.JSON5 && (ch == '+' || ch == '.'):
			return s.scanNumber(ch)
		case ch == '"':
			return s.scanString(ch)
		case ch == '\'':
			if !s.d.AllowSingleQuotedStrings {
				return s.failHere("unexpected single-quoted string")
			}
			return s.scanString(ch)
		case ch == '/':
			return s.scanComment()
		case isNameStart(ch):
			return s.scanName()
		}
		return s.failHere(fmt.Sprintf("unexpected %q", ch))
	}
}

// Kind returns the type of the current token.
func (s *Scanner) Kind() Kind { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Text returns a read-only view of the undecoded text of the current token.
func (s *Scanner) Text() mem.RO { return s.src.Slice(s.pos, s.end) }

// Copy returns a copy of the undecoded text of the current token.
func (s *Scanner) Copy() []byte { return mem.Append(nil, s.Text()) }

// Location returns the location of the current token.
func (s *Scanner) Location() Location {
	return Location{
		Offset: s.pos,
		Line:   s.pline,
		Column: s.pcol + 1,
		Length: s.end - s.pos,
	}
}

// mark records the read position as the start of a new token.
func (s *Scanner) mark() { s.pos, s.end, s.pline, s.pcol = s.cur, s.cur, s.line, s.col }

func (s *Scanner) scanString(open rune) error {
	for {
		ch, ok := s.rune()
		if !ok {
			return s.failEOF("unterminated string")
		} else if ch == open {
			s.tok = String
			return nil
		}
		switch {
		case ch == '\\':
			if err := s.scanEscape(); err != nil {
				return err
			}
		case ch == '\n' || ch == '\r':
			return s.failHere("unterminated string")
		case ch < ' ':
			return s.failHere(fmt.Sprintf("unescaped control %q in string", ch))
		case ch == utf8.RuneError:
			return s.failHere("invalid UTF-8 in string")
		}
	}
}

func (s *Scanner) scanEscape() error {
	ch, ok := s.rune()
	if !ok {
		return s.failEOF("incomplete escape sequence")
	}
	switch ch {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return nil
	case 'u':
		return s.readHex(4, "invalid Unicode escape")
	}
	if !s.d.JSON5 {
		return s.failHere(fmt.Sprintf("invalid %q after escape", ch))
	}
	switch {
	case ch == 'x':
		return s.readHex(2, "invalid hexadecimal escape")
	case ch == '0':
		if r, ok := s.peek(); ok && isDigit(r) {
			return s.failHere("invalid octal escape")
		}
	case isDigit(ch):
		return s.failHere(fmt.Sprintf("invalid %q after escape", ch))
	case ch == '\r':
		if next, ok := s.peek(); ok && next == '\n' {
			s.rune()
		}
		s.newline('\n')
	case ch == '\n':
		s.newline(ch)
	}
	return nil
}

func (s *Scanner) scanNumber(start rune) error {
	ch := start
	if ch == '-' || ch == '+' {
		next, ok := s.rune()
		if !ok {
			return s.failHere("missing digits after sign")
		}
		ch = next
	}

	if s.d.JSON5 && isNameStart(ch) {
		// Only Infinity and NaN are allowed here.
		s.readWhile(isNameRune)
		name := s.Text()
		if n := name.Len(); n > 0 && (name.At(0) == '+' || name.At(0) == '-') {
			name = name.SliceFrom(1)
		}
		if !name.EqualString("Infinity") && !name.EqualString("NaN") {
			return s.failHere(fmt.Sprintf("invalid number %q", s.Text().StringCopy()))
		}
		s.tok = Number
		return s.checkNumberEnd()
	}

	s.tok = Integer
	switch {
	case ch == '0':
		if r, ok := s.peek(); ok && s.d.JSON5 && (r == 'x' || r == 'X') {
			s.rune()
			if s.readWhile(isHexDigit) == 0 {
				return s.failHere("missing hexadecimal digits")
			}
			return s.checkNumberEnd()
		} else if ok && isDigit(r) {
			return s.failHere("extra leading zeroes")
		}
	case isDigit(ch):
		s.readWhile(isDigit)
	case ch == '.' && s.d.JSON5:
		s.tok = Number
		if s.readWhile(isDigit) == 0 {
			return s.failHere("no digits after decimal point")
		}
	default:
		return s.failHere("missing digits after sign")
	}

	// If a decimal point follows, consume a fractional part.
	if r, ok := s.peek(); ok && r == '.' && s.tok == Integer {
		s.rune()
		s.tok = Number
		if s.readWhile(isDigit) == 0 && !s.d.JSON5 {
			return s.failHere("no digits after decimal point")
		}
	}

	// If an exponent follows, consume it.
	if r, ok := s.peek(); ok && (r == 'e' || r == 'E') {
		s.rune()
		s.tok = Number
		if r, ok := s.peek(); ok && (r == '+' || r == '-') {
			s.rune()
		}
		if s.readWhile(isDigit) == 0 {
			return s.failHere("missing exponent digits")
		}
	}
	return s.checkNumberEnd()
}

// checkNumberEnd reports an error if the number just scanned runs directly
// into further name or number characters.
func (s *Scanner) checkNumberEnd() error {
	if r, ok := s.peek(); ok && (isNameRune(r) || r == '.') {
		s.readWhile(func(r rune) bool { return isNameRune(r) || r == '.' })
		return s.failHere(fmt.Sprintf("invalid number %q", s.Text().StringCopy()))
	}
	return nil
}

func (s *Scanner) scanComment() error {
	ch, ok := s.peek()
	if !ok || (ch != '/' && ch != '*') {
		return s.failHere(`unexpected "/"`)
	}
	if !s.d.IgnoreComments {
		return s.failHere("unexpected comment")
	}
	s.rune()
	if ch == '/' {
		// Line comment, excluding the line break.
		s.readWhile(func(r rune) bool { return r != '\n' && r != '\r' })
		s.tok = LineComment
		return nil
	}
	for {
		ch, ok := s.rune()
		if !ok {
			return s.failEOF("unterminated block comment")
		}
		s.newline(ch)
		if ch == '*' {
			if next, ok := s.peek(); ok && next == '/' {
				s.rune()
				s.tok = BlockComment
				return nil
			}
		}
	}
}

func (s *Scanner) scanName() error {
	s.readWhile(isNameRune)
	switch name := s.Text(); {
	case name.EqualString("true"):
		s.tok = True
	case name.EqualString("false"):
		s.tok = False
	case name.EqualString("null"):
		s.tok = Null
	case !s.d.JSON5:
		return s.failHere(fmt.Sprintf("unexpected %q", name.StringCopy()))
	case name.EqualString("Infinity"), name.EqualString("NaN"):
		s.tok = Number
	default:
		s.tok = Identifier
	}
	return nil
}

// rune reads the next rune from the input, reporting false at the end.
func (s *Scanner) rune() (rune, bool) {
	if s.cur >= s.src.Len() {
		return 0, false
	}
	ch, n := mem.DecodeRune(s.src.SliceFrom(s.cur))
	s.cur += n
	s.end = s.cur
	s.col++
	return ch, true
}

// peek returns the next rune of the input without consuming it.
func (s *Scanner) peek() (rune, bool) {
	if s.cur >= s.src.Len() {
		return 0, false
	}
	ch, _ := mem.DecodeRune(s.src.SliceFrom(s.cur))
	return ch, true
}

// newline updates the line counter if ch is a line break. A CR that is
// followed by LF counts once, on the LF.
func (s *Scanner) newline(ch rune) {
	if ch == '\r' {
		if next, ok := s.peek(); ok && next == '\n' {
			return
		}
	} else if ch != '\n' {
		return
	}
	s.line++
	s.col = 0
}

// readWhile consumes runes matching f from the input and reports how many
// were consumed.
func (s *Scanner) readWhile(f func(rune) bool) int {
	var nr int
	for {
		ch, ok := s.peek()
		if !ok || !f(ch) {
			return nr
		}
		s.rune()
		nr++
	}
}

// readHex reads exactly n hexadecimal digits from the input.
func (s *Scanner) readHex(n int, msg string) error {
	for range n {
		ch, ok := s.rune()
		if !ok || !isHexDigit(ch) {
			return s.failHere(msg)
		}
	}
	return nil
}

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

// failHere reports an error located at the start of the current token.
func (s *Scanner) failHere(msg string) error {
	return s.failAt(s.pos, s.pline, s.pcol, nil, msg)
}

// failEOF reports an error at the start of the current token, for a token
// that was cut off by the end of the input.
func (s *Scanner) failEOF(msg string) error {
	return s.failAt(s.pos, s.pline, s.pcol, ErrUnexpectedEOF, msg)
}

func (s *Scanner) failAt(offset, line, col int, err error, msg string) error {
	loc := Location{Offset: offset, Line: line, Column: col + 1}
	return s.setErr(newSyntaxError(s.raw, loc, err, msg))
}

// ErrUnexpectedEOF is wrapped by syntax errors reporting an incomplete input.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

func (s *Scanner) isSpace(ch rune) bool {
	switch ch {
	case ' ', '\r', '\n', '\t':
		return true
	case '\v', '\f', 0xa0, 0x2028, 0x2029, 0xfeff:
		return s.d.JSON5
	}
	return s.d.JSON5 && unicode.Is(unicode.Zs, ch)
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }

func isNameStart(ch rune) bool {
	return ch == '$' || ch == '_' || unicode.IsLetter(ch)
}

func isNameRune(ch rune) bool {
	return isNameStart(ch) || unicode.IsDigit(ch) || unicode.Is(unicode.Mn, ch) ||
		unicode.Is(unicode.Mc, ch) || unicode.Is(unicode.Pc, ch)
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
