// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonlint

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/creachadair/mds/mapset"
	"go4.org/mem"
)

// An Anchor represents a location in source text. The methods of an Anchor
// will report the location, token kind, and contents of the anchor.
type Anchor interface {
	Kind() Kind         // Returns the token kind of the anchor
	Text() mem.RO       // Returns a view of the raw (undecoded) text of the anchor
	Copy() []byte       // Returns a copy of the raw text of the anchor
	Location() Location // Returns the location of the anchor
}

// A Handler handles events from parsing an input stream.  If a method reports
// an error, parsing stops and that error is returned to the caller.
// The parser ensures objects and arrays are correctly balanced.
//
// The Anchor argument to a Handler method is only valid for the duration of
// that method call. If the method needs to retain information about the
// location after it returns, it must copy the relevant data.
type Handler interface {
	// Begin a new object, whose open brace is at loc.
	BeginObject(loc Anchor) error

	// End the most-recently-opened object, whose close brace is at loc.
	EndObject(loc Anchor) error

	// Begin a new array, whose open bracket is at loc.
	BeginArray(loc Anchor) error

	// End the most-recently-opened array, whose close bracket is at loc.
	EndArray(loc Anchor) error

	// Begin a new object member, whose key token is at loc. The decoded text
	// of the key is passed as key.
	BeginMember(loc Anchor, key string) error

	// End the current object member giving the location and kind of the token
	// that terminated the member (either Comma or RBrace).
	EndMember(loc Anchor) error

	// Report a data value at the given location. The kind of the value can be
	// recovered from the anchor. String tokens are quoted.
	Value(loc Anchor) error

	// EndOfInput reports the end of the input stream.
	EndOfInput(loc Anchor)
}

// CommentHandler is an optional interface that a Handler may implement to
// handle comment tokens. If a handler implements this method and the dialect
// permits comments, Comment will be called for each comment token that occurs
// in the input. If the handler does not provide this method, comments will be
// silently discarded.
type CommentHandler interface {
	// Process the line or block comment at the specified location.
	// Line comments include their leading "//" but not the line break.
	// Block comments include their leading "/*" and trailing "*/".
	Comment(loc Anchor)
}

// TokenHandler is an optional interface that a Handler may implement to
// observe every token of the input in source order, including punctuation and
// comments. Token is called before the structural method (if any) for the same
// token. The path reports the position of the token in the value tree:
//
//   - a value, or the open bracket of an object or array, has the path of
//     that value;
//   - a close bracket has the path of its object or array;
//   - a key, colon or comma has the path of the enclosing object or array;
//   - a comment has a nil path.
//
// The path is only valid for the duration of the call.
type TokenHandler interface {
	Token(loc Anchor, path Path)
}

// Stream is a stream parser that consumes input and delivers events to a
// Handler corresponding with the structure of the input. A Stream accepts
// exactly one root value, optionally surrounded by whitespace and comments.
type Stream struct {
	s    *Scanner
	d    Dialect
	path Path
	keys []mapset.Set[string] // keys seen per open object, if needed
}

// NewStream constructs a new Stream that consumes src under dialect d.
func NewStream(src []byte, d Dialect) *Stream {
	return &Stream{s: NewScanner(src, d), d: d}
}

// Dialect reports the dialect used by s.
func (s *Stream) Dialect() Dialect { return s.d }

func (s *Stream) recoverParseError(errp *error) {
	if serr := recover(); serr != nil {
		switch err := serr.(type) {
		case *SyntaxError:
			*errp = err
		case handlerError:
			*errp = err.error
		default:
			panic(serr)
		}
	}
}

// Parse parses the input and delivers events to h until either an error
// occurs or the input is exhausted. In case of a syntax error, the returned
// error has type [*SyntaxError]. Otherwise, if a method of h reports an
// error, that error is returned.
func (s *Stream) Parse(h Handler) (err error) {
	defer s.recoverParseError(&err)

	s.advance(h)
	s.parseElement(h)
	if err := s.nextToken(h); err == io.EOF {
		h.EndOfInput(s.s)
		return nil
	} else if err != nil {
		panic(err)
	}
	s.syntaxError(nil, "unexpected %v after the root value", s.s.Kind())
	return nil // unreachable
}

// parseElement consumes a single value of any type.
// Precondition: the current token is the first token of the value.
func (s *Stream) parseElement(h Handler) {
	switch tok := s.s.Kind(); tok {
	case LBrace:
		s.emit(h, s.path)
		s.checkError(h.BeginObject(s.s))
		if s.d.NoDuplicateKeys {
			s.keys = append(s.keys, mapset.New[string]())
		}
		s.parseMembers(h)
		if s.d.NoDuplicateKeys {
			s.keys = s.keys[:len(s.keys)-1]
		}
		s.checkError(h.EndObject(s.s))
	case LSquare:
		s.emit(h, s.path)
		s.checkError(h.BeginArray(s.s))
		s.parseElements(h)
		s.checkError(h.EndArray(s.s))
	case Integer, Number, String, True, False, Null:
		s.emit(h, s.path)
		s.checkError(h.Value(s.s))
	case Identifier:
		s.syntaxError(nil, "unexpected identifier %q", s.s.Text().StringCopy())
	default:
		s.syntaxError(nil, "unexpected %v", tok)
	}
}

// parseMembers consumes zero of more key:value object members.
// Precondition: token == LBrace.
// Postcondition: token == RBrace.
func (s *Stream) parseMembers(h Handler) {
	tok := s.advance(h, RBrace, String, Identifier)
	for tok != RBrace {
		// Parse a single member: "key": value
		key := s.parseKey(h)
		s.checkError(h.BeginMember(s.s, key))
		s.advance(h, Colon)
		s.emit(h, s.path)
		s.advance(h)
		s.path = append(s.path, key)
		s.parseElement(h)
		s.path = s.path[:len(s.path)-1]

		// Check whether we have more members (",") or are done ("}").
		tok = s.advance(h, RBrace, Comma)
		s.checkError(h.EndMember(s.s))
		if tok == RBrace {
			break
		}
		s.emit(h, s.path)
		comma := s.s.Location()
		tok = s.advance(h, String, Identifier, RBrace)
		if tok == RBrace && !s.d.IgnoreTrailingCommas {
			s.syntaxErrorAt(comma, nil, "unexpected trailing comma")
		}
	}
	s.emit(h, s.path)
}

// parseKey classifies the current token as an object key, checks it against
// the key policies of the dialect, and returns its decoded text.
func (s *Stream) parseKey(h Handler) string {
	var key string
	if s.s.Kind() == Identifier {
		key = s.s.Text().StringCopy()
	} else {
		dec, err := unquote(s.s.Text())
		if err != nil {
			s.syntaxError(err, "invalid key: %v", err)
		}
		key = string(dec)
	}
	s.s.tok = Key
	s.emit(h, s.path)

	if isReservedKey(key, s.d) {
		s.syntaxError(nil, "reserved object key %q", key)
	}
	if s.d.NoDuplicateKeys {
		seen := &s.keys[len(s.keys)-1]
		if seen.Has(key) {
			s.syntaxError(nil, "duplicate key %q", key)
		}
		seen.Add(key)
	}
	return key
}

// parseElements consumes zero or more comma-separated array values.
// Precondition: token == LSquare.
// Postcondition: token == RSquare.
func (s *Stream) parseElements(h Handler) {
	tok := s.advance(h)
	for i := 0; tok != RSquare; i++ {
		s.path = append(s.path, i)
		s.parseElement(h)
		s.path = s.path[:len(s.path)-1]

		tok = s.advance(h, RSquare, Comma)
		if tok == RSquare {
			break
		}
		s.emit(h, s.path)
		comma := s.s.Location()
		tok = s.advance(h)
		if tok == RSquare && !s.d.IgnoreTrailingCommas {
			s.syntaxErrorAt(comma, nil, "unexpected trailing comma")
		}
	}
	s.emit(h, s.path)
}

// emit reports the current token to h, if h is a TokenHandler.
func (s *Stream) emit(h Handler, path Path) {
	if th, ok := h.(TokenHandler); ok {
		th.Token(s.s, path)
	}
}

// nextToken advances to the next non-comment token, reporting comments to h.
func (s *Stream) nextToken(h Handler) error {
	for {
		if err := s.s.Next(); err != nil {
			return err
		}
		if s.s.Kind().IsComment() {
			s.emit(h, nil)
			if ch, ok := h.(CommentHandler); ok {
				ch.Comment(s.s)
			}
			continue
		}
		return nil
	}
}

func (s *Stream) advance(h Handler, kinds ...Kind) Kind {
	if err := s.nextToken(h); err == io.EOF {
		end := len(s.s.Source())
		s.syntaxErrorAt(locationAt(s.s.Source(), end, 0), ErrUnexpectedEOF,
			"%s", kindLabel(kinds, "end of input"))
	} else if err != nil {
		panic(err) // *SyntaxError from the scanner
	}
	tok := s.s.Kind()
	if len(kinds) != 0 && !slices.Contains(kinds, tok) {
		s.syntaxError(nil, "%s", kindLabel(kinds, tok))
	}
	return tok
}

func (s *Stream) syntaxError(err error, msg string, args ...any) {
	s.syntaxErrorAt(s.s.Location(), err, msg, args...)
}

func (s *Stream) syntaxErrorAt(loc Location, err error, msg string, args ...any) {
	panic(newSyntaxError(s.s.Source(), loc, err, fmt.Sprintf(msg, args...)))
}

func (s *Stream) checkError(err error) {
	if err != nil {
		var serr *SyntaxError
		if errors.As(err, &serr) {
			panic(serr)
		}
		panic(handlerError{err})
	}
}

type handlerError struct{ error }

func (h handlerError) Unwrap() error { return h.error }

// kindLabel makes a human-readable summary string for the given token kinds.
func kindLabel(kinds []Kind, got any) string {
	if len(kinds) == 0 {
		return fmt.Sprintf("unexpected %v", got)
	}
	var exp string
	if len(kinds) == 1 {
		exp = kinds[0].String()
	} else {
		last := len(kinds) - 1
		ss := make([]string, last)
		for i, k := range kinds[:last] {
			ss[i] = k.String()
		}
		exp = strings.Join(ss, ", ") + " or " + kinds[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}

// prototypeKeys are the member names of the JavaScript Object.prototype,
// which are unsafe as object keys for consumers that merge objects.
var prototypeKeys = mapset.New(
	"__proto__",
	"__defineGetter__", "__defineSetter__", "__lookupGetter__", "__lookupSetter__",
	"constructor", "hasOwnProperty", "isPrototypeOf", "propertyIsEnumerable",
	"toLocaleString", "toString", "valueOf",
)

// isReservedKey reports whether key is a reserved name that d does not
// permit as an object key.
func isReservedKey(key string, d Dialect) bool {
	if d.IgnorePrototypeKeys || !prototypeKeys.Has(key) {
		return false
	}
	return key != "__proto__" || !d.IgnoreProtoKey
}
