// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonlint

import (
	"github.com/creachadair/jsonlint/pointer"
)

// A Path is a sequence of object keys (string) and array indices (int)
// locating a value from the root of a document.
type Path []any

// String renders p as a JSON Pointer. The empty path renders as "".
func (p Path) String() string { return pointer.New(p...).String() }

// A Token is a lexical token of a document, classified by the parser.
type Token struct {
	Kind     Kind
	Raw      string   // the source text of the token, if requested
	Location Location // the location of the token, if requested
	Path     Path     // the path of the token, if requested
}

// IsValueStart reports whether t begins a value: a scalar, or the opening
// bracket of an object or array.
func (t Token) IsValueStart() bool {
	return t.Kind.IsScalar() || t.Kind == LBrace || t.Kind == LSquare
}

// TokenizeOptions control the behaviour of Tokenize. The capture flags
// select which optional fields of each Token are populated.
type TokenizeOptions struct {
	Dialect

	RawTokens      bool // populate Raw
	TokenLocations bool // populate Location
	TokenPaths     bool // populate Path
}

// Tokenize parses src under the given options and returns its tokens in
// source order. Comments are included if the dialect permits them.
//
// Tokenize applies the same rules as Parse, so a document that fails to
// parse also fails to tokenize. In case of a syntax error, the returned error
// has type [*SyntaxError] and the tokens preceding the error are returned.
func Tokenize(src []byte, opts TokenizeOptions) ([]Token, error) {
	h := &tokenHandler{opts: opts}
	err := NewStream(src, opts.Dialect).Parse(h)
	return h.tokens, err
}

// FindPath returns the last token in tokens that begins the value at the
// JSON Pointer ptr, and reports whether one was found. The tokens must have
// been captured with paths. When an object has duplicate keys, the last
// occurrence is found.
func FindPath(tokens []Token, ptr string) (Token, bool) {
	for i := len(tokens) - 1; i >= 0; i-- {
		if tok := tokens[i]; tok.IsValueStart() && tok.Path.String() == ptr {
			return tok, true
		}
	}
	return Token{}, false
}

// Locate re-tokenizes src under dialect d and returns the token that begins
// the value at the JSON Pointer ptr, as FindPath does. It reports false if src
// cannot be tokenized or ptr does not refer to a value in src.
func Locate(src []byte, d Dialect, ptr string) (Token, bool) {
	tokens, err := Tokenize(src, TokenizeOptions{
		Dialect:        d,
		RawTokens:      true,
		TokenLocations: true,
		TokenPaths:     true,
	})
	if err != nil {
		return Token{}, false
	}
	return FindPath(tokens, ptr)
}

// A tokenHandler implements the Handler and TokenHandler interfaces to
// collect the tokens of a document.
type tokenHandler struct {
	opts   TokenizeOptions
	tokens []Token
}

func (h *tokenHandler) Token(loc Anchor, path Path) {
	tok := Token{Kind: loc.Kind()}
	if h.opts.RawTokens {
		tok.Raw = loc.Text().StringCopy()
	}
	if h.opts.TokenLocations {
		tok.Location = loc.Location()
	}
	if h.opts.TokenPaths && !tok.Kind.IsComment() {
		tok.Path = append(Path{}, path...)
	}
	h.tokens = append(h.tokens, tok)
}

func (tokenHandler) BeginObject(Anchor) error         { return nil }
func (tokenHandler) EndObject(Anchor) error           { return nil }
func (tokenHandler) BeginArray(Anchor) error          { return nil }
func (tokenHandler) EndArray(Anchor) error            { return nil }
func (tokenHandler) BeginMember(Anchor, string) error { return nil }
func (tokenHandler) EndMember(Anchor) error           { return nil }
func (tokenHandler) Value(Anchor) error               { return nil }
func (tokenHandler) EndOfInput(Anchor)                {}
