// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package pointer implements JSON Pointers (RFC 6901) over value trees.
//
// A pointer is a sequence of reference tokens, each an object key or an array
// index, that describes a path from the root of a JSON value. For example,
// given the JSON value:
//
//	[{"a": 1, "b": 2}, {"c": {"d": true}, "e": false}]
//
// the pointer "/1/c/d" refers to the value "true".
package pointer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jsonlint/ast"
)

// A Pointer is a sequence of unescaped reference tokens. The empty Pointer
// refers to the whole document.
type Pointer []string

// New constructs a Pointer from a sequence of object keys and array indices.
// Each key must be a string or an int.
func New(keys ...any) Pointer {
	p := make(Pointer, len(keys))
	for i, key := range keys {
		switch t := key.(type) {
		case string:
			p[i] = t
		case int:
			p[i] = strconv.Itoa(t)
		default:
			panic(fmt.Sprintf("invalid pointer element %T", key))
		}
	}
	return p
}

// Parse parses the string encoding of a JSON Pointer.
func Parse(s string) (Pointer, error) {
	if s == "" {
		return Pointer{}, nil
	} else if !strings.HasPrefix(s, "/") {
		return nil, fmt.Errorf("invalid pointer %q: must begin with /", s)
	}
	parts := strings.Split(s[1:], "/")
	for i, part := range parts {
		dec, err := unescape(part)
		if err != nil {
			return nil, fmt.Errorf("invalid pointer %q: %w", s, err)
		}
		parts[i] = dec
	}
	return Pointer(parts), nil
}

// String returns the encoding of p, with each token escaped.
func (p Pointer) String() string {
	var sb strings.Builder
	for _, tok := range p {
		sb.WriteByte('/')
		sb.WriteString(Escape(tok))
	}
	return sb.String()
}

// Escape escapes a single reference token.
func Escape(tok string) string {
	if !strings.ContainsAny(tok, "~/") {
		return tok
	}
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(tok)
}

var errBadEscape = errors.New("invalid ~ escape")

func unescape(tok string) (string, error) {
	if !strings.Contains(tok, "~") {
		return tok, nil
	}
	var sb strings.Builder
	for i := 0; i < len(tok); i++ {
		if tok[i] != '~' {
			sb.WriteByte(tok[i])
			continue
		}
		if i+1 == len(tok) {
			return "", errBadEscape
		}
		switch tok[i+1] {
		case '0':
			sb.WriteByte('~')
		case '1':
			sb.WriteByte('/')
		default:
			return "", errBadEscape
		}
		i++
	}
	return sb.String(), nil
}

// Eval returns the value of root referred to by p.
func Eval(root ast.Value, p Pointer) (ast.Value, error) {
	v := root
	for i, tok := range p {
		var err error
		switch t := v.(type) {
		case ast.Object:
			mem := t.Find(tok)
			if mem == nil {
				err = fmt.Errorf("key %q not found", tok)
			} else {
				v = mem.Value
			}
		case ast.Array:
			idx, perr := parseIndex(tok)
			if perr != nil {
				err = perr
			} else if idx >= len(t) {
				err = fmt.Errorf("index %d out of range (0..%d)", idx, len(t))
			} else {
				v = t[idx]
			}
		default:
			err = fmt.Errorf("got %T, want object or array", v)
		}
		if err != nil {
			return nil, fmt.Errorf("at %s: %w", p[:i+1], err)
		}
	}
	return v, nil
}

// parseIndex parses an array index token. Leading zeroes are not allowed.
func parseIndex(tok string) (int, error) {
	if tok == "" || (len(tok) > 1 && tok[0] == '0') || strings.TrimLeft(tok, "0123456789") != "" {
		return 0, fmt.Errorf("invalid array index %q", tok)
	}
	return strconv.Atoi(tok)
}
