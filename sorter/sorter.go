// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package sorter reorders the keys of JSON objects.
package sorter

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/creachadair/jsonlint"
	"github.com/creachadair/jsonlint/ast"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Options control the ordering of object keys. The zero value orders keys by
// Unicode code point.
type Options struct {
	// IgnoreCase compares keys without regard to letter case.
	IgnoreCase bool

	// Locale is a BCP 47 language tag selecting a collation. The values ""
	// and "default" select the root collation.
	Locale string

	// CaseFirst orders keys that differ only in case: "upper" puts upper-case
	// letters first, "lower" puts lower-case letters first, and "" or "false"
	// uses the collation default.
	CaseFirst string

	// Numeric orders runs of decimal digits by their numeric value, so that
	// "a2" sorts before "a10".
	Numeric bool
}

// Check reports an error if o contains an invalid locale or case order.
func (o Options) Check() error {
	_, err := o.comparer()
	return err
}

// collated reports whether o requires a locale-sensitive comparison.
func (o Options) collated() bool { return o.Locale != "" || o.CaseFirst != "" || o.Numeric }

// SortKeys returns a copy of v in which the members of every object are
// ordered by key according to opts. Arrays keep their order, but their
// elements are sorted recursively. Members with equal keys keep their
// relative order.
func SortKeys(v ast.Value, opts Options) (ast.Value, error) {
	compare, err := opts.comparer()
	if err != nil {
		return nil, err
	}
	return sortValue(v, compare), nil
}

// Compare compares two keys under opts, returning a negative number, zero, or
// a positive number as a sorts before, equal to, or after b.
func Compare(a, b string, opts Options) (int, error) {
	compare, err := opts.comparer()
	if err != nil {
		return 0, err
	}
	return compare(a, b), nil
}

func sortValue(v ast.Value, compare func(a, b string) int) ast.Value {
	switch t := v.(type) {
	case ast.Object:
		out := make(ast.Object, len(t))
		for i, m := range t {
			out[i] = &ast.Member{Key: m.Key, Value: sortValue(m.Value, compare)}
		}
		slices.SortStableFunc(out, func(a, b *ast.Member) int {
			return compare(a.Key, b.Key)
		})
		return out
	case ast.Array:
		out := make(ast.Array, len(t))
		for i, elt := range t {
			out[i] = sortValue(elt, compare)
		}
		return out
	default:
		return v
	}
}

func (o Options) comparer() (func(a, b string) int, error) {
	if !o.collated() {
		if o.IgnoreCase {
			return func(a, b string) int {
				return strings.Compare(strings.ToLower(a), strings.ToLower(b))
			}, nil
		}
		return strings.Compare, nil
	}

	tag := language.Und
	if o.Locale != "" && o.Locale != "default" {
		t, err := language.Parse(o.Locale)
		if err != nil {
			return nil, &jsonlint.ConfigError{Option: "locale", Value: o.Locale, Message: "invalid locale"}
		}
		tag = t
	}
	var upperFirst bool
	switch o.CaseFirst {
	case "", "false":
	case "upper":
		upperFirst = true
	case "lower":
	default:
		return nil, &jsonlint.ConfigError{Option: "case-first", Value: o.CaseFirst, Message: "invalid case order"}
	}

	var copts []collate.Option
	if o.Numeric {
		copts = append(copts, collate.Numeric)
	}
	caseOrder := o.CaseFirst == "upper" || o.CaseFirst == "lower"
	if o.IgnoreCase || caseOrder {
		copts = append(copts, collate.IgnoreCase)
	}

	// A collator carries scratch buffers, so each comparer gets its own and
	// must not be shared between goroutines.
	c := collate.New(tag, copts...)
	return func(a, b string) int {
		if v := c.CompareString(a, b); v != 0 || o.IgnoreCase {
			return v
		}
		if caseOrder {
			if v := compareCase(a, b, upperFirst); v != 0 {
				return v
			}
		}
		return 0
	}, nil
}

// compareCase orders a and b by the case of the first letter at which they
// differ only in case. It returns 0 if there is no such letter.
func compareCase(a, b string, upperFirst bool) int {
	ra, rb := []rune(a), []rune(b)
	for i := range min(len(ra), len(rb)) {
		x, y := ra[i], rb[i]
		if x == y || unicode.ToLower(x) != unicode.ToLower(y) {
			continue
		}
		// Exactly one of x and y is upper case.
		v := cmp.Compare(caseRank(x, upperFirst), caseRank(y, upperFirst))
		if v != 0 {
			return v
		}
	}
	return 0
}

func caseRank(r rune, upperFirst bool) int {
	if unicode.IsUpper(r) == upperFirst {
		return 0
	}
	return 1
}
