// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a value tree for JSON documents.
//
// A value tree carries no source positions. To find the location of a value
// in its source text, look up its path in a token stream (see
// jsonlint.FindPath).
package ast

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/creachadair/jsonlint/internal/escape"
	"go4.org/mem"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON returns the compact JSON encoding of the value.
	JSON() string

	// String returns a short human-readable summary of the value.
	String() string
}

// An Object is an ordered collection of key-value members.
type Object []*Member

// Find returns the member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	if i := o.IndexKey(key); i >= 0 {
		return o[i]
	}
	return nil
}

// IndexKey returns the index of the member of o with the given key, or -1.
func (o Object) IndexKey(key string) int {
	for i, m := range o {
		if m.Key == key {
			return i
		}
	}
	return -1
}

// Keys returns the keys of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

func (m Member) JSON() string { return quote(m.Key) + ":" + m.Value.JSON() }

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// Field constructs an object member with the given key and value.
// The value must be one of the types accepted by ToValue.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// An Array is a sequence of values.
type Array []Value

func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// A String is a decoded string value.
type String string

func (s String) JSON() string   { return quote(string(s)) }
func (s String) String() string { return fmt.Sprintf("String(%q)", string(s)) }

// A Number is a numeric value. It retains the spelling of the number in the
// source text, which may use the extended JSON5 syntax.
type Number string

// JSON returns the JSON spelling of n. Numbers that use JSON5 syntax are
// converted to the equivalent JSON spelling; infinities and NaN are encoded
// as null.
func (n Number) JSON() string {
	s := string(n)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimLeft(s, "+-")
	switch {
	case s == "Infinity", s == "NaN":
		return "null"
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		var z big.Int
		if _, ok := z.SetString(s[2:], 16); !ok {
			return "null"
		}
		if neg && z.Sign() != 0 {
			z.Neg(&z)
		}
		return z.String()
	}
	mant, exp, hasExp := strings.Cut(s, "e")
	if !hasExp {
		mant, exp, hasExp = strings.Cut(s, "E")
	}
	if strings.HasPrefix(mant, ".") {
		mant = "0" + mant
	}
	mant = strings.TrimSuffix(mant, ".")
	if hasExp {
		mant += "e" + exp
	}
	if neg {
		return "-" + mant
	}
	return mant
}

func (n Number) String() string { return fmt.Sprintf("Number(%s)", string(n)) }

// Float64 returns the value of n as a float64.
func (n Number) Float64() float64 {
	switch s := strings.TrimPrefix(string(n), "+"); s {
	case "Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	case "NaN", "-NaN":
		return math.NaN()
	}
	v, err := strconv.ParseFloat(n.JSON(), 64)
	if err != nil && v == 0 {
		return math.NaN()
	}
	return v
}

// Int64 returns the value of n as an int64, and reports whether n is an
// integer representable in that type.
func (n Number) Int64() (int64, bool) {
	v, err := strconv.ParseInt(n.JSON(), 10, 64)
	return v, err == nil
}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (b Bool) JSON() string   { return strconv.FormatBool(bool(b)) }
func (b Bool) String() string { return fmt.Sprintf("Bool(%v)", bool(b)) }

// Null represents the null constant.
type Null struct{}

func (Null) JSON() string   { return "null" }
func (Null) String() string { return "Null" }

// ToValue converts a string, int, float, bool, nil, []any, or ast.Value into
// an ast.Value. A *Member or []*Member becomes an Object. It panics if v does
// not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case *Member:
		return Object{t}
	case []*Member:
		return Object(t)
	case Value:
		return t
	case nil:
		return Null{}
	case string:
		return String(t)
	case int:
		return Number(strconv.Itoa(t))
	case int64:
		return Number(strconv.FormatInt(t, 10))
	case float64:
		return Number(strconv.FormatFloat(t, 'g', -1, 64))
	case bool:
		return Bool(t)
	case []any:
		out := make(Array, len(t))
		for i, e := range t {
			out[i] = ToValue(e)
		}
		return out
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}

func quote(s string) string { return `"` + string(escape.Quote(mem.S(s))) + `"` }
