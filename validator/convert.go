// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package validator

import (
	"encoding/json"
	"fmt"

	"github.com/creachadair/jsonlint/ast"
)

// toSchemaValue converts v into the representation used by the JSON Schema
// engine, in which numbers are json.Number values that keep their precision.
func toSchemaValue(v ast.Value) any {
	return toAny(v, func(n ast.Number) any {
		s := n.JSON()
		if s == "null" { // NaN and Infinity
			return nil
		}
		return json.Number(s)
	})
}

// toJTDValue converts v into the representation used by the JSON Type
// Definition engine, in which numbers are float64.
func toJTDValue(v ast.Value) any {
	return toAny(v, func(n ast.Number) any {
		if n.JSON() == "null" {
			return nil
		}
		return n.Float64()
	})
}

func toAny(v ast.Value, number func(ast.Number) any) any {
	switch t := v.(type) {
	case ast.Object:
		m := make(map[string]any, len(t))
		for _, mem := range t {
			m[mem.Key] = toAny(mem.Value, number)
		}
		return m
	case ast.Array:
		a := make([]any, len(t))
		for i, elt := range t {
			a[i] = toAny(elt, number)
		}
		return a
	case ast.String:
		return string(t)
	case ast.Number:
		return number(t)
	case ast.Bool:
		return bool(t)
	case ast.Null, nil:
		return nil
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}
