// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package validator

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/creachadair/jsonlint/ast"
	"github.com/creachadair/jsonlint/pointer"
	jtd "github.com/jsontypedef/json-typedef-go"
)

// jtdEngine serves JSON Type Definition schemas.
type jtdEngine struct{}

func (jtdEngine) compile(schemas []ast.Value, strict bool) (checker, error) {
	for i, s := range schemas {
		if _, ok := s.(ast.Object); !ok {
			return nil, &CompileError{Index: i + 1, Err: errors.New("a type definition must be an object")}
		}
		if strict {
			if err := checkJTDKeywords(s); err != nil {
				return nil, &CompileError{Index: i + 1, Err: err}
			}
		}
	}
	merged := mergeDefinitions(schemas[0].(ast.Object), schemas[1:])

	var sch jtd.Schema
	if err := json.Unmarshal([]byte(merged.JSON()), &sch); err != nil {
		return nil, &CompileError{Index: 1, Err: err}
	}
	if err := sch.Validate(); err != nil {
		return nil, &CompileError{Index: 1, Err: err}
	}
	return jtdChecker{schema: sch, source: merged}, nil
}

// mergeDefinitions returns a copy of primary whose definitions include those
// of each of the auxiliary schemas. A later definition replaces an earlier one
// with the same name.
func mergeDefinitions(primary ast.Object, aux []ast.Value) ast.Object {
	if len(aux) == 0 {
		return primary
	}
	var defs ast.Object
	out := make(ast.Object, 0, len(primary)+1)
	for _, m := range primary {
		if m.Key == "definitions" {
			if d, ok := m.Value.(ast.Object); ok {
				defs = append(defs, d...)
			}
			continue
		}
		out = append(out, m)
	}
	for _, s := range aux {
		m := s.(ast.Object).Find("definitions")
		if m == nil {
			continue
		}
		d, _ := m.Value.(ast.Object)
		for _, def := range d {
			if i := defs.IndexKey(def.Key); i >= 0 {
				defs[i] = def
			} else {
				defs = append(defs, def)
			}
		}
	}
	return append(out, ast.Field("definitions", []*ast.Member(defs)))
}

type jtdChecker struct {
	schema jtd.Schema
	source ast.Value // the schema as a value, for describing violations
}

func (c jtdChecker) check(v ast.Value) *violation {
	errs, err := jtd.Validate(c.schema, toJTDValue(v), jtd.WithMaxErrors(1))
	if err != nil {
		return &violation{schemaPath: "#", message: err.Error()}
	} else if len(errs) == 0 {
		return nil
	}
	e := errs[0]
	return &violation{
		path:       pointer.Pointer(e.InstancePath),
		schemaPath: "#" + pointer.Pointer(e.SchemaPath).String(),
		message:    c.describe(v, e),
	}
}

// describe returns a message explaining the violation e of value v.
func (c jtdChecker) describe(v ast.Value, e jtd.ValidateError) string {
	kw, name := lastKeyword(e.SchemaPath)
	switch kw {
	case "type":
		if t, err := pointer.Eval(c.source, pointer.Pointer(e.SchemaPath)); err == nil {
			if s, ok := t.(ast.String); ok {
				return "must be " + string(s)
			}
		}
		return "must have the specified type"
	case "enum":
		return "must be equal to one of the allowed values"
	case "elements":
		return "must be array"
	case "values":
		return "must be object"
	case "discriminator":
		return "must have a string discriminator tag"
	case "mapping":
		return "discriminator tag must be a key of the mapping"
	case "properties", "optionalProperties":
		if name == "" {
			return "must be object"
		}
	}

	inst, _ := pointer.Eval(v, pointer.Pointer(e.InstancePath))
	if obj, ok := inst.(ast.Object); ok && kw == "properties" && obj.Find(name) == nil {
		return fmt.Sprintf("must have property %q", name)
	}
	if n := len(e.InstancePath); n != 0 {
		return fmt.Sprintf("must not have property %q", e.InstancePath[n-1])
	}
	return "must match the type definition"
}

// lastKeyword returns the final keyword of a schema path, and the member name
// that follows it if the keyword is one whose members are named.
func lastKeyword(path []string) (kw, name string) {
	for i := 0; i < len(path); i++ {
		kw, name = path[i], ""
		if jtdMapKeywords.Has(kw) && i+1 < len(path) {
			i++
			name = path[i]
		}
	}
	return kw, name
}
