// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package validator

import (
	"fmt"

	"github.com/creachadair/jsonlint/ast"
	"github.com/creachadair/jsonlint/pointer"
	"github.com/creachadair/mds/mapset"
)

// Keywords recognized by each JSON Schema draft.
var (
	draft04Keywords = mapset.New(
		"id", "$schema", "$ref", "title", "description", "default", "format",
		"multipleOf", "maximum", "exclusiveMaximum", "minimum", "exclusiveMinimum",
		"maxLength", "minLength", "pattern",
		"additionalItems", "items", "maxItems", "minItems", "uniqueItems",
		"maxProperties", "minProperties", "required", "additionalProperties",
		"definitions", "$defs", "properties", "patternProperties", "dependencies",
		"enum", "type", "allOf", "anyOf", "oneOf", "not",
	)
	draft06Keywords = with(without(draft04Keywords, "id"),
		"$id", "const", "contains", "propertyNames", "examples",
	)
	draft07Keywords = with(draft06Keywords,
		"$comment", "if", "then", "else", "readOnly", "writeOnly",
		"contentMediaType", "contentEncoding",
	)
	draft2019Keywords = with(without(draft07Keywords, "dependencies"),
		"$anchor", "$recursiveRef", "$recursiveAnchor", "$vocabulary",
		"dependentRequired", "dependentSchemas", "maxContains", "minContains",
		"unevaluatedItems", "unevaluatedProperties", "deprecated", "contentSchema",
	)
	draft2020Keywords = with(without(draft2019Keywords, "$recursiveRef", "$recursiveAnchor", "additionalItems"),
		"prefixItems", "$dynamicRef", "$dynamicAnchor",
	)

	jtdKeywords = mapset.New(
		"definitions", "metadata", "nullable", "ref", "type", "enum", "elements",
		"properties", "optionalProperties", "additionalProperties", "values",
		"discriminator", "mapping",
	)
)

func with(s mapset.Set[string], keys ...string) mapset.Set[string] {
	out := mapset.New(keys...)
	for key := range s {
		out.Add(key)
	}
	return out
}

func without(s mapset.Set[string], keys ...string) mapset.Set[string] {
	drop := mapset.New(keys...)
	out := mapset.New[string]()
	for key := range s {
		if !drop.Has(key) {
			out.Add(key)
		}
	}
	return out
}

// Keywords whose values contain subschemas, by shape.
var (
	schemaMapKeywords = mapset.New(
		"properties", "patternProperties", "definitions", "$defs", "dependentSchemas",
		"dependencies", // only the object-valued entries are schemas
	)
	schemaListKeywords = mapset.New("allOf", "anyOf", "oneOf", "prefixItems",
		"items", // or a single schema
	)
	schemaKeywords = mapset.New(
		"additionalItems", "additionalProperties", "contains", "propertyNames",
		"not", "if", "then", "else", "unevaluatedItems", "unevaluatedProperties",
		"contentSchema", "items",
	)

	jtdMapKeywords    = mapset.New("definitions", "properties", "optionalProperties", "mapping")
	jtdSchemaKeywords = mapset.New("elements", "values")
)

// unknownKeywordError reports a schema keyword not recognized by the
// environment.
type unknownKeywordError struct {
	Keyword string
	Path    pointer.Pointer // the location of the schema containing Keyword
}

func (u *unknownKeywordError) Error() string {
	return fmt.Sprintf("strict mode: unknown keyword %q at #%s", u.Keyword, u.Path)
}

// checkKeywords reports an error for the first keyword in schema, or any of
// its subschemas, that is not in known.
func checkKeywords(schema ast.Value, known mapset.Set[string]) error {
	return walkSchema(schema, nil, func(obj ast.Object, path pointer.Pointer) error {
		for _, m := range obj {
			if !known.Has(m.Key) {
				return &unknownKeywordError{Keyword: m.Key, Path: path}
			}
		}
		return nil
	}, schemaMapKeywords, schemaListKeywords, schemaKeywords)
}

// checkJTDKeywords reports an error for the first member of schema, or any of
// its nested schemas, that is not a JSON Type Definition keyword.
func checkJTDKeywords(schema ast.Value) error {
	return walkSchema(schema, nil, func(obj ast.Object, path pointer.Pointer) error {
		for _, m := range obj {
			if !jtdKeywords.Has(m.Key) {
				return &unknownKeywordError{Keyword: m.Key, Path: path}
			}
		}
		return nil
	}, jtdMapKeywords, nil, jtdSchemaKeywords)
}

// walkSchema calls visit for each object-valued schema reachable from v,
// following the keywords in the given sets. Non-object schemas (such as the
// boolean schemas of later drafts) are skipped.
func walkSchema(v ast.Value, path pointer.Pointer, visit func(ast.Object, pointer.Pointer) error,
	maps, lists, singles mapset.Set[string]) error {
	obj, ok := v.(ast.Object)
	if !ok {
		return nil
	}
	if err := visit(obj, path); err != nil {
		return err
	}
	sub := func(v ast.Value, keys ...string) error {
		return walkSchema(v, append(path[:len(path):len(path)], keys...), visit, maps, lists, singles)
	}
	for _, m := range obj {
		switch val := m.Value.(type) {
		case ast.Object:
			if maps.Has(m.Key) {
				for _, e := range val {
					if err := sub(e.Value, m.Key, e.Key); err != nil {
						return err
					}
				}
			} else if singles.Has(m.Key) {
				if err := sub(val, m.Key); err != nil {
					return err
				}
			}
		case ast.Array:
			if lists.Has(m.Key) {
				for i, e := range val {
					if err := sub(e, m.Key, fmt.Sprint(i)); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
