// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creachadair/jsonlint/ast"
	"github.com/creachadair/jsonlint/pointer"
	"github.com/creachadair/mds/mapset"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// schemaEngine serves one draft of JSON Schema.
type schemaEngine struct {
	draft    *jsonschema.Draft
	formats  bool // assert the "format" keyword
	keywords mapset.Set[string]
}

func (e schemaEngine) compile(schemas []ast.Value, strict bool) (checker, error) {
	c := jsonschema.NewCompiler()
	c.DefaultDraft(e.draft)
	if e.formats {
		c.AssertFormat()
	}

	var primary string
	for i, s := range schemas {
		if strict {
			if err := checkKeywords(s, e.keywords); err != nil {
				return nil, &CompileError{Index: i + 1, Err: err}
			}
		}
		url := schemaURL(s, i+1)
		if err := c.AddResource(url, toSchemaValue(s)); err != nil {
			return nil, &CompileError{Index: i + 1, Err: err}
		}
		if i == 0 {
			primary = url
		}
	}
	sch, err := c.Compile(primary)
	if err != nil {
		return nil, &CompileError{Index: 1, Err: err}
	}
	return schemaChecker{sch: sch, base: primary}, nil
}

// schemaURL returns the URL under which the schema at the given 1-based
// position is registered: its own identifier if it has an absolute one, or
// else a synthetic URL.
func schemaURL(s ast.Value, pos int) string {
	if obj, ok := s.(ast.Object); ok {
		for _, key := range []string{"$id", "id"} {
			m := obj.Find(key)
			if m == nil {
				continue
			}
			id, ok := m.Value.(ast.String)
			if ok && strings.Contains(string(id), "://") {
				return strings.TrimSuffix(string(id), "#")
			}
		}
	}
	return fmt.Sprintf("mem://jsonlint/schema-%d.json", pos)
}

type schemaChecker struct {
	sch  *jsonschema.Schema
	base string // the URL of the primary schema
}

func (s schemaChecker) check(v ast.Value) *violation {
	err := s.sch.Validate(toSchemaValue(v))
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return &violation{schemaPath: "#", message: err.Error()}
	}

	// Report the first leaf of the error tree.
	for len(verr.Causes) != 0 {
		verr = verr.Causes[0]
	}
	return &violation{
		path:       pointer.Pointer(verr.InstanceLocation),
		schemaPath: s.keywordLocation(verr.SchemaURL, verr.ErrorKind.KeywordPath()),
		message:    verr.ErrorKind.LocalizedString(message.NewPrinter(language.English)),
	}
}

// keywordLocation renders the location of a keyword within a schema. Rules of
// the primary schema are shown as fragments ("#/properties/a/type"), others
// with their full schema URL.
func (s schemaChecker) keywordLocation(schemaURL string, keywords []string) string {
	base, frag, _ := strings.Cut(schemaURL, "#")
	var sb strings.Builder
	if base != s.base {
		sb.WriteString(base)
	}
	sb.WriteByte('#')
	sb.WriteString(frag)
	if len(keywords) != 0 {
		sb.WriteString(pointer.Pointer(keywords).String())
	}
	return sb.String()
}
