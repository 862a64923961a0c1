// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package validator checks JSON documents against schemas.
//
// A schema is written for an Environment: one of the JSON Schema drafts, or
// JSON Type Definition (RFC 8927). Compile combines one or more schemas into
// a Validator, which may then be used to check any number of documents. When
// a document is rejected, the first violation is reported, and if the text of
// the document is available the violation is located in that text.
//
// Example:
//
//	v, err := validator.Compile(validator.Options{}, validator.SchemaText(schema))
//	if err != nil {
//	   log.Fatalf("Compile: %v", err)
//	}
//	if _, err := v.Validate(doc); err != nil {
//	   log.Printf("Invalid: %v", err)
//	}
package validator

import (
	"errors"
	"fmt"

	"github.com/creachadair/jsonlint"
	"github.com/creachadair/jsonlint/ast"
	"github.com/creachadair/jsonlint/pointer"
)

// A Schema is a schema document, either as source text or as a parsed value.
type Schema struct {
	Text  []byte    // the source text of the schema; used if Value is nil
	Value ast.Value // a parsed schema
}

// SchemaText returns a Schema for the given source text.
func SchemaText(text []byte) Schema { return Schema{Text: text} }

// SchemaValue returns a Schema for a parsed value.
func SchemaValue(v ast.Value) Schema { return Schema{Value: v} }

// Options control the compilation of a Validator.
type Options struct {
	// Environment names the rule set of the schemas, as accepted by
	// ParseEnvironment. If empty, DefaultEnvironment is used.
	Environment string

	// Dialect is used to parse schema text, and the text of documents
	// passed to the Validator.
	Dialect jsonlint.Dialect

	// Loose disables the rejection of unknown keywords in schemas.
	Loose bool
}

// An engine compiles schemas for one environment.
type engine interface {
	// compile compiles schemas, the first of which is the primary schema and
	// the rest auxiliary definitions it may refer to. Errors specific to a
	// single schema should be reported as *CompileError values.
	compile(schemas []ast.Value, strict bool) (checker, error)
}

// A checker is a compiled schema.
type checker interface {
	// check returns nil if v is valid, or otherwise its first violation.
	check(v ast.Value) *violation
}

// A violation describes why a value was rejected.
type violation struct {
	path       pointer.Pointer // the location of the offending value
	schemaPath string          // the location of the failing schema rule
	message    string
}

// A Validator checks documents against a compiled schema. A Validator is
// safe for concurrent use by multiple goroutines.
type Validator struct {
	env     Environment
	dialect jsonlint.Dialect
	chk     checker
}

// Compile compiles the given schemas under opts. The first schema is the
// primary schema; the others are registered as auxiliary definitions that
// the primary may refer to. At least one schema must be given.
//
// Errors from Compile have concrete type *CompileError.
func Compile(opts Options, schemas ...Schema) (*Validator, error) {
	env, err := ParseEnvironment(opts.Environment)
	if err != nil {
		return nil, &CompileError{Err: err}
	}
	if len(schemas) == 0 {
		return nil, &CompileError{Err: errors.New("no schema was provided")}
	}
	values := make([]ast.Value, len(schemas))
	for i, s := range schemas {
		if s.Value != nil {
			values[i] = s.Value
			continue
		}
		v, err := jsonlint.Parse(s.Text, jsonlint.ParseOptions{Dialect: opts.Dialect})
		if err != nil {
			return nil, &CompileError{Index: i + 1, Parse: true, Err: err}
		}
		values[i] = v
	}
	chk, err := engines[env].compile(values, !opts.Loose)
	if err != nil {
		var cerr *CompileError
		if errors.As(err, &cerr) {
			return nil, cerr
		}
		return nil, &CompileError{Err: err}
	}
	return &Validator{env: env, dialect: opts.Dialect, chk: chk}, nil
}

// Environment reports the environment v was compiled for.
func (v *Validator) Environment() Environment { return v.env }

// Validate parses text and checks the resulting value. On success it returns
// the parsed value. A syntax error is reported as a *jsonlint.SyntaxError;
// a violation of the schema is reported as a *ValidationError that is located
// within text.
func (v *Validator) Validate(text []byte) (ast.Value, error) {
	val, err := jsonlint.Parse(text, jsonlint.ParseOptions{Dialect: v.dialect})
	if err != nil {
		return nil, err
	}
	return v.ValidateValue(val, text)
}

// ValidateValue checks a parsed value. If text is not nil, it must be the
// source from which val was parsed, and a violation is located within it;
// otherwise the reported error has no location. On success it returns val
// unchanged.
func (v *Validator) ValidateValue(val ast.Value, text []byte) (ast.Value, error) {
	bad := v.chk.check(val)
	if bad == nil {
		return val, nil
	}
	path := bad.path.String()
	where := path
	if where == "" {
		where = "/"
	}
	verr := &ValidationError{
		Reason:     fmt.Sprintf("%s %s; see %s", where, bad.message, bad.schemaPath),
		Path:       path,
		SchemaPath: bad.schemaPath,
		Message:    bad.message,
	}
	if sub, err := pointer.Eval(val, bad.path); err == nil {
		verr.Value = sub
	}
	if text != nil {
		if tok, ok := jsonlint.Locate(text, v.dialect, path); ok {
			verr.Location = tok.Location
			verr.Excerpt, verr.Pointer = jsonlint.ErrorTexts(text, tok.Location)
		}
	}
	return nil, verr
}

// CompileError reports a failure to compile a validator.
type CompileError struct {
	Index int  // the 1-based position of the offending schema, or 0
	Parse bool // whether the schema text could not be parsed
	Err   error
}

// Error satisfies the error interface.
func (c *CompileError) Error() string {
	if c.Parse {
		return fmt.Sprintf("Parsing the JSON Schema #%d failed.\n%v", c.Index, c.Err)
	}
	return fmt.Sprintf("Compiling the JSON Schema failed.\n%v", c.Err)
}

// Unwrap supports error wrapping.
func (c *CompileError) Unwrap() error { return c.Err }

// ValidationError reports a document that does not satisfy its schema.
type ValidationError struct {
	Reason     string // a description including the path, message and schema path
	Path       string // JSON Pointer to the offending value ("" for the root)
	SchemaPath string // location of the schema rule that failed
	Message    string // what the rule requires

	// These fields are set only if the violation was located in the text of
	// the document.
	Location jsonlint.Location
	Excerpt  string
	Pointer  string

	Value ast.Value // the offending value, if it could be resolved
}

// Error satisfies the error interface.
func (v *ValidationError) Error() string {
	if v.Excerpt == "" {
		return v.Reason
	}
	return fmt.Sprintf("Validation error on line %d, column %d:\n%s\n%s\n%s",
		v.Location.Line, v.Location.Column, v.Excerpt, v.Pointer, v.Reason)
}

// Compact renders the error on a single line.
func (v *ValidationError) Compact() string {
	if !v.Location.IsValid() {
		return v.Reason
	}
	return fmt.Sprintf("line %d, col %d, %s", v.Location.Line, v.Location.Column, v.Reason)
}
