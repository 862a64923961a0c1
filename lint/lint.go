// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package lint runs the processing pipeline for whole documents: parse or
// validate, reformat, and compare the result with the original.
package lint

import (
	"strings"

	"github.com/creachadair/jsonlint"
	"github.com/creachadair/jsonlint/ast"
	"github.com/creachadair/jsonlint/diff"
	"github.com/creachadair/jsonlint/printer"
	"github.com/creachadair/jsonlint/sorter"
	"github.com/creachadair/jsonlint/validator"
)

// Newline selects whether the output of a document ends with a line break.
type Newline int

const (
	NewlineAuto   Newline = iota // end with a line break if the source does
	NewlineAlways                // always end with a line break
	NewlineNever                 // never end with a line break
)

// Options control the processing of a document.
type Options struct {
	// Dialect is the syntax accepted for the document.
	Dialect jsonlint.Dialect

	// If Validator != nil, documents are checked against its schema.
	Validator *validator.Validator

	// PrettyPrint selects formatting the token stream of the document, which
	// keeps comments and the spelling of literals. Otherwise the output is
	// the serialized value of the document.
	PrettyPrint bool

	// Printer controls the layout of the output. Its Indent is also used to
	// serialize values; the other settings apply only with PrettyPrint.
	Printer printer.Options

	// If SortKeys is true, object keys are ordered according to Sort before
	// the value is serialized. Sorting does not apply with PrettyPrint.
	SortKeys bool
	Sort     sorter.Options

	// PrettyPrintInvalid selects reformatting a document that could not be
	// processed with a lenient formatter. See Process.
	PrettyPrintInvalid bool

	// Newline is the policy for a line break at the end of the output.
	Newline Newline
}

// Check reports an error if o contains invalid settings.
func (o Options) Check() error {
	if err := o.Printer.Check(); err != nil {
		return err
	}
	if o.SortKeys && !o.PrettyPrint {
		return o.Sort.Check()
	}
	return nil
}

// A Result is the outcome of processing a document.
type Result struct {
	Name   string    // the name of the document, for diagnostics
	Source []byte    // the original text
	Value  ast.Value // the parsed value, nil if processing failed

	// Output is the formatted text, with the line-break policy applied.
	Output string
}

// Changed reports whether the output differs from the source.
func (r *Result) Changed() bool { return r.Output != string(r.Source) }

// Check returns the hunks by which the output differs from the source.
func (r *Result) Check(context int) []diff.Hunk {
	return diff.Hunks(string(r.Source), r.Output, context)
}

// Diff renders the changes from the source to the output as a patch. The
// source is labelled with the name of the document plus ".orig".
func (r *Result) Diff(context int) string {
	return diff.Patch(r.Name+".orig", r.Name, string(r.Source), r.Output, context)
}

// Process parses (or validates) src, the contents of the document with the
// given name, and formats it according to o.
//
// If processing fails and o.PrettyPrintInvalid is set, the source is
// reformatted by FormatLoose and parsed again, so that a syntax error is
// reported at a location within the reformatted text. In that case Process
// returns a Result whose Output is the reformatted text, together with the
// error.
func (o Options) Process(name string, src []byte) (*Result, error) {
	res := &Result{Name: name, Source: src}
	text, err := o.format(src, res)
	if err != nil {
		if !o.PrettyPrintInvalid {
			return nil, err
		}
		res.Value = nil
		res.Output = o.withNewline(FormatLoose(src, o.Printer.Indent), src)
		if _, perr := jsonlint.Parse([]byte(res.Output), jsonlint.ParseOptions{Dialect: o.Dialect}); perr != nil {
			err = perr
		}
		return res, err
	}
	res.Output = o.withNewline(text, src)
	return res, nil
}

func (o Options) format(src []byte, res *Result) (string, error) {
	var v ast.Value
	var err error
	if o.Validator != nil {
		v, err = o.Validator.Validate(src)
	} else {
		v, err = jsonlint.Parse(src, jsonlint.ParseOptions{Dialect: o.Dialect})
	}
	if err != nil {
		return "", err
	}
	res.Value = v

	if o.PrettyPrint {
		tokens, err := jsonlint.Tokenize(src, jsonlint.TokenizeOptions{
			Dialect:        o.Dialect,
			RawTokens:      true,
			TokenLocations: true,
		})
		if err != nil {
			return "", err
		}
		return printer.Print(tokens, o.Printer), nil
	}
	if o.SortKeys {
		v, err = sorter.SortKeys(v, o.Sort)
		if err != nil {
			return "", err
		}
		res.Value = v
	}
	return ast.Indent(v, o.Printer.Indent), nil
}

// withNewline applies the line-break policy to text formatted from src.
func (o Options) withNewline(text string, src []byte) string {
	switch o.Newline {
	case NewlineAlways:
	case NewlineNever:
		return text
	default:
		if !strings.HasSuffix(string(src), "\n") {
			return text
		}
	}
	if o.Printer.ForceCRLF {
		return text + "\r\n"
	}
	return text + "\n"
}
