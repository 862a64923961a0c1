// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/creachadair/jsonlint"
	"github.com/creachadair/jsonlint/config"
	"github.com/creachadair/jsonlint/diff"
	"github.com/creachadair/jsonlint/lint"
	"github.com/creachadair/jsonlint/printer"
	"github.com/creachadair/jsonlint/sorter"
	"github.com/creachadair/jsonlint/validator"
)

// buildOptions converts settings into processing options. Schemas named by
// the settings are read with readFile and compiled.
func buildOptions(s config.Settings, readFile func(string) ([]byte, error)) (lint.Options, error) {
	mode, err := jsonlint.ParseMode(value(s.Mode))
	if err != nil {
		return lint.Options{}, err
	}
	d := mode.Dialect()
	setFlag(&d.IgnoreBOM, s.BOM)
	setFlag(&d.IgnoreComments, s.Comments)
	setFlag(&d.AllowSingleQuotedStrings, s.SingleQuotedStrings)
	setFlag(&d.IgnoreTrailingCommas, s.TrailingCommas)
	setFlag(&d.IgnoreProtoKey, s.IgnoreProtoKey)
	setFlag(&d.IgnorePrototypeKeys, s.IgnorePrototypeKeys)
	if value(s.TrimTrailingCommas) {
		d.IgnoreTrailingCommas = true
	}
	if s.DuplicateKeys != nil {
		d.NoDuplicateKeys = !*s.DuplicateKeys
	}

	indent := "2"
	if s.Indent != nil {
		indent = string(*s.Indent)
	}
	indent, err = printer.ParseIndent(indent)
	if err != nil {
		return lint.Options{}, err
	}

	opts := lint.Options{
		Dialect:            d,
		PrettyPrint:        value(s.PrettyPrint),
		PrettyPrintInvalid: value(s.PrettyPrintInvalid),
		Printer: printer.Options{
			Indent:              indent,
			PruneComments:       value(s.PruneComments),
			StripObjectKeys:     value(s.StripObjectKeys),
			EnforceDoubleQuotes: value(s.EnforceDoubleQuotes),
			EnforceSingleQuotes: value(s.EnforceSingleQuotes),
			TrimTrailingCommas:  value(s.TrimTrailingCommas),
			ExpandEmpty:         s.CompactEmptyObjects != nil && !*s.CompactEmptyObjects,
			ForceCRLF:           value(s.ForceCRLF),
		},
		Sort: sorter.Options{
			IgnoreCase: value(s.SortKeysIgnoreCase),
			Locale:     value(s.SortKeysLocale),
			CaseFirst:  value(s.SortKeysCaseFirst),
			Numeric:    value(s.SortKeysNumeric),
		},
	}
	// Any of the sorting settings implies sorting.
	opts.SortKeys = value(s.SortKeys) || opts.Sort != (sorter.Options{})
	if s.TrailingNewline != nil {
		if *s.TrailingNewline {
			opts.Newline = lint.NewlineAlways
		} else {
			opts.Newline = lint.NewlineNever
		}
	}

	if len(s.Validate) != 0 {
		schemas := make([]validator.Schema, len(s.Validate))
		for i, name := range s.Validate {
			text, err := readFile(name)
			if err != nil {
				return lint.Options{}, fmt.Errorf("loading the JSON Schema #%d failed: %q.\n%w", i+1, name, err)
			}
			schemas[i] = validator.SchemaText(text)
		}
		v, err := validator.Compile(validator.Options{
			Environment: value(s.Environment),
			Dialect:     d,
			Loose:       s.Strict != nil && !*s.Strict,
		}, schemas...)
		if err != nil {
			return lint.Options{}, fmt.Errorf("loading the JSON Schema failed:\n%w", err)
		}
		opts.Validator = v
	}
	return opts, opts.Check()
}

// diffContext returns the number of context lines for diffs.
func diffContext(s config.Settings) (int, error) {
	if s.Context == nil {
		return diff.DefaultContext, nil
	} else if *s.Context < 0 {
		return 0, &jsonlint.ConfigError{Option: "context", Value: fmt.Sprint(*s.Context), Message: "invalid diff context"}
	}
	return *s.Context, nil
}

// value returns the value of an optional setting, or its zero value if it
// was not set.
func value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

func setFlag(dst *bool, p *bool) {
	if p != nil {
		*dst = *p
	}
}
