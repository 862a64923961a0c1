// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"strings"

	"github.com/scott-cotton/cli"
)

// MainConfig holds the command-line flags. Settings that may also come from a
// configuration file are only applied if they were set explicitly; see
// (*MainConfig).settings.
type MainConfig struct {
	Config   string `cli:"name=config aliases=f desc='read options from a custom configuration file'"`
	NoConfig bool   `cli:"name=no-config aliases=F desc='disable searching for configuration files'"`

	IgnoreProtoKey      bool   `cli:"name=ignore-proto-key desc='ignore occurrences of the __proto__ object key'"`
	IgnorePrototypeKeys bool   `cli:"name=ignore-prototype-keys desc='ignore all keys from Object.prototype'"`
	SortKeys            bool   `cli:"name=sort-keys aliases=s desc='sort object keys (not when prettifying)'"`
	SortKeysIgnoreCase  bool   `cli:"name=sort-keys-ignore-case desc='sort object keys ignoring the letter case'"`
	SortKeysLocale      string `cli:"name=sort-keys-locale desc='locale identifier to sort object keys with'"`
	SortKeysCaseFirst   string `cli:"name=sort-keys-case-first desc='order if only letter case is different (upper or lower or false)'"`
	SortKeysNumeric     bool   `cli:"name=sort-keys-numeric desc='sort by numbers recognised in object keys'"`

	InPlace bool   `cli:"name=in-place aliases=i desc='overwrite the input files'"`
	Diff    bool   `cli:"name=diff aliases=j desc='print the difference instead of writing the output'"`
	Check   bool   `cli:"name=check aliases=k desc='check that the input is equal to the output'"`
	Indent  string `cli:"name=indent aliases=t desc='number of spaces or the characters to indent with (default 2)'"`
	Compact bool   `cli:"name=compact aliases=c desc='compact error display'"`

	Mode                string `cli:"name=mode aliases=M desc='parsing mode json or cjson or json5 (default json)'"`
	BOM                 bool   `cli:"name=bom aliases=B desc='ignore the leading UTF-8 byte-order mark'"`
	Comments            bool   `cli:"name=comments aliases=C desc='recognize and ignore JavaScript-style comments'"`
	SingleQuotedStrings bool   `cli:"name=single-quoted-strings aliases=S desc='support single quotes as string delimiters'"`
	TrailingCommas      bool   `cli:"name=trailing-commas aliases=T desc='ignore trailing commas in objects and arrays'"`
	NoDuplicateKeys     bool   `cli:"name=no-duplicate-keys aliases=D desc='report duplicate object keys as an error'"`

	Environment string `cli:"name=environment aliases=e desc='JSON Schema draft or jtd to validate with (default draft-07)'"`
	NoStrict    bool   `cli:"name=no-strict desc='disable the strict schema validation mode'"`
	Context     int    `cli:"name=context aliases=x desc='number of context lines in a diff (default 3)'"`

	LogFiles           bool `cli:"name=log-files aliases=l desc='print only the parsed file names to stdout'"`
	Quiet              bool `cli:"name=quiet aliases=q desc='do not print the parsed JSON to stdout'"`
	Continue           bool `cli:"name=continue aliases=n desc='continue with other files if an error occurs'"`
	PrettyPrint        bool `cli:"name=pretty-print aliases=p desc='prettify the input instead of serializing the parsed value'"`
	PrettyPrintInvalid bool `cli:"name=pretty-print-invalid aliases=P desc='force pretty-printing even for invalid input'"`
	TrailingNewline    bool `cli:"name=trailing-newline aliases=r desc='ensure a line break at the end of the output'"`
	NoTrailingNewline  bool `cli:"name=no-trailing-newline aliases=R desc='ensure no line break at the end of the output'"`

	PruneComments         bool `cli:"name=prune-comments desc='omit comments from the prettified output'"`
	StripObjectKeys       bool `cli:"name=strip-object-keys desc='strip quotes from object keys if possible'"`
	EnforceDoubleQuotes   bool `cli:"name=enforce-double-quotes desc='surround all strings with double quotes'"`
	EnforceSingleQuotes   bool `cli:"name=enforce-single-quotes desc='surround all strings with single quotes'"`
	TrimTrailingCommas    bool `cli:"name=trim-trailing-commas desc='omit trailing commas from objects and arrays'"`
	NoCompactEmptyObjects bool `cli:"name=no-compact-empty-objects desc='insert a line break between empty {} and []'"`
	ForceCRLF             bool `cli:"name=force-crlf desc='make sure all line breaks are CRLF'"`
	SucceedWithNoFiles    bool `cli:"name=succeed-with-no-files desc='succeed (exit status 0) if no files were found'"`
	Color                 bool `cli:"name=color desc='force colourful output of the diff'"`
	NoColor               bool `cli:"name=no-color desc='disable colourful output of the diff'"`

	Jobs    int  `cli:"name=jobs desc='maximum number of files processed at once'"`
	Verbose bool `cli:"name=verbose desc='log progress to stderr'"`

	// Filled by repeatable options.
	Validate   []string
	Extensions []string

	Main *cli.Command
}

// listOpt returns an option function that appends the comma-separated items
// of each use of the option to *list.
func listOpt(list *[]string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				*list = append(*list, item)
			}
		}
		return *list, nil
	})
}

// negated maps flags that clear a setting to the name of the setting.
var negated = map[string]string{
	"no-duplicate-keys":        "duplicate-keys",
	"no-strict":                "strict",
	"no-trailing-newline":      "trailing-newline",
	"no-compact-empty-objects": "compact-empty-objects",
	"no-color":                 "color",
}

// commandOnly are flags that have no counterpart in a configuration file.
var commandOnly = map[string]bool{
	"config":     true,
	"no-config":  true,
	"jobs":       true,
	"verbose":    true,
	"validate":   true,
	"extensions": true,
}

// explicit reports the values of the options that were set on the command
// line, keyed by setting name.
func (cfg *MainConfig) explicit() map[string]any {
	set := make(map[string]any)
	for _, opt := range cfg.Main.Opts {
		if opt.Value != nil {
			set[opt.Name] = *opt.Value
		}
	}
	return flagSettings(set, cfg.Validate, cfg.Extensions)
}

// flagSettings converts the values of flags, keyed by flag name, into raw
// settings for config.Decode.
func flagSettings(set map[string]any, validate, exts []string) map[string]any {
	raw := make(map[string]any)
	for name, v := range set {
		if commandOnly[name] {
			continue
		}
		if setting, ok := negated[name]; ok {
			if b, ok := v.(bool); ok {
				raw[setting] = !b
			}
			continue
		}
		raw[name] = v
	}
	if len(validate) != 0 {
		raw["validate"] = validate
	}
	if len(exts) != 0 {
		raw["extensions"] = exts
	}
	return raw
}
