// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/creachadair/jsonlint"
	"github.com/creachadair/jsonlint/config"
	"github.com/google/go-cmp/cmp"
)

func ptr[T any](v T) *T { return &v }

func TestParse(t *testing.T) {
	tests := []struct {
		name, input string
		want        config.Settings
	}{
		{"package.json", `{"name": "x", "jsonlint": {"sortKeys": true, "indent": 4}}`,
			config.Settings{SortKeys: ptr(true), Indent: ptr(config.Indent("4"))}},
		{"package.json", `{"name": "x"}`, config.Settings{}},
		{".jsonlintrc", `{
  // Comments are allowed.
  "mode": "json5",
  "validate": "a.json,b.json",
}`, config.Settings{Mode: ptr("json5"), Validate: config.List{"a.json", "b.json"}}},
		{".jsonlintrc.json", `{"mode": "cjson", "force-crlf": true, "forceCRLF": true}`,
			config.Settings{Mode: ptr("cjson"), ForceCRLF: ptr(true)}},
		{".jsonlintrc.jsonc", `{"extensions": ["json", "json5"], "indent": "\t", /* ok */}`,
			config.Settings{Extensions: config.List{"json", "json5"}, Indent: ptr(config.Indent("\t"))}},
		{".jsonlintrc.yaml", "sortKeysLocale: de\ncontext: 5\nvalidate:\n  - s.json\n",
			config.Settings{SortKeysLocale: ptr("de"), Context: ptr(5), Validate: config.List{"s.json"}}},
		{".jsonlintrc.yml", "ignore-proto-key: true\nstrict: false\n",
			config.Settings{IgnoreProtoKey: ptr(true), Strict: ptr(false)}},
		{".jsonlintrc", "prettyPrint: true\ntrailingNewline: false\n",
			config.Settings{PrettyPrint: ptr(true), TrailingNewline: ptr(false)}},
	}
	for _, test := range tests {
		got, err := config.Parse(test.name, []byte(test.input))
		if err != nil {
			t.Errorf("Parse %q: unexpected error: %v", test.name, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Parse %q (-want, +got):\n%s", test.name, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct{ name, input string }{
		{".jsonlintrc.json", `{"mode": "json5", "no-duplicate-keys": true}`}, // unknown setting
		{".jsonlintrc.json", `{"sort-keys": "yes"}`},                         // wrong type
		{".jsonlintrc.json", `{"sort-keys": true`},                           // syntax
		{".jsonlintrc.yaml", "context: [1\n"},                                // syntax
		{"package.json", `{"jsonlint": [1]}`},                                // not an object
	}
	for _, test := range tests {
		_, err := config.Parse(test.name, []byte(test.input))
		var cerr *jsonlint.ConfigError
		if !errors.As(err, &cerr) {
			t.Errorf("Parse %q %#q: got %v, want config error", test.name, test.input, err)
		}
	}
}

func TestMerge(t *testing.T) {
	base := config.Settings{
		Mode:       ptr("json5"),
		SortKeys:   ptr(true),
		Extensions: config.List{"json"},
	}
	over := config.Settings{
		SortKeys: ptr(false),
		Quiet:    ptr(true),
	}
	got := base.Merge(over)
	want := config.Settings{
		Mode:       ptr("json5"),
		SortKeys:   ptr(false),
		Extensions: config.List{"json"},
		Quiet:      ptr(true),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge (-want, +got):\n%s", diff)
	}
	if *base.SortKeys != true {
		t.Error("Merge modified its receiver")
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0700); err != nil {
		t.Fatal(err)
	}
	write := func(path, text string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(text), 0600); err != nil {
			t.Fatal(err)
		}
	}

	// A package.json without settings is skipped.
	write(filepath.Join(root, "a", "package.json"), `{"name": "pkg"}`)
	write(filepath.Join(root, "a", ".jsonlintrc.yml"), "quiet: true\n")

	got, path, err := config.Find(sub)
	if err != nil {
		t.Fatalf("Find: unexpected error: %v", err)
	}
	if want := filepath.Join(root, "a", ".jsonlintrc.yml"); path != want {
		t.Errorf("Find: got path %q, want %q", path, want)
	}
	if diff := cmp.Diff(config.Settings{Quiet: ptr(true)}, got); diff != "" {
		t.Errorf("Find (-want, +got):\n%s", diff)
	}

	// A nearer file wins.
	write(filepath.Join(sub, ".jsonlintrc"), `{"compact": true}`)
	got, path, err = config.Find(sub)
	if err != nil {
		t.Fatalf("Find: unexpected error: %v", err)
	}
	if want := filepath.Join(sub, ".jsonlintrc"); path != want {
		t.Errorf("Find: got path %q, want %q", path, want)
	}
	if diff := cmp.Diff(config.Settings{Compact: ptr(true)}, got); diff != "" {
		t.Errorf("Find (-want, +got):\n%s", diff)
	}

	// Loading a file directly.
	got, err = config.Load(filepath.Join(root, "a", ".jsonlintrc.yml"))
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if diff := cmp.Diff(config.Settings{Quiet: ptr(true)}, got); diff != "" {
		t.Errorf("Load (-want, +got):\n%s", diff)
	}
}

func TestKebabCase(t *testing.T) {
	tests := []struct{ input, want string }{
		{"", ""},
		{"mode", "mode"},
		{"sort-keys", "sort-keys"},
		{"sortKeys", "sort-keys"},
		{"sortKeysIgnoreCase", "sort-keys-ignore-case"},
		{"forceCrlf", "force-crlf"},
		{"forceCRLF", "force-crlf"},
		{"ignoreBOM", "ignore-bom"},
		{"HTMLParser", "html-parser"},
	}
	for _, test := range tests {
		if got := config.KebabCase(test.input); got != test.want {
			t.Errorf("KebabCase(%q): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestDecode(t *testing.T) {
	got, err := config.Decode(map[string]any{
		"sort-keys":   true,
		"indent":      "  ",
		"context":     2,
		"validate":    []string{"a.json"},
		"prettyPrint": false,
	})
	if err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	want := config.Settings{
		SortKeys:    ptr(true),
		Indent:      ptr(config.Indent("  ")),
		Context:     ptr(2),
		Validate:    config.List{"a.json"},
		PrettyPrint: ptr(false),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode (-want, +got):\n%s", diff)
	}
}
