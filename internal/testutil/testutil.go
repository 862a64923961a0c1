// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package testutil defines support code for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/creachadair/jsonlint"
	"github.com/creachadair/jsonlint/ast"
)

// MustParse parses text as a single JSON value in the given dialect, or
// fails t.
func MustParse(t testing.TB, text string, d jsonlint.Dialect) ast.Value {
	t.Helper()
	v, err := jsonlint.Parse([]byte(text), jsonlint.ParseOptions{Dialect: d})
	if err != nil {
		t.Fatalf("Parse %#q: %v", text, err)
	}
	return v
}

// WriteFiles creates files under dir. Names are slash-separated paths
// relative to dir; missing directories are created. It returns the paths of
// the files in the same order as names.
func WriteFiles(t testing.TB, dir string, files map[string]string, names ...string) []string {
	t.Helper()
	for name, text := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			t.Fatalf("Create directory for %q: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(text), 0600); err != nil {
			t.Fatalf("Write %q: %v", name, err)
		}
	}
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, filepath.FromSlash(name))
	}
	return paths
}
