// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/creachadair/mds/mapset"
)

// errNoFiles is reported when the input patterns match nothing.
var errNoFiles = errors.New("no files or directories found for the input patterns")

// expandInputs resolves command-line inputs into a sorted list of file names.
//
// Each input is a glob pattern, which may use "**" to match any number of
// directories. Inputs beginning with "!" exclude matching paths, along with
// everything beneath a matching directory. A matched directory is searched
// recursively for files whose extension is in exts. A matched file is
// included regardless of its extension.
func expandInputs(inputs, exts []string) ([]string, error) {
	var include, exclude []string
	for _, in := range inputs {
		if p, ok := strings.CutPrefix(in, "!"); ok {
			exclude = append(exclude, filepath.Clean(p))
		} else {
			include = append(include, filepath.Clean(in))
		}
	}
	excluded := func(path string) bool {
		for _, p := range exclude {
			for q := path; ; q = filepath.Dir(q) {
				if ok, _ := doublestar.PathMatch(p, q); ok {
					return true
				}
				if up := filepath.Dir(q); up == q {
					break
				}
			}
		}
		return false
	}
	extSet := mapset.New(exts...)

	seen := mapset.New[string]()
	for _, p := range include {
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if excluded(m) {
				continue
			}
			fi, err := os.Stat(m)
			if err != nil {
				return nil, err
			}
			if !fi.IsDir() {
				seen.Add(m)
				continue
			}
			err = filepath.WalkDir(m, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				} else if excluded(path) {
					if d.IsDir() {
						return fs.SkipDir
					}
					return nil
				}
				if d.Type().IsRegular() && extSet.Has(filepath.Ext(path)) {
					seen.Add(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		}
	}
	if seen.IsEmpty() {
		return nil, errNoFiles
	}
	out := seen.Slice()
	slices.Sort(out)
	return out, nil
}

// extensions returns the file extensions selected by names, which may be
// written with or without a leading dot. If names is empty, the defaults
// are returned.
func extensions(names []string) []string {
	if len(names) == 0 {
		return []string{".json", ".JSON"}
	}
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = "." + strings.TrimPrefix(name, ".")
	}
	return out
}
