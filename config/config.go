// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package config loads jsonlint settings from configuration files.
//
// Settings are read from the first of the following files found in a
// directory or any of its ancestors:
//
//	package.json        (the "jsonlint" member, if present)
//	.jsonlintrc         (JSON with comments, or YAML)
//	.jsonlintrc.json
//	.jsonlintrc.jsonc
//	.jsonlintrc.yaml
//	.jsonlintrc.yml
//
// Setting names may be written in kebab-case ("sort-keys") or camelCase
// ("sortKeys").
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/creachadair/jsonlint"
	"github.com/goccy/go-yaml"
	"github.com/tailscale/hujson"
)

// Settings are the options that may be set by a configuration file. A nil
// field is not set.
type Settings struct {
	Mode                *string `json:"mode"`
	BOM                 *bool   `json:"bom"`
	Comments            *bool   `json:"comments"`
	SingleQuotedStrings *bool   `json:"single-quoted-strings"`
	TrailingCommas      *bool   `json:"trailing-commas"`
	DuplicateKeys       *bool   `json:"duplicate-keys"`
	IgnoreProtoKey      *bool   `json:"ignore-proto-key"`
	IgnorePrototypeKeys *bool   `json:"ignore-prototype-keys"`

	SortKeys           *bool   `json:"sort-keys"`
	SortKeysIgnoreCase *bool   `json:"sort-keys-ignore-case"`
	SortKeysLocale     *string `json:"sort-keys-locale"`
	SortKeysCaseFirst  *string `json:"sort-keys-case-first"`
	SortKeysNumeric    *bool   `json:"sort-keys-numeric"`

	Extensions List    `json:"extensions"`
	Patterns   List    `json:"patterns"`
	InPlace    *bool   `json:"in-place"`
	Diff       *bool   `json:"diff"`
	Check      *bool   `json:"check"`
	Indent     *Indent `json:"indent"`
	Compact    *bool   `json:"compact"`
	Context    *int    `json:"context"`

	Validate    List    `json:"validate"`
	Environment *string `json:"environment"`
	Strict      *bool   `json:"strict"`

	LogFiles           *bool `json:"log-files"`
	Quiet              *bool `json:"quiet"`
	Continue           *bool `json:"continue"`
	PrettyPrint        *bool `json:"pretty-print"`
	PrettyPrintInvalid *bool `json:"pretty-print-invalid"`
	TrailingNewline    *bool `json:"trailing-newline"`

	PruneComments       *bool `json:"prune-comments"`
	StripObjectKeys     *bool `json:"strip-object-keys"`
	EnforceDoubleQuotes *bool `json:"enforce-double-quotes"`
	EnforceSingleQuotes *bool `json:"enforce-single-quotes"`
	TrimTrailingCommas  *bool `json:"trim-trailing-commas"`
	CompactEmptyObjects *bool `json:"compact-empty-objects"`
	ForceCRLF           *bool `json:"force-crlf"`
	SucceedWithNoFiles  *bool `json:"succeed-with-no-files"`
	Color               *bool `json:"color"`
}

// Merge returns a copy of s in which each setting made in over replaces the
// corresponding setting of s.
func (s Settings) Merge(over Settings) Settings {
	out := s
	ov := reflect.ValueOf(over)
	rv := reflect.ValueOf(&out).Elem()
	for i := range ov.NumField() {
		if f := ov.Field(i); !f.IsZero() {
			rv.Field(i).Set(f)
		}
	}
	return out
}

// A List is a list of strings. In a configuration file it may be written as
// an array, or as a single string of comma-separated items.
type List []string

// UnmarshalJSON implements the json.Unmarshaler interface.
func (l *List) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = strings.Split(s, ",")
		return nil
	}
	return json.Unmarshal(data, (*[]string)(l))
}

// Indent is an indentation setting, either a number of spaces or a literal
// string (see printer.ParseIndent).
type Indent string

// UnmarshalJSON implements the json.Unmarshaler interface.
func (in *Indent) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*in = Indent(strconv.Itoa(n))
		return nil
	}
	return json.Unmarshal(data, (*string)(in))
}

// packageKey is the member of package.json that holds settings.
const packageKey = "jsonlint"

var candidates = []string{
	"package.json",
	".jsonlintrc",
	".jsonlintrc.json",
	".jsonlintrc.jsonc",
	".jsonlintrc.yaml",
	".jsonlintrc.yml",
}

// Find searches dir and its ancestors for a configuration file, and loads
// the first one found. It returns the settings and the path of the file. If
// no file is found, Find returns empty settings and an empty path.
func Find(dir string) (Settings, string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return Settings{}, "", err
	}
	for {
		for _, name := range candidates {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			} else if err != nil {
				return Settings{}, "", err
			}
			if name == "package.json" && !hasPackageKey(data) {
				continue
			}
			s, err := Parse(path, data)
			return s, path, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Settings{}, "", nil
		}
		dir = parent
	}
}

// Load reads the configuration file at path.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	return Parse(path, data)
}

// Parse parses the contents of the configuration file with the given name.
// The format is chosen by the name of the file.
func Parse(name string, data []byte) (Settings, error) {
	var raw map[string]any
	var err error
	switch base := filepath.Base(name); {
	case base == "package.json":
		var pkg map[string]json.RawMessage
		if err = json.Unmarshal(data, &pkg); err == nil && pkg[packageKey] != nil {
			err = json.Unmarshal(pkg[packageKey], &raw)
		}
	case strings.HasSuffix(base, ".yaml"), strings.HasSuffix(base, ".yml"):
		err = yaml.Unmarshal(data, &raw)
	case strings.HasSuffix(base, ".json"), strings.HasSuffix(base, ".jsonc"):
		raw, err = parseJWCC(data)
	default:
		// Either JSON with comments, or YAML.
		if raw, err = parseJWCC(data); err != nil {
			err = yaml.Unmarshal(data, &raw)
		}
	}
	if err != nil {
		return Settings{}, &jsonlint.ConfigError{Option: "config", Value: name, Message: err.Error()}
	}
	s, err := Decode(raw)
	if err != nil {
		return Settings{}, &jsonlint.ConfigError{Option: "config", Value: name, Message: err.Error()}
	}
	return s, nil
}

func parseJWCC(data []byte) (map[string]any, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(std, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Decode converts raw settings, with keys in either spelling, into Settings.
// Unknown settings are reported as errors.
func Decode(raw map[string]any) (Settings, error) {
	norm := make(map[string]any, len(raw))
	for key, val := range raw {
		norm[KebabCase(key)] = val
	}
	data, err := json.Marshal(norm)
	if err != nil {
		return Settings{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var s Settings
	if err := dec.Decode(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func hasPackageKey(data []byte) bool {
	var pkg map[string]json.RawMessage
	return json.Unmarshal(data, &pkg) == nil && pkg[packageKey] != nil
}

// KebabCase converts a camelCase name to kebab-case. A run of capital letters
// is treated as one word, so "forceCRLF" becomes "force-crlf". Names already
// in kebab-case are unchanged.
func KebabCase(name string) string {
	rs := []rune(name)
	var sb strings.Builder
	for i, r := range rs {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := rs[i-1]
				nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
				if (!unicode.IsUpper(prev) && prev != '-') || (unicode.IsUpper(prev) && nextLower) {
					sb.WriteByte('-')
				}
			}
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
