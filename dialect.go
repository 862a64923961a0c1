// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonlint

import "fmt"

// A Dialect is a set of lexical and structural relaxations beyond strict
// JSON. The zero value accepts exactly standard JSON, and permits duplicate
// object keys (the last occurrence wins).
type Dialect struct {
	IgnoreBOM                bool // strip a leading byte-order mark
	IgnoreComments           bool // accept (and skip) // and /* */ comments
	IgnoreTrailingCommas     bool // accept a comma before } or ]
	AllowSingleQuotedStrings bool // accept 'strings' as well as "strings"
	NoDuplicateKeys          bool // report a repeated key in an object
	IgnoreProtoKey           bool // accept "__proto__" as an object key
	IgnorePrototypeKeys      bool // accept all Object.prototype member names as keys

	// JSON5 enables the JSON5 literal syntax: unquoted identifier keys,
	// hexadecimal numbers, explicit plus signs, leading or trailing decimal
	// points, Infinity and NaN, additional string escapes and line
	// continuations, and additional whitespace characters.
	JSON5 bool
}

// A Mode names a preset Dialect.
type Mode string

// The supported dialect presets.
const (
	ModeJSON  Mode = "json"  // standard JSON
	ModeCJSON Mode = "cjson" // JSON with comments
	ModeJSON5 Mode = "json5" // JSON5
)

// ParseMode returns the mode named by s. An empty string denotes ModeJSON.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return ModeJSON, nil
	case ModeJSON, ModeCJSON, ModeJSON5:
		return m, nil
	}
	return "", &ConfigError{Option: "mode", Value: s, Message: "invalid parsing mode"}
}

// Dialect returns the dialect preset for m. The caller may adjust the fields
// of the result; settings made after selecting a preset take precedence over
// the preset's defaults.
func (m Mode) Dialect() Dialect {
	switch m {
	case ModeCJSON:
		return Dialect{IgnoreComments: true}
	case ModeJSON5:
		return Dialect{
			IgnoreComments:           true,
			IgnoreTrailingCommas:     true,
			AllowSingleQuotedStrings: true,
			JSON5:                    true,
		}
	default:
		return Dialect{}
	}
}

// ConfigError reports an invalid option or combination of options.
type ConfigError struct {
	Option  string // the name of the option, if known
	Value   string // the offending value, if any
	Message string
}

// Error satisfies the error interface.
func (c *ConfigError) Error() string {
	switch {
	case c.Option != "" && c.Value != "":
		return fmt.Sprintf("%s: %s %q", c.Option, c.Message, c.Value)
	case c.Option != "":
		return fmt.Sprintf("%s: %s", c.Option, c.Message)
	default:
		return c.Message
	}
}
