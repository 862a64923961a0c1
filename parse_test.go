// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonlint_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jsonlint"
	"github.com/creachadair/jsonlint/ast"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, input string, opts jsonlint.ParseOptions) ast.Value {
	t.Helper()
	v, err := jsonlint.Parse([]byte(input), opts)
	if err != nil {
		t.Fatalf("Parse %#q: unexpected error: %v", input, err)
	}
	return v
}

func TestParse(t *testing.T) {
	json5 := jsonlint.ParseOptions{Dialect: jsonlint.ModeJSON5.Dialect()}
	tests := []struct {
		input string
		opts  jsonlint.ParseOptions
		want  ast.Value
	}{
		{`null`, jsonlint.ParseOptions{}, ast.Null{}},
		{`"a\u0041"`, jsonlint.ParseOptions{}, ast.String("aA")},
		{`{"a":1,"b":[true,null,"x"]}`, jsonlint.ParseOptions{}, ast.Object{
			ast.Field("a", ast.Number("1")),
			ast.Field("b", ast.Array{ast.Bool(true), ast.Null{}, ast.String("x")}),
		}},
		{`[[], {}]`, jsonlint.ParseOptions{}, ast.Array{ast.Array{}, ast.Object{}}},

		// The last value wins, in the position of the first occurrence.
		{`{"a":1,"b":2,"a":3}`, jsonlint.ParseOptions{}, ast.Object{
			ast.Field("a", ast.Number("3")),
			ast.Field("b", ast.Number("2")),
		}},

		{`{a: 'x', "b": +1, c: [.5, 0xff,],}`, json5, ast.Object{
			ast.Field("a", "x"),
			ast.Field("b", ast.Number("+1")),
			ast.Field("c", ast.Array{ast.Number(".5"), ast.Number("0xff")}),
		}},
	}
	for _, test := range tests {
		got := mustParse(t, test.input, test.opts)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Parse %#q (-want, +got):\n%s", test.input, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		d     jsonlint.Dialect
	}{
		{`{"a":1,"a":2}`, jsonlint.Dialect{NoDuplicateKeys: true}},
		{`{"toString": 1}`, jsonlint.Dialect{}},
		{`[1,]`, jsonlint.ModeCJSON.Dialect()},
		{`[1] // c`, jsonlint.Dialect{}},
		{"\xef\xbb\xbf[]", jsonlint.ModeJSON5.Dialect()},
		{`{"a": 1} {}`, jsonlint.ModeJSON5.Dialect()},
	}
	for _, test := range tests {
		v, err := jsonlint.Parse([]byte(test.input), jsonlint.ParseOptions{Dialect: test.d})
		var serr *jsonlint.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Parse %#q: got (%v, %v), want syntax error", test.input, v, err)
		} else {
			t.Logf("Parse %#q: got expected error: %s", test.input, serr.Compact())
		}
	}
}

func TestDialectGating(t *testing.T) {
	const input = `{"a": [1, 2,],}`
	for _, m := range []jsonlint.Mode{jsonlint.ModeJSON, jsonlint.ModeCJSON} {
		if _, err := jsonlint.Parse([]byte(input), jsonlint.ParseOptions{Dialect: m.Dialect()}); err == nil {
			t.Errorf("Parse in mode %q: got nil, want error", m)
		}
	}
	mustParse(t, input, jsonlint.ParseOptions{Dialect: jsonlint.ModeJSON5.Dialect()})
	mustParse(t, input, jsonlint.ParseOptions{Dialect: jsonlint.Dialect{IgnoreTrailingCommas: true}})

	// An explicit setting overrides the preset.
	d := jsonlint.ModeJSON5.Dialect()
	d.IgnoreTrailingCommas = false
	if _, err := jsonlint.Parse([]byte(input), jsonlint.ParseOptions{Dialect: d}); err == nil {
		t.Error("Parse with trailing commas disabled: got nil, want error")
	}
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"", "json", "cjson", "json5"} {
		if _, err := jsonlint.ParseMode(name); err != nil {
			t.Errorf("ParseMode(%q): unexpected error: %v", name, err)
		}
	}
	_, err := jsonlint.ParseMode("yaml")
	var cerr *jsonlint.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("ParseMode(yaml): got %v, want config error", err)
	}
	if got, want := cerr.Error(), `mode: invalid parsing mode "yaml"`; got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}
}

func TestReviver(t *testing.T) {
	t.Run("Omit", func(t *testing.T) {
		got := mustParse(t, `{"a":1,"b":2}`, jsonlint.ParseOptions{
			Reviver: func(key string, v ast.Value) jsonlint.Action {
				if key == "b" {
					return jsonlint.Omit()
				}
				return jsonlint.Keep()
			},
		})
		want := ast.Object{ast.Field("a", ast.Number("1"))}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Result (-want, +got):\n%s", diff)
		}
	})

	t.Run("OmitElement", func(t *testing.T) {
		got := mustParse(t, `[1,2,3]`, jsonlint.ParseOptions{
			Reviver: func(key string, v ast.Value) jsonlint.Action {
				if key == "1" {
					return jsonlint.Omit()
				}
				return jsonlint.Keep()
			},
		})
		want := ast.Array{ast.Number("1"), ast.Number("3")}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Result (-want, +got):\n%s", diff)
		}
	})

	t.Run("OmitRoot", func(t *testing.T) {
		got := mustParse(t, `{"a":1}`, jsonlint.ParseOptions{
			Reviver: func(key string, v ast.Value) jsonlint.Action {
				if key == "" {
					return jsonlint.Omit()
				}
				return jsonlint.Keep()
			},
		})
		if got != nil {
			t.Errorf("Result: got %v, want nil", got)
		}
	})

	t.Run("Order", func(t *testing.T) {
		var keys []string
		var rootSeen ast.Value
		mustParse(t, `{"a":[1,{"x":2}],"b":3}`, jsonlint.ParseOptions{
			Reviver: func(key string, v ast.Value) jsonlint.Action {
				keys = append(keys, key)
				if key == "x" {
					return jsonlint.Replace(ast.String("two"))
				}
				if key == "" {
					rootSeen = v
				}
				return jsonlint.Keep()
			},
		})
		if diff := cmp.Diff([]string{"0", "x", "1", "a", "b", ""}, keys); diff != "" {
			t.Errorf("Visit order (-want, +got):\n%s", diff)
		}
		// The root sees the transformed children.
		want := ast.Object{
			ast.Field("a", ast.Array{ast.Number("1"), ast.Object{ast.Field("x", "two")}}),
			ast.Field("b", ast.Number("3")),
		}
		if diff := cmp.Diff(want, rootSeen); diff != "" {
			t.Errorf("Root value (-want, +got):\n%s", diff)
		}
	})
}
