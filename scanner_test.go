// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonlint_test

import (
	"errors"
	"io"
	"testing"

	"github.com/creachadair/jsonlint"
	"github.com/google/go-cmp/cmp"
)

func scanKinds(t *testing.T, input string, d jsonlint.Dialect) []jsonlint.Kind {
	t.Helper()
	var got []jsonlint.Kind
	s := jsonlint.NewScanner([]byte(input), d)
	for s.Next() == nil {
		got = append(got, s.Kind())
	}
	if s.Err() != io.EOF {
		t.Errorf("Next failed: %v", s.Err())
	}
	return got
}

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []jsonlint.Kind
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []jsonlint.Kind{jsonlint.True, jsonlint.False, jsonlint.Null}},

		// Punctuation
		{"{ [ ] } , :", []jsonlint.Kind{
			jsonlint.LBrace, jsonlint.LSquare, jsonlint.RSquare, jsonlint.RBrace, jsonlint.Comma, jsonlint.Colon,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []jsonlint.Kind{jsonlint.String, jsonlint.String, jsonlint.String}},
		{`"\"\\\/\b\f\n\r\t"`, []jsonlint.Kind{jsonlint.String}},
		{`"\u0000\u01fc\uAA9c"`, []jsonlint.Kind{jsonlint.String}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100`, []jsonlint.Kind{
			jsonlint.Integer, jsonlint.Integer, jsonlint.Integer,
			jsonlint.Number, jsonlint.Number, jsonlint.Number, jsonlint.Number,
		}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []jsonlint.Kind{
			jsonlint.LBrace, jsonlint.True, jsonlint.Comma, jsonlint.String, jsonlint.Colon,
			jsonlint.Integer, jsonlint.Null, jsonlint.LSquare, jsonlint.RSquare, jsonlint.RBrace,
		}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jsonlint.Kind{
			jsonlint.LBrace,
			jsonlint.String, jsonlint.Colon, jsonlint.True, jsonlint.Comma,
			jsonlint.String, jsonlint.Colon,
			jsonlint.LSquare,
			jsonlint.Null, jsonlint.Comma, jsonlint.Integer, jsonlint.Comma, jsonlint.Number,
			jsonlint.RSquare,
			jsonlint.RBrace,
		}},
	}

	for _, test := range tests {
		got := scanKinds(t, test.input, jsonlint.Dialect{})
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScanner_JSON5(t *testing.T) {
	d := jsonlint.ModeJSON5.Dialect()
	tests := []struct {
		input string
		want  []jsonlint.Kind
	}{
		{`{a: 0x1F, $b_2: +.5}`, []jsonlint.Kind{
			jsonlint.LBrace,
			jsonlint.Identifier, jsonlint.Colon, jsonlint.Integer, jsonlint.Comma,
			jsonlint.Identifier, jsonlint.Colon, jsonlint.Number,
			jsonlint.RBrace,
		}},
		{`5. -Infinity NaN +Infinity`, []jsonlint.Kind{
			jsonlint.Number, jsonlint.Number, jsonlint.Number, jsonlint.Number,
		}},
		{`'it\'s' "a\x41\v" 'line \
continued'`, []jsonlint.Kind{jsonlint.String, jsonlint.String, jsonlint.String}},
		{"[1,\v2,\f3]", []jsonlint.Kind{
			jsonlint.LSquare, jsonlint.Integer, jsonlint.Comma, jsonlint.Integer,
			jsonlint.Comma, jsonlint.Integer, jsonlint.RSquare,
		}},
		{"// note\n[/* x */]", []jsonlint.Kind{
			jsonlint.LineComment, jsonlint.LSquare, jsonlint.BlockComment, jsonlint.RSquare,
		}},
	}
	for _, test := range tests {
		got := scanKinds(t, test.input, d)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScanner_withComments(t *testing.T) {
	tests := []struct {
		input string
		want  []jsonlint.Kind
		coms  []string
	}{
		{"/* block comment */\n\n\n", []jsonlint.Kind{jsonlint.BlockComment},
			[]string{"/* block comment */"}},
		{"// line 1\n\n// line 2\n", []jsonlint.Kind{jsonlint.LineComment, jsonlint.LineComment},
			[]string{"// line 1", "// line 2"}}, // N.B. excludes the line break
		{"// line at EOF", []jsonlint.Kind{jsonlint.LineComment},
			[]string{"// line at EOF"}},
		{"// crlf\r\n1", []jsonlint.Kind{jsonlint.LineComment, jsonlint.Integer},
			[]string{"// crlf"}},
		{`{
 "x": 1, // howdy do
 "y" /* hide me */ : 2.0 }`, []jsonlint.Kind{
			jsonlint.LBrace, jsonlint.String, jsonlint.Colon, jsonlint.Integer, jsonlint.Comma, jsonlint.LineComment,
			jsonlint.String, jsonlint.BlockComment, jsonlint.Colon, jsonlint.Number, jsonlint.RBrace,
		}, []string{
			"// howdy do", "/* hide me */",
		}},

		{"/**\n*/", []jsonlint.Kind{jsonlint.BlockComment}, []string{"/**\n*/"}},

		{`/**/"foo"/***/"bar"/****/false/*x*/null`, []jsonlint.Kind{
			jsonlint.BlockComment, jsonlint.String,
			jsonlint.BlockComment, jsonlint.String,
			jsonlint.BlockComment, jsonlint.False,
			jsonlint.BlockComment, jsonlint.Null,
		}, []string{
			"/**/", "/***/", "/****/", "/*x*/",
		}},
	}

	for _, test := range tests {
		var got []jsonlint.Kind
		var coms []string
		s := jsonlint.NewScanner([]byte(test.input), jsonlint.ModeCJSON.Dialect())
		for s.Next() == nil {
			got = append(got, s.Kind())
			if s.Kind().IsComment() {
				coms = append(coms, s.Text().StringCopy())
			}
		}
		if s.Err() != io.EOF {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
		if diff := cmp.Diff(test.coms, coms); diff != "" {
			t.Errorf("Input: %#q\nComments: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerErrors(t *testing.T) {
	json5 := jsonlint.ModeJSON5.Dialect()
	tests := []struct {
		input string
		d     jsonlint.Dialect
		want  string // compact error text
	}{
		{"\xef\xbb\xbf{}", jsonlint.Dialect{}, "line 1, col 1, unexpected byte-order mark"},
		{"[1, /* c */ 2]", jsonlint.Dialect{}, "line 1, col 5, unexpected comment"},
		{"[1,\n  // c\n 2]", jsonlint.Dialect{}, "line 2, col 3, unexpected comment"},
		{"1 / 2", jsonlint.ModeCJSON.Dialect(), `line 1, col 3, unexpected "/"`},
		{`{'a': 1}`, jsonlint.Dialect{}, "line 1, col 2, unexpected single-quoted string"},
		{`01`, jsonlint.Dialect{}, "line 1, col 1, extra leading zeroes"},
		{`-`, jsonlint.Dialect{}, "line 1, col 1, missing digits after sign"},
		{`1.`, jsonlint.Dialect{}, "line 1, col 1, no digits after decimal point"},
		{`1e+`, jsonlint.Dialect{}, "line 1, col 1, missing exponent digits"},
		{`1x`, jsonlint.Dialect{}, `line 1, col 1, invalid number "1x"`},
		{`+1`, jsonlint.Dialect{}, `line 1, col 1, unexpected '+'`},
		{` "abc`, jsonlint.Dialect{}, "line 1, col 2, unterminated string"},
		{`"a\qb"`, jsonlint.Dialect{}, `line 1, col 1, invalid 'q' after escape`},
		{`"\u12"`, jsonlint.Dialect{}, "line 1, col 1, invalid Unicode escape"},
		{"\"a\x01\"", jsonlint.Dialect{}, `line 1, col 1, unescaped control '\x01' in string`},
		{`tru`, jsonlint.Dialect{}, `line 1, col 1, unexpected "tru"`},
		{`{a: 1}`, jsonlint.Dialect{}, `line 1, col 2, unexpected "a"`},
		{"\n\n  #", jsonlint.Dialect{}, `line 3, col 3, unexpected '#'`},
		{`0x`, json5, "line 1, col 1, missing hexadecimal digits"},
		{`-Inf`, json5, `line 1, col 1, invalid number "-Inf"`},
		{`"\1"`, json5, `line 1, col 1, invalid '1' after escape`},
		{`/* open`, json5, "line 1, col 1, unterminated block comment"},
	}
	for _, test := range tests {
		s := jsonlint.NewScanner([]byte(test.input), test.d)
		var err error
		for err == nil {
			err = s.Next()
		}
		var serr *jsonlint.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Input: %#q: got error %v, want syntax error", test.input, err)
			continue
		}
		if got := serr.Compact(); got != test.want {
			t.Errorf("Input: %#q\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

func TestScanner_ignoreBOM(t *testing.T) {
	s := jsonlint.NewScanner([]byte("\xef\xbb\xbf {}"), jsonlint.Dialect{IgnoreBOM: true})
	if err := s.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	want := jsonlint.Location{Offset: 1, Line: 1, Column: 2, Length: 1}
	if diff := cmp.Diff(want, s.Location()); diff != "" {
		t.Errorf("Location (-want, +got):\n%s", diff)
	}
	if got := string(s.Source()); got != " {}" {
		t.Errorf("Source: got %q, want %q", got, " {}")
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\xe2\x80\xa8 \xe2\x80\xa9", `"\u2028 \u2029"`},
		{"bad \xff", `"bad \ufffd"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
		{"it's", `"it's"`},
	}
	for _, test := range tests {
		got := jsonlint.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}

	if got, want := jsonlint.QuoteSingle(`it's "ok"`), `'it\'s "ok"'`; got != want {
		t.Errorf("QuoteSingle: got %#q, want %#q", got, want)
	}
}

func TestScannerLoc(t *testing.T) {
	type tokLoc struct {
		Kind jsonlint.Kind
		Loc  jsonlint.Location
	}
	tests := []struct {
		input string
		want  []tokLoc
	}{
		{"", nil},
		{"{\n  \"a\": [1, 2]\n}", []tokLoc{
			{jsonlint.LBrace, jsonlint.Location{Offset: 0, Line: 1, Column: 1, Length: 1}},
			{jsonlint.String, jsonlint.Location{Offset: 4, Line: 2, Column: 3, Length: 3}},
			{jsonlint.Colon, jsonlint.Location{Offset: 7, Line: 2, Column: 6, Length: 1}},
			{jsonlint.LSquare, jsonlint.Location{Offset: 9, Line: 2, Column: 8, Length: 1}},
			{jsonlint.Integer, jsonlint.Location{Offset: 10, Line: 2, Column: 9, Length: 1}},
			{jsonlint.Comma, jsonlint.Location{Offset: 11, Line: 2, Column: 10, Length: 1}},
			{jsonlint.Integer, jsonlint.Location{Offset: 13, Line: 2, Column: 12, Length: 1}},
			{jsonlint.RSquare, jsonlint.Location{Offset: 14, Line: 2, Column: 13, Length: 1}},
			{jsonlint.RBrace, jsonlint.Location{Offset: 16, Line: 3, Column: 1, Length: 1}},
		}},
		// Columns count characters, offsets count bytes.
		{"\"\xc3\xa9\": 1", []tokLoc{
			{jsonlint.String, jsonlint.Location{Offset: 0, Line: 1, Column: 1, Length: 4}},
			{jsonlint.Colon, jsonlint.Location{Offset: 4, Line: 1, Column: 4, Length: 1}},
			{jsonlint.Integer, jsonlint.Location{Offset: 6, Line: 1, Column: 6, Length: 1}},
		}},
		{"[\r\n1]", []tokLoc{
			{jsonlint.LSquare, jsonlint.Location{Offset: 0, Line: 1, Column: 1, Length: 1}},
			{jsonlint.Integer, jsonlint.Location{Offset: 3, Line: 2, Column: 1, Length: 1}},
			{jsonlint.RSquare, jsonlint.Location{Offset: 4, Line: 2, Column: 2, Length: 1}},
		}},
		{"/* ok\n*/\n null", []tokLoc{
			{jsonlint.BlockComment, jsonlint.Location{Offset: 0, Line: 1, Column: 1, Length: 8}},
			{jsonlint.Null, jsonlint.Location{Offset: 10, Line: 3, Column: 2, Length: 4}},
		}},
	}
	for _, tc := range tests {
		var got []tokLoc
		s := jsonlint.NewScanner([]byte(tc.input), jsonlint.ModeCJSON.Dialect())
		for s.Next() == nil {
			got = append(got, tokLoc{s.Kind(), s.Location()})
		}
		if s.Err() != io.EOF {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", tc.input, diff)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},                        // missing quotes
		{`"missing quote`, ``, true},          // missing quotes
		{`missing quote"`, ``, true},          // missing quotes
		{`"mixed'`, ``, true},                 // mismatched quotes
		{`""`, ``, false},                     // ok
		{`''`, ``, false},                     // ok
		{`"ok go"`, "ok go", false},           // ok
		{`"abc\ndef"`, "abc\ndef", false},     // C escapes
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", false}, // C escapes
		{`"a \u0026 b"`, "a & b", false},      // short Unicode escape
		{`"\ud83d\ude00"`, "\xf0\x9f\x98\x80", false}, // surrogate pair
		{`"\u"`, ``, true},                    // incomplete Unicode escape
		{`"\u00"`, ``, true},                  // incomplete Unicode escape
		{`"\u00x9"`, "\xef\xbf\xbd", false},   // invalid Unicode escape
		{`"a\"b"`, `a"b`, false},              // ok
		{`"a\\b\\cd"`, `a\b\cd`, false},       // ok
		{`'it\'s'`, `it's`, false},            // JSON5 escapes
		{`"\x41\v\0"`, "A\v\x00", false},      // JSON5 escapes
		{"'a\\\nb'", "ab", false},             // line continuation
		{"'a\\\r\nb'", "ab", false},           // line continuation
		{`"\q"`, "q", false},                  // identity escape
	}

	for _, test := range tests {
		got, err := jsonlint.Unquote(test.input)
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if cmp := string(got); cmp != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, cmp, test.want)
		}
	}
}
