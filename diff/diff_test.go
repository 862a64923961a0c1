// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package diff_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jsonlint/diff"
	"github.com/google/go-cmp/cmp"
)

func numbered(edit map[int]string) string {
	var sb strings.Builder
	for i := 1; i <= 10; i++ {
		if s, ok := edit[i]; ok {
			sb.WriteString(s + "\n")
		} else {
			sb.WriteString(strings.Repeat(string(rune('0'+i%10)), 2) + "\n")
		}
	}
	return sb.String()
}

func TestHunks(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		context int
		want    []diff.Hunk
	}{
		{"Equal", "a\nb\n", "a\nb\n", 3, nil},
		{"Change", "a\nb\nc\n", "a\nB\nc\n", 3, []diff.Hunk{{
			OldStart: 1, OldLines: 3, NewStart: 1, NewLines: 3,
			Lines: []string{" a", "-b", "+B", " c"},
		}}},
		{"NoContext", "a\nb\nc\n", "a\nB\nc\n", 0, []diff.Hunk{{
			OldStart: 2, OldLines: 1, NewStart: 2, NewLines: 1,
			Lines: []string{"-b", "+B"},
		}}},
		{"Separate", numbered(nil), numbered(map[int]string{2: "x", 9: "y"}), 1, []diff.Hunk{{
			OldStart: 1, OldLines: 3, NewStart: 1, NewLines: 3,
			Lines: []string{" 11", "-22", "+x", " 33"},
		}, {
			OldStart: 8, OldLines: 3, NewStart: 8, NewLines: 3,
			Lines: []string{" 88", "-99", "+y", " 00"},
		}}},
		{"Joined", numbered(nil), numbered(map[int]string{2: "x", 9: "y"}), 3, []diff.Hunk{{
			OldStart: 1, OldLines: 10, NewStart: 1, NewLines: 10,
			Lines: []string{
				" 11", "-22", "+x", " 33", " 44", " 55", " 66", " 77", " 88", "-99", "+y", " 00",
			},
		}}},
		{"NoNewline", "x\n", "x", 3, []diff.Hunk{{
			OldStart: 1, OldLines: 1, NewStart: 1, NewLines: 1,
			Lines: []string{"-x", "+x", `\ No newline at end of file`},
		}}},
		{"Insert", "", "a\n", 3, []diff.Hunk{{
			OldStart: 0, OldLines: 0, NewStart: 1, NewLines: 1,
			Lines: []string{"+a"},
		}}},
		{"Delete", "a\nb\n", "a\n", 3, []diff.Hunk{{
			OldStart: 1, OldLines: 2, NewStart: 1, NewLines: 1,
			Lines: []string{" a", "-b"},
		}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := diff.Hunks(test.a, test.b, test.context)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Hunks (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestPatch(t *testing.T) {
	if got := diff.Patch("a", "b", "same\n", "same\n", 3); got != "" {
		t.Errorf("Patch equal: got %q, want empty", got)
	}

	got := diff.Patch("x.json.orig", "x.json", "{\n\"a\":1}\n", "{\n  \"a\": 1\n}\n", 3)
	want := strings.Repeat("=", 67) + `
--- x.json.orig
+++ x.json
@@ -1,2 +1,3 @@
 {
-"a":1}
+  "a": 1
+}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Patch (-want, +got):\n%s", diff)
	}
}

func TestSummary(t *testing.T) {
	for n, want := range []string{"no difference", "1 hunk differs", "2 hunks differ", "3 hunks differ"} {
		if got := diff.Summary(n); got != want {
			t.Errorf("Summary(%d): got %q, want %q", n, got, want)
		}
	}
}
