// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package diff compares texts line by line.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DefaultContext is the conventional number of context lines in a hunk.
const DefaultContext = 3

// A Hunk is a run of changed lines together with the unchanged lines around
// it. Line numbers are 1-based; a range of zero lines starts at the line
// preceding the change, as in the unified diff format.
type Hunk struct {
	OldStart, OldLines int
	NewStart, NewLines int

	// Lines are the lines of the hunk, each prefixed by " " (unchanged), "-"
	// (removed) or "+" (added). A line without a line break at the end of its
	// text is followed by the marker "\ No newline at end of file".
	Lines []string
}

// noEOL marks a line that does not end with a line break.
const noEOL = `\ No newline at end of file`

// Header returns the range line of h, "@@ -l,s +l,s @@".
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
}

// A line is one line of an edit script.
type line struct {
	op       byte // ' ', '-', '+'
	text     string
	eol      bool // the line ends with a line break
	old, new int  // 0-based line numbers in each text before this line
}

// Hunks returns the hunks that transform a into b, with the given number of
// unchanged context lines around each change. Changes separated by no more
// than twice that number of unchanged lines share a hunk. If a and b are
// equal, Hunks returns no hunks. A negative context is treated as zero.
func Hunks(a, b string, context int) []Hunk {
	if a == b {
		return nil
	}
	context = max(context, 0)
	script := editScript(a, b)

	var hunks []Hunk
	for i := 0; i < len(script); {
		for i < len(script) && script[i].op == ' ' {
			i++
		}
		if i == len(script) {
			break
		}
		start := max(i-context, 0)

		// Extend the hunk over all changes within reach of one another.
		j := i
		for {
			for j < len(script) && script[j].op != ' ' {
				j++
			}
			k := j
			for k < len(script) && script[k].op == ' ' {
				k++
			}
			if k == len(script) || k-j > 2*context {
				break
			}
			j = k
		}
		end := min(j+context, len(script))
		hunks = append(hunks, newHunk(script[start:end]))
		i = end
	}
	return hunks
}

func newHunk(lines []line) Hunk {
	h := Hunk{OldStart: lines[0].old + 1, NewStart: lines[0].new + 1}
	for _, ln := range lines {
		switch ln.op {
		case ' ':
			h.OldLines++
			h.NewLines++
		case '-':
			h.OldLines++
		case '+':
			h.NewLines++
		}
		h.Lines = append(h.Lines, string(ln.op)+ln.text)
		if !ln.eol {
			h.Lines = append(h.Lines, noEOL)
		}
	}
	if h.OldLines == 0 {
		h.OldStart--
	}
	if h.NewLines == 0 {
		h.NewStart--
	}
	return h
}

// editScript computes a line-by-line edit script from a to b.
func editScript(a, b string) []line {
	dmp := diffmatchpatch.New()
	ra, rb, lines := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(ra, rb, false), lines)

	var out []line
	var oldPos, newPos int
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			ln := line{
				text: strings.TrimSuffix(text, "\n"),
				eol:  strings.HasSuffix(text, "\n"),
				old:  oldPos,
				new:  newPos,
			}
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				ln.op = ' '
				oldPos++
				newPos++
			case diffmatchpatch.DiffDelete:
				ln.op = '-'
				oldPos++
			case diffmatchpatch.DiffInsert:
				ln.op = '+'
				newPos++
			}
			out = append(out, ln)
		}
	}
	return out
}

// splitLines splits s after each line break. Only the last line may lack a
// line break.
func splitLines(s string) []string {
	var out []string
	for s != "" {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			out = append(out, s)
			break
		}
		out = append(out, s[:i+1])
		s = s[i+1:]
	}
	return out
}

// Patch renders the differences between a and b as a unified diff, labelling
// the texts with the given names. It returns "" if a and b are equal.
func Patch(oldName, newName, a, b string, context int) string {
	hunks := Hunks(a, b, context)
	if len(hunks) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat("=", 67) + "\n")
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", oldName, newName)
	for _, h := range hunks {
		sb.WriteString(h.Header())
		sb.WriteByte('\n')
		for _, ln := range h.Lines {
			sb.WriteString(ln)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Summary describes a number of differing hunks, for example "2 hunks differ".
func Summary(n int) string {
	switch n {
	case 0:
		return "no difference"
	case 1:
		return "1 hunk differs"
	default:
		return fmt.Sprintf("%d hunks differ", n)
	}
}
