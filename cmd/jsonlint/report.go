// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/creachadair/jsonlint/diff"
	"github.com/creachadair/jsonlint/lint"
	"github.com/fatih/color"
)

// stdinName is the name reported for a document read from standard input.
const stdinName = "<stdin>"

// A reporter writes the outcome of processing each file.
type reporter struct {
	out    io.Writer // results, file names and patches
	errOut io.Writer // diagnostics
	colors *palette  // nil for plain output

	context  int
	compact  bool
	quiet    bool
	logFiles bool
	inPlace  bool
	check    bool
	diff     bool

	separate bool // a block was reported; put a blank line before the next
	failed   bool // some file failed
}

// report writes the outcome of one file. It returns false if the outcome is
// a failure.
func (r *reporter) report(o lint.Outcome) bool {
	if r.logFiles && !(r.compact || r.check || r.diff) {
		fmt.Fprintln(r.out, o.Name)
	}
	if o.Err != nil {
		r.reportError(o.Name, o.Err)
		if o.Result != nil {
			fmt.Fprintln(r.out, trimLineBreak(o.Result.Output))
		}
		return false
	}

	res := o.Result
	switch {
	case r.inPlace && o.Name != stdinName:
		if r.logFiles && r.compact {
			fmt.Fprintln(r.out, o.Name)
		}
		if err := writeFile(o.Name, res.Output); err != nil {
			r.reportError(o.Name, err)
			return false
		}
	case r.check:
		return r.checkResult(res)
	case r.diff:
		r.diffResult(res)
	default:
		if !(r.quiet || r.logFiles) {
			fmt.Fprintln(r.out, trimLineBreak(res.Output))
		}
	}
	return true
}

// compacter is implemented by errors that can be rendered on one line.
type compacter interface {
	Compact() string
}

func (r *reporter) reportError(name string, err error) {
	r.failed = true
	if r.compact {
		msg := err.Error()
		var c compacter
		if errors.As(err, &c) {
			msg = c.Compact()
		}
		fmt.Fprintf(r.errOut, "%s: %s.\n", name, strings.TrimSuffix(msg, "."))
		return
	}
	r.startBlock(name)
	fmt.Fprintln(r.errOut, err)
}

func (r *reporter) checkResult(res *lint.Result) bool {
	hunks := res.Check(r.context)
	if len(hunks) == 0 {
		r.noDifference(res.Name)
		return true
	}
	r.failed = true
	msg := diff.Summary(len(hunks))
	if r.compact {
		fmt.Fprintf(r.errOut, "%s: %s\n", res.Name, msg)
	} else {
		r.startBlock(res.Name)
		fmt.Fprintln(r.errOut, msg)
	}
	if !r.quiet {
		r.colors.write(r.out, res.Diff(r.context))
	}
	return false
}

func (r *reporter) diffResult(res *lint.Result) {
	if r.quiet || r.compact {
		if n := len(res.Check(r.context)); n != 0 {
			fmt.Fprintf(r.out, "%s: %s\n", res.Name, diff.Summary(n))
		} else {
			r.noDifference(res.Name)
		}
		return
	}
	if patch := res.Diff(r.context); patch != "" {
		r.startBlock(res.Name)
		fmt.Fprint(r.out, patch)
	} else {
		r.noDifference(res.Name)
	}
}

func (r *reporter) noDifference(name string) {
	if r.compact {
		fmt.Fprintf(r.out, "%s: %s\n", name, diff.Summary(0))
	} else if r.logFiles {
		fmt.Fprintln(r.out, name)
	}
}

// startBlock writes the heading of a multi-line report about name.
func (r *reporter) startBlock(name string) {
	if r.separate {
		fmt.Fprintln(r.out)
	}
	r.separate = true
	fmt.Fprintln(r.out, "File:", name)
}

// writeFile replaces the contents of the named file, keeping its permissions.
func writeFile(name, text string) error {
	fi, err := os.Stat(name)
	if err != nil {
		return err
	}
	return os.WriteFile(name, []byte(text), fi.Mode().Perm())
}

// trimLineBreak removes one trailing line break from s.
func trimLineBreak(s string) string {
	if t, ok := strings.CutSuffix(s, "\n"); ok {
		return strings.TrimSuffix(t, "\r")
	}
	return s
}

// A palette colors the lines of a patch.
type palette struct {
	meta, comment, added, deleted *color.Color
}

func newPalette() *palette {
	mk := func(a color.Attribute) *color.Color {
		c := color.New(a)
		c.EnableColor()
		return c
	}
	return &palette{
		meta:    mk(color.FgBlue),
		comment: mk(color.FgHiBlack),
		added:   mk(color.FgGreen),
		deleted: mk(color.FgRed),
	}
}

var hunkHeader = regexp.MustCompile(`^@@ +-\d+(,\d+)? +\+\d+(,\d+)? +@@`)

// write writes patch to w, coloring each line by its role. A nil palette
// writes the patch unchanged.
func (p *palette) write(w io.Writer, patch string) {
	if p == nil {
		fmt.Fprint(w, patch)
		return
	}
	for _, line := range strings.SplitAfter(patch, "\n") {
		if line == "" {
			continue
		}
		text, eol := strings.CutSuffix(line, "\n")
		var c *color.Color
		switch {
		case hunkHeader.MatchString(text):
			c = p.meta
		case strings.Contains(text, "==="), strings.HasPrefix(text, "---"), strings.HasPrefix(text, "+++"):
			c = p.comment
		case strings.HasPrefix(text, "+"):
			c = p.added
		case strings.HasPrefix(text, "-"):
			c = p.deleted
		}
		if c != nil {
			text = c.Sprint(text)
		}
		io.WriteString(w, text)
		if eol {
			io.WriteString(w, "\n")
		}
	}
}

// useColor reports whether diff output should be colored, given the color
// setting (nil if unset), an environment lookup and whether the output is a
// terminal.
func useColor(setting *bool, getenv func(string) string, isTerminal bool) bool {
	if getenv("NO_COLOR") != "" || (setting != nil && !*setting) ||
		getenv("CI") != "" || getenv("TERM") == "dumb" {
		return false
	}
	return getenv("FORCE_COLOR") != "" || (setting != nil && *setting) || isTerminal
}
