// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package printer formats JSON documents from their token streams.
//
// Because the printer works on tokens rather than on a value tree, it
// preserves comments and the exact spelling of numbers, and it can reproduce
// any document accepted by the dialect it was tokenized with. Only
// whitespace, and optionally quotation marks and trailing commas, change.
package printer

import (
	"strconv"
	"strings"

	"github.com/creachadair/jsonlint"
)

// Options control the layout produced by Print.
type Options struct {
	// Indent is the string used for each level of nesting. If empty, the
	// output is compact: no whitespace is added between tokens.
	Indent string

	PruneComments       bool // omit all comments
	StripObjectKeys     bool // unquote keys that are valid identifiers
	EnforceDoubleQuotes bool // quote all strings with "
	EnforceSingleQuotes bool // quote all strings with '
	TrimTrailingCommas  bool // omit commas before } and ]
	ExpandEmpty         bool // put a line break inside empty {} and []
	ForceCRLF           bool // end lines with CR LF instead of LF
}

// Check reports an error if o contains conflicting settings.
func (o Options) Check() error {
	if o.EnforceDoubleQuotes && o.EnforceSingleQuotes {
		return &jsonlint.ConfigError{
			Option:  "enforce-double-quotes",
			Message: "cannot be combined with enforce-single-quotes",
		}
	}
	return nil
}

// maxIndent is the largest number of spaces accepted by ParseIndent.
const maxIndent = 10

// ParseIndent converts an indentation setting into an indent string. A
// decimal number n denotes n spaces, up to 10. Any other value must consist
// of whitespace, and is used literally; the sequence \t denotes a tab.
func ParseIndent(s string) (string, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return "", &jsonlint.ConfigError{Option: "indent", Value: s, Message: "negative indentation"}
		}
		return strings.Repeat(" ", min(n, maxIndent)), nil
	}
	lit := strings.ReplaceAll(s, `\t`, "\t")
	if strings.Trim(lit, " \t") != "" {
		return "", &jsonlint.ConfigError{Option: "indent", Value: s, Message: "invalid indentation"}
	}
	return lit, nil
}

// Print formats the document described by tokens. The tokens must have been
// captured with their raw text and locations (see jsonlint.Tokenize). The
// output has no trailing line break.
func Print(tokens []jsonlint.Token, opts Options) string {
	p := &printer{opts: opts, tokens: tokens, eol: "\n"}
	if opts.ForceCRLF {
		p.eol = "\r\n"
	}
	p.print()
	return p.sb.String()
}

type printer struct {
	opts   Options
	tokens []jsonlint.Token
	eol    string
	sb     strings.Builder

	depth    int
	started  bool // some output has been written
	nl       bool // a line break is pending (indented output only)
	brk      bool // a line break is required (after a line comment)
	sp       bool // a space is pending
	lastLine int  // source line on which the last written token ended
}

func (p *printer) print() {
	for i := 0; i < len(p.tokens); i++ {
		tok := p.tokens[i]
		switch tok.Kind {
		case jsonlint.BlockComment, jsonlint.LineComment:
			p.comment(tok)
			continue

		case jsonlint.LBrace, jsonlint.LSquare:
			p.flush()
			p.write(tok.Raw)
			if j := p.nextSig(i); j < len(p.tokens) && isClose(p.tokens[j].Kind) &&
				(j == i+1 || p.opts.PruneComments) {
				// An empty object or array.
				if p.opts.ExpandEmpty && p.opts.Indent != "" {
					p.newline()
				}
				p.write(p.tokens[j].Raw)
				p.lastLine = endLine(p.tokens[j])
				i = j
				continue
			}
			p.depth++
			p.nl = true

		case jsonlint.RBrace, jsonlint.RSquare:
			p.depth--
			p.nl = true
			p.flush()
			p.write(tok.Raw)

		case jsonlint.Comma:
			if p.opts.TrimTrailingCommas {
				if j := p.nextSig(i); j < len(p.tokens) && isClose(p.tokens[j].Kind) {
					continue
				}
			}
			p.flush()
			p.write(tok.Raw)
			p.nl = true

		case jsonlint.Colon:
			p.flush()
			p.write(tok.Raw)
			p.sp = p.opts.Indent != ""

		case jsonlint.Key:
			p.flush()
			p.write(p.keyText(tok.Raw))

		case jsonlint.String:
			p.flush()
			p.write(p.stringText(tok.Raw))

		default:
			p.flush()
			p.write(tok.Raw)
		}
		p.lastLine = endLine(tok)
	}
}

// comment writes a comment token. A comment that began on the same source
// line as the preceding token stays on that line; any other comment is put
// on a line of its own.
func (p *printer) comment(tok jsonlint.Token) {
	if p.opts.PruneComments {
		return
	}
	text := p.commentText(tok.Raw)
	if p.opts.Indent == "" {
		p.flush()
		p.write(text)
	} else if p.started && tok.Location.Line == p.lastLine {
		p.sp = false
		p.write(" " + text)
	} else {
		if p.started {
			p.newline()
		}
		p.nl, p.sp = false, false
		p.write(text)
		p.nl = true
	}
	if tok.Kind == jsonlint.LineComment {
		p.brk = true
	} else if !p.nl {
		p.sp = p.opts.Indent != ""
	}
	p.lastLine = endLine(tok)
}

// commentText returns the text of a comment, with the continuation lines of
// a block comment aligned to the current indentation.
func (p *printer) commentText(raw string) string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = trimSpaceSuffix(line)
	}
	if len(lines) == 1 {
		return lines[0]
	}
	indent := strings.Repeat(p.opts.Indent, p.depth)
	tail := lines[1:]
	outdentLines(tail)
	lead := indent
	if allStarred(tail) {
		lead += " "
	}
	for i, line := range tail {
		if line != "" {
			tail[i] = lead + line
		}
	}
	return strings.Join(lines, p.eol)
}

// flush writes any pending whitespace.
func (p *printer) flush() {
	if !p.started {
		p.nl, p.brk, p.sp = false, false, false
		return
	}
	switch {
	case p.nl && p.opts.Indent != "", p.brk:
		p.newline()
	case p.sp:
		p.sb.WriteByte(' ')
	}
	p.nl, p.brk, p.sp = false, false, false
}

// newline writes a line break and the indentation for the current depth.
func (p *printer) newline() {
	p.sb.WriteString(p.eol)
	for range p.depth {
		p.sb.WriteString(p.opts.Indent)
	}
}

func (p *printer) write(s string) {
	p.sb.WriteString(s)
	p.started = true
}

// nextSig returns the index of the first non-comment token after i, or
// len(p.tokens) if there is none.
func (p *printer) nextSig(i int) int {
	for j := i + 1; j < len(p.tokens); j++ {
		if !p.tokens[j].Kind.IsComment() {
			return j
		}
	}
	return len(p.tokens)
}

func (p *printer) keyText(raw string) string {
	name := raw
	quoted := strings.HasPrefix(raw, `"`) || strings.HasPrefix(raw, `'`)
	if quoted {
		dec, err := jsonlint.Unquote(raw)
		if err != nil {
			return raw
		}
		name = string(dec)
	}
	switch {
	case p.opts.StripObjectKeys && isIdentifier(name):
		return name
	case p.opts.EnforceDoubleQuotes:
		return jsonlint.Quote(name)
	case p.opts.EnforceSingleQuotes:
		return jsonlint.QuoteSingle(name)
	}
	return raw
}

func (p *printer) stringText(raw string) string {
	if !p.opts.EnforceDoubleQuotes && !p.opts.EnforceSingleQuotes {
		return raw
	}
	dec, err := jsonlint.Unquote(raw)
	if err != nil {
		return raw
	}
	if p.opts.EnforceDoubleQuotes {
		return jsonlint.Quote(string(dec))
	}
	return jsonlint.QuoteSingle(string(dec))
}

func isClose(k jsonlint.Kind) bool { return k == jsonlint.RBrace || k == jsonlint.RSquare }

// endLine returns the source line on which tok ends.
func endLine(tok jsonlint.Token) int {
	n := strings.Count(tok.Raw, "\n")
	if n == 0 {
		n = strings.Count(tok.Raw, "\r")
	}
	return tok.Location.Line + n
}

// isIdentifier reports whether s can be written as a bare object key.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_' || c == '$':
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// trimSpaceSuffix removes whitespace from the suffix of s.
func trimSpaceSuffix(s string) string { return strings.TrimRight(s, " \t\r") }

// outdentLines removes from each line the longest run of leading blanks
// shared by all the non-empty lines.
func outdentLines(lines []string) {
	pfx := -1
	for _, line := range lines {
		if line == "" {
			continue
		}
		ns := len(line) - len(strings.TrimLeft(line, " \t"))
		if pfx < 0 || ns < pfx {
			pfx = ns
		}
	}
	for i, line := range lines {
		if line != "" {
			lines[i] = line[pfx:]
		}
	}
}

// allStarred reports whether every non-empty line begins with "*".
func allStarred(lines []string) bool {
	for _, line := range lines {
		if line != "" && !strings.HasPrefix(line, "*") {
			return false
		}
	}
	return true
}
