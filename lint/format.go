// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package lint

import "strings"

// FormatLoose reformats src without parsing it, so that the text of an
// invalid document can be laid out for diagnosis. Outside strings and
// comments, whitespace is discarded and line breaks with indentation are
// placed after opening brackets and commas and before closing brackets.
// The structure of src is not checked.
func FormatLoose(src []byte, indent string) string {
	f := &looseFormatter{indent: indent}
	s := string(src)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\'':
			j := stringEnd(s, i)
			f.emit(s[i:j])
			i = j - 1

		case '/':
			switch {
			case strings.HasPrefix(s[i:], "//"):
				j := strings.IndexAny(s[i:], "\r\n")
				if j < 0 {
					j = len(s) - i
				}
				f.emit(s[i : i+j])
				f.nl = true
				i += j - 1
			case strings.HasPrefix(s[i:], "/*"):
				j := strings.Index(s[i+2:], "*/")
				end := len(s)
				if j >= 0 {
					end = i + 2 + j + 2
				}
				f.emit(s[i:end])
				i = end - 1
			default:
				f.emit("/")
			}

		case '{', '[':
			closer := byte('}')
			if c == '[' {
				closer = ']'
			}
			if j := skipSpace(s, i+1); j < len(s) && s[j] == closer {
				f.emit(s[i:i+1] + string(closer))
				i = j
				continue
			}
			f.emit(string(c))
			f.depth++
			f.nl = true

		case '}', ']':
			f.depth = max(f.depth-1, 0)
			f.nl = true
			f.emit(string(c))

		case ',':
			f.emit(",")
			f.nl = true

		case ':':
			f.emit(": ")

		case ' ', '\t', '\n', '\r':
			// discard

		default:
			f.emit(s[i : i+1])
		}
	}
	return f.sb.String()
}

type looseFormatter struct {
	indent string
	depth  int
	nl     bool // a line break is pending
	sb     strings.Builder
}

func (f *looseFormatter) emit(s string) {
	if f.nl && f.sb.Len() != 0 {
		f.sb.WriteByte('\n')
		for range f.depth {
			f.sb.WriteString(f.indent)
		}
	}
	f.nl = false
	f.sb.WriteString(s)
}

// stringEnd returns the offset just past the end of the string literal that
// begins at s[i]. An unterminated string extends to the end of its line.
func stringEnd(s string, i int) int {
	q := s[i]
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case q:
			return j + 1
		case '\n', '\r':
			return j
		}
	}
	return len(s)
}

func skipSpace(s string, i int) int {
	for i < len(s) && strings.IndexByte(" \t\r\n", s[i]) >= 0 {
		i++
	}
	return i
}
