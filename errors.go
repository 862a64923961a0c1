// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonlint

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SyntaxError is the concrete type of errors reported by the scanner and the
// stream parser.
type SyntaxError struct {
	Reason   string   // a short description of the problem
	Location Location // where the problem was found
	Excerpt  string   // the source line around the location
	Pointer  string   // a marker line pointing into Excerpt

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	if s.Excerpt == "" {
		return fmt.Sprintf("at %s: %s", s.Location, s.Reason)
	}
	return fmt.Sprintf("Parse error on line %d, column %d:\n%s\n%s\n%s",
		s.Location.Line, s.Location.Column, s.Excerpt, s.Pointer, s.Reason)
}

// Compact renders the error on a single line.
func (s *SyntaxError) Compact() string {
	return fmt.Sprintf("line %d, col %d, %s", s.Location.Line, s.Location.Column, s.Reason)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// newSyntaxError constructs a *SyntaxError for the given location in src.
func newSyntaxError(src []byte, loc Location, err error, reason string) *SyntaxError {
	excerpt, pointer := ErrorTexts(src, loc)
	return &SyntaxError{
		Reason:   reason,
		Location: loc,
		Excerpt:  excerpt,
		Pointer:  pointer,
		err:      err,
	}
}

// excerptWidth is the maximum number of characters shown on either side of
// an error location.
const excerptWidth = 40

// ErrorTexts returns a single-line excerpt of src around loc, and a pointer
// line of the form "-----^" marking the column of loc within the excerpt.
// If loc is not valid, both results are empty.
func ErrorTexts(src []byte, loc Location) (excerpt, pointer string) {
	if !loc.IsValid() || loc.Offset > len(src) {
		return "", ""
	}
	lo := loc.Offset
	for lo > 0 && src[lo-1] != '\n' && src[lo-1] != '\r' {
		lo--
	}
	hi := loc.Offset
	for hi < len(src) && src[hi] != '\n' && src[hi] != '\r' {
		hi++
	}
	before := []rune(string(src[lo:loc.Offset]))
	after := []rune(string(src[loc.Offset:hi]))

	var sb strings.Builder
	if len(before) > excerptWidth {
		before = append([]rune("..."), before[len(before)-excerptWidth:]...)
	}
	sb.WriteString(string(before))
	if len(after) > excerptWidth {
		sb.WriteString(string(after[:excerptWidth]))
		sb.WriteString("...")
	} else {
		sb.WriteString(string(after))
	}
	excerpt = strings.ReplaceAll(sb.String(), "\t", " ")
	pointer = strings.Repeat("-", len(before)) + "^"
	return excerpt, pointer
}

// locationAt computes the Location of the given byte offset in src, with the
// specified length. Columns count characters rather than bytes.
func locationAt(src []byte, offset, length int) Location {
	if offset > len(src) {
		offset = len(src)
	}
	line, lineStart := 1, 0
	for i := 0; i < offset; i++ {
		switch src[i] {
		case '\n':
			line++
			lineStart = i + 1
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				continue
			}
			line++
			lineStart = i + 1
		}
	}
	return Location{
		Offset: offset,
		Line:   line,
		Column: utf8.RuneCount(src[lineStart:offset]) + 1,
		Length: length,
	}
}
