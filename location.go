// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonlint

import "fmt"

// A Location describes the position and extent of a token in source text.
type Location struct {
	Offset int // the start offset in bytes, 0-based
	Line   int // line number, 1-based
	Column int // column in characters, 1-based
	Length int // length in bytes
}

// End returns the offset one past the last byte of the location.
func (l Location) End() int { return l.Offset + l.Length }

// IsValid reports whether l describes an actual source position.
func (l Location) IsValid() bool { return l.Line > 0 }

func (l Location) String() string {
	if !l.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// A LineCol describes the line number and column of a position in source
// text. Both are 1-based; columns count characters.
type LineCol struct {
	Line   int
	Column int
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }
