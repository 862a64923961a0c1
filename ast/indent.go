// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import "strings"

// Indent renders v as JSON text with each nesting level indented by the
// given indent string. Members and elements are placed on separate lines, and
// a space follows each key's colon. Empty objects and arrays are rendered as
// "{}" and "[]". If indent == "", Indent returns the compact form v.JSON().
func Indent(v Value, indent string) string {
	if indent == "" {
		return v.JSON()
	}
	var sb strings.Builder
	writeIndented(&sb, v, "\n", indent)
	return sb.String()
}

func writeIndented(sb *strings.Builder, v Value, nl, indent string) {
	switch t := v.(type) {
	case Object:
		if len(t) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteByte('{')
		inner := nl + indent
		for i, m := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(inner)
			sb.WriteString(quote(m.Key))
			sb.WriteString(": ")
			writeIndented(sb, m.Value, inner, indent)
		}
		sb.WriteString(nl)
		sb.WriteByte('}')
	case Array:
		if len(t) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteByte('[')
		inner := nl + indent
		for i, e := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(inner)
			writeIndented(sb, e, inner, indent)
		}
		sb.WriteString(nl)
		sb.WriteByte(']')
	default:
		sb.WriteString(v.JSON())
	}
}
