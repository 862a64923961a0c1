// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jsonlint implements a scanner and parser for JSON and two of its
// permissive relatives: JSON with comments ("cjson") and JSON5.
//
// # Dialects
//
// A Dialect selects the relaxations permitted beyond standard JSON. The Mode
// presets name common combinations:
//
//	d := jsonlint.ModeJSON5.Dialect()
//	d.NoDuplicateKeys = true
//
// # Scanning
//
// The Scanner type implements a lexical scanner. Construct a scanner from a
// byte slice and call its Next method to iterate over the tokens. Next
// advances to the next input token and returns nil, or reports an error:
//
//	s := jsonlint.NewScanner(input, d)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v at %v", s.Kind(), s.Location())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other error
// has concrete type *jsonlint.SyntaxError.
//
// # Streaming
//
// The Stream type implements an event-driven parser. The parser works by
// calling methods on a Handler value to report the structure of the input.
// In case of error, parsing is terminated and an error of concrete type
// *jsonlint.SyntaxError is returned.
//
//	s := jsonlint.NewStream(input, d)
//	if err := s.Parse(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The Handler interface accepts parser events from a Stream. The methods of
// a handler correspond to the syntax of JSON values:
//
//	JSON type  | Methods                   | Description
//	---------- | ------------------------- | ---------------------------------
//	object     | BeginObject, EndObject    | { ... }
//	array      | BeginArray, EndArray      | [ ... ]
//	member     | BeginMember, EndMember    | "key": value
//	value      | Value                     | true, false, null, number, string
//	--         | EndOfInput                | end of input
//
// A handler may also implement CommentHandler to receive comments, and
// TokenHandler to receive every token together with its path.
//
// # Documents
//
// Parse constructs a value tree (see package ast) from a document, and
// Tokenize returns its classified tokens, optionally with their raw text,
// locations and paths. Locate maps a JSON Pointer back to the location of a
// value in the source text.
package jsonlint
