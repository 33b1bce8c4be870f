// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package laxjson implements a forgiving parser for JSON-like text.
//
// # Parsing
//
// The Parse function converts a string of text into a tree of ast.Value
// results:
//
//	v, err := laxjson.Parse(`{"name": "argus", "eyes": 100}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The grammar accepted is a lenient superset of JSON. Expected
// structural delimiters are consumed when present but their absence is
// tolerated: a missing colon, comma, closing brace, bracket, or
// quotation mark does not stop the parse, which instead produces the
// most reasonable partial structure for the input it found. Unquoted
// runs of alphanumeric characters ("barewords") are accepted wherever a
// string or keyword is expected, so that
//
//	{name: argus, alive: true,}
//
// parses to the same shape as its fully-quoted equivalent. A bareword
// that exactly matches "true", "false", or "null" denotes the
// corresponding constant; any other bareword denotes a string.
// An empty input denotes null.
//
// Quoted strings are taken verbatim: the parser performs no
// escape-sequence interpretation, and everything between the opening
// and closing quotation marks, including whitespace, is part of the
// string.
//
// # Errors
//
// Parse reports an error in exactly two cases: a numeric literal whose
// text cannot be converted to a 64-bit floating-point value (a
// *NumberError), and input whose container nesting exceeds the depth
// limit (ErrTooDeep). There is no fallback representation for a number,
// so inventing a value would silently corrupt data; every other
// malformation degrades gracefully instead of failing.
//
// No positions or line information are reported. A caller that needs
// strict validation with diagnostics should use a conforming JSON
// parser instead.
//
// # Parser settings
//
// Construct a Parser directly to adjust its settings before parsing:
//
//	p := laxjson.NewParser(input)
//	p.SetMaxDepth(64)
//	v, err := p.Parse()
//
// A Parser reads a single value from the front of its input and ignores
// whatever follows. It is good for one call to Parse.
package laxjson
