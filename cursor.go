// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package laxjson

import "go4.org/mem"

// A Cursor is a lookahead-1 reader over a sequence of characters.
// The methods of a Cursor never fail; the end of the input is reported
// as an empty result.
type Cursor struct {
	rest mem.RO
	next rune
	size int // size in bytes of next; 0 when next is not loaded
}

// NewCursor constructs a Cursor that reads the characters of s.
func NewCursor(s string) *Cursor { return &Cursor{rest: mem.S(s)} }

// Peek reports the next available character without consuming it.
// Peek is idempotent: repeated calls without an intervening Next report
// the same character. The flag is false if no input remains.
func (c *Cursor) Peek() (rune, bool) {
	if c.size == 0 {
		if c.rest.Len() == 0 {
			return 0, false
		}
		c.next, c.size = mem.DecodeRune(c.rest)
		if c.size == 0 {
			c.size = 1 // decoding error; take a single byte
		}
	}
	return c.next, true
}

// Next returns and consumes the next available character.
// The flag is false if no input remains.
func (c *Cursor) Next() (rune, bool) {
	ch, ok := c.Peek()
	if ok {
		c.rest = c.rest.SliceFrom(c.size)
		c.size = 0
	}
	return ch, ok
}
