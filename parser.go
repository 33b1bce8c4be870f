// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package laxjson

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"github.com/creachadair/laxjson/ast"
)

// DefaultMaxDepth is the container nesting limit of a new Parser.
const DefaultMaxDepth = 1000

// ErrTooDeep is reported when the container nesting of the input
// exceeds the limit set by SetMaxDepth.
var ErrTooDeep = errors.New("nesting too deep")

// A NumberError reports a numeric literal whose text could not be
// converted to a 64-bit floating-point value. It is the only lexical
// failure a Parser reports; all other malformed input degrades to a
// best-effort value.
type NumberError struct {
	Text string // the reconstructed literal text
	err  error
}

// Error satisfies the error interface.
func (n *NumberError) Error() string {
	return fmt.Sprintf("invalid number %q: %v", n.Text, n.err)
}

// Unwrap supports error wrapping.
func (n *NumberError) Unwrap() error { return n.err }

// Parse parses a single value from the front of input using a Parser
// with default settings. Input remaining after the value is ignored.
func Parse(input string) (ast.Value, error) { return NewParser(input).Parse() }

// A Parser is a single-use recursive-descent parser over a character
// cursor. Each grammar production inspects one character of lookahead
// via the cursor to select the next production; no production ever
// needs to un-consume input, so the parse is a single forward pass.
type Parser struct {
	cs    *Cursor
	buf   bytes.Buffer // text of the current string or number literal
	limit int          // depth limit; unchecked if <= 0
	depth int          // current container nesting depth
}

// NewParser constructs a Parser reading from input, with its nesting
// limit set to DefaultMaxDepth.
func NewParser(input string) *Parser {
	return &Parser{cs: NewCursor(input), limit: DefaultMaxDepth}
}

// SetMaxDepth sets the container nesting depth at which parsing aborts
// with ErrTooDeep. If n <= 0 the depth is not checked, and deeply
// nested input grows the stack in proportion to its nesting.
func (p *Parser) SetMaxDepth(n int) { p.limit = n }

// Parse parses and returns a single value. The error is nil unless a
// malformed numeric literal was found (a *NumberError) or the nesting
// limit was exceeded (ErrTooDeep). Structurally malformed input does
// not cause an error; the result is a best-effort value built from
// whatever input was available.
func (p *Parser) Parse() (_ ast.Value, err error) {
	defer p.recoverFailure(&err)
	return p.parseElement(), nil
}

// parseElement parses one value together with its surrounding
// whitespace, and consumes a trailing comma if one is present.
func (p *Parser) parseElement() ast.Value {
	p.skipSpace()
	v := p.parseValue()
	p.skipSpace()
	p.consume(',')
	return v
}

// parseValue dispatches on one character of lookahead to exactly one
// grammar production, without consuming the character here. Exhausted
// input denotes null.
func (p *Parser) parseValue() ast.Value {
	ch, ok := p.cs.Peek()
	if !ok {
		return ast.Null
	}
	switch {
	case ch == '{':
		return p.parseObject()
	case ch == '[':
		return p.parseArray()
	case ch == '"':
		return ast.String(p.parseString())
	case ch == '-' || isDigit(ch):
		return ast.Number(p.parseNumber())
	default:
		switch word := p.parseKeyword(); word {
		case "true":
			return ast.Bool(true)
		case "false":
			return ast.Bool(false)
		case "null":
			return ast.Null
		default:
			return ast.String(word)
		}
	}
}

// parseObject parses a {...} object. The loop ends only on exhausted
// input or a closing brace, so an unterminated object yields the
// members found before the input ran out. Duplicate keys overwrite;
// the last occurrence wins.
func (p *Parser) parseObject() ast.Object {
	p.push()
	defer p.pop()

	obj := ast.Object{}
	p.consume('{')
	for {
		p.skipSpace()
		ch, ok := p.cs.Peek()
		if !ok || ch == '}' {
			break
		}
		key, value := p.parseMember()
		obj = obj.Set(key, value)
	}
	p.consume('}')
	return obj
}

// parseMember parses a single "key": value member. The colon and any
// trailing comma are consumed only if present.
func (p *Parser) parseMember() (string, ast.Value) {
	p.skipSpace()
	key := p.parseString()
	p.skipSpace()
	p.consume(':')
	value := p.parseElement()
	p.consume(',')
	return key, value
}

// parseArray parses a [...] array, preserving the order of its
// elements. Termination mirrors parseObject with "]" in place of "}".
func (p *Parser) parseArray() ast.Array {
	p.push()
	defer p.pop()

	arr := ast.Array{}
	p.consume('[')
	for {
		p.skipSpace()
		ch, ok := p.cs.Peek()
		if !ok || ch == ']' {
			break
		}
		arr = append(arr, p.parseElement())
	}
	p.consume(']')
	return arr
}

// parseString parses a string in one of two modes. A leading quotation
// mark selects quoted mode, where every character up to the closing
// quotation mark is taken verbatim, whitespace and escape sequences
// included. Otherwise bareword mode takes a maximal run of
// alphanumeric characters. A trailing quotation mark is consumed in
// either mode if present.
func (p *Parser) parseString() string {
	p.buf.Reset()
	quoted := p.consume('"')
	for {
		ch, ok := p.cs.Peek()
		if !ok {
			break
		}
		if quoted {
			if ch == '"' {
				break
			}
		} else if !isWord(ch) {
			break
		}
		p.buf.WriteRune(ch)
		p.cs.Next()
	}
	p.consume('"')
	return p.buf.String()
}

// parseNumber reconstructs the text of a numeric literal and converts
// it to a float64. Each piece of the literal is optional and is taken
// independently: a leading sign, integer digits, a decimal point with
// fraction digits, an exponent marker (normalized to lowercase "e"),
// an exponent sign, and exponent digits. There is no fallback
// representation for a number, so text that does not convert is fatal.
func (p *Parser) parseNumber() float64 {
	p.buf.Reset()
	if p.consume('-') {
		p.buf.WriteByte('-')
	}
	p.digits()
	if p.consume('.') {
		p.buf.WriteByte('.')
	}
	p.digits()
	if ch, ok := p.cs.Peek(); ok && (ch == 'e' || ch == 'E') {
		p.buf.WriteByte('e')
		p.cs.Next()
	}
	if ch, ok := p.cs.Peek(); ok && (ch == '-' || ch == '+') {
		p.buf.WriteRune(ch)
		p.cs.Next()
	}
	p.digits()

	text := p.buf.String()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.fail(&NumberError{Text: text, err: err})
	}
	return v
}

// parseKeyword consumes a maximal run of alphanumeric characters after
// any leading whitespace, and returns its text, which may be empty.
func (p *Parser) parseKeyword() string {
	p.buf.Reset()
	p.skipSpace()
	for {
		ch, ok := p.cs.Peek()
		if !ok || !isWord(ch) {
			break
		}
		p.buf.WriteRune(ch)
		p.cs.Next()
	}
	return p.buf.String()
}

// skipSpace consumes whitespace and control characters, which are
// insignificant everywhere outside a quoted string.
func (p *Parser) skipSpace() {
	for {
		ch, ok := p.cs.Peek()
		if !ok || !(unicode.IsSpace(ch) || unicode.IsControl(ch)) {
			return
		}
		p.cs.Next()
	}
}

// digits appends a maximal run of ASCII digits to the token buffer.
func (p *Parser) digits() {
	for {
		ch, ok := p.cs.Peek()
		if !ok || !isDigit(ch) {
			return
		}
		p.buf.WriteRune(ch)
		p.cs.Next()
	}
}

// consume advances past the next character and reports true if it
// equals want; otherwise it consumes nothing. Productions use consume
// for expected delimiters, whose absence is tolerated.
func (p *Parser) consume(want rune) bool {
	if ch, ok := p.cs.Peek(); ok && ch == want {
		p.cs.Next()
		return true
	}
	return false
}

// push records entry into a container and enforces the depth limit.
func (p *Parser) push() {
	p.depth++
	if p.limit > 0 && p.depth > p.limit {
		p.fail(ErrTooDeep)
	}
}

func (p *Parser) pop() { p.depth-- }

// A parseFailure carries a fatal condition out of the production stack.
// It is recovered in Parse; no partial value is returned alongside it.
type parseFailure struct{ error }

func (p *Parser) fail(err error) { panic(parseFailure{err}) }

func (p *Parser) recoverFailure(errp *error) {
	if v := recover(); v != nil {
		f, ok := v.(parseFailure)
		if !ok {
			panic(v)
		}
		*errp = f.error
	}
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

// isWord reports whether ch may occur in a bareword.
func isWord(ch rune) bool { return unicode.IsLetter(ch) || unicode.IsDigit(ch) }
