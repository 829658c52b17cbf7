// Package token splits animation file text into words and numbers.
//
// Whitespace, the statement terminator ';' and '#' comments running to the end
// of line are insignificant between tokens. Every call returns its own copy of
// the token text.
package token

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	parse "github.com/tdewolff/parse/v2"
)

const (
	Terminator = ';'
	Comment    = '#'
	Quote      = '"'
	OpenBrace  = "{"
	CloseBrace = "}"
)

// ErrNotNumeric is returned when numeric literal was expected but something
// else was found.
var ErrNotNumeric = errors.New("not a numeric literal")

// Tokenizer reads tokens from the buffered input.
type Tokenizer struct {
	in *parse.Input
}

// New reads everything from r into memory and returns tokenizer for it.
func New(r io.Reader) *Tokenizer {
	return &Tokenizer{in: parse.NewInput(r)}
}

// NewBytes returns tokenizer over the provided data.
func NewBytes(data []byte) *Tokenizer {
	return &Tokenizer{in: parse.NewInputBytes(data)}
}

// Err returns read error, if any. End of input is not an error.
func (t *Tokenizer) Err() error {
	if err := t.in.Err(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Offset returns current position in the input.
func (t *Tokenizer) Offset() int {
	return t.in.Offset()
}

func (t *Tokenizer) atEnd() bool {
	return t.in.Err() != nil
}

// EOF reports whether only insignificant bytes are left.
func (t *Tokenizer) EOF() bool {
	t.Advance()
	return t.atEnd()
}

// Advance skips whitespace, terminators and comments stopping at the next
// significant byte.
func (t *Tokenizer) Advance() {
	for !t.atEnd() {
		switch c := t.in.Peek(0); c {
		case ' ', '\t', '\n', '\r', '\f', '\v', Terminator:
			t.in.Move(1)
		case Comment:
			for !t.atEnd() && t.in.Peek(0) != '\n' {
				t.in.Move(1)
			}
		default:
			t.in.Skip()
			return
		}
	}
	t.in.Skip()
}

// NextWord returns next token: body of a quoted string, a single brace or a run
// of bytes up to terminator or whitespace. Empty string is returned at the end
// of input.
func (t *Tokenizer) NextWord() string {
	return t.nextWord(false)
}

// NextWordWS is like NextWord but only terminator, line end or end of input
// stop unquoted word, so it may contain spaces.
func (t *Tokenizer) NextWordWS() string {
	return t.nextWord(true)
}

func (t *Tokenizer) nextWord(includeWS bool) string {
	t.Advance()
	if t.atEnd() {
		return ""
	}

	switch c := t.in.Peek(0); c {
	case Quote:
		t.in.Move(1)
		t.in.Skip()
		for !t.atEnd() && t.in.Peek(0) != Quote {
			t.in.Move(1)
		}
		word := string(t.in.Shift())
		if !t.atEnd() {
			// closing quote
			t.in.Move(1)
			t.in.Skip()
		}
		return word
	case '{', '}':
		t.in.Move(1)
		return string(t.in.Shift())
	}

	for !t.atEnd() {
		c := t.in.Peek(0)
		if c == Terminator || c == '\n' || c == '\r' {
			break
		}
		if !includeWS && (c == ' ' || c == '\t') {
			break
		}
		t.in.Move(1)
	}
	return string(bytes.TrimRight(t.in.Shift(), " \t"))
}

// Peek returns next significant byte without consuming it, 0 at the end of
// input.
func (t *Tokenizer) Peek() byte {
	t.Advance()
	if t.atEnd() {
		return 0
	}
	return t.in.Peek(0)
}

// PeekIsNumeric reports whether next significant byte may start a number.
func (t *Tokenizer) PeekIsNumeric() bool {
	t.Advance()
	if t.atEnd() {
		return false
	}
	c := t.in.Peek(0)
	return (c >= '0' && c <= '9') || c == '.' || c == '-'
}

// AtTerminator skips blanks on the current line and reports whether statement
// ends here (terminator, line end or end of input). Nothing else is consumed.
func (t *Tokenizer) AtTerminator() bool {
	for !t.atEnd() {
		c := t.in.Peek(0)
		if c != ' ' && c != '\t' {
			break
		}
		t.in.Move(1)
	}
	t.in.Skip()
	if t.atEnd() {
		return true
	}
	c := t.in.Peek(0)
	return c == Terminator || c == '\n' || c == '\r'
}

func (t *Tokenizer) numeric() []byte {
	t.Advance()
	for !t.atEnd() {
		c := t.in.Peek(0)
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
			t.in.Move(1)
			continue
		}
		break
	}
	return t.in.Shift()
}

// NextDouble reads floating point literal.
func (t *Tokenizer) NextDouble() (float64, error) {
	b := t.numeric()
	if len(b) == 0 {
		return 0, fmt.Errorf("offset %d: %w", t.in.Offset(), ErrNotNumeric)
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return v, fmt.Errorf("offset %d: %w", t.in.Offset(), err)
	}
	return v, nil
}

func (t *Tokenizer) nextInteger(bits int) (int64, error) {
	b := t.numeric()
	if len(b) == 0 {
		return 0, fmt.Errorf("offset %d: %w", t.in.Offset(), ErrNotNumeric)
	}
	v, err := strconv.ParseInt(string(b), 10, bits)
	if err != nil {
		// integers written as floating point values are accepted and truncated
		f, ferr := strconv.ParseFloat(string(b), 64)
		if ferr != nil {
			return 0, fmt.Errorf("offset %d: %w", t.in.Offset(), err)
		}
		return int64(f), nil
	}
	return v, nil
}

// NextInt reads 32 bit integer.
func (t *Tokenizer) NextInt() (int, error) {
	v, err := t.nextInteger(32)
	return int(v), err
}

// NextShort reads 16 bit integer.
func (t *Tokenizer) NextShort() (int16, error) {
	v, err := t.nextInteger(16)
	return int16(v), err
}

// NextChar reads 8 bit integer.
func (t *Tokenizer) NextChar() (int8, error) {
	v, err := t.nextInteger(8)
	return int8(v), err
}

// SkipLine consumes input up to and including end of the current line and
// returns consumed text.
func (t *Tokenizer) SkipLine() string {
	for !t.atEnd() {
		c := t.in.Peek(0)
		t.in.Move(1)
		if c == '\n' {
			break
		}
	}
	return string(t.in.Shift())
}

// Rest returns all remaining bytes verbatim. A single blank separating them
// from the previous word is dropped.
func (t *Tokenizer) Rest() []byte {
	if !t.atEnd() {
		if c := t.in.Peek(0); c == ' ' || c == '\t' {
			t.in.Move(1)
		}
	}
	t.in.Skip()
	for !t.atEnd() {
		t.in.Move(1)
	}
	return bytes.Clone(t.in.Shift())
}
