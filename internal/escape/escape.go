// Copyright (C) 2024 M. Fargo. All Rights Reserved.

// Package escape handles decoding and encoding of JSON string
// contents, including the reassembly of UTF-16 surrogate pairs spelled
// as consecutive \u escapes.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// A Context accumulates the decoded contents of one string literal.
// It owns a growable output buffer and, between two consecutive \u
// escapes, at most one pending high surrogate awaiting its low half.
// A Context is not safe for concurrent use; Reset it before each new
// literal to reuse its buffer.
type Context struct {
	buf      []byte
	pending  uint16 // valid only when havePend is true
	havePend bool
}

// Reset discards the accumulated output and any pending surrogate.
func (c *Context) Reset() {
	c.buf = c.buf[:0]
	c.havePend = false
}

// PushByte appends one literal (unescaped) byte to the output. A
// pending high surrogate is flushed first, since a non-escape byte can
// never complete a pair.
func (c *Context) PushByte(b byte) {
	c.Flush()
	c.buf = append(c.buf, b)
}

// PushUnit receives one decoded \uXXXX code unit.
//
// A high surrogate (D800-DBFF) is held back until the next unit. If
// that unit is a low surrogate (DC00-DFFF) the two are combined into a
// single code point and encoded as UTF-8; otherwise the held unit is
// flushed unpaired and the new unit is processed on its own. Any unit
// outside the surrogate ranges is encoded immediately.
func (c *Context) PushUnit(u uint16) {
	if c.havePend {
		if isLowSurrogate(u) {
			r := 0x10000 + (rune(c.pending)-0xD800)<<10 + (rune(u) - 0xDC00)
			c.havePend = false
			c.buf = utf8.AppendRune(c.buf, r)
			return
		}
		c.Flush()
	}
	switch {
	case isHighSurrogate(u):
		c.pending, c.havePend = u, true
	case isLowSurrogate(u):
		// A low surrogate with no preceding high half is unpaired by
		// construction.
		c.buf = appendSurrogate(c.buf, u)
	default:
		c.buf = utf8.AppendRune(c.buf, rune(u))
	}
}

// Flush resolves a pending high surrogate, if any, by encoding it
// unpaired. It must be called before Bytes when the literal ends.
func (c *Context) Flush() {
	if c.havePend {
		c.buf = appendSurrogate(c.buf, c.pending)
		c.havePend = false
	}
}

// Bytes returns the decoded contents accumulated so far. The slice is
// only valid until the next call to Reset, PushByte or PushUnit.
func (c *Context) Bytes() []byte { return c.buf }

func isHighSurrogate(u uint16) bool { return u >= 0xD800 && u <= 0xDBFF }
func isLowSurrogate(u uint16) bool  { return u >= 0xDC00 && u <= 0xDFFF }

// appendSurrogate encodes an unpaired UTF-16 surrogate code unit as
// the raw three-byte sequence its code point would have in UTF-8 (the
// WTF-8 convention). The result is not valid UTF-8, but it is
// deterministic and preserves the unit, rather than dropping it or
// substituting a replacement rune.
func appendSurrogate(dst []byte, u uint16) []byte {
	return append(dst,
		0xE0|byte(u>>12),
		0x80|byte(u>>6)&0x3F,
		0x80|byte(u)&0x3F)
}

// Unquote decodes a byte span containing the contents of a JSON string
// literal, with the enclosing quotation marks already removed. The
// same escape rules apply as during parsing: control bytes below 0x20
// must be escaped, only the nine standard escapes are recognized, and
// surrogate pairs spelled as consecutive \u escapes are combined.
func Unquote(src mem.RO) ([]byte, error) {
	var c Context
	for i := 0; i < src.Len(); {
		b := src.At(i)
		switch {
		case b == '\\':
			n, err := unquoteEscape(&c, src, i)
			if err != nil {
				return nil, err
			}
			i += n
		case b < 0x20:
			return nil, fmt.Errorf("unescaped control character %q", b)
		default:
			c.PushByte(b)
			i++
		}
	}
	c.Flush()
	return c.Bytes(), nil
}

// unquoteEscape decodes the escape sequence starting at the backslash
// at src offset i, reporting the number of bytes consumed.
func unquoteEscape(c *Context, src mem.RO, i int) (int, error) {
	if i+1 >= src.Len() {
		return 0, errors.New("incomplete escape sequence")
	}
	switch b := src.At(i + 1); b {
	case '"', '\\', '/':
		c.PushByte(b)
	case 'b':
		c.PushByte('\b')
	case 'f':
		c.PushByte('\f')
	case 'n':
		c.PushByte('\n')
	case 'r':
		c.PushByte('\r')
	case 't':
		c.PushByte('\t')
	case 'u':
		if i+6 > src.Len() {
			return 0, errors.New("incomplete Unicode escape")
		}
		var v uint16
		for j := i + 2; j < i+6; j++ {
			d := hexVal(src.At(j))
			if d < 0 {
				return 0, fmt.Errorf("invalid hex digit %q", src.At(j))
			}
			v = v<<4 | uint16(d)
		}
		c.PushUnit(v)
		return 6, nil
	default:
		return 0, fmt.Errorf("invalid escape %q", b)
	}
	return 2, nil
}

func hexVal(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'f':
		return int(b-'a') + 10
	case 'A' <= b && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}
