// Copyright (C) 2024 M. Fargo. All Rights Reserved.

package jev

import (
	"fmt"
	"strconv"

	"go4.org/mem"

	"github.com/mfargo/jev/internal/escape"
)

// A scan holds the transient state of one parse: the input span, the
// cursor, and the decode context for the string literal currently
// being read. Invariant: pos <= end, and nothing past end is ever
// read.
type scan struct {
	src mem.RO
	pos int
	end int
	p   *Parser
	dec escape.Context
}

// fail aborts the parse with a syntax error positioned at off.
func (s *scan) fail(off int, msg string, args ...any) {
	panic(&SyntaxError{Offset: off, Message: fmt.Sprintf(msg, args...)})
}

// emit invokes a no-argument handler slot, if set.
func (s *scan) emit(f func()) {
	if f != nil {
		f()
	}
}

// skipSpace consumes zero or more whitespace characters. Only space,
// tab, line feed and carriage return are JSON whitespace.
func (s *scan) skipSpace() {
	for s.pos < s.end {
		switch s.src.At(s.pos) {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

// parseValue consumes a single value of any type, skipping leading
// whitespace. The next production is chosen by the first
// non-whitespace character alone; no backtracking is ever needed.
func (s *scan) parseValue() {
	s.skipSpace()
	if s.pos == s.end {
		s.fail(s.end, "unexpected end of input")
	}
	switch b := s.src.At(s.pos); {
	case b == '{':
		s.parseObject()
	case b == '[':
		s.parseArray()
	case b == '"':
		s.parseString()
	case b == 't':
		s.parseLiteral("true")
		if f := s.p.Boolean; f != nil {
			f(true)
		}
	case b == 'f':
		s.parseLiteral("false")
		if f := s.p.Boolean; f != nil {
			f(false)
		}
	case b == 'n':
		s.parseLiteral("null")
		s.emit(s.p.Null)
	case b == '-' || isDigit(b):
		s.parseNumber()
	default:
		s.fail(s.pos, "unexpected %q", b)
	}
}

// parseObject consumes an object.
// Precondition: the cursor is at "{".
func (s *scan) parseObject() {
	s.pos++ // "{"
	s.emit(s.p.ObjectStart)
	s.skipSpace()
	if s.pos < s.end && s.src.At(s.pos) == '}' {
		s.pos++
		s.emit(s.p.ObjectStop)
		return
	}
	for {
		// One member: "key" : value
		s.skipSpace()
		s.parseString()
		s.skipSpace()
		if s.pos == s.end {
			s.fail(s.end, "unexpected end of input in object")
		} else if s.src.At(s.pos) != ':' {
			s.fail(s.pos, `expected ":", got %q`, s.src.At(s.pos))
		}
		s.pos++ // ":"
		s.emit(s.p.ObjectColon)
		s.parseValue()

		// More members (",") or end of object ("}").
		s.skipSpace()
		if s.pos == s.end {
			s.fail(s.end, "unexpected end of input in object")
		}
		switch b := s.src.At(s.pos); b {
		case ',':
			s.pos++
			s.emit(s.p.ObjectComma)
		case '}':
			s.pos++
			s.emit(s.p.ObjectStop)
			return
		default:
			s.fail(s.pos, `expected "," or "}", got %q`, b)
		}
	}
}

// parseArray consumes an array.
// Precondition: the cursor is at "[".
func (s *scan) parseArray() {
	s.pos++ // "["
	s.emit(s.p.ArrayStart)
	s.skipSpace()
	if s.pos < s.end && s.src.At(s.pos) == ']' {
		s.pos++
		s.emit(s.p.ArrayStop)
		return
	}
	for {
		s.parseValue()

		// More elements (",") or end of array ("]").
		s.skipSpace()
		if s.pos == s.end {
			s.fail(s.end, "unexpected end of input in array")
		}
		switch b := s.src.At(s.pos); b {
		case ',':
			s.pos++
			s.emit(s.p.ArrayComma)
		case ']':
			s.pos++
			s.emit(s.p.ArrayStop)
			return
		default:
			s.fail(s.pos, `expected "," or "]", got %q`, b)
		}
	}
}

// parseString consumes a string literal and delivers its decoded
// contents to the String handler. The decode context accumulates the
// output; escapes, including UTF-16 surrogate pairs split across two
// \u sequences, are resolved as they are read.
func (s *scan) parseString() {
	if s.pos == s.end {
		s.fail(s.end, "expected string")
	} else if s.src.At(s.pos) != '"' {
		s.fail(s.pos, "expected string, got %q", s.src.At(s.pos))
	}
	s.pos++ // open quote
	s.dec.Reset()
	for {
		if s.pos == s.end {
			s.fail(s.end, "unterminated string")
		}
		switch b := s.src.At(s.pos); {
		case b == '"':
			s.pos++ // close quote
			s.dec.Flush()
			if f := s.p.String; f != nil {
				f(s.dec.Bytes())
			}
			return
		case b == '\\':
			s.parseEscape()
		case b < 0x20:
			s.fail(s.pos, "unescaped control character %q in string", b)
		default:
			// Any other byte passes through undecoded, including the
			// continuation bytes of multibyte UTF-8 sequences.
			s.dec.PushByte(b)
			s.pos++
		}
	}
}

// parseEscape consumes one escape sequence.
// Precondition: the cursor is at the backslash.
func (s *scan) parseEscape() {
	esc := s.pos
	s.pos++ // backslash
	if s.pos == s.end {
		s.fail(s.end, "unterminated escape sequence")
	}
	b := s.src.At(s.pos)
	switch b {
	case '"', '\\', '/':
		s.dec.PushByte(b)
	case 'b':
		s.dec.PushByte('\b')
	case 'f':
		s.dec.PushByte('\f')
	case 'n':
		s.dec.PushByte('\n')
	case 'r':
		s.dec.PushByte('\r')
	case 't':
		s.dec.PushByte('\t')
	case 'u':
		s.pos++ // "u"
		s.dec.PushUnit(s.readHex4())
		return
	default:
		s.fail(esc, "invalid escape %q", b)
	}
	s.pos++
}

// readHex4 consumes exactly four hexadecimal digits and returns their
// value as a UTF-16 code unit.
func (s *scan) readHex4() uint16 {
	var v uint16
	for i := 0; i < 4; i++ {
		if s.pos == s.end {
			s.fail(s.end, "truncated Unicode escape")
		}
		d := hexVal(s.src.At(s.pos))
		if d < 0 {
			s.fail(s.pos, "invalid hex digit %q in Unicode escape", s.src.At(s.pos))
		}
		v = v<<4 | uint16(d)
		s.pos++
	}
	return v
}

// parseNumber consumes a number and delivers its value to the Number
// handler. The grammar is exactly that of the JSON spec: an optional
// minus sign, an integer part with no redundant leading zeroes, an
// optional fraction, an optional exponent.
func (s *scan) parseNumber() {
	start := s.pos
	if s.src.At(s.pos) == '-' {
		s.pos++
	}

	// Integer part: "0" alone, or a nonzero digit followed by digits.
	if s.pos == s.end {
		s.fail(s.end, "expected digit")
	}
	switch b := s.src.At(s.pos); {
	case b == '0':
		s.pos++
		if s.pos < s.end && isDigit(s.src.At(s.pos)) {
			s.fail(s.pos, "extra leading zero")
		}
	case isDigit(b):
		for s.pos < s.end && isDigit(s.src.At(s.pos)) {
			s.pos++
		}
	default:
		s.fail(s.pos, "expected digit, got %q", b)
	}

	// Fraction.
	if s.pos < s.end && s.src.At(s.pos) == '.' {
		s.pos++
		s.digits("after decimal point")
	}

	// Exponent.
	if s.pos < s.end && (s.src.At(s.pos) == 'e' || s.src.At(s.pos) == 'E') {
		s.pos++
		if s.pos < s.end && (s.src.At(s.pos) == '+' || s.src.At(s.pos) == '-') {
			s.pos++
		}
		s.digits("in exponent")
	}

	// The matched range is grammatically a number; conversion can
	// still fail on range, which fails the parse at the number's
	// first byte.
	text := s.src.SliceFrom(start).SliceTo(s.pos - start).StringCopy()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		panic(&SyntaxError{Offset: start, Message: "invalid number " + text, err: err})
	}
	if f := s.p.Number; f != nil {
		f(v)
	}
}

// digits consumes one or more decimal digits, failing at the cursor if
// none are present.
func (s *scan) digits(label string) {
	if s.pos == s.end || !isDigit(s.src.At(s.pos)) {
		s.fail(s.pos, "expected digit %s", label)
	}
	for s.pos < s.end && isDigit(s.src.At(s.pos)) {
		s.pos++
	}
}

// parseLiteral consumes an exact keyword match, failing at the first
// byte that differs.
func (s *scan) parseLiteral(want string) {
	for i := 0; i < len(want); i++ {
		if s.pos == s.end {
			s.fail(s.end, "truncated %q", want)
		} else if s.src.At(s.pos) != want[i] {
			s.fail(s.pos, "expected %q", want)
		}
		s.pos++
	}
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

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
