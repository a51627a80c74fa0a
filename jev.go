// Copyright (C) 2024 M. Fargo. All Rights Reserved.

package jev

import (
	"fmt"
	"io"

	"go4.org/mem"
)

// A Parser is a callback-driven JSON parser. Each field is an optional
// handler for one kind of parse event; nil fields are skipped. The
// zero value is a valid Parser that reports nothing and can be used to
// check syntax.
//
// Handlers may be replaced between calls to Parse, but must not be
// modified while a parse is in flight. A handler that panics is not
// caught by the parser; the panic propagates to the caller of Parse.
type Parser struct {
	// Structural events. Start events fire immediately after the
	// opening bracket is consumed, before any member or element is
	// parsed; stop events fire when the closing bracket is consumed.
	ObjectStart func()
	ObjectColon func()
	ObjectComma func()
	ObjectStop  func()
	ArrayStart  func()
	ArrayComma  func()
	ArrayStop   func()

	// Leaf values. String receives the decoded contents of a string
	// literal, without quotes and with all escapes resolved; the slice
	// is only valid for the duration of the call. String also fires
	// for object keys.
	String  func(data []byte)
	Number  func(n float64)
	Boolean func(v bool)
	Null    func()
}

// Parse checks that data contains exactly one JSON value, optionally
// surrounded by whitespace, and delivers events to the handlers of p
// as the input is consumed. Trailing non-whitespace data is an error.
// In case of error, the returned error has concrete type
// [*SyntaxError] and no further events are delivered.
func (p *Parser) Parse(data []byte) error { return p.parse(mem.B(data)) }

// ParseString is Parse for a string input.
func (p *Parser) ParseString(s string) error { return p.parse(mem.S(s)) }

// ParseReader reads r to completion and parses the result as Parse
// does. Errors reading r are returned as-is; the parser itself does no
// I/O.
func (p *Parser) ParseReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return p.Parse(data)
}

// Valid reports whether data is a single valid JSON value.
func Valid(data []byte) bool { return new(Parser).Parse(data) == nil }

func (p *Parser) parse(src mem.RO) (err error) {
	defer func() {
		// Syntax errors travel out of the grammar walkers by panic.
		// Anything else, including panics from handlers, is not ours
		// to catch.
		if v := recover(); v != nil {
			serr, ok := v.(*SyntaxError)
			if !ok {
				panic(v)
			}
			err = serr
		}
	}()

	s := &scan{src: src, end: src.Len(), p: p}
	s.parseValue()
	s.skipSpace()
	if s.pos != s.end {
		s.fail(s.pos, "unexpected %q after value", s.src.At(s.pos))
	}
	return nil
}

// SyntaxError is the concrete type of all parse errors reported by a
// Parser. Offset is the 0-based byte position of the first invalid
// character; an Offset equal to the input length means the input ended
// before the value was complete.
type SyntaxError struct {
	Offset  int
	Message string

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.Message)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }
