// Copyright (C) 2024 M. Fargo. All Rights Reserved.

// Package jev implements a callback-driven JSON parser.
//
// # Parsing
//
// A Parser validates a complete JSON document held in memory and, as a
// side effect of validation, reports the structure of the input by
// calling optional handler functions. Each handler slot corresponds to
// one kind of event: structural punctuation (object and array
// boundaries, colons, commas) or a decoded leaf value (string, number,
// boolean, null). Unset slots are skipped; a zero Parser is a pure
// validator.
//
//	var depth int
//	p := &jev.Parser{
//	   ObjectStart: func() { depth++ },
//	   ObjectStop:  func() { depth-- },
//	}
//	if err := p.Parse(data); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Parse returns nil if the input is exactly one valid JSON value,
// possibly surrounded by whitespace. Otherwise it returns an error of
// concrete type *jev.SyntaxError whose Offset field records the byte
// position of the first invalid character. Handlers already invoked
// before the failure are not rolled back; callers that need
// all-or-nothing semantics must discard partial results themselves
// (the ast subpackage does this when building value trees).
//
// # Events
//
// Handlers run synchronously on the calling goroutine, in document
// order. For a valid document the structural events are always
// balanced: every ObjectStart is matched by one ObjectStop at the same
// depth, and likewise for arrays.
//
//	JSON input  | Events
//	----------- | ---------------------------------------------------
//	{}          | ObjectStart, ObjectStop
//	{"a": 1}    | ObjectStart, String("a"), ObjectColon, Number(1),
//	            | ObjectStop
//	[true, ""]  | ArrayStart, Boolean(true), ArrayComma, String(""),
//	            | ArrayStop
//
// Object keys are delivered through the String handler like any other
// string value; the following ObjectColon distinguishes them.
//
// The data slice passed to the String handler is only valid for the
// duration of the call. A handler that needs to retain it must copy.
//
// # Concurrency
//
// A Parser holds no state between calls, so distinct Parser values are
// fully independent and may be used concurrently. A single Parser must
// not run two parses at once, and its handler slots must not be
// modified while a parse is in flight.
package jev
