// Copyright (C) 2024 M. Fargo. All Rights Reserved.

package ast

import (
	"io"

	"github.com/mfargo/jev"
)

// Parse parses data as a single JSON value and returns its tree. In
// case of error no partial tree is returned; the error has concrete
// type [*jev.SyntaxError].
func Parse(data []byte) (Value, error) {
	b := new(builder)
	if err := b.parser().Parse(data); err != nil {
		return nil, err
	}
	return b.root, nil
}

// ParseString is Parse for a string input.
func ParseString(s string) (Value, error) {
	b := new(builder)
	if err := b.parser().ParseString(s); err != nil {
		return nil, err
	}
	return b.root, nil
}

// ParseReader reads r to completion and parses the result as Parse
// does.
func ParseReader(r io.Reader) (Value, error) {
	b := new(builder)
	if err := b.parser().ParseReader(r); err != nil {
		return nil, err
	}
	return b.root, nil
}

// A builder assembles a value tree from parse events. The stack holds
// one frame per open object or array; completed values reduce into the
// frame below them, and the last value standing is the root.
type builder struct {
	stk  []*frame
	root Value
}

type frame struct {
	obj *Object // set for object frames
	arr *Array  // set for array frames

	key     string // pending member key, valid when inValue
	inValue bool   // an object frame has seen its key and colon
}

// parser returns a jev.Parser wired to the builder's handlers.
func (b *builder) parser() *jev.Parser {
	return &jev.Parser{
		ObjectStart: b.beginObject,
		ObjectStop:  b.endObject,
		ArrayStart:  b.beginArray,
		ArrayStop:   b.endArray,
		String:      b.onString,
		Number:      func(n float64) { b.reduce(Number(n)) },
		Boolean:     func(v bool) { b.reduce(Bool(v)) },
		Null:        func() { b.reduce(Null{}) },
	}
}

func (b *builder) top() *frame { return b.stk[len(b.stk)-1] }

func (b *builder) beginObject() { b.stk = append(b.stk, &frame{obj: new(Object)}) }
func (b *builder) beginArray()  { b.stk = append(b.stk, &frame{arr: new(Array)}) }

func (b *builder) endObject() {
	f := b.top()
	b.stk = b.stk[:len(b.stk)-1]
	b.reduce(f.obj)
}

func (b *builder) endArray() {
	f := b.top()
	b.stk = b.stk[:len(b.stk)-1]
	b.reduce(f.arr)
}

// onString handles a string event, which is either an object key or a
// string value. The grammar guarantees that inside an object the first
// string of each member is the key; the member's value events arrive
// only after the colon.
func (b *builder) onString(data []byte) {
	if len(b.stk) != 0 {
		if f := b.top(); f.obj != nil && !f.inValue {
			f.key = string(data)
			f.inValue = true
			return
		}
	}
	b.reduce(String(data))
}

// reduce attaches a completed value to the enclosing container, or
// records it as the root when no container is open.
func (b *builder) reduce(v Value) {
	if len(b.stk) == 0 {
		b.root = v
		return
	}
	f := b.top()
	if f.obj != nil {
		f.obj.Members = append(f.obj.Members, &Member{Key: f.key, Value: v})
		f.inValue = false
		return
	}
	f.arr.Values = append(f.arr.Values, v)
}
