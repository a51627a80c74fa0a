// Copyright (C) 2024 M. Fargo. All Rights Reserved.

// Package ast defines an in-memory representation of JSON values, a
// parser that builds values out of the jev event stream, and writers
// that render values back to JSON text.
package ast

// A Value is an arbitrary JSON value.
type Value interface{ isValue() }

// An Object is an ordered collection of key-value members. The parser
// preserves document order and keeps duplicate keys; Find resolves a
// duplicate to its first occurrence.
type Object struct {
	Members []*Member
}

func (*Object) isValue() {}

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// An Array is an ordered sequence of values.
type Array struct {
	Values []Value
}

func (*Array) isValue() {}

// A String is a string value, fully decoded.
type String string

func (String) isValue() {}

// A Number is a numeric value.
type Number float64

func (Number) isValue() {}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) isValue() {}

// Null represents the null constant.
type Null struct{}

func (Null) isValue() {}
