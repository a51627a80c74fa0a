// Copyright (C) 2024 M. Fargo. All Rights Reserved.

package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mfargo/jev"
)

// Write renders v to w as compact JSON text, with no whitespace
// between tokens.
func Write(w io.Writer, v Value) error {
	_, err := io.WriteString(w, Text(v))
	return err
}

// WriteIndent renders v to w as indented JSON text. Each line begins
// with prefix; each nesting level adds one copy of indent.
func WriteIndent(w io.Writer, v Value, prefix, indent string) error {
	var sb strings.Builder
	sb.WriteString(prefix)
	indentValue(&sb, v, prefix, indent)
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// Text renders v as a compact JSON string.
func Text(v Value) string {
	var sb strings.Builder
	writeValue(&sb, v)
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value) {
	switch t := v.(type) {
	case *Object:
		sb.WriteString("{")
		for i, m := range t.Members {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(jev.Quote(m.Key))
			sb.WriteString(":")
			writeValue(sb, m.Value)
		}
		sb.WriteString("}")
	case *Array:
		sb.WriteString("[")
		for i, e := range t.Values {
			if i > 0 {
				sb.WriteString(",")
			}
			writeValue(sb, e)
		}
		sb.WriteString("]")
	case String:
		sb.WriteString(jev.Quote(string(t)))
	case Number:
		sb.WriteString(formatNumber(float64(t)))
	case Bool:
		sb.WriteString(strconv.FormatBool(bool(t)))
	case Null:
		sb.WriteString("null")
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func indentValue(sb *strings.Builder, v Value, prefix, indent string) {
	inner := prefix + indent
	switch t := v.(type) {
	case *Object:
		if len(t.Members) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{\n")
		for i, m := range t.Members {
			if i > 0 {
				sb.WriteString(",\n")
			}
			sb.WriteString(inner)
			sb.WriteString(jev.Quote(m.Key))
			sb.WriteString(": ")
			indentValue(sb, m.Value, inner, indent)
		}
		sb.WriteString("\n")
		sb.WriteString(prefix)
		sb.WriteString("}")
	case *Array:
		if len(t.Values) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		for i, e := range t.Values {
			if i > 0 {
				sb.WriteString(",\n")
			}
			sb.WriteString(inner)
			indentValue(sb, e, inner, indent)
		}
		sb.WriteString("\n")
		sb.WriteString(prefix)
		sb.WriteString("]")
	default:
		writeValue(sb, v)
	}
}

// formatNumber renders a number in the shortest form that parses back
// to the same value. Integral values within the exactly-representable
// range print without a decimal point or exponent.
func formatNumber(n float64) string {
	if n >= -1<<53 && n <= 1<<53 && n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
