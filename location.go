// Copyright (C) 2024 M. Fargo. All Rights Reserved.

package jev

import (
	"bytes"
	"fmt"
)

// A LineCol describes the line number and column offset of a location
// in source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// OffsetLineCol translates a byte offset in data, such as the Offset
// of a SyntaxError, into a line and column position. An offset past
// the end of data is treated as the end of data.
func OffsetLineCol(data []byte, offset int) LineCol {
	if offset > len(data) {
		offset = len(data)
	} else if offset < 0 {
		offset = 0
	}
	head := data[:offset]
	line := bytes.Count(head, []byte("\n")) + 1
	col := offset - (bytes.LastIndexByte(head, '\n') + 1)
	return LineCol{Line: line, Column: col}
}
