// Copyright (C) 2024 M. Fargo. All Rights Reserved.

package escape

import "go4.org/mem"

var hexDigit = []byte("0123456789abcdef")

// Quote encodes the contents of src for inclusion in a JSON string
// literal. Quotation marks, backslashes and control characters are
// escaped; everything else is copied through unchanged. The enclosing
// quotation marks are not added.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		switch b {
		case '"', '\\':
			buf = append(buf, '\\', b)
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			if b < 0x20 {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
			} else {
				buf = append(buf, b)
			}
		}
	}
	return buf
}
