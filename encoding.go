// Copyright (C) 2024 M. Fargo. All Rights Reserved.

package jev

import (
	"errors"
	"strings"

	"go4.org/mem"

	"github.com/mfargo/jev/internal/escape"
)

// Quote encodes src as a JSON string literal. The contents are escaped
// and double quotation marks are added.
func Quote(src string) string {
	buf := make([]byte, 0, len(src)+2)
	buf = append(buf, '"')
	buf = append(buf, escape.Quote(mem.S(src))...)
	buf = append(buf, '"')
	return string(buf)
}

// Unquote decodes a JSON string literal. Double quotation marks are
// removed and escape sequences are replaced by their decoded
// equivalents, combining surrogate pairs spelled as consecutive \u
// escapes. Malformed or incomplete escapes are reported as errors.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}
