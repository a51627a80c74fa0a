// Copyright (C) 2024 M. Fargo. All Rights Reserved.

package jev_test

import (
	"testing"

	"github.com/mfargo/jev"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{``, `""`},
		{`abc`, `"abc"`},
		{"a\tb", `"a\tb"`},
		{`say "hi"`, `"say \"hi\""`},
		{"\x07", `"\u0007"`},
	}
	for _, test := range tests {
		if got := jev.Quote(test.input); got != test.want {
			t.Errorf("Quote %q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`""`, ``},
		{`"abc"`, `abc`},
		{`"aAb"`, `aAb`},
		{`"😀"`, "\U0001F600"},
	}
	for _, test := range tests {
		got, err := jev.Unquote(test.input)
		if err != nil {
			t.Errorf("Unquote %#q failed: %v", test.input, err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("Unquote %#q: got %q, want %q", test.input, got, test.want)
		}
	}

	bad := []string{``, `"`, `abc`, `"abc`, `abc"`, `"a\"`}
	for _, input := range bad {
		if got, err := jev.Unquote(input); err == nil {
			t.Errorf("Unquote %#q: got %q, want error", input, got)
		}
	}
}
