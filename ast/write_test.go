// Copyright (C) 2024 M. Fargo. All Rights Reserved.

package ast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfargo/jev/ast"
)

func TestText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`null`, `null`},
		{`true`, `true`},
		{`-0.25`, `-0.25`},
		{`1e10`, `10000000000`},
		{`1.5e300`, `1.5e+300`},
		{`"a\tb"`, `"a\tb"`},
		{`{}`, `{}`},
		{`[]`, `[]`},
		{` [ 1 , "two" , { "a" : null } ] `, `[1,"two",{"a":null}]`},
		{`{"k": [true, false]}`, `{"k":[true,false]}`},
	}

	for _, test := range tests {
		v, err := ast.ParseString(test.input)
		require.NoError(t, err, "input %#q", test.input)
		assert.Equal(t, test.want, ast.Text(v), "input %#q", test.input)
	}
}

func TestWriteIndent(t *testing.T) {
	v, err := ast.ParseString(`{"a":[1,{}],"b":"x","c":[]}`)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, ast.WriteIndent(&sb, v, "", "  "))

	const want = `{
  "a": [
    1,
    {}
  ],
  "b": "x",
  "c": []
}
`
	assert.Equal(t, want, sb.String())
}

func TestWriteRoundTrip(t *testing.T) {
	// Serialized text must parse back to an equal tree.
	inputs := []string{
		`null`,
		`[[],{},[[]]]`,
		`{"a":{"b":{"c":[1,2,3]}},"d":"\u0000"}`,
		`[0.5,-6.32e-5,123456789]`,
		`"pair 😀 here"`,
	}
	for _, input := range inputs {
		v, err := ast.ParseString(input)
		require.NoError(t, err, "input %#q", input)

		text := ast.Text(v)
		back, err := ast.ParseString(text)
		require.NoError(t, err, "reparse %#q", text)
		assert.Equal(t, v, back, "round trip of %#q via %#q", input, text)

		var sb strings.Builder
		require.NoError(t, ast.WriteIndent(&sb, v, "", "\t"))
		back, err = ast.ParseString(sb.String())
		require.NoError(t, err, "reparse indented %#q", sb.String())
		assert.Equal(t, v, back, "indented round trip of %#q", input)
	}
}
