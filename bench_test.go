// Copyright (C) 2024 M. Fargo. All Rights Reserved.

package jev_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/mfargo/jev"
)

func benchInput() []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"records":[`)
	for i := 0; i < 500; i++ {
		if i > 0 {
			buf.WriteString(",")
		}
		fmt.Fprintf(&buf, `{"id":%d,"name":"record é %d","score":%g,"tags":["a","b\tc"],"ok":%v,"meta":null}`,
			i, i, float64(i)*0.75, i%2 == 0)
	}
	buf.WriteString(`]}`)
	return buf.Bytes()
}

func BenchmarkParse(b *testing.B) {
	input := benchInput()
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dec := json.NewDecoder(bytes.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Validate", func(b *testing.B) {
		p := new(jev.Parser)
		for i := 0; i < b.N; i++ {
			if err := p.Parse(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Callbacks", func(b *testing.B) {
		// The standard library Decoder delivers decoded values; for a
		// fair comparison, register handlers that observe them.
		var nstr, nnum int
		p := &jev.Parser{
			String:  func(data []byte) { nstr += len(data) },
			Number:  func(n float64) { nnum++ },
			Boolean: func(bool) {},
			Null:    func() {},
		}
		for i := 0; i < b.N; i++ {
			if err := p.Parse(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
