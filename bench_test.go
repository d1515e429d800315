// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jnav_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/creachadair/jnav"
)

func BenchmarkLexer(b *testing.B) {
	input, err := os.ReadFile("testdata/meteorites.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	src, err := jnav.ReadSource(bytes.NewReader(input), nil)
	if err != nil {
		b.Fatalf("Loading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for b.Loop() {
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

	b.Run("Lexer", func(b *testing.B) {
		for b.Loop() {
			lx := jnav.NewLexer(src)
			for {
				if _, ok := lx.Next(); !ok {
					break
				}
			}
			if err := lx.Err(); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
