// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jnav

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tailscale/hujson"
)

// ReadOptions control how source text is loaded. A nil *ReadOptions is ready
// for use and provides default values.
type ReadOptions struct {
	// If true, the input is treated as HuJSON: comments and trailing commas
	// are removed before the text is handed to the lexer.
	Standardize bool
}

func (o *ReadOptions) standardize() bool { return o != nil && o.Standardize }

// ReadSource reads the complete contents of r and returns the text as it
// will be seen by a Lexer. Lines are concatenated with their terminators
// ("\n" or "\r\n") removed, so a string or numeral that spans a line break
// loses the break.
func ReadSource(r io.Reader, opts *ReadOptions) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	if opts.standardize() {
		data, err = hujson.Standardize(data)
		if err != nil {
			return "", fmt.Errorf("standardize source: %w", err)
		}
	}
	return joinLines(string(data)), nil
}

// ReadFile reads the named file and returns its contents as ReadSource does.
// An error is reported if the file cannot be opened or read.
func ReadFile(path string, opts *ReadOptions) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	defer f.Close()
	return ReadSource(f, opts)
}

func joinLines(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for line := range strings.Lines(text) {
		if s, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(s, "\r")
		}
		sb.WriteString(line)
	}
	return sb.String()
}
