// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jnav

import (
	"github.com/creachadair/jnav/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
//
// The lexer does not decode escapes, so a string read from the input and
// quoted again is not necessarily identical to the original source text.
func Quote(src string) string { return string(escape.AppendQuoted(nil, mem.S(src))) }

// AppendQuote appends the JSON encoding of src to buf, as Quote does.
func AppendQuote(buf []byte, src string) []byte { return escape.AppendQuoted(buf, mem.S(src)) }
