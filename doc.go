// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jnav implements a lexical scanner for JSON-like documents.
//
// # Loading
//
// The lexer consumes text that has already been loaded into memory. Use
// ReadFile or ReadSource to load it; line terminators are removed and the
// lines concatenated:
//
//	src, err := jnav.ReadFile("data.json", nil)
//	if err != nil {
//	   log.Fatalf("Load failed: %v", err)
//	}
//
// # Scanning
//
// The Lexer type converts source text into tokens. Construct a lexer from
// the text and call its Next method to iterate over the tokens:
//
//	lx := jnav.NewLexer(src)
//	for {
//	   tok, ok := lx.Next()
//	   if !ok {
//	      break
//	   }
//	   log.Printf("Next token: %v", tok)
//	}
//
// Next reports false when no further token is available. Err returns nil if
// the input was fully consumed, or a *SyntaxError describing the text that
// could not be scanned:
//
//	if err := lx.Err(); err != nil {
//	   log.Fatalf("Scanning failed: %v", err)
//	}
//
// # Lookahead
//
// Every token scanned is kept, and the lexer's cursor may be moved backward
// over them with Prev. A subsequent Next returns the same tokens again
// without rescanning the source. This allows a parser to read a token,
// decide what to do with it, and push it back for another routine to
// consume:
//
//	tok, _ := lx.Next()
//	if tok.Kind == jnav.LSquare {
//	   lx.Prev()      // push back the bracket
//	   parseArray(lx) // which begins by reading it again
//	}
//
// Only the space character separates tokens. Other whitespace, including
// tabs, is not recognized.
package jnav
