// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jnav

import (
	"fmt"
	"strconv"
)

// Kind is the type of a lexical token.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Colon               // colon ":"
	Comma               // comma ","
	String              // quoted string
	Number              // number
	True                // constant: true
	False               // constant: false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Colon:   `":"`,
	Comma:   `","`,
	String:  "string",
	Number:  "number",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical token of the input. Tokens are not modified
// once the Lexer has produced them.
type Token struct {
	Kind Kind
	Span Span // location in the source text

	// For a String, Text is the contents between the quotes, verbatim.
	// For a Number, Text is the numeral as written and Num is its value.
	Text string
	Num  float64
}

// String renders a human-readable summary of t.
func (t Token) String() string {
	switch t.Kind {
	case String:
		return fmt.Sprintf("String(%q)", t.Text)
	case Number:
		return "Number(" + strconv.FormatFloat(t.Num, 'f', -1, 64) + ")"
	case True, False, Null:
		return t.Kind.String()
	default:
		return "Punct(" + t.Kind.String() + ")"
	}
}
