// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jnav

import "fmt"

// ErrorKind classifies the ways in which input can be malformed.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	UnexpectedEOF      ErrorKind = iota + 1 // input ended inside a value
	UnexpectedToken                         // a token out of place in the grammar
	UnexpectedChar                          // a character that begins no token
	BadLiteral                              // a misspelled true, false, or null
	UnterminatedString                      // a string with no closing quote
	BadNumber                               // numeral text that is not a valid number
)

var errorKindStr = [...]string{
	UnexpectedEOF:      "unexpected end of input",
	UnexpectedToken:    "unexpected token",
	UnexpectedChar:     "unexpected character",
	BadLiteral:         "invalid literal",
	UnterminatedString: "unterminated string",
	BadNumber:          "invalid number",
}

func (k ErrorKind) String() string {
	if k == 0 || int(k) >= len(errorKindStr) {
		return "unknown error"
	}
	return errorKindStr[k]
}

// SyntaxError is the concrete type of errors reported for malformed input,
// by both the Lexer and the parser.
type SyntaxError struct {
	Kind    ErrorKind
	Offset  int // byte offset in the source text, 0-based
	Message string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	if s.Message == "" {
		return fmt.Sprintf("at offset %d: %v", s.Offset, s.Kind)
	}
	return fmt.Sprintf("at offset %d: %v: %s", s.Offset, s.Kind, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// Errorf constructs a *SyntaxError of the given kind at offset.
func Errorf(kind ErrorKind, offset int, msg string, args ...any) *SyntaxError {
	return &SyntaxError{Kind: kind, Offset: offset, Message: fmt.Sprintf(msg, args...)}
}
