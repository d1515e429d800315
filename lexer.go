// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jnav

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"go4.org/mem"
)

// A Lexer reads lexical tokens from a source text. Every token scanned is
// kept in a log, and a cursor over the log can be moved backward with Prev
// and forward again with Next. Moving forward over tokens already in the log
// replays them without rescanning the source.
type Lexer struct {
	src  string
	pos  int // offset of the next unread character
	last int // size in bytes of the last-read character

	log []Token
	cur int   // index of the current token in log; -1 before the first
	err error // why scanning stopped; nil at a clean end of input
}

// NewLexer constructs a lexer that scans tokens from src. The cursor is
// initially positioned before the first token.
func NewLexer(src string) *Lexer { return &Lexer{src: src, cur: -1} }

// Next advances the cursor to the next token and returns it. If the cursor
// is behind the end of the log, the buffered token is returned; otherwise a
// new token is scanned from the source and appended to the log.
//
// Next reports false at the end of the input, or if a token could not be
// scanned. Use Err to distinguish these cases.
func (lx *Lexer) Next() (Token, bool) {
	if lx.cur+1 < len(lx.log) {
		lx.cur++
		return lx.log[lx.cur], true
	}
	tok, ok := lx.scan()
	if !ok {
		return Token{}, false
	}
	lx.log = append(lx.log, tok)
	lx.cur = len(lx.log) - 1
	return tok, true
}

// Prev moves the cursor one token backward and returns the token now under
// the cursor. It reports false if the cursor is before the first token.
func (lx *Lexer) Prev() (Token, bool) {
	if lx.cur < 0 {
		return Token{}, false
	}
	lx.cur--
	return lx.Current()
}

// Current returns the token under the cursor without moving it. It reports
// false if the cursor is before the first token.
func (lx *Lexer) Current() (Token, bool) {
	if lx.cur < 0 {
		return Token{}, false
	}
	return lx.log[lx.cur], true
}

// Err reports why the lexer stopped producing tokens. It returns nil if the
// input has not been exhausted or was exhausted cleanly; otherwise the
// concrete type of the error is *SyntaxError.
func (lx *Lexer) Err() error { return lx.err }

// Offset reports the offset of the first character of the source not yet
// consumed by the scanner.
func (lx *Lexer) Offset() int { return lx.pos }

// Scanned reports the number of tokens in the log.
func (lx *Lexer) Scanned() int { return len(lx.log) }

func (lx *Lexer) scan() (Token, bool) {
	if lx.err != nil {
		return Token{}, false
	}
	ch, ok := lx.next()
	if !ok {
		return Token{}, false
	}
	start := lx.pos - lx.last

	// Handle punctuation.
	if k, ok := selfDelim(ch); ok {
		return Token{Kind: k, Span: Span{Pos: start, End: lx.pos}}, true
	}

	switch {
	case ch == 't':
		return lx.scanWord(start, "true", True)
	case ch == 'f':
		return lx.scanWord(start, "false", False)
	case ch == 'n':
		return lx.scanWord(start, "null", Null)
	case ch == '"':
		return lx.scanString(start)
	case isNumStart(ch):
		return lx.scanNumber(start)
	}
	return lx.failf(UnexpectedChar, start, "%q", ch)
}

// scanWord matches the constant word starting at the character just read.
func (lx *Lexer) scanWord(start int, word string, kind Kind) (Token, bool) {
	lx.unread()
	if !mem.HasPrefix(mem.S(lx.src[lx.pos:]), mem.S(word)) {
		end := min(len(lx.src), start+len(word))
		return lx.failf(BadLiteral, start, "got %q, want %s", lx.src[start:end], word)
	}
	lx.pos += len(word)
	return Token{Kind: kind, Span: Span{Pos: start, End: lx.pos}}, true
}

// scanString consumes the remainder of a string whose open quote has been
// read. The contents are not unescaped.
func (lx *Lexer) scanString(start int) (Token, bool) {
	rest := lx.src[lx.pos:]
	i := mem.IndexByte(mem.S(rest), '"')
	if i < 0 {
		return lx.failf(UnterminatedString, start, "missing close quote")
	}
	lx.pos += i + 1
	return Token{Kind: String, Span: Span{Pos: start, End: lx.pos}, Text: rest[:i]}, true
}

// scanNumber consumes a numeral starting at the character just read.
// Digits, a single decimal point, and minus signs anywhere in the numeral
// are accepted here; validity is left to the float conversion.
func (lx *Lexer) scanNumber(start int) (Token, bool) {
	lx.unread()

	var hasDot bool
	for lx.pos < len(lx.src) {
		ch := lx.src[lx.pos]
		if ch == '.' {
			if hasDot {
				break // a second point ends the numeral
			}
			hasDot = true
		} else if ch != '-' && !isDigit(rune(ch)) {
			break
		}
		lx.pos++
	}
	lx.last = 0

	text := lx.src[start:lx.pos]
	// A numeral too large for a float64 is well-formed, and yields ±Inf.
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return lx.fail(&SyntaxError{Kind: BadNumber, Offset: start, Message: strconv.Quote(text), err: err})
	}
	return Token{Kind: Number, Span: Span{Pos: start, End: lx.pos}, Text: text, Num: v}, true
}

// next returns the next character of the input other than a space.
func (lx *Lexer) next() (rune, bool) {
	for lx.pos < len(lx.src) {
		ch, nb := utf8.DecodeRuneInString(lx.src[lx.pos:])
		lx.pos += nb
		lx.last = nb
		if ch != ' ' {
			return ch, true
		}
	}
	return 0, false
}

func (lx *Lexer) unread() {
	lx.pos -= lx.last
	lx.last = 0
}

func (lx *Lexer) fail(err *SyntaxError) (Token, bool) {
	lx.err = err
	return Token{}, false
}

func (lx *Lexer) failf(kind ErrorKind, offset int, msg string, args ...any) (Token, bool) {
	return lx.fail(Errorf(kind, offset, msg, args...))
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Colon, Comma}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[]:,", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
