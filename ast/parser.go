// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"

	"github.com/creachadair/jnav"
)

// ErrExtraInput is reported by Parse and ParseFile when the input contains
// more tokens after the first value.
var ErrExtraInput = errors.New("extra input after value")

// Parse parses a single value from src. If src contains tokens after the
// first value, Parse returns the value along with an error wrapping
// ErrExtraInput.
func Parse(src string) (Value, error) {
	p := NewParser(jnav.NewLexer(src))
	v, err := p.ParseValue()
	if err != nil {
		return nil, err
	}
	return v, p.checkEnd()
}

// ParseFile loads the named file as jnav.ReadFile does, and parses a single
// value from its contents as Parse does.
func ParseFile(path string, opts *jnav.ReadOptions) (Value, error) {
	src, err := jnav.ReadFile(path, opts)
	if err != nil {
		return nil, err
	}
	return Parse(src)
}

// A Parser constructs values from the tokens of a lexer by recursive
// descent. A parser takes ownership of its lexer; the caller should not use
// the lexer while the parser is in use.
type Parser struct {
	lx *jnav.Lexer
}

// NewParser constructs a parser that consumes tokens from lx.
func NewParser(lx *jnav.Lexer) *Parser { return &Parser{lx: lx} }

// ParseValue parses the next value from the input. If the input is
// malformed, ParseValue returns a nil Value and an error of concrete type
// *jnav.SyntaxError; no part of a malformed value is returned.
func (p *Parser) ParseValue() (Value, error) {
	tok, ok := p.lx.Next()
	if !ok {
		return nil, p.eof()
	}
	switch tok.Kind {
	case jnav.LBrace:
		p.lx.Prev() // parseObject begins by reading the brace
		return p.parseObject()
	case jnav.LSquare:
		p.lx.Prev() // parseArray begins by reading the bracket
		return p.parseArray()
	case jnav.Null:
		return Null, nil
	case jnav.True:
		return Bool(true), nil
	case jnav.False:
		return Bool(false), nil
	case jnav.String:
		return String(tok.Text), nil
	case jnav.Number:
		return Number(tok.Num), nil
	}
	return nil, unexpected(tok)
}

// parseArray consumes an array, beginning with its open bracket.
//
// The open bracket and the comma are handled alike: each is followed by an
// element. Consequently an open bracket may stand in for a comma between
// elements, and an element that is empty (see atEmpty) is skipped.
func (p *Parser) parseArray() (Value, error) {
	vals := Array{}
	for {
		tok, ok := p.lx.Next()
		if !ok {
			return nil, p.eof()
		}
		switch tok.Kind {
		case jnav.RSquare:
			return vals, nil
		case jnav.LSquare, jnav.Comma:
			if p.atEmpty(jnav.RSquare) {
				continue
			}
			v, err := p.ParseValue()
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		default:
			return nil, unexpected(tok)
		}
	}
}

// parseObject consumes an object, beginning with its open brace.
// The grammar is the same as for parseArray, with members as elements.
func (p *Parser) parseObject() (Value, error) {
	nodes := Object{}
	for {
		tok, ok := p.lx.Next()
		if !ok {
			return nil, p.eof()
		}
		switch tok.Kind {
		case jnav.RBrace:
			return nodes, nil
		case jnav.LBrace, jnav.Comma:
			if p.atEmpty(jnav.RBrace) {
				continue
			}
			n, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		default:
			return nil, unexpected(tok)
		}
	}
}

// parseNode consumes a single object member: "key" : value
func (p *Parser) parseNode() (Node, error) {
	key, err := p.require(jnav.String)
	if err != nil {
		return Node{}, err
	}
	if _, err := p.require(jnav.Colon); err != nil {
		return Node{}, err
	}
	v, err := p.ParseValue()
	if err != nil {
		return Node{}, err
	}
	return Node{Key: key.Text, Value: v}, nil
}

// atEmpty reports whether the next token is a comma or the given closer,
// meaning there is no element between it and the preceding opener or comma.
// The next token is left unconsumed.
func (p *Parser) atEmpty(closer jnav.Kind) bool {
	tok, ok := p.lx.Next()
	if !ok {
		return false
	}
	p.lx.Prev()
	return tok.Kind == closer || tok.Kind == jnav.Comma
}

// require consumes the next token and reports an error if it is not of the
// given kind.
func (p *Parser) require(kind jnav.Kind) (jnav.Token, error) {
	tok, ok := p.lx.Next()
	if !ok {
		return jnav.Token{}, p.eof()
	} else if tok.Kind != kind {
		return jnav.Token{}, jnav.Errorf(jnav.UnexpectedToken, tok.Span.Pos, "got %v, want %v", tok.Kind, kind)
	}
	return tok, nil
}

// checkEnd reports an error if any token remains after a complete value.
func (p *Parser) checkEnd() error {
	if tok, ok := p.lx.Next(); ok {
		return errors.Join(ErrExtraInput, unexpected(tok))
	} else if err := p.lx.Err(); err != nil {
		return errors.Join(ErrExtraInput, err)
	}
	return nil
}

// eof reports the error for a token that was needed but not available.
// If the lexer failed, its error is returned as-is.
func (p *Parser) eof() error {
	if err := p.lx.Err(); err != nil {
		return err
	}
	return &jnav.SyntaxError{Kind: jnav.UnexpectedEOF, Offset: p.lx.Offset()}
}

func unexpected(tok jnav.Token) error {
	return jnav.Errorf(jnav.UnexpectedToken, tok.Span.Pos, "%v", tok.Kind)
}
