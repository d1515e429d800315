// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over a tree of ast.Value.
package cursor

import "github.com/creachadair/jnav/ast"

// Path traverses a sequential path into the structure of v, where path
// elements are as documented for the Cursor.Down method, and returns the
// value reached. This is a convenience wrapper for creating a cursor,
// applying path, and retrieving its value.
func Path(v ast.Value, path ...any) ast.Value { return New(v).Down(path...).Value() }

// A Cursor is a pointer that navigates into the structure of an ast.Value.
type Cursor struct {
	org ast.Value
	stk []ast.Value
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin ast.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() ast.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() ast.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of values from the origin to the current
// location in c.
func (c *Cursor) Path() []ast.Value {
	return append([]ast.Value{c.org}, c.stk...)
}

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin.
func (c *Cursor) Reset() { c.stk = c.stk[:0] }

// Down traverses a sequential path into the structure of c starting from the
// current value. Path elements are strings (denoting object keys) or integers
// (denoting offsets into arrays). Each element moves the cursor one step,
// so that Up retraces the path.
//
// Down does not fail: a key that does not exist, an offset out of range, a
// step into a value of the wrong type, or a path element of any other type
// moves the cursor to ast.Null. Further steps from Null stay at Null.
// It returns c to permit chaining.
func (c *Cursor) Down(path ...any) *Cursor {
	cur := c.Value()
	for _, elt := range path {
		if cur == nil {
			cur = ast.Null
		}
		switch t := elt.(type) {
		case string:
			cur = c.push(cur.Key(t))
		case int:
			cur = c.push(cur.Index(t))
		default:
			cur = c.push(ast.Null)
		}
	}
	return c
}

func (c *Cursor) push(v ast.Value) ast.Value {
	if v == nil {
		v = ast.Null
	}
	c.stk = append(c.stk, v)
	return v
}
