// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a tree of values for JSON-like documents, and a parser
// that constructs such trees from the tokens of a jnav.Lexer.
//
// Indexing into a tree never fails. The Key and Index methods of a Value
// return the Null value when the requested member or element does not exist,
// or when the receiver is not of the right type, so lookups can be chained
// without intermediate checks:
//
//	name := doc.Index(78).Key("name")
//	if name == ast.Null {
//	   log.Print("No name found")
//	}
package ast

import (
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/jnav"
)

// A Value is an arbitrary value in a tree. The concrete type of a Value
// produced by the parser is one of Object, Array, String, Number, Bool, or
// the type of Null.
type Value interface {
	// Key returns the value of the first member of an Object with the given
	// key. It returns Null if there is no such member, or if the receiver is
	// not an Object.
	Key(key string) Value

	// Index returns the element at offset i of an Array. It returns Null if
	// i is out of range, or if the receiver is not an Array.
	Index(i int) Value

	// String renders the value in a readable indented format.
	String() string

	// JSON renders the value as compact JSON text.
	JSON() string
}

// Null is the null value, and the result of every failed lookup.
var Null Value = null{}

// An Object is a sequence of key-value members, in input order.
// Keys need not be unique.
type Object []Node

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Node {
	for i, n := range o {
		if n.Key == key {
			return &o[i]
		}
	}
	return nil
}

// Key satisfies the Value interface.
func (o Object) Key(key string) Value {
	if n := o.Find(key); n != nil {
		return n.Value
	}
	return Null
}

// Index satisfies the Value interface. It always returns Null.
func (Object) Index(int) Value { return Null }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

func (o Object) String() string { return render(o) }

// JSON satisfies the Value interface.
func (o Object) JSON() string { return string(appendJSON(nil, o)) }

// A Node is a single key-value member of an Object.
type Node struct {
	Key   string
	Value Value
}

func (n Node) String() string {
	var sb strings.Builder
	n.writeTo(&sb, 0)
	return sb.String()
}

func (n Node) writeTo(sb *strings.Builder, depth int) {
	sb.WriteString(n.Key)
	sb.WriteString(" : ")
	writeValue(sb, n.Value, depth)
}

// Field constructs an object member with the given key and value.
func Field(key string, value Value) Node { return Node{Key: key, Value: value} }

// An Array is a sequence of values.
type Array []Value

// Key satisfies the Value interface. It always returns Null.
func (Array) Key(string) Value { return Null }

// Index satisfies the Value interface.
func (a Array) Index(i int) Value {
	if i >= 0 && i < len(a) {
		return a[i]
	}
	return Null
}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

func (a Array) String() string { return render(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string { return string(appendJSON(nil, a)) }

// A String is a string value. Its contents are exactly the text between the
// quotation marks in the input; escape sequences are not decoded.
type String string

// Key satisfies the Value interface. It always returns Null.
func (String) Key(string) Value { return Null }

// Index satisfies the Value interface. It always returns Null.
func (String) Index(int) Value { return Null }

func (s String) String() string { return `"` + string(s) + `"` }

// JSON satisfies the Value interface.
func (s String) JSON() string { return jnav.Quote(string(s)) }

// A Number is a numeric value.
type Number float64

// Key satisfies the Value interface. It always returns Null.
func (Number) Key(string) Value { return Null }

// Index satisfies the Value interface. It always returns Null.
func (Number) Index(int) Value { return Null }

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'f', -1, 64) }

// JSON satisfies the Value interface. JSON has no encoding for infinite
// values, so ±Inf is rendered as null.
func (n Number) JSON() string {
	if math.IsInf(float64(n), 0) || math.IsNaN(float64(n)) {
		return "null"
	}
	return n.String()
}

// A Bool is a Boolean constant, true or false.
type Bool bool

// Key satisfies the Value interface. It always returns Null.
func (Bool) Key(string) Value { return Null }

// Index satisfies the Value interface. It always returns Null.
func (Bool) Index(int) Value { return Null }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return b.String() }

type null struct{}

func (null) Key(string) Value { return Null }
func (null) Index(int) Value  { return Null }
func (null) String() string   { return "Null" }
func (null) JSON() string     { return "null" }

const indent = "    "

func render(v Value) string {
	var sb strings.Builder
	writeValue(&sb, v, 0)
	return sb.String()
}

// writeValue writes the readable form of v to sb. Each member or element of
// a collection goes on its own line, indented one level deeper than the
// collection itself, and followed by a comma.
func writeValue(sb *strings.Builder, v Value, depth int) {
	switch t := v.(type) {
	case Object:
		if len(t) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{\n")
		for _, n := range t {
			writeIndent(sb, depth+1)
			n.writeTo(sb, depth+1)
			sb.WriteString(",\n")
		}
		writeIndent(sb, depth)
		sb.WriteByte('}')
	case Array:
		if len(t) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		for _, elt := range t {
			writeIndent(sb, depth+1)
			writeValue(sb, elt, depth+1)
			sb.WriteString(",\n")
		}
		writeIndent(sb, depth)
		sb.WriteByte(']')
	case nil:
		sb.WriteString(Null.String())
	default:
		sb.WriteString(t.String())
	}
}

func writeIndent(sb *strings.Builder, depth int) {
	for range depth {
		sb.WriteString(indent)
	}
}

func appendJSON(buf []byte, v Value) []byte {
	switch t := v.(type) {
	case Object:
		buf = append(buf, '{')
		for i, n := range t {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = jnav.AppendQuote(buf, n.Key)
			buf = append(buf, ':')
			buf = appendJSON(buf, n.Value)
		}
		return append(buf, '}')
	case Array:
		buf = append(buf, '[')
		for i, elt := range t {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendJSON(buf, elt)
		}
		return append(buf, ']')
	case String:
		return jnav.AppendQuote(buf, string(t))
	case nil:
		return append(buf, "null"...)
	default:
		return append(buf, t.JSON()...)
	}
}
