// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package selector parses the path expressions accepted by the jnav command
// line tool.
package selector

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

/*
Grammar:

  sel = ["$"] first [steps]
first = word
first = step
steps = step [steps]
 step = "." word
 step = "[" INDEX "]"
 step = "[" QUOTED "]"

  word = RE `[\w-]+`
 INDEX = RE `-?\d+`
QUOTED = RE `"[^"]*"` or `'[^']*'`

A word consisting only of digits (and an optional leading "-") is an array
offset; any other word is an object key. Use a quoted step for a key that
looks like a number.

Examples:

  78.name
  [78]["name"]
  $.cities[0]['postal code']
*/

// Parse parses s as a selector and returns its path, a sequence of string
// object keys and int array offsets. An empty selector, or "$" by itself,
// yields an empty path.
func Parse(s string) ([]any, error) {
	t := strings.TrimPrefix(s, "$")
	var path []any
	for t != "" {
		step, rest, err := parseStep(t, len(path) == 0 && t == s)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", len(s)-len(t), err)
		}
		path = append(path, step)
		t = rest
	}
	return path, nil
}

// Format renders path as a selector in bracket notation. Parse applied to
// the result returns an equivalent path, unless a key contains both kinds
// of quotation mark.
func Format(path []any) string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, elt := range path {
		switch t := elt.(type) {
		case int:
			fmt.Fprintf(&buf, "[%d]", t)
		case string:
			if strings.Contains(t, `"`) {
				fmt.Fprintf(&buf, "['%s']", t)
			} else {
				fmt.Fprintf(&buf, `["%s"]`, t)
			}
		default:
			fmt.Fprintf(&buf, "[?%T]", t)
		}
	}
	return buf.String()
}

// parseStep parses a single step from the front of s. If bare is true, a
// word without a leading "." is permitted.
func parseStep(s string, bare bool) (_ any, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "["); ok {
		step, u, err := parseBracket(t)
		if err != nil {
			return nil, s, err
		}
		u, ok := strings.CutPrefix(u, "]")
		if !ok {
			return nil, s, errors.New("missing close bracket")
		}
		return step, u, nil
	}
	t, ok := strings.CutPrefix(s, ".")
	if !ok && !bare {
		return nil, s, errors.New("invalid path step")
	}
	if m := wordRE.FindStringSubmatch(t); m != nil {
		return wordStep(m[1]), t[len(m[0]):], nil
	}
	return nil, s, errors.New("invalid name")
}

func parseBracket(s string) (_ any, rest string, _ error) {
	if m := indexRE.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, s, fmt.Errorf("invalid index: %w", err)
		}
		return n, s[len(m[0]):], nil
	}
	if m := dquoteRE.FindStringSubmatch(s); m != nil {
		return m[1], s[len(m[0]):], nil
	}
	if m := squoteRE.FindStringSubmatch(s); m != nil {
		return m[1], s[len(m[0]):], nil
	}
	return nil, s, fmt.Errorf("invalid value: %q", s)
}

func wordStep(word string) any {
	if indexRE.FindString(word) == word {
		if n, err := strconv.Atoi(word); err == nil {
			return n
		}
	}
	return word
}

var (
	wordRE   = regexp.MustCompile(`^([\w-]+)`)
	indexRE  = regexp.MustCompile(`^(-?\d+)`)
	dquoteRE = regexp.MustCompile(`^"([^"]*)"`)
	squoteRE = regexp.MustCompile(`^'([^']*)'`)
)
