// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jnav

import "fmt"

// A Span describes a contiguous span of the loaded source text.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

func (s Span) String() string { return fmt.Sprintf("%d-%d", s.Pos, s.End) }

// Len reports the length of s in bytes.
func (s Span) Len() int { return s.End - s.Pos }
