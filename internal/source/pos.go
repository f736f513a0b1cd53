// Package source implements position tracking and substring extraction over
// raw source text. A Pos is a cursor: it carries its own line, column and the
// tail of the source text starting at the cursor, so that two positions from
// the same source can be sliced against each other without an offset table.
package source

import "unicode/utf8"

// Pos is an immutable cursor into a source string. The zero value is not
// meaningful; construct one with New.
type Pos struct {
	line int    // 1-based
	col  int    // 1-based, counts runes since the last newline
	rest string // the remainder of the source starting at this position
}

// New returns the position at the start of src: line 1, column 1.
func New(src string) Pos {
	return Pos{line: 1, col: 1, rest: src}
}

// Line returns the 1-based line number of p.
func (p Pos) Line() int { return p.line }

// Col returns the 1-based column number of p.
func (p Pos) Col() int { return p.col }

// Rest returns the remainder of the source starting at p.
func (p Pos) Rest() string { return p.rest }

// Next returns the rune at p and the position just past it. ok is false at
// end of input, in which case the returned rune and position are zero
// values.
func (p Pos) Next() (next Pos, r rune, ok bool) {
	if len(p.rest) == 0 {
		return Pos{}, 0, false
	}
	r, size := utf8.DecodeRuneInString(p.rest)
	next = Pos{rest: p.rest[size:]}
	if r == '\n' {
		next.line = p.line + 1
		next.col = 1
	} else {
		next.line = p.line
		next.col = p.col + 1
	}
	return next, r, true
}

// NextWhile advances p while pred holds for the current rune, returning the
// position just past the last rune consumed. It returns p unchanged if pred
// never holds, including at end of input.
func (p Pos) NextWhile(pred func(rune) bool) Pos {
	cur := p
	for {
		next, r, ok := cur.Next()
		if !ok || !pred(r) {
			return cur
		}
		cur = next
	}
}

// Slice returns the substring of the shared source strictly between start
// and end. Both positions must derive from the same source (end must be a
// position reached by repeatedly calling Next/NextWhile from start); the
// result is computed from the difference in remaining-source lengths, not
// from absolute offsets.
func Slice(start, end Pos) string {
	n := len(start.rest) - len(end.rest)
	if n <= 0 {
		return ""
	}
	return start.rest[:n]
}
