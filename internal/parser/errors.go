package parser

import (
	"fmt"

	"github.com/rill-lang/rill/internal/source"
)

// ErrorKind distinguishes the two ways a parse can fail.
type ErrorKind int

const (
	// ExpectedValue means no prefix production matched at the position.
	ExpectedValue ErrorKind = iota
	// ExpectedString means a specific delimiter or keyword was required but
	// not found.
	ExpectedString
)

// Error is a parse failure pinned to the position where it was diagnosed.
// No recovery is attempted: the first error wins.
type Error struct {
	Pos      source.Pos
	Kind     ErrorKind
	Expected string // only meaningful when Kind == ExpectedString
}

func (e *Error) Error() string {
	switch e.Kind {
	case ExpectedString:
		return fmt.Sprintf("%d:%d: expected %q", e.Pos.Line(), e.Pos.Col(), e.Expected)
	default:
		return fmt.Sprintf("%d:%d: expected a value", e.Pos.Line(), e.Pos.Col())
	}
}

func errExpectedValue(pos source.Pos) error {
	return &Error{Pos: pos, Kind: ExpectedValue}
}

func errExpectedString(pos source.Pos, s string) error {
	return &Error{Pos: pos, Kind: ExpectedString, Expected: s}
}
