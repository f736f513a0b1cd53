package compiler

import (
	"fmt"

	"github.com/rill-lang/rill/internal/source"
)

// ErrorKind distinguishes the ways compilation can fail.
type ErrorKind int

const (
	// TypeError marks an operator applied to operands of an incompatible
	// shape.
	TypeError ErrorKind = iota
	// UndefinedVariable marks an identifier absent from every enclosing
	// scope.
	UndefinedVariable
	// IntLiteralOutOfRange marks an integer literal that does not fit in a
	// signed 32-bit value.
	IntLiteralOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case TypeError:
		return "TypeError"
	case UndefinedVariable:
		return "UndefinedVariable"
	case IntLiteralOutOfRange:
		return "IntLiteralOutOfRange"
	default:
		return "UnknownError"
	}
}

// Error is a span-tagged compile failure. The first one aborts compilation;
// there is no recovery.
type Error struct {
	Start, End source.Pos
	Kind       ErrorKind
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Start.Line(), e.Start.Col(), e.Message)
}

func newError(start, end source.Pos, kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Start: start, End: end, Kind: kind, Message: fmt.Sprintf(format, args...)}
}
