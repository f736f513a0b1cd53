package ast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rill-lang/rill/internal/ast"
	"github.com/rill-lang/rill/internal/source"
)

func TestPrinterIndentsChildren(t *testing.T) {
	p := source.New("a + b")
	left := &ast.Ident{Start: p, End: p, Lexeme: "a"}
	right := &ast.Ident{Start: p, End: p, Lexeme: "b"}
	bin := &ast.Binary{Start: p, End: p, Left: left, Right: right, Op: ast.Plus}

	var sb strings.Builder
	printer := ast.Printer{Output: &sb}
	require.NoError(t, printer.Print(bin))

	out := sb.String()
	require.Contains(t, out, "+\n")
	require.Contains(t, out, ". a\n")
	require.Contains(t, out, ". b\n")
}
