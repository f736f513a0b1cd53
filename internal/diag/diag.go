// Package diag renders rill's parse and compile errors (internal/parser.Error,
// internal/compiler.Error) as a caret-style report: the offending source
// line followed by a colourized "^" underline.
package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/rill-lang/rill/internal/compiler"
	"github.com/rill-lang/rill/internal/parser"
	"github.com/rill-lang/rill/internal/source"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	red    = color.New(color.FgRed, color.Bold).SprintFunc()
	caretC = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Report writes a caret-style rendering of err to w. src must be the full
// source text the error was diagnosed against (internal/source.Pos carries
// no file set of its own). Errors of any other type are rendered with a
// plain "%s" fallback.
func Report(w io.Writer, filename, src string, err error) {
	switch e := err.(type) {
	case *parser.Error:
		reportAt(w, filename, src, e.Pos, e.Pos, "error", e.Error())
	case *compiler.Error:
		reportAt(w, filename, src, e.Start, e.End, "error", e.Error())
	default:
		fmt.Fprintf(w, "%s: %s\n", red("error"), err)
	}
}

func reportAt(w io.Writer, filename, src string, start, end source.Pos, level, message string) {
	lines := strings.Split(src, "\n")
	line := start.Line()

	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	indent := strings.Repeat(" ", width)

	fmt.Fprintf(w, "%s: %s\n", red(level), message)
	fmt.Fprintf(w, "%s %s %s:%d:%d\n", indent, dim("-->"), filename, line, start.Col())
	fmt.Fprintf(w, "%s %s\n", indent, dim("|"))

	if line >= 1 && line <= len(lines) {
		content := lines[line-1]
		fmt.Fprintf(w, "%s %s %s\n", bold(pad(line, width)), dim("|"), content)
		fmt.Fprintf(w, "%s %s %s\n", indent, dim("|"), marker(start, end, content))
	}
}

func pad(n, width int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) < width {
		s = strings.Repeat(" ", width-len(s)) + s
	}
	return s
}

// marker builds the "^^^" underline for the span [start,end) on a single
// source line. A zero-width span (parser errors pin a single position, not
// a range) still underlines exactly one caret.
func marker(start, end source.Pos, line string) string {
	col := start.Col()
	length := end.Col() - start.Col()
	if length <= 0 {
		length = 1
	}
	// Clamp so a span that runs past the end of its own line (e.g. an
	// end-of-input position) doesn't overrun the rendered line.
	if maxLen := len([]rune(line)) - (col - 1); length > maxLen && maxLen > 0 {
		length = maxLen
	}
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, col-1))
	return spaces + caretC(strings.Repeat("^", length))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
