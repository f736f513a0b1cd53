package source_test

import (
	"testing"

	"github.com/rill-lang/rill/internal/source"
	"github.com/stretchr/testify/require"
)

func TestNextAdvancesLineAndColumn(t *testing.T) {
	p := source.New("ab\ncd")

	p1, r, ok := p.Next()
	require.True(t, ok)
	require.Equal(t, 'a', r)
	require.Equal(t, 1, p1.Line())
	require.Equal(t, 2, p1.Col())

	p2, r, ok := p1.Next()
	require.True(t, ok)
	require.Equal(t, 'b', r)
	require.Equal(t, 1, p2.Line())
	require.Equal(t, 3, p2.Col())

	p3, r, ok := p2.Next()
	require.True(t, ok)
	require.Equal(t, '\n', r)
	require.Equal(t, 2, p3.Line())
	require.Equal(t, 1, p3.Col())

	p4, r, ok := p3.Next()
	require.True(t, ok)
	require.Equal(t, 'c', r)
	require.Equal(t, 2, p4.Line())
	require.Equal(t, 2, p4.Col())
}

func TestNextAtEndOfInput(t *testing.T) {
	p := source.New("")
	_, _, ok := p.Next()
	require.False(t, ok)
}

func TestNextWhile(t *testing.T) {
	p := source.New("123abc")
	end := p.NextWhile(func(r rune) bool { return r >= '0' && r <= '9' })
	require.Equal(t, "123", source.Slice(p, end))
	require.Equal(t, "abc", end.Rest())
}

func TestNextWhileNoMatchReturnsSamePosition(t *testing.T) {
	p := source.New("abc")
	end := p.NextWhile(func(r rune) bool { return r >= '0' && r <= '9' })
	require.Equal(t, "", source.Slice(p, end))
	require.Equal(t, p.Rest(), end.Rest())
}

func TestSliceAcrossMultipleAdvances(t *testing.T) {
	p := source.New("hello world")
	end := p.NextWhile(func(r rune) bool { return r != ' ' })
	require.Equal(t, "hello", source.Slice(p, end))
}
