package peg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-peg/peg"
)

func parseAll(t *testing.T, text string, p peg.Pattern) peg.Result {
	t.Helper()
	res, err := peg.ParseString(text, p, peg.Config{})
	require.NoError(t, err)
	return res
}

func TestSequence(t *testing.T) {
	p := peg.Sequence(peg.Terminal('a'), peg.Terminal('b'), peg.Terminal('c'))

	res := parseAll(t, "abc", p)
	require.True(t, res.Ok)
	require.Equal(t, 3, res.End.Offset)

	res = parseAll(t, "abx", p)
	require.False(t, res.Ok)
	require.Equal(t, 0, res.End.Offset, "sequence must restore position on failure")
}

func TestSequenceFlattensNestedSequences(t *testing.T) {
	inner := peg.Sequence(peg.Terminal('a'), peg.Terminal('b'))
	outer := peg.Sequence(inner, peg.Terminal('c'))

	res := parseAll(t, "abc", outer)
	require.True(t, res.Ok)
}

func TestChoice(t *testing.T) {
	p := peg.Choice(peg.Terminal('a'), peg.Terminal('b'))

	res := parseAll(t, "b", p)
	require.True(t, res.Ok)
	require.Equal(t, 1, res.End.Offset)

	res = parseAll(t, "c", p)
	require.False(t, res.Ok)
	require.Equal(t, 0, res.End.Offset)
}

func TestLoop0AcceptsZeroRepetitions(t *testing.T) {
	p := peg.Loop0(peg.Terminal('a'))

	res := parseAll(t, "", p)
	require.True(t, res.Ok)

	res = parseAll(t, "aaa", p)
	require.True(t, res.Ok)
	require.Equal(t, 3, res.End.Offset)
}

func TestLoop1RequiresAtLeastOne(t *testing.T) {
	p := peg.Loop1(peg.Terminal('a'))

	res := parseAll(t, "", p)
	require.False(t, res.Ok)

	res = parseAll(t, "aa", p)
	require.True(t, res.Ok)
	require.Equal(t, 2, res.End.Offset)
}

func TestLoopStopsOnZeroProgress(t *testing.T) {
	// Optional(Terminal('z')) always succeeds without consuming when 'z'
	// is absent, so Loop0 over it must stop after one zero-width
	// iteration rather than spinning forever.
	p := peg.Loop0(peg.Optional(peg.Terminal('z')))

	res := parseAll(t, "abc", p)
	require.True(t, res.Ok)
	require.Equal(t, 0, res.End.Offset)
}

func TestOptional(t *testing.T) {
	p := peg.Sequence(peg.Optional(peg.Terminal('a')), peg.Terminal('b'))

	res := parseAll(t, "ab", p)
	require.True(t, res.Ok)

	res = parseAll(t, "b", p)
	require.True(t, res.Ok)
}

func TestAndPredicateDoesNotConsume(t *testing.T) {
	p := peg.Sequence(peg.And(peg.Terminal('a')), peg.Terminal('a'))

	res := parseAll(t, "a", p)
	require.True(t, res.Ok)
	require.Equal(t, 1, res.End.Offset)
}

func TestNotPredicateDoesNotConsume(t *testing.T) {
	p := peg.Sequence(peg.Not(peg.Terminal('b')), peg.Terminal('a'))

	res := parseAll(t, "a", p)
	require.True(t, res.Ok)

	res = parseAll(t, "b", p)
	require.False(t, res.Ok)
}

func TestDifference(t *testing.T) {
	// any symbol except 'x'
	p := peg.Difference(peg.Any, peg.Terminal('x'))

	res := parseAll(t, "y", p)
	require.True(t, res.Ok)

	res = parseAll(t, "x", p)
	require.False(t, res.Ok)
}

func TestMatchAsRecordsNestedTree(t *testing.T) {
	const (
		idDigit = iota + 1
		idPair
	)
	digit := peg.MatchAs(peg.Range('0', '9'), idDigit)
	pair := peg.MatchAs(peg.Sequence(digit, digit), idPair)

	res := parseAll(t, "12", pair)
	require.True(t, res.Ok)
	require.Len(t, res.Matches, 1)
	root := res.Matches[0]
	require.Equal(t, idPair, root.ID)
	require.Len(t, root.Children, 2)
	require.Equal(t, idDigit, root.Children[0].ID)
	require.Equal(t, idDigit, root.Children[1].ID)
}

func TestLoopBreak(t *testing.T) {
	// Loop0 over (terminal 'a' | break) — stops the loop the first time
	// it sees anything but 'a', without failing the whole loop.
	body := peg.Choice(peg.Terminal('a'), peg.LoopBreak(0))
	p := peg.Sequence(peg.Loop0(body), peg.Terminal('!'))

	res := parseAll(t, "aaa!", p)
	require.True(t, res.Ok)
	require.Equal(t, 4, res.End.Offset)
}

func TestEndAndAny(t *testing.T) {
	res := parseAll(t, "", peg.End)
	require.True(t, res.Ok)

	res = parseAll(t, "x", peg.End)
	require.False(t, res.Ok)

	res = parseAll(t, "x", peg.Any)
	require.True(t, res.Ok)
	require.Equal(t, 1, res.End.Offset)
}

func TestRangeConstructionPanicsOnInvertedBounds(t *testing.T) {
	require.Panics(t, func() { peg.Range('z', 'a') })
}
