package peg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-peg/peg"
)

func TestContextStateRoundTrip(t *testing.T) {
	ctx := peg.NewContext(peg.NewRuneSource("abcdef"), peg.Config{})

	start := ctx.State()
	ctx.Advance(3)
	ctx.AddError(1, ctx.Position(), ctx.Position())
	require.Equal(t, 3, ctx.Offset())
	require.Len(t, ctx.Errors(), 1)

	ctx.SetState(start)
	require.Equal(t, 0, ctx.Offset())
	require.Empty(t, ctx.Errors())
}

func TestContextAddMatchNestsPriorMatches(t *testing.T) {
	ctx := peg.NewContext(peg.NewRuneSource("ab"), peg.Config{})

	begin := ctx.Position()
	ctx.Advance(1)
	ctx.AddMatch(10, peg.Span{Begin: begin, End: ctx.Position()}, 0)

	begin2 := ctx.Position()
	ctx.Advance(1)
	ctx.AddMatch(10, peg.Span{Begin: begin2, End: ctx.Position()}, 1)

	firstChild := 0
	ctx.AddMatch(20, peg.Span{Begin: begin, End: ctx.Position()}, firstChild)

	require.Len(t, ctx.Matches(), 1)
	require.Equal(t, 20, ctx.Matches()[0].ID)
	require.Len(t, ctx.Matches()[0].Children, 2)
}

func TestContextIsValidAndIsEnd(t *testing.T) {
	ctx := peg.NewContext(peg.NewRuneSource("a"), peg.Config{})
	require.True(t, ctx.IsValid())
	require.False(t, ctx.IsEnd())
	ctx.Advance(1)
	require.False(t, ctx.IsValid())
	require.True(t, ctx.IsEnd())
	// advancing past the end clamps rather than going out of range
	ctx.Advance(5)
	require.Equal(t, 1, ctx.Offset())
}
