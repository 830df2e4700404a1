package peg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-peg/peg"
)

func TestRuneSourceTracksLineAndColumn(t *testing.T) {
	src := peg.NewRuneSource("ab\ncd")

	require.Equal(t, peg.Position{Offset: 0, Line: 1, Column: 1}, src.Position(0))
	require.Equal(t, peg.Position{Offset: 2, Line: 1, Column: 3}, src.Position(2)) // the '\n' itself
	require.Equal(t, peg.Position{Offset: 3, Line: 2, Column: 1}, src.Position(3)) // 'c'
	require.Equal(t, 5, src.Len())
}

func TestNoLineTrackingReportsOnlyOffset(t *testing.T) {
	src := peg.NoLineTracking(peg.NewRuneSource("ab\ncd"))

	pos := src.Position(3)
	require.Equal(t, 3, pos.Offset)
	require.Zero(t, pos.Line)
	require.Zero(t, pos.Column)
}

func TestPositionString(t *testing.T) {
	require.Equal(t, "2:1", peg.Position{Offset: 3, Line: 2, Column: 1}.String())
	require.Equal(t, "@3", peg.Position{Offset: 3}.String())
}
