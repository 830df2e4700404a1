package errs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-peg/peg"
	"github.com/go-peg/peg/errs"
)

func TestReportIncludesLineAndCaret(t *testing.T) {
	source := "let x = ;\nlet y = 2;"
	e := peg.Error{
		ID: 1,
		Span: peg.Span{
			Begin: peg.Position{Offset: 8, Line: 1, Column: 9},
			End:   peg.Position{Offset: 9, Line: 1, Column: 10},
		},
	}

	out := errs.Report(source, e, func(id int) string { return "missing expression" }, 0)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "missing expression")
	require.Equal(t, "let x = ;", lines[1])
	require.Equal(t, strings.Repeat(" ", 8)+"^", lines[2])
}

func TestReportDefaultsLabelToErrorID(t *testing.T) {
	source := "abc"
	e := peg.Error{ID: 7, Span: peg.Span{
		Begin: peg.Position{Offset: 0, Line: 1, Column: 1},
		End:   peg.Position{Offset: 1, Line: 1, Column: 2},
	}}

	out := errs.Report(source, e, nil, 0)
	require.Contains(t, out, "error 7")
}

func TestReportHandlesOutOfRangeLine(t *testing.T) {
	source := "abc"
	e := peg.Error{ID: 1, Span: peg.Span{
		Begin: peg.Position{Offset: 3, Line: 5, Column: 1},
		End:   peg.Position{Offset: 3, Line: 5, Column: 1},
	}}

	require.NotPanics(t, func() { _ = errs.Report(source, e, nil, 0) })
}
