// Package errs formats peg.Error values the way a human reads them: a
// message line word-wrapped to a terminal width, then the source line the
// error occurred on, with a caret marking the offending span.
package errs

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/go-peg/peg"
)

// Labeler maps an Error's id to a human-readable message; a nil Labeler
// reports "error N" for id N.
type Labeler func(id int) string

// Width is the default wrap width Report uses when none is given.
const Width = 80

// Report renders one Error against the full source text: the message
// from label, the line containing the error's start, and a caret under
// the error's span.
func Report(source string, e peg.Error, label Labeler, width int) string {
	if width <= 0 {
		width = Width
	}
	if label == nil {
		label = func(id int) string { return fmt.Sprintf("error %d", id) }
	}

	line := sourceLine(source, e.Span.Begin.Line)
	marker := caretLine(line, e.Span)

	header := fmt.Sprintf("%s: %s", e.Span.Begin, label(e.ID))
	body := rosed.Edit(header).Wrap(width).String()

	return strings.Join([]string{body, line, marker}, "\n")
}

func sourceLine(source string, lineNo int) string {
	if lineNo <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNo > len(lines) {
		return ""
	}
	return lines[lineNo-1]
}

func caretLine(line string, span peg.Span) string {
	col := span.Begin.Column
	if col < 1 {
		col = 1
	}
	width := span.End.Column - span.Begin.Column
	if width < 1 {
		width = 1
	}
	if col-1 > len(line) {
		return strings.Repeat(" ", col-1) + strings.Repeat("^", width)
	}
	return strings.Repeat(" ", col-1) + strings.Repeat("^", width)
}
