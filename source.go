package peg

// Source is the symbol sequence a Context walks over. Symbols are
// compared through the Context's Comparator rather than Go equality, so
// the same Source can serve both case-sensitive and case-insensitive
// grammars, and so a token stream can be searched the same way a rune
// stream is.
type Source interface {
	// Len returns the number of symbols in the source.
	Len() int
	// At returns the symbol at index i, 0 <= i < Len().
	At(i int) any
	// Position returns the Position of index i. i may equal Len() to
	// describe the position just past the last symbol.
	Position(i int) Position
}

// runeSource is a Source over the runes of a string, with a precomputed
// line/column table so Position is O(1).
type runeSource struct {
	runes []rune
	lines []int
	cols  []int
}

// NewRuneSource builds a Source over the runes of text, tracking line
// and column the way a text editor would: a newline advances the line
// and resets the column to 1.
func NewRuneSource(text string) Source {
	runes := []rune(text)
	lines := make([]int, len(runes)+1)
	cols := make([]int, len(runes)+1)
	line, col := 1, 1
	for i, r := range runes {
		lines[i] = line
		cols[i] = col
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	lines[len(runes)] = line
	cols[len(runes)] = col
	return &runeSource{runes: runes, lines: lines, cols: cols}
}

func (s *runeSource) Len() int      { return len(s.runes) }
func (s *runeSource) At(i int) any  { return s.runes[i] }
func (s *runeSource) Position(i int) Position {
	return Position{Offset: i, Line: s.lines[i], Column: s.cols[i]}
}

// degenerateSource wraps a Source and reports only Offset, for sources
// with line/column tracking disabled.
type degenerateSource struct {
	Source
}

// NoLineTracking wraps src so every Position it reports carries only an
// Offset.
func NoLineTracking(src Source) Source {
	return degenerateSource{Source: src}
}

func (s degenerateSource) Position(i int) Position {
	return Position{Offset: i}
}
