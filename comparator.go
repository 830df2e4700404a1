package peg

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Comparator gives the sign of "input compared to expected": zero means
// equal, negative means input sorts before expected, positive means
// input sorts after expected. Terminal, TerminalSequence, TerminalChoice
// and Range all compare through a Comparator rather than ==, so a single
// grammar can be made case-insensitive, or run over a token stream
// instead of a rune stream, without touching the grammar itself.
type Comparator func(input, expected any) int

// Typed is implemented by symbols whose identity for comparison purposes
// is an integer type tag rather than the value itself. compiler.Token
// implements it so the primitives in this package work unchanged over a
// token stream: a terminal written against a token stream compares the
// scanned token's type to an expected type tag.
type Typed interface {
	TokenType() int
}

// DefaultComparator compares runes and ints arithmetically (so Range and
// TerminalChoice's sorted-set lookup work), Typed symbols against an int
// type tag, and falls back to equality, then string ordering, for
// anything else.
func DefaultComparator(input, expected any) int {
	switch in := input.(type) {
	case rune:
		if exp, ok := expected.(rune); ok {
			return int(in) - int(exp)
		}
	case int:
		if exp, ok := expected.(int); ok {
			return in - exp
		}
	case Typed:
		if exp, ok := expected.(int); ok {
			return in.TokenType() - exp
		}
	}
	if input == expected {
		return 0
	}
	if fmt.Sprint(input) < fmt.Sprint(expected) {
		return -1
	}
	return 1
}

var foldCaser = cases.Fold()

// CaseInsensitiveComparator behaves like DefaultComparator, except rune
// symbols are Unicode case-folded before comparison, so e.g. the Kelvin
// sign (U+212A) and 'k' compare equal along with plain ASCII case pairs.
func CaseInsensitiveComparator(input, expected any) int {
	if in, ok := input.(rune); ok {
		if exp, ok := expected.(rune); ok {
			return DefaultComparator(foldRune(in), foldRune(exp))
		}
	}
	return DefaultComparator(input, expected)
}

func foldRune(r rune) rune {
	folded := foldCaser.String(string(r))
	for _, f := range folded {
		return f
	}
	return r
}
