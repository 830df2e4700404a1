package compiler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-peg/peg"
	"github.com/go-peg/peg/compiler"
)

const (
	tokIdent = iota + 1
	tokInt
	tokPlus
)

const idExpr = 100

func wordlangLexer() *compiler.Lexer {
	letter := peg.Range('a', 'z')
	digit := peg.Range('0', '9')
	ws := peg.Loop1(peg.RuneChoice(" \t\n"))

	ident := peg.MatchAs(peg.Sequence(letter, peg.Loop0(peg.Choice(letter, digit))), tokIdent)
	integer := peg.MatchAs(peg.Loop1(digit), tokInt)
	plus := peg.MatchAs(peg.Terminal('+'), tokPlus)

	grammar := peg.Sequence(
		peg.Loop0(peg.Choice(ws, ident, integer, plus)),
		peg.End,
	)
	return &compiler.Lexer{Grammar: grammar}
}

func wordlangParser() *compiler.Parser {
	term := peg.Choice(peg.Terminal(tokIdent), peg.Terminal(tokInt))
	expr := peg.MatchAs(peg.Sequence(
		term,
		peg.Loop0(peg.Sequence(peg.Terminal(tokPlus), term)),
	), idExpr)
	grammar := peg.Sequence(expr, peg.End)
	return &compiler.Parser{Grammar: grammar}
}

func TestCompilerLexesAndParsesEndToEnd(t *testing.T) {
	c := &compiler.Compiler{Lexer: wordlangLexer(), Parser: wordlangParser()}

	nodes, err := c.Compile(context.Background(), "a1 + 2 + b")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.Equal(t, idExpr, nodes[0].ID)
}

func TestLexerRejectsUnknownSymbols(t *testing.T) {
	_, err := wordlangLexer().Lex(context.Background(), "a1 # b")
	require.ErrorIs(t, err, compiler.ErrLex)
}

func TestTokenSourcePositionUsesTokenSpans(t *testing.T) {
	tokens, err := wordlangLexer().Lex(context.Background(), "ab 12")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	require.Equal(t, "ab", tokens[0].Text)
	require.Equal(t, "12", tokens[1].Text)

	src := compiler.NewTokenSource(tokens)
	require.Equal(t, tokens[0].Span.Begin, src.Position(0))
}

func TestParserRejectsTrailingJunk(t *testing.T) {
	lexed, err := wordlangLexer().Lex(context.Background(), "a + b c")
	require.NoError(t, err)

	_, err = wordlangParser().Parse(context.Background(), lexed)
	require.ErrorIs(t, err, compiler.ErrParse)
}
