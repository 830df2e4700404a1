package compiler

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-peg/peg"
)

// ErrLex is returned when a Lexer's grammar fails to match the whole of
// its input.
var ErrLex = errors.New("compiler: lexing failed")

// Lexer turns source text into a token vector. Its Grammar is an
// ordinary peg.Pattern built over a rune Source (peg.NewRuneSource),
// with MatchAs wrapping exactly the subexpressions that should become
// tokens — whitespace and comments are typically left unwrapped, so they
// are consumed but never appear in the resulting token vector.
type Lexer struct {
	Grammar peg.Pattern
	Config  peg.Config
	Tracer  trace.Tracer
}

func (l *Lexer) tracer() trace.Tracer {
	if l.Tracer != nil {
		return l.Tracer
	}
	return otel.Tracer("github.com/go-peg/peg/compiler")
}

// Lex runs the Lexer's grammar over text and converts the resulting
// match vector into a Token vector, one Token per top-level Match, in
// source order.
func (l *Lexer) Lex(ctx context.Context, text string) ([]Token, error) {
	_, span := l.tracer().Start(ctx, "compiler.Lex")
	defer span.End()

	src := peg.NewRuneSource(text)
	res, err := peg.Parse(src, l.Grammar, l.Config)
	if err != nil {
		return nil, err
	}
	if !res.Ok {
		return nil, ErrLex
	}
	runes := []rune(text)
	tokens := make([]Token, 0, len(res.Matches))
	for _, m := range res.Matches {
		tokens = append(tokens, Token{
			Type: m.ID,
			Text: string(runes[m.Span.Begin.Offset:m.Span.End.Offset]),
			Span: m.Span,
		})
	}
	return tokens, nil
}
