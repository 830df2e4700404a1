package compiler

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-peg/peg"
)

// ErrParse is returned when a Parser's grammar fails to match the whole
// of its input token vector.
var ErrParse = errors.New("compiler: parsing failed")

// Parser turns a token vector into a peg.Result. Its Grammar is an
// ordinary peg.Pattern, built the same way a rune grammar is, except its
// terminals compare against token type tags (via peg.Typed) rather than
// runes, and it runs over a TokenSource instead of a peg.NewRuneSource.
type Parser struct {
	Grammar peg.Pattern
	Config  peg.Config
	Tracer  trace.Tracer
}

func (p *Parser) tracer() trace.Tracer {
	if p.Tracer != nil {
		return p.Tracer
	}
	return otel.Tracer("github.com/go-peg/peg/compiler")
}

// Parse runs the Parser's grammar over tokens.
func (p *Parser) Parse(ctx context.Context, tokens []Token) (peg.Result, error) {
	_, span := p.tracer().Start(ctx, "compiler.Parse")
	defer span.End()

	src := NewTokenSource(tokens)
	res, err := peg.Parse(src, p.Grammar, p.Config)
	if err != nil {
		return peg.Result{}, err
	}
	if !res.Ok {
		return res, ErrParse
	}
	return res, nil
}
