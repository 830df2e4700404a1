package compiler

import (
	"context"

	"github.com/go-peg/peg"
)

// Compiler wires a Lexer and Parser into a single source-text-to-AST
// pipeline: one grammar over runes producing tokens, one grammar over
// those tokens producing an AST, both built from the same combinator
// machinery.
type Compiler struct {
	Lexer  *Lexer
	Parser *Parser

	// Factory builds AST nodes from the parser stage's match vector; nil
	// uses peg.DefaultFactory.
	Factory peg.NodeFactory
}

// Compile lexes then parses text, returning the projected AST forest.
func (c *Compiler) Compile(ctx context.Context, text string) ([]*peg.Node, error) {
	tokens, err := c.Lexer.Lex(ctx, text)
	if err != nil {
		return nil, err
	}
	res, err := c.Parser.Parse(ctx, tokens)
	if err != nil {
		return nil, err
	}
	return peg.ProjectAll(res.Matches, c.Factory)
}
