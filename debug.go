package peg

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

type annotatePattern struct {
	child Pattern
	label string
}

// Annotate attaches a label to child and is otherwise fully transparent.
// The label is only stored: neither Dump nor Debug reads it, and nothing
// is printed.
func Annotate(child Pattern, label string) Pattern {
	return &annotatePattern{child: child, label: label}
}

func (p *annotatePattern) Parse(ctx *Context) (bool, error) {
	return p.child.Parse(ctx)
}

type debugPattern struct {
	child Pattern
	label string
}

// Debug wraps child with colored, indented trace output through pterm,
// logging entry, acceptance, rejection and error for every attempt, as a
// per-node opt-in rather than a single global trace switch.
func Debug(child Pattern, label string) Pattern {
	return &debugPattern{child: child, label: label}
}

func (p *debugPattern) Parse(ctx *Context) (bool, error) {
	indent := strings.Repeat("  ", ctx.depth)
	pos := ctx.Position()
	pterm.Debug.Printfln("%s-> %s @ %s", indent, p.label, pos)
	ok, err := p.child.Parse(ctx)
	switch {
	case err != nil:
		pterm.Error.Printfln("%s<- %s error: %v", indent, p.label, err)
	case ok:
		pterm.Success.Printfln("%s<- %s matched to %s", indent, p.label, ctx.Position())
	default:
		pterm.Warning.Printfln("%s<- %s rejected", indent, p.label)
	}
	return ok, err
}

// Dump renders an AST rooted at n as an indented tree, through pterm's
// tree renderer.
func Dump(n *Node) (string, error) {
	return pterm.DefaultTree.WithRoot(nodeToTree(n)).Srender()
}

func nodeToTree(n *Node) pterm.TreeNode {
	t := pterm.TreeNode{Text: fmt.Sprintf("#%d %s", n.ID, n.Span)}
	for _, c := range n.Children {
		t.Children = append(t.Children, nodeToTree(c))
	}
	return t
}
