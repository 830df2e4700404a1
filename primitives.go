package peg

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

func firstComparator(cmp []Comparator) Comparator {
	if len(cmp) > 0 {
		return cmp[0]
	}
	return nil
}

type terminalPattern struct {
	value any
	cmp   Comparator
}

// Terminal matches a single symbol comparing equal (under the Context's
// Comparator, or cmp if given) to value.
func Terminal(value any, cmp ...Comparator) Pattern {
	return &terminalPattern{value: value, cmp: firstComparator(cmp)}
}

func (p *terminalPattern) cmpFor(ctx *Context) Comparator {
	if p.cmp != nil {
		return p.cmp
	}
	return ctx.cmp
}

func (p *terminalPattern) Parse(ctx *Context) (bool, error) {
	if !ctx.IsValid() {
		return false, nil
	}
	if p.cmpFor(ctx)(ctx.Peek(), p.value) != 0 {
		return false, nil
	}
	ctx.Advance(1)
	return true, nil
}

type terminalSequencePattern struct {
	values []any
	cmp    Comparator
}

// TerminalSequence matches values in order, all-or-nothing: on any
// mismatch the cursor is restored to the sequence's start.
func TerminalSequence(values []any, cmp ...Comparator) Pattern {
	return &terminalSequencePattern{values: values, cmp: firstComparator(cmp)}
}

func (p *terminalSequencePattern) Parse(ctx *Context) (bool, error) {
	cmp := p.cmp
	if cmp == nil {
		cmp = ctx.cmp
	}
	start := ctx.State()
	for _, v := range p.values {
		if !ctx.IsValid() || cmp(ctx.Peek(), v) != 0 {
			ctx.SetState(start)
			return false, nil
		}
		ctx.Advance(1)
	}
	return true, nil
}

// StringTerminal is a convenience over TerminalSequence for rune sources:
// it matches the runes of s in order.
func StringTerminal(s string, cmp ...Comparator) Pattern {
	runes := []rune(s)
	values := make([]any, len(runes))
	for i, r := range runes {
		values[i] = r
	}
	return TerminalSequence(values, cmp...)
}

// terminalChoicePattern matches a single symbol against a sorted set,
// giving O(log n) membership via a red-black tree instead of a linear
// scan.
type terminalChoicePattern struct {
	set *treeset.Set
}

// TerminalChoice matches a single symbol if it equals any element of
// values, via binary search against the (once) sorted set. The set is
// ordered and searched with cmp if given and with DefaultComparator
// otherwise; the Context's Comparator is not consulted.
func TerminalChoice(values []any, cmp ...Comparator) Pattern {
	order := firstComparator(cmp)
	if order == nil {
		order = DefaultComparator
	}
	return &terminalChoicePattern{set: treeset.NewWith(utils.Comparator(order), values...)}
}

// RuneChoice is a convenience over TerminalChoice for a set of runes.
func RuneChoice(runes string, cmp ...Comparator) Pattern {
	values := make([]any, 0, len(runes))
	for _, r := range runes {
		values = append(values, r)
	}
	return TerminalChoice(values, cmp...)
}

func (p *terminalChoicePattern) Parse(ctx *Context) (bool, error) {
	if !ctx.IsValid() {
		return false, nil
	}
	if !p.set.Contains(ctx.Peek()) {
		return false, nil
	}
	ctx.Advance(1)
	return true, nil
}

type rangePattern struct {
	min, max any
	cmp      Comparator
}

// Range matches a single symbol s with min <= s <= max under the
// Comparator. Range panics at construction time if min sorts after max,
// an invalid-argument programmer error caught eagerly rather than
// silently rejecting every input at parse time.
func Range(min, max any, cmp ...Comparator) Pattern {
	c := firstComparator(cmp)
	order := c
	if order == nil {
		order = DefaultComparator
	}
	if order(min, max) > 0 {
		panic("peg: Range: min sorts after max")
	}
	return &rangePattern{min: min, max: max, cmp: c}
}

func (p *rangePattern) Parse(ctx *Context) (bool, error) {
	if !ctx.IsValid() {
		return false, nil
	}
	cmp := p.cmp
	if cmp == nil {
		cmp = ctx.cmp
	}
	sym := ctx.Peek()
	if cmp(sym, p.min) < 0 || cmp(sym, p.max) > 0 {
		return false, nil
	}
	ctx.Advance(1)
	return true, nil
}

type endPattern struct{}

// End succeeds iff the cursor is at the end of input; it never advances.
var End Pattern = endPattern{}

func (endPattern) Parse(ctx *Context) (bool, error) { return ctx.IsEnd(), nil }

type anyPattern struct{}

// Any succeeds iff a symbol is available, and advances past it.
var Any Pattern = anyPattern{}

func (anyPattern) Parse(ctx *Context) (bool, error) {
	if !ctx.IsValid() {
		return false, nil
	}
	ctx.Advance(1)
	return true, nil
}

type boolPattern bool

// BoolPattern always returns v, consuming nothing; useful as an
// always-succeed/always-fail leaf when building a grammar programmatically.
func BoolPattern(v bool) Pattern { return boolPattern(v) }

func (p boolPattern) Parse(ctx *Context) (bool, error) { return bool(p), nil }

type funcPattern func(ctx *Context) (bool, error)

// FuncPattern wraps an arbitrary callable as a Pattern, for grammar rules
// that need logic the combinator algebra doesn't otherwise express
// (semantic predicates, lookahead against external state). The callable
// must honor Pattern's contract: leave the Context's State unchanged on
// a local (false, nil) rejection.
func FuncPattern(f func(ctx *Context) (bool, error)) Pattern { return funcPattern(f) }

func (f funcPattern) Parse(ctx *Context) (bool, error) { return f(ctx) }
