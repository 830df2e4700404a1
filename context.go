package peg

import (
	"errors"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// State is the rollback triple a failed alternative restores: the
// cursor, and the lengths of the match and error vectors. Restoring a
// State truncates those vectors, discarding anything a failed attempt
// appended.
//
// The per-rule recursion stacks (see ruleFrame) need no separate
// snapshot: every push a Rule.Parse call makes is undone by a deferred
// pop scoped to that same call, so they stay balanced regardless of how
// far backtracking unwinds, without Context needing to capture them.
type State struct {
	pos        int
	matchCount int
	errorCount int
}

// ruleFrame is one entry in a Rule's per-context recursion stack: the
// position the rule was entered at, and, once a left-recursion cycle
// through it has been detected, which phase of the seed/grow protocol is
// active for that entry.
type ruleFrame struct {
	pos  int
	mode lrMode
}

type lrMode int

const (
	lrNone lrMode = iota
	lrReject
	lrAccept
	lrAccepted
)

// Context is the mutable state threaded through one parse: the cursor,
// the accumulated match and error vectors, and the per-rule recursion
// bookkeeping that makes left recursion resolvable. A Context is not
// safe for concurrent use; build one per goroutine over a shared,
// immutable Pattern tree.
type Context struct {
	source Source
	pos    int

	matches []Match
	errors  []Error

	cmp    Comparator
	config Config

	ruleStacks map[*Rule]*arraystack.Stack
	memo       map[memoKey]memoEntry

	depth int
}

// NewContext builds a Context ready to parse src from its first symbol.
func NewContext(src Source, config Config) *Context {
	return &Context{
		source:     src,
		cmp:        config.comparator(),
		config:     config,
		ruleStacks: make(map[*Rule]*arraystack.Stack),
		memo:       make(map[memoKey]memoEntry),
	}
}

// IsValid reports whether the cursor addresses a real symbol.
func (c *Context) IsValid() bool { return c.pos < c.source.Len() }

// IsEnd reports whether the cursor is at or past the end of the source.
func (c *Context) IsEnd() bool { return c.pos >= c.source.Len() }

// Peek returns the symbol at the cursor. Only valid when IsValid is true.
func (c *Context) Peek() any { return c.source.At(c.pos) }

// Advance moves the cursor forward by n symbols, clamped to the end of
// the source.
func (c *Context) Advance(n int) {
	c.pos += n
	if c.pos > c.source.Len() {
		c.pos = c.source.Len()
	}
}

// Position returns the source Position of the cursor.
func (c *Context) Position() Position { return c.source.Position(c.pos) }

// Offset returns the raw cursor. Rule-recursion detection keys on this
// rather than the richer Position so it works identically whether or not
// line/column tracking is enabled.
func (c *Context) Offset() int { return c.pos }

// Compare applies the Context's Comparator.
func (c *Context) Compare(input, expected any) int { return c.cmp(input, expected) }

// Config returns the Config this Context was built with.
func (c *Context) Config() Config { return c.config }

// State captures the rollback triple.
func (c *Context) State() State {
	return State{pos: c.pos, matchCount: len(c.matches), errorCount: len(c.errors)}
}

// SetState restores a previously captured State, discarding any matches
// or errors recorded since.
func (c *Context) SetState(s State) {
	c.pos = s.pos
	c.matches = c.matches[:s.matchCount]
	c.errors = c.errors[:s.errorCount]
}

// Matches returns the top-level matches accumulated so far, in source
// order.
func (c *Context) Matches() []Match { return c.matches }

// Errors returns the errors recorded so far, in discovery order.
func (c *Context) Errors() []Error { return c.errors }

// AddMatch pops the matches appended since index firstChild out of the
// flat match vector and attaches them as children of a new Match
// appended in their place, keeping the vector a flat, source-ordered,
// tree-by-index encoding of the match tree.
func (c *Context) AddMatch(id int, span Span, firstChild int) {
	children := append([]Match(nil), c.matches[firstChild:]...)
	c.matches = append(c.matches[:firstChild], Match{ID: id, Span: span, Children: children})
}

// AddError appends an error production. If begin and end coincide, end
// is advanced by one symbol so every recorded error has nonzero extent.
func (c *Context) AddError(id int, begin, end Position) {
	if begin.Offset == end.Offset {
		next := end.Offset + 1
		if next > c.source.Len() {
			next = c.source.Len()
		}
		end = c.source.Position(next)
	}
	c.errors = append(c.errors, Error{ID: id, Span: Span{Begin: begin, End: end}})
}

// ErrCallstackOverflow is a fatal error: the grammar recursed deeper than
// Config.CallstackLimit allows.
var ErrCallstackOverflow = errors.New("peg: callstack limit exceeded")

func (c *Context) enter() error {
	if c.config.CallstackLimit > 0 && c.depth >= c.config.CallstackLimit {
		return ErrCallstackOverflow
	}
	c.depth++
	return nil
}

func (c *Context) leave() { c.depth-- }

// pushRule registers this Context as currently evaluating rule at pos.
// It returns the frame now on top of rule's stack and whether a new
// frame was pushed: if the rule is already active at exactly this
// position, nothing is pushed and the existing (outer) frame is
// returned instead, so the caller can read or drive its resolution mode.
func (c *Context) pushRule(rule *Rule, pos int) (*ruleFrame, bool) {
	stack, ok := c.ruleStacks[rule]
	if !ok {
		stack = arraystack.New()
		c.ruleStacks[rule] = stack
	}
	if top, ok := stack.Peek(); ok {
		if f := top.(*ruleFrame); f.pos == pos {
			return f, false
		}
	}
	f := &ruleFrame{pos: pos, mode: lrNone}
	stack.Push(f)
	return f, true
}

func (c *Context) popRule(rule *Rule) {
	c.ruleStacks[rule].Pop()
}
