package peg

import "errors"

type sequencePattern struct {
	children []Pattern
}

// Sequence matches its children in order, all-or-nothing: on any
// sub-failure it restores the Context to the sequence's start State.
// Adjacent Sequence values passed in are flattened at construction,
// keeping the tree shallow the way nested variadic operator chains
// would in a language with operator overloading.
func Sequence(children ...Pattern) Pattern {
	flat := make([]Pattern, 0, len(children))
	for _, c := range children {
		if c == nil {
			continue
		}
		if s, ok := c.(*sequencePattern); ok {
			flat = append(flat, s.children...)
		} else {
			flat = append(flat, c)
		}
	}
	switch len(flat) {
	case 0:
		return BoolPattern(true)
	case 1:
		return flat[0]
	default:
		return &sequencePattern{children: flat}
	}
}

func (p *sequencePattern) Parse(ctx *Context) (bool, error) {
	start := ctx.State()
	for _, c := range p.children {
		ok, err := c.Parse(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			ctx.SetState(start)
			return false, nil
		}
	}
	return true, nil
}

type choicePattern struct {
	children []Pattern
}

// Choice tries each child in order and accepts at the first acceptance,
// restoring State between failed attempts. Adjacent Choice values are
// flattened at construction.
func Choice(children ...Pattern) Pattern {
	flat := make([]Pattern, 0, len(children))
	for _, c := range children {
		if c == nil {
			continue
		}
		if ch, ok := c.(*choicePattern); ok {
			flat = append(flat, ch.children...)
		} else {
			flat = append(flat, c)
		}
	}
	switch len(flat) {
	case 0:
		return BoolPattern(false)
	case 1:
		return flat[0]
	default:
		return &choicePattern{children: flat}
	}
}

func (p *choicePattern) Parse(ctx *Context) (bool, error) {
	start := ctx.State()
	for _, c := range p.children {
		ok, err := c.Parse(ctx)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		ctx.SetState(start)
	}
	return false, nil
}

type loopPattern struct {
	child   Pattern
	atLeast int
}

// Loop0 matches child zero or more times, never failing.
func Loop0(child Pattern) Pattern { return &loopPattern{child: child, atLeast: 0} }

// Loop1 matches child one or more times, failing if child never matches.
func Loop1(child Pattern) Pattern { return &loopPattern{child: child, atLeast: 1} }

// ErrLoopLimit is raised when a Loop0/Loop1 combinator performs more
// iterations than Config.LoopLimit allows, guarding against a runaway
// grammar rather than hanging.
var ErrLoopLimit = errors.New("peg: loop limit exceeded")

func (p *loopPattern) Parse(ctx *Context) (bool, error) {
	count := 0
	for {
		if ctx.config.LoopLimit > 0 && count >= ctx.config.LoopLimit {
			return false, ErrLoopLimit
		}
		before := ctx.State()
		beforePos := ctx.Offset()
		ok, err := p.child.Parse(ctx)
		if brk, isBreak := err.(*loopBreakSignal); isBreak {
			ctx.SetState(before)
			if brk.level > 0 {
				return count >= p.atLeast, &loopBreakSignal{level: brk.level - 1}
			}
			break
		}
		if err != nil {
			return false, err
		}
		if !ok {
			ctx.SetState(before)
			break
		}
		count++
		if ctx.Offset() == beforePos {
			// Zero-width acceptance: stop here rather than loop forever.
			break
		}
	}
	return count >= p.atLeast, nil
}

type optionalPattern struct{ child Pattern }

// Optional matches child if it can, and otherwise succeeds without
// consuming anything.
func Optional(child Pattern) Pattern { return &optionalPattern{child: child} }

func (p *optionalPattern) Parse(ctx *Context) (bool, error) {
	start := ctx.State()
	ok, err := p.child.Parse(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		ctx.SetState(start)
	}
	return true, nil
}

type andPattern struct{ child Pattern }

// And is the positive lookahead predicate: it succeeds iff child would
// match here, but never consumes input.
func And(child Pattern) Pattern { return &andPattern{child: child} }

func (p *andPattern) Parse(ctx *Context) (bool, error) {
	start := ctx.State()
	ok, err := p.child.Parse(ctx)
	ctx.SetState(start)
	if err != nil {
		return false, err
	}
	return ok, nil
}

type notPattern struct{ child Pattern }

// Not is the negative lookahead predicate: it succeeds iff child would
// not match here, and never consumes input.
func Not(child Pattern) Pattern { return &notPattern{child: child} }

func (p *notPattern) Parse(ctx *Context) (bool, error) {
	start := ctx.State()
	ok, err := p.child.Parse(ctx)
	ctx.SetState(start)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// Difference matches a but not b: equivalent to Sequence(Not(b), a).
func Difference(a, b Pattern) Pattern {
	return Sequence(Not(b), a)
}

type matchPattern struct {
	child Pattern
	id    int
}

// MatchAs runs child; on success it records a Match with the given id
// spanning the range child consumed, adopting any matches child itself
// produced as that Match's children.
func MatchAs(child Pattern, id int) Pattern { return &matchPattern{child: child, id: id} }

func (p *matchPattern) Parse(ctx *Context) (bool, error) {
	firstChild := len(ctx.Matches())
	begin := ctx.Position()
	ok, err := p.child.Parse(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	end := ctx.Position()
	ctx.AddMatch(p.id, Span{Begin: begin, End: end}, firstChild)
	return true, nil
}

// loopBreakSignal is the non-local exit LoopBreak raises: it unwinds
// through `level` enclosing Loop0/Loop1 frames (0 = the innermost), each
// of which catches and stops rather than reporting failure, and
// re-raises a decremented signal for any level it is not meant for.
type loopBreakSignal struct{ level int }

func (s *loopBreakSignal) Error() string { return "peg: loop break" }

// LoopBreak unconditionally exits the n-th enclosing loop (0 = the
// innermost Loop0/Loop1), keeping what that loop matched in earlier
// iterations; the loop accepts if those iterations reach its minimum
// count (so a Loop1 broken before any iteration rejects). It is a
// grammar-authoring escape hatch
// for "stop repeating once you see X", expressible without a semantic
// predicate.
func LoopBreak(n int) Pattern { return loopBreakPattern{level: n} }

type loopBreakPattern struct{ level int }

func (p loopBreakPattern) Parse(ctx *Context) (bool, error) {
	return false, &loopBreakSignal{level: p.level}
}
