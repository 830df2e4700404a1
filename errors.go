package peg

// SkipPolicy advances a Context past the input an error combinator is
// giving up on, so parsing can resume at a recognizable synchronization
// point instead of stopping outright. Each policy is independent rather
// than built as a special case of one generic "skip until predicate"
// helper, so its cost is proportional to its own job and it is testable
// on its own.
type SkipPolicy func(ctx *Context)

// SkipUntil advances the cursor up to, but not past, the next symbol
// equal to target.
func SkipUntil(target any, cmp ...Comparator) SkipPolicy {
	c := firstComparator(cmp)
	return func(ctx *Context) {
		cc := c
		if cc == nil {
			cc = ctx.cmp
		}
		for ctx.IsValid() && cc(ctx.Peek(), target) != 0 {
			ctx.Advance(1)
		}
	}
}

// SkipUntilAfter advances the cursor past the next symbol equal to
// target, consuming that symbol too.
func SkipUntilAfter(target any, cmp ...Comparator) SkipPolicy {
	until := SkipUntil(target, cmp...)
	return func(ctx *Context) {
		until(ctx)
		if ctx.IsValid() {
			ctx.Advance(1)
		}
	}
}

// SkipWhile advances the cursor while pred holds for the symbol at the
// cursor.
func SkipWhile(pred func(sym any) bool) SkipPolicy {
	return func(ctx *Context) {
		for ctx.IsValid() && pred(ctx.Peek()) {
			ctx.Advance(1)
		}
	}
}

// SkipCount advances the cursor by exactly n symbols, clamped to the end
// of input.
func SkipCount(n int) SkipPolicy {
	return func(ctx *Context) { ctx.Advance(n) }
}

// SkipNothing leaves the cursor untouched; useful when the only point of
// the error combinator is to record that something went wrong at the
// current position.
func SkipNothing() SkipPolicy {
	return func(ctx *Context) {}
}

type errorPattern struct {
	id   int
	skip SkipPolicy
}

// ErrorProduction succeeds at any valid position: it records an Error
// with the given id spanning from the current position to wherever skip
// leaves the cursor, then applies skip. At the end of input it rejects
// rather than recording an empty error past the last symbol. Use it as
// the final alternative of a choice that must otherwise always make
// progress, e.g. to report "unexpected token" and resynchronize rather
// than fail the whole parse.
func ErrorProduction(id int, skip SkipPolicy) Pattern {
	return &errorPattern{id: id, skip: skip}
}

func (p *errorPattern) Parse(ctx *Context) (bool, error) {
	if !ctx.IsValid() {
		return false, nil
	}
	begin := ctx.Position()
	p.skip(ctx)
	end := ctx.Position()
	ctx.AddError(p.id, begin, end)
	return true, nil
}

type errorMatchPattern struct {
	child Pattern
	id    int
	skip  SkipPolicy
}

// ErrorMatch runs child; if it matches, ErrorMatch is transparent. If it
// fails at a valid position, ErrorMatch records a Match with the given
// id (instead of an Error) spanning from the current position to
// wherever skip leaves the cursor, applies skip, and reports success
// anyway — turning a local parse failure into a recorded, recoverable
// placeholder so an enclosing sequence can keep going and the match tree
// stays well-formed around the gap, in place of the token that failed to
// parse. At the end of input, where there is nothing left to recover
// into, it rejects like child did.
func ErrorMatch(child Pattern, id int, skip SkipPolicy) Pattern {
	return &errorMatchPattern{child: child, id: id, skip: skip}
}

func (p *errorMatchPattern) Parse(ctx *Context) (bool, error) {
	firstChild := len(ctx.Matches())
	ok, err := p.child.Parse(ctx)
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}
	if !ctx.IsValid() {
		return false, nil
	}
	begin := ctx.Position()
	p.skip(ctx)
	end := ctx.Position()
	ctx.AddMatch(p.id, Span{Begin: begin, End: end}, firstChild)
	return true, nil
}
