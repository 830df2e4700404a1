package peg

// memoKey identifies one attempt to parse through a specific Memoize
// wrapper at a specific position. The key holds the wrapper's own
// pointer, not the wrapped Pattern, so the wrapped Pattern need not be
// comparable (a FuncPattern, being a func value, is not).
type memoKey struct {
	pattern Pattern
	pos     int
}

type memoEntry struct {
	ok      bool
	err     error
	endPos  int
	matches []Match
	errors  []Error
}

type memoizePattern struct {
	child Pattern
}

// Memoize wraps child so that repeated attempts to parse it at the same
// position are served from a cache instead of re-running the full
// (potentially exponential, under PEG backtracking) parse. A cache entry
// records every side effect of the original run — end position, the
// matches it appended, and the errors it appended — so replaying a hit
// is indistinguishable from rerunning child: it splices both the cached
// matches and the cached errors back onto ctx exactly as the original
// run's AddMatch/AddError calls did. Wrap the expensive, non-left-
// recursive subexpressions of a grammar with it; wrapping a left-
// recursive Rule directly is not meaningful, since that rule's outcome
// at a given position depends on which phase of seed/grow resolution is
// active, not on position alone.
func Memoize(child Pattern) Pattern {
	return &memoizePattern{child: child}
}

func (p *memoizePattern) Parse(ctx *Context) (bool, error) {
	key := memoKey{pattern: p, pos: ctx.Offset()}
	if entry, found := ctx.memo[key]; found {
		ctx.config.countMemoHit()
		if entry.err != nil {
			return false, entry.err
		}
		if !entry.ok {
			return false, nil
		}
		ctx.pos = entry.endPos
		ctx.matches = append(ctx.matches, entry.matches...)
		ctx.errors = append(ctx.errors, entry.errors...)
		return true, nil
	}
	ctx.config.countMemoMiss()
	startMatches := len(ctx.matches)
	startErrors := len(ctx.errors)
	ok, err := p.child.Parse(ctx)
	entry := memoEntry{ok: ok, err: err}
	if ok {
		entry.endPos = ctx.Offset()
		entry.matches = append([]Match(nil), ctx.matches[startMatches:]...)
		entry.errors = append([]Error(nil), ctx.errors[startErrors:]...)
	}
	ctx.memo[key] = entry
	return ok, err
}
