package peg

// Rule is the only combinator that may refer to itself, directly or
// through other rules — including left-recursively. A Rule wraps a body
// Pattern that is normally built after the Rule itself, via SetBody, so
// that recursive references can close over the Rule's own pointer
// identity (stable across the life of the grammar, unlike a Go value
// which could be copied).
type Rule struct {
	name string
	body Pattern
}

// NewRule returns an empty rule named name. Set its body with SetBody
// before parsing: an unset rule always rejects.
func NewRule(name string) *Rule {
	return &Rule{name: name}
}

// Name returns the rule's name, for diagnostics and tracing.
func (r *Rule) Name() string { return r.name }

// SetBody installs body as the rule's expression. Grammars with cyclic
// rule references build every Rule with NewRule first, wire them into
// each other's bodies with ordinary Go pointers, and call SetBody last.
func (r *Rule) SetBody(body Pattern) { r.body = body }

// leftRecursionSignal propagates from a rule reference reentered at the
// same position it is already being parsed at, up through whichever
// combinators sit between that reference and the Rule frame that owns
// the recursion, which is the only frame allowed to catch it (a matching
// rule pointer) — any other frame propagates it further, mirroring
// Rule.Parse's reentry check against pos rather than rule identity alone.
type leftRecursionSignal struct {
	rule *Rule
}

func (s *leftRecursionSignal) Error() string { return "peg: unresolved left recursion" }

// Parse implements the seed/grow left-recursion resolution protocol.
// On a rule's first entry at a given position it parses the body
// normally. If the body recurses back into this same rule at the same
// position before consuming anything, that reentry raises a
// leftRecursionSignal instead of recursing forever; the frame that
// pushed the original entry catches its own signal and resolves it:
// first a "reject" pass, where any further reentry to this rule at this
// position fails outright, forcing a non-recursive alternative to
// establish a seed match; then repeated "accept" passes, where a reentry
// instead succeeds immediately without consuming input — standing in
// for the already-parsed left part — so the rest of the alternative can
// extend the match. Growth stops the first time a pass fails to match or
// fails to advance the cursor.
func (r *Rule) Parse(ctx *Context) (bool, error) {
	if r.body == nil {
		return false, nil
	}
	if err := ctx.enter(); err != nil {
		return false, err
	}
	defer ctx.leave()
	ctx.config.countRuleCall()

	pos := ctx.Offset()
	frame, pushed := ctx.pushRule(r, pos)
	if !pushed {
		switch frame.mode {
		case lrNone:
			return false, &leftRecursionSignal{rule: r}
		case lrReject:
			return false, nil
		case lrAccept:
			frame.mode = lrAccepted
			return true, nil
		default: // lrAccepted
			return true, nil
		}
	}
	defer ctx.popRule(r)

	begin := ctx.State()
	ok, err := r.body.Parse(ctx)
	if sig, isSig := err.(*leftRecursionSignal); isSig && sig.rule == r {
		return r.resolve(ctx, frame, begin)
	}
	return ok, err
}

func (r *Rule) resolve(ctx *Context, frame *ruleFrame, begin State) (bool, error) {
	ctx.config.Logger.Debug().Str("rule", r.name).Msg("left recursion: seeding")
	ctx.SetState(begin)
	frame.mode = lrReject
	ok, err := r.body.Parse(ctx)
	frame.mode = lrNone
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	for {
		preGrow := ctx.State()
		// The reentry that stands in for the left part happens at the
		// cursor the previous pass left, not at the rule's entry offset.
		frame.pos = preGrow.pos
		frame.mode = lrAccept
		ok2, err2 := r.body.Parse(ctx)
		frame.mode = lrNone
		if err2 != nil {
			return false, err2
		}
		if !ok2 || ctx.Offset() == preGrow.pos {
			ctx.SetState(preGrow)
			break
		}
		// A single match opened at the grow point covers the whole left
		// part: fold the matches recorded since entry into it as its
		// leading children and start its span at the rule's entry.
		if n := len(ctx.matches); n == preGrow.matchCount+1 && ctx.matches[n-1].Span.Begin.Offset == preGrow.pos {
			grown := ctx.matches[n-1]
			grown.Children = append(append([]Match(nil), ctx.matches[begin.matchCount:preGrow.matchCount]...), grown.Children...)
			grown.Span.Begin = ctx.source.Position(begin.pos)
			ctx.matches = append(ctx.matches[:begin.matchCount], grown)
		}
		ctx.config.Logger.Debug().Str("rule", r.name).Int("end", ctx.Offset()).Msg("left recursion: grew")
	}
	return true, nil
}
