package peg

// Result is the outcome of one top-level Parse call: whether the
// grammar accepted, the position it reached, the flat match vector
// accumulated along the way, and any errors recorded by error-recovery
// combinators.
type Result struct {
	Ok      bool
	End     Position
	Matches []Match
	Errors  []Error
}

// Parse runs pattern once over src and reports the Result. A non-nil
// error means a fatal condition was hit (ErrCallstackOverflow,
// ErrLoopLimit, or an error surfaced by a FuncPattern); ordinary
// rejection is reported through Result.Ok, not through the error.
func Parse(src Source, pattern Pattern, config Config) (Result, error) {
	ctx := NewContext(src, config)
	ok, err := pattern.Parse(ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Ok:      ok,
		End:     ctx.Position(),
		Matches: ctx.Matches(),
		Errors:  ctx.Errors(),
	}, nil
}

// ParseString is a convenience over Parse for a rune Source built from
// text.
func ParseString(text string, pattern Pattern, config Config) (Result, error) {
	return Parse(NewRuneSource(text), pattern, config)
}
