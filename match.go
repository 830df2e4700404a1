package peg

// Match records one accepted span of input, tagged with a grammar-chosen
// id, together with the matches nested inside it. Matches form a tree: a
// child's Span lies inside its parent's, children appear in source
// order, and consecutive children never overlap.
type Match struct {
	ID       int
	Span     Span
	Children []Match
}

// Error records one user-level error production: an id and the span it
// was judged to cover. Unlike a Match, an Error is never a Rule's
// default output; it is only produced by the error/error_match
// combinators in errors.go.
type Error struct {
	ID   int
	Span Span
}
