// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package peg is a PEG (parsing expression grammar) combinator toolkit.
//
// Grammars are built by composing Pattern values with the combinator
// functions in this package (Sequence, Choice, Loop0, Loop1, Optional,
// And, Not, MatchAs, ...) and Rule, the only combinator that may refer to
// itself, directly or through other rules, including left-recursively.
// A Context drives one parse of a Source, accumulating a flat, source-
// ordered vector of Match values that Project turns into an AST.
//
// Unlike golang.org/x/exp/peg, which this package's internal dispatch
// style is modeled on, grammars here are not restricted to non-left-
// recursive form, carry position information as part of every match, and
// separate the symbol stream (Source) from its interpretation (Pattern),
// so the same combinator machinery parses a rune stream in a lexer
// grammar and a token stream in the parser grammar built on top of it
// (see the compiler subpackage).
//
// A Context is not safe for concurrent use. A Pattern, once built, is
// immutable and may be shared across Contexts running on different
// goroutines.
package peg
