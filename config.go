package peg

import (
	"github.com/go-kit/kit/metrics"
	"github.com/rs/zerolog"
)

// Config bounds and instruments one parse. The zero Config is usable: no
// callstack or loop limit applies, and logging/metrics are no-ops.
type Config struct {
	// CallstackLimit bounds recursive descent depth. Zero or negative
	// disables the check.
	CallstackLimit int

	// LoopLimit bounds the number of iterations a Loop0/Loop1 combinator
	// performs before it reports ErrLoopLimit. Zero or negative disables
	// the check.
	LoopLimit int

	// Comparator is used by every primitive that does not carry its own
	// override, except TerminalChoice, to compare a source symbol against
	// a grammar literal. Nil defaults to DefaultComparator.
	Comparator Comparator

	// Logger receives structured debug events for left-recursion
	// seed/grow transitions; rule entry/exit and memoization hits are not
	// logged. The zero Logger discards everything, so untraced parsing
	// pays no cost.
	Logger zerolog.Logger

	// Metrics, if non-nil, receives counters for rule invocations and
	// memoization hits/misses.
	Metrics *Metrics
}

// Metrics groups the optional go-kit counters a Config reports through.
// Any field left nil is simply not incremented.
type Metrics struct {
	RuleCalls  metrics.Counter
	MemoHits   metrics.Counter
	MemoMisses metrics.Counter
}

func (c Config) comparator() Comparator {
	if c.Comparator != nil {
		return c.Comparator
	}
	return DefaultComparator
}

func (c Config) countRuleCall() {
	if c.Metrics != nil && c.Metrics.RuleCalls != nil {
		c.Metrics.RuleCalls.Add(1)
	}
}

func (c Config) countMemoHit() {
	if c.Metrics != nil && c.Metrics.MemoHits != nil {
		c.Metrics.MemoHits.Add(1)
	}
}

func (c Config) countMemoMiss() {
	if c.Metrics != nil && c.Metrics.MemoMisses != nil {
		c.Metrics.MemoMisses.Add(1)
	}
}
