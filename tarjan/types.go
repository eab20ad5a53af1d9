// Package tarjan defines result types, configuration options, and sentinel
// errors for the strongly connected component engine.
package tarjan

import "errors"

// Sentinel errors returned by the tarjan package.
var (
	// ErrGraphNil is returned when a nil *digraph.Graph is passed to SCC.
	ErrGraphNil = errors.New("tarjan: graph is nil")

	// ErrBadComponentHint indicates WithComponentHint was given a negative value.
	ErrBadComponentHint = errors.New("tarjan: component hint must be non-negative")
)

// Option configures optional behavior of SCC.
// Use with SCC(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for an SCC run.
// None of them affect correctness or output order; they are capacity hints.
type Options struct {
	// ComponentHint pre-sizes the output component list.
	// Useful when the caller knows the condensation size in advance
	// (e.g. re-running on graphs of a known shape). Default 0 (no hint).
	ComponentHint int
}

// DefaultOptions returns the Options an SCC run starts from:
// no component hint.
func DefaultOptions() Options {
	return Options{ComponentHint: 0}
}

// WithComponentHint returns an Option that pre-sizes the output list to
// hold k components without reallocation. k must be non-negative;
// negative values panic with ErrBadComponentHint.
func WithComponentHint(k int) Option {
	return func(o *Options) {
		if k < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadComponentHint.Error())
		}
		o.ComponentHint = k
	}
}

// Result captures the outcome of one SCC run over a graph.
type Result struct {
	// Components lists every strongly connected component exactly once,
	// in reverse topological order of the condensation: if any edge leads
	// from component X to a different component Y, then Y appears before X.
	// Within a component, nodes appear in stack-pop order with the
	// component root last; callers must not rely on that internal order
	// beyond it being fixed for a given graph.
	Components [][]int

	// ComponentOf maps each node to the position of its component in
	// Components. len(ComponentOf) == g.NodeCount().
	ComponentOf []int
}

// Count returns the number of strongly connected components.
func (r *Result) Count() int {
	return len(r.Components)
}
