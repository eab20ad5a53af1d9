// Package digraph defines the immutable directed graph model used by the
// scc module, together with its sentinel errors.
package digraph

import "errors"

// Sentinel errors for digraph construction and access.
var (
	// ErrInvalidEdgeIndex indicates an adjacency entry references a node
	// outside [0, N). Construction fails eagerly; no partial graph is built.
	ErrInvalidEdgeIndex = errors.New("digraph: successor index out of range")

	// ErrNodeNotFound indicates a queried node index is outside [0, N).
	ErrNodeNotFound = errors.New("digraph: node index out of range")
)

// Graph is an immutable directed graph over nodes identified by their
// position 0..N-1. Each node owns an ordered successor list; multi-edges
// and self-loops are permitted and never deduplicated.
// All fields are private: a Graph cannot be mutated after New returns.
type Graph struct {
	adj   [][]int // adj[u] holds the ordered successors of u
	edges int     // total edge count, counting duplicates
}
