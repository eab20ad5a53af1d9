// Package digraph provides an index-based directed graph:
//
//   - Construction from adjacency lists (New) or edge pairs (FromEdges)
//   - Eager validation: every successor must lie in [0, N)
//   - Deep-copied storage, read-only after construction
//
// The model imposes no uniqueness or acyclicity constraint on edges;
// self-loops and parallel edges pass through untouched.
package digraph

import (
	"fmt"
	"strconv"
	"strings"
)

// New constructs a Graph from per-node successor lists.
// Node u's successors are adj[u]; N is len(adj). The input is deep-copied
// so later mutation of adj cannot affect the Graph.
// Returns ErrInvalidEdgeIndex (wrapped with the offending node and entry)
// if any successor lies outside [0, N); no Graph is produced in that case.
// A nil or empty adj is a valid zero-node graph.
// Complexity: O(V+E) time and memory.
func New(adj [][]int) (*Graph, error) {
	n := len(adj)
	cp := make([][]int, n)
	edges := 0
	for u, succs := range adj {
		for _, s := range succs {
			if s < 0 || s >= n {
				return nil, fmt.Errorf("digraph: node %d lists successor %d, want [0,%d): %w",
					u, s, n, ErrInvalidEdgeIndex)
			}
		}
		cp[u] = make([]int, len(succs))
		copy(cp[u], succs)
		edges += len(succs)
	}

	return &Graph{adj: cp, edges: edges}, nil
}

// FromEdges constructs an n-node Graph from (from, to) pairs, preserving
// the order in which edges are listed per source node.
// Both endpoints must lie in [0, n); otherwise ErrInvalidEdgeIndex.
// Complexity: O(V+E).
func FromEdges(n int, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("digraph: negative node count %d: %w", n, ErrInvalidEdgeIndex)
	}
	adj := make([][]int, n)
	for _, e := range edges {
		if e[0] < 0 || e[0] >= n {
			return nil, fmt.Errorf("digraph: edge source %d, want [0,%d): %w", e[0], n, ErrInvalidEdgeIndex)
		}
		adj[e[0]] = append(adj[e[0]], e[1])
	}

	// Successor validation and deep copy happen in New.
	return New(adj)
}

// NodeCount returns N, the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.adj)
}

// EdgeCount returns the total number of edges, counting parallel edges
// and self-loops individually. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Successors returns a copy of node v's ordered successor list.
// Returns ErrNodeNotFound if v lies outside [0, N).
// Complexity: O(deg(v)).
func (g *Graph) Successors(v int) ([]int, error) {
	if v < 0 || v >= len(g.adj) {
		return nil, fmt.Errorf("digraph: Successors(%d): %w", v, ErrNodeNotFound)
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Degree returns the out-degree of node v, or ErrNodeNotFound if v is
// outside [0, N). Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= len(g.adj) {
		return 0, fmt.Errorf("digraph: Degree(%d): %w", v, ErrNodeNotFound)
	}

	return len(g.adj[v]), nil
}

// HasEdge reports whether at least one edge u→v exists.
// Returns ErrNodeNotFound if either endpoint is outside [0, N).
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) (bool, error) {
	if u < 0 || u >= len(g.adj) {
		return false, fmt.Errorf("digraph: HasEdge(%d,%d): %w", u, v, ErrNodeNotFound)
	}
	if v < 0 || v >= len(g.adj) {
		return false, fmt.Errorf("digraph: HasEdge(%d,%d): %w", u, v, ErrNodeNotFound)
	}
	for _, s := range g.adj[u] {
		if s == v {
			return true, nil
		}
	}

	return false, nil
}

// InternalAdjacency returns the graph's backing adjacency lists without
// copying. The returned slices are shared with the Graph and must be
// treated as read-only; traversal engines use this to avoid per-node
// allocations. Complexity: O(1).
func (g *Graph) InternalAdjacency() [][]int {
	return g.adj
}

// String renders the adjacency lists one node per line, e.g.
//
//	0: 1
//	1: 2 3
//
// Intended for demos and test failure messages, not parsing.
func (g *Graph) String() string {
	var b strings.Builder
	for u, succs := range g.adj {
		b.WriteString(strconv.Itoa(u))
		b.WriteByte(':')
		for _, s := range succs {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(s))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
