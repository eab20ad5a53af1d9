// Package scc is a compact toolkit for strongly connected component
// analysis of directed graphs — the backbone of cycle detection,
// dependency condensation, and liveness/dead-code passes.
//
// 🚀 What is scc?
//
//	A small, deterministic library built around Tarjan's single-pass
//	algorithm:
//		• Graph model: immutable index-based adjacency lists with eager validation
//		• Engine: iterative depth-first traversal with discovery indices & low-links
//		• Output: components emitted in reverse topological order of the condensation
//
// ✨ Why choose scc?
//
//   - Predictable – same graph, same successor order ⇒ same output, every run
//   - Safe at depth – an explicit frame stack replaces native recursion,
//     so million-node chains cannot blow the goroutine stack
//   - Fail-fast – invalid adjacency input is rejected before any traversal
//   - Pure Go – no cgo, no runtime surprises
//
// The repository is organized into three subpackages:
//
//	digraph/ — immutable directed graph built from adjacency lists
//	tarjan/  — the SCC engine and its result types
//	parse/   — numeric token parsing, used to assemble demo graphs from text
//
// Quick ASCII example:
//
//	    A ──► B ──► D
//	    ▲    │
//	    └─ C ◄┘
//
//	{A,B,C} form one component; D is a singleton emitted before it.
//
// See each package's doc.go for contracts, complexity, and error semantics.
//
//	go get github.com/katalvlaran/scc
package scc
