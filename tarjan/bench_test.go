package tarjan_test

import (
	"testing"

	"github.com/katalvlaran/scc/digraph"
	"github.com/katalvlaran/scc/tarjan"
)

// BenchmarkSCC_Chain100k measures a 100,000-node linear chain
// 0→1→…→99999. Every node is its own component, and the frame stack
// reaches full depth, so this is the worst case for the iterative engine.
// Graph construction happens once; each iteration re-runs the analysis.
func BenchmarkSCC_Chain100k(b *testing.B) {
	const n = 100_000
	adj := make([][]int, n)
	for v := 0; v < n-1; v++ {
		adj[v] = []int{v + 1}
	}
	g, err := digraph.New(adj)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tarjan.SCC(g)
	}
}

// BenchmarkSCC_Ring100k measures a single 100,000-node cycle: the
// opposite extreme, one giant component collected in a single unwind.
func BenchmarkSCC_Ring100k(b *testing.B) {
	const n = 100_000
	adj := make([][]int, n)
	for v := 0; v < n; v++ {
		adj[v] = []int{(v + 1) % n}
	}
	g, err := digraph.New(adj)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tarjan.SCC(g, tarjan.WithComponentHint(1))
	}
}
