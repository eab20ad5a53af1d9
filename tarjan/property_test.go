package tarjan_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yourbasic/graph"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/scc/digraph"
	"github.com/katalvlaran/scc/tarjan"
)

// TestSCC_RandomGraphsMatchOracle cross-checks component membership on
// random directed graphs against an independent implementation
// (github.com/yourbasic/graph). Only the partition is compared; emission
// order is implementation-defined and covered by the ordering tests.
func TestSCC_RandomGraphsMatchOracle(t *testing.T) {
	cases := []struct {
		n    int
		prob float64 // per-pair edge probability
		seed int64
	}{
		{n: 10, prob: 0.05, seed: 1},
		{n: 10, prob: 0.30, seed: 2},
		{n: 25, prob: 0.10, seed: 3},
		{n: 40, prob: 0.04, seed: 4},
		{n: 60, prob: 0.02, seed: 5},
		{n: 60, prob: 0.15, seed: 6},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d_p=%.2f", tc.n, tc.prob), func(t *testing.T) {
			adj := randomAdjacency(tc.n, tc.prob, tc.seed)

			g, err := digraph.New(adj)
			require.NoError(t, err)
			res, err := tarjan.SCC(g)
			require.NoError(t, err)

			oracle := graph.New(tc.n)
			for u, succs := range adj {
				for _, v := range succs {
					oracle.Add(u, v)
				}
			}
			want := graph.StrongComponents(oracle)

			require.Equal(t, canonical(want), canonical(res.Components))
			assertPartition(t, g, res)
			assertReverseTopological(t, g, res)
		})
	}
}

// randomAdjacency draws each ordered pair (u,v), u≠v, independently with
// probability prob. Deterministic for a fixed seed.
func randomAdjacency(n int, prob float64, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	adj := make([][]int, n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && rng.Float64() < prob {
				adj[u] = append(adj[u], v)
			}
		}
	}

	return adj
}

// canonical sorts nodes within each component and components by their
// smallest node, making two partitions comparable regardless of order.
func canonical(comps [][]int) [][]int {
	out := make([][]int, 0, len(comps))
	for _, c := range comps {
		cp := append([]int(nil), c...)
		slices.Sort(cp)
		out = append(out, cp)
	}
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })

	return out
}
