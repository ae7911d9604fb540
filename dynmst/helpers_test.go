package dynmst_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstkit/core"
)

// triangle returns A—B(1), B—C(1), A—C(5) with MST {A—B, B—C}.
func triangle(t testing.TB) (core.Graph[string], core.Tree[string]) {
	t.Helper()
	g, err := core.NewGraph(
		core.Edge[string]{Head: "A", Tail: "B", Weight: 1},
		core.Edge[string]{Head: "B", Tail: "C", Weight: 1},
		core.Edge[string]{Head: "A", Tail: "C", Weight: 5},
	)
	require.NoError(t, err)
	tr, err := core.NewTree(g, [2]string{"A", "B"}, [2]string{"B", "C"})
	require.NoError(t, err)

	return g, tr
}

// kruskal is the reference MST used to check minimality after each adjustment.
//
// Steps:
//  1. Sort edges by ascending weight (g.Edges is already sorted by weight, then endpoints).
//  2. Initialize a disjoint-set with path halving and union by rank.
//  3. Keep each edge whose endpoints lie in different sets, until |V|-1 edges.
//
// Complexity: O(E log E + α(V)·E).
func kruskal[N core.Node](t testing.TB, g core.Graph[N]) (core.Tree[N], float64) {
	t.Helper()
	nodes := g.Nodes()
	parent := make(map[N]N, len(nodes))
	rank := make(map[N]int, len(nodes))
	for _, v := range nodes {
		parent[v] = v
	}
	find := func(u N) N {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	tr, err := core.NewTree(g)
	require.NoError(t, err)
	var total float64
	for _, e := range g.Edges() {
		ru, rv := find(e.Head), find(e.Tail)
		if ru == rv {
			continue
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
		tr.Add(e.Head, e.Tail)
		total += e.Weight
		if tr.EdgeCount() == len(nodes)-1 {
			break
		}
	}
	require.Equal(t, len(nodes)-1, tr.EdgeCount(), "reference graph must be connected")

	return tr, total
}

// buildMediumGraph creates a connected weighted graph with n vertices and edgesCount edges.
//   - A chain V0—V1—…—V(n-1) guarantees connectivity.
//   - Extra random non-parallel edges fill up to edgesCount.
//
// The generator is seeded so repeated runs build the same graph.
func buildMediumGraph(t testing.TB, n, edgesCount int, seed int64) core.Graph[string] {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	name := func(i int) string { return fmt.Sprintf("V%d", i) }

	edges := make([]core.Edge[string], 0, edgesCount)
	seen := make(map[[2]int]bool, edgesCount)
	add := func(u, v int, w float64) bool {
		if u > v {
			u, v = v, u
		}
		if u == v || seen[[2]int{u, v}] {
			return false
		}
		seen[[2]int{u, v}] = true
		edges = append(edges, core.Edge[string]{Head: name(u), Tail: name(v), Weight: w})

		return true
	}

	for i := 1; i < n; i++ {
		add(i-1, i, 1.0+r.Float64()*9)
	}
	for len(edges) < edgesCount {
		add(r.Intn(n), r.Intn(n), 1.0+r.Float64()*99)
	}

	g, err := core.NewGraph(edges...)
	require.NoError(t, err)

	return g
}

// treePairs lists tree edges as sorted "U-V" strings for readable comparisons.
func treePairs[N core.Node](tr core.Tree[N]) []string {
	var out []string
	for u, nbrs := range tr {
		for v := range nbrs {
			if u < v {
				out = append(out, fmt.Sprintf("%v-%v", u, v))
			}
		}
	}
	sort.Strings(out)

	return out
}
