package dynmst_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mstkit/dynmst"
)

// BenchmarkAdjust_Random measures random single-edge updates on a graph with
// 500 vertices and 2000 edges; the tree is seeded once by Kruskal and then
// kept minimum by the updates themselves.
func BenchmarkAdjust_Random(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000, 42) // pre-build graph once
	tr, _ := kruskal(b, g)
	edges := g.Edges()
	adj := dynmst.New[string]()
	r := rand.New(rand.NewSource(1))
	b.ResetTimer() // exclude graph construction

	for i := 0; i < b.N; i++ {
		e := edges[r.Intn(len(edges))]
		if _, err := adj.Adjust(g, tr, e.Head, e.Tail, 1.0+r.Float64()*99); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkKruskal_Recompute is the baseline: rebuild the MST from scratch after each update.
func BenchmarkKruskal_Recompute(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000, 42)
	edges := g.Edges()
	r := rand.New(rand.NewSource(1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		e := edges[r.Intn(len(edges))]
		_ = g.UpdateWeight(e.Head, e.Tail, 1.0+r.Float64()*99)
		_, _ = kruskal(b, g)
	}
}
