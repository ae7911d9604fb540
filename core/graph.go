// File: graph.go
// Role: GraphStore. Weight lookup and in-place weight update on a caller-owned
//       Graph, plus deterministic node/edge listings.
// Determinism:
//   - Nodes() is sorted ascending.
//   - Edges() lists each undirected edge once (Head < Tail), sorted by Edge.Less.

package core

import (
	"fmt"
	"math"
	"slices"
)

// NewGraph builds a symmetric Graph from a list of undirected edges.
//
// Steps:
//  1. Reject NaN weights (ErrBadWeight) and self-loops (ErrInvalidEdge).
//  2. Reject a pair seen twice in either orientation (ErrDuplicateEdge).
//  3. Store the weight in both directions.
//
// Complexity: O(E).
func NewGraph[N Node](edges ...Edge[N]) (Graph[N], error) {
	g := make(Graph[N])
	for _, e := range edges {
		if math.IsNaN(e.Weight) {
			return nil, fmt.Errorf("%w: %v—%v", ErrBadWeight, e.Head, e.Tail)
		}
		if e.Head == e.Tail {
			return nil, fmt.Errorf("%w: self-loop on %v", ErrInvalidEdge, e.Head)
		}
		if g.HasEdge(e.Head, e.Tail) {
			return nil, fmt.Errorf("%w: %v—%v", ErrDuplicateEdge, e.Head, e.Tail)
		}
		g.ensure(e.Head)[e.Tail] = e.Weight
		g.ensure(e.Tail)[e.Head] = e.Weight
	}

	return g, nil
}

// ensure returns the neighbor map of u, creating it when absent.
func (g Graph[N]) ensure(u N) map[N]float64 {
	nbrs, ok := g[u]
	if !ok {
		nbrs = make(map[N]float64)
		g[u] = nbrs
	}

	return nbrs
}

// HasNode reports whether u is a node of g.
// Complexity: O(1).
func (g Graph[N]) HasNode(u N) bool {
	_, ok := g[u]

	return ok
}

// HasEdge reports whether g stores an edge u—v.
// Complexity: O(1).
func (g Graph[N]) HasEdge(u, v N) bool {
	_, ok := g[u][v]

	return ok
}

// Weight returns the stored weight of u—v, or ErrEdgeNotFound.
// Complexity: O(1).
func (g Graph[N]) Weight(u, v N) (float64, error) {
	w, ok := g[u][v]
	if !ok {
		return 0, fmt.Errorf("%w: %v—%v", ErrEdgeNotFound, u, v)
	}

	return w, nil
}

// UpdateWeight sets the weight of the existing edge u—v in both directions.
// It never introduces an edge: if u and v are not already adjacent it
// returns ErrEdgeNotFound and leaves g untouched.
// Complexity: O(1).
func (g Graph[N]) UpdateWeight(u, v N, w float64) error {
	if math.IsNaN(w) {
		return fmt.Errorf("%w: %v—%v", ErrBadWeight, u, v)
	}
	if !g.HasEdge(u, v) || !g.HasEdge(v, u) {
		return fmt.Errorf("%w: %v—%v", ErrEdgeNotFound, u, v)
	}
	g[u][v] = w
	g[v][u] = w

	return nil
}

// Nodes returns every node of g in ascending order.
// Complexity: O(V log V).
func (g Graph[N]) Nodes() []N {
	nodes := make([]N, 0, len(g))
	for u := range g {
		nodes = append(nodes, u)
	}
	slices.Sort(nodes)

	return nodes
}

// Edges returns each undirected edge of g once, with Head < Tail, sorted by Edge.Less.
// Complexity: O(E log E).
func (g Graph[N]) Edges() []Edge[N] {
	edges := make([]Edge[N], 0, g.EdgeCount())
	for u, nbrs := range g {
		for v, w := range nbrs {
			if u < v {
				edges = append(edges, Edge[N]{Head: u, Tail: v, Weight: w})
			}
		}
	}
	slices.SortFunc(edges, compareEdges[N])

	return edges
}

// EdgeCount returns the number of undirected edges in g.
// Complexity: O(V).
func (g Graph[N]) EdgeCount() int {
	var half int
	for _, nbrs := range g {
		half += len(nbrs)
	}

	return half / 2
}

// compareEdges adapts Edge.Less to slices.SortFunc.
func compareEdges[N Node](a, b Edge[N]) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
