// File: tree.go
// Role: TreeStore. Membership, insertion and removal of tree edges on a
//       caller-owned Tree, plus weight accounting against a Graph.

package core

import (
	"fmt"
	"slices"
)

// NewTree builds a Tree over every node of g from endpoint pairs.
// Each pair must name an edge of g (ErrEdgeNotFound otherwise); the result is
// not checked for being spanning, use Verify for that.
// Complexity: O(V + k) for k pairs.
func NewTree[N Node](g Graph[N], pairs ...[2]N) (Tree[N], error) {
	t := make(Tree[N], len(g))
	for u := range g {
		t[u] = make(map[N]struct{})
	}
	for _, p := range pairs {
		if !g.HasEdge(p[0], p[1]) {
			return nil, fmt.Errorf("%w: %v—%v", ErrEdgeNotFound, p[0], p[1])
		}
		t.Add(p[0], p[1])
	}

	return t, nil
}

// Contains reports whether u—v is a tree edge.
// A node missing from t is treated as having no tree edges.
// Complexity: O(1).
func (t Tree[N]) Contains(u, v N) bool {
	_, ok := t[u][v]

	return ok
}

// Add inserts u—v in both directions, creating neighbor sets as needed.
// Complexity: O(1).
func (t Tree[N]) Add(u, v N) {
	t.ensure(u)[v] = struct{}{}
	t.ensure(v)[u] = struct{}{}
}

// Remove deletes u—v in both directions. Removing an absent edge is a no-op.
// Complexity: O(1).
func (t Tree[N]) Remove(u, v N) {
	delete(t[u], v)
	delete(t[v], u)
}

// Neighbors returns the tree neighbors of u in ascending order.
// Complexity: O(d log d).
func (t Tree[N]) Neighbors(u N) []N {
	nbrs := make([]N, 0, len(t[u]))
	for v := range t[u] {
		nbrs = append(nbrs, v)
	}
	slices.Sort(nbrs)

	return nbrs
}

// EdgeCount returns the number of undirected tree edges.
// Complexity: O(V).
func (t Tree[N]) EdgeCount() int {
	var half int
	for _, nbrs := range t {
		half += len(nbrs)
	}

	return half / 2
}

// Edges returns each tree edge once (Head < Tail) with its weight from g,
// sorted by Edge.Less. Tree edges missing from g yield ErrEdgeNotFound.
// Complexity: O(V + E_T log E_T).
func (t Tree[N]) Edges(g Graph[N]) ([]Edge[N], error) {
	edges := make([]Edge[N], 0, t.EdgeCount())
	for u, nbrs := range t {
		for v := range nbrs {
			if !(u < v) {
				continue
			}
			w, err := g.Weight(u, v)
			if err != nil {
				return nil, err
			}
			edges = append(edges, Edge[N]{Head: u, Tail: v, Weight: w})
		}
	}
	slices.SortFunc(edges, compareEdges[N])

	return edges, nil
}

// TotalWeight sums the weights from g of every tree edge.
// Complexity: O(V + E_T log E_T).
func (t Tree[N]) TotalWeight(g Graph[N]) (float64, error) {
	edges, err := t.Edges(g)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total, nil
}

// ensure returns the neighbor set of u, creating it when absent.
func (t Tree[N]) ensure(u N) map[N]struct{} {
	nbrs, ok := t[u]
	if !ok {
		nbrs = make(map[N]struct{})
		t[u] = nbrs
	}

	return nbrs
}
