// Package core provides the in-memory representations used to maintain a
// minimum spanning tree under edge-weight changes.
//
// The Graph G = (V,E) and the Tree T ⊆ E are plain nested maps owned by the caller:
//
//   - Graph[N]: Graph[u][v] = weight of u—v, stored in both directions.
//   - Tree[N]:  Tree[u][v] = struct{}{} for every tree edge u—v, both directions.
//
// Nothing in this package keeps a private copy of either map, so a Graph/Tree
// pair is always exactly what the caller sees. Neither type is safe for
// concurrent mutation; guard a pair with a single lock if it is shared.
//
// Node identifiers are any cmp.Ordered type (strings, integers, ...). The
// ordering drives deterministic listings: Nodes(), Neighbors() and Edges()
// all return sorted results.
//
// Core Methods:
//
//	// GraphStore
//	NewGraph(edges ...Edge[N]) (Graph[N], error)  // O(E)
//	Weight(u, v N) (float64, error)               // O(1)
//	UpdateWeight(u, v N, w float64) error         // O(1), both directions
//	Nodes() []N / Edges() []Edge[N]               // sorted
//
//	// TreeStore
//	NewTree(g, pairs...) (Tree[N], error)
//	Contains(u, v N) bool / Add(u, v N) / Remove(u, v N)     // O(1)
//	Neighbors(u N) []N                                       // sorted
//	Edges(g) ([]Edge[N], error) / TotalWeight(g) (float64, error)
//
//	// Structural check
//	Verify(g, t) error  // spanning, acyclic, edges ⊆ E
//
// Errors:
//
//	ErrEdgeNotFound, ErrInvalidEdge, ErrBadWeight, ErrDuplicateEdge, ErrInvalidTree
package core
