// Package core defines the Graph, Tree and Edge types that the dynamic MST
// maintenance in package dynmst operates on.
//
// This file declares the node constraint, the Graph and Tree adjacency maps,
// the Edge value type and the sentinel errors shared by every operation.
//
// Errors:
//
//	ErrEdgeNotFound   - requested edge does not exist in the graph.
//	ErrInvalidEdge    - self-loop, or an endpoint missing from the node set.
//	ErrBadWeight      - weight is NaN.
//	ErrDuplicateEdge  - the same unordered pair was supplied twice.
//	ErrInvalidTree    - the tree is not a spanning tree of the graph.
package core

import (
	"cmp"
	"errors"
)

// Sentinel errors for core graph and tree operations.
var (
	// ErrEdgeNotFound indicates an operation referenced an edge absent from the Graph.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidEdge indicates a self-loop (head == tail) or an endpoint
	// that is not a node of the Graph.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrBadWeight indicates a NaN weight, which has no place in a total order.
	ErrBadWeight = errors.New("core: bad weight")

	// ErrDuplicateEdge indicates the same unordered pair was given twice to a builder.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrInvalidTree indicates a Tree that is not a spanning tree of its Graph.
	ErrInvalidTree = errors.New("core: invalid spanning tree")
)

// Node is the constraint on node identifiers.
// Map keys give equality and hashing; the ordering keeps iteration and
// tie-breaking deterministic.
type Node interface {
	cmp.Ordered
}

// Graph is a weighted undirected adjacency map: Graph[u][v] is the weight of u—v.
//
// The map is symmetric: if Graph[u][v] = w then Graph[v][u] = w.
// Every node appears as a key, even if (in a degenerate single-node graph)
// its neighbor map is empty. The Graph is owned by the caller and mutated in place.
type Graph[N Node] map[N]map[N]float64

// Tree is the maintained spanning tree as an adjacency-set map restricted to tree edges.
// It is symmetric like Graph.
type Tree[N Node] map[N]map[N]struct{}

// Edge is an undirected weighted edge.
// Head and Tail name its endpoints; for edges produced by Graph.Edges and
// Tree.Edges Head < Tail.
type Edge[N Node] struct {
	// Head is one endpoint.
	Head N

	// Tail is the other endpoint.
	Tail N

	// Weight is the cost of the edge.
	Weight float64
}

// Less orders edges by ascending Weight, then by Head, then by Tail.
// Complexity: O(1).
func (e Edge[N]) Less(o Edge[N]) bool {
	if e.Weight != o.Weight {
		return e.Weight < o.Weight
	}
	if c := cmp.Compare(e.Head, o.Head); c != 0 {
		return c < 0
	}

	return cmp.Less(e.Tail, o.Tail)
}

