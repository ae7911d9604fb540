package dynmst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

// reconnect inserts into t the cheapest edge of g crossing the cut (a, b).
//
// Steps:
//  1. Heapify every graph edge that is not a tree edge (the edge just removed included).
//  2. Pop in ascending Edge.Less order until one endpoint is in a and the other in b.
//  3. Add that edge to t.
//
// Ties on weight are broken by endpoint order, so the choice is reproducible.
// An exhausted pool means g is disconnected across the cut: ErrInconsistentState.
//
// Complexity: O(E log E) for the heap build and pops. The pool is rebuilt on every call.
func reconnect[N core.Node](g core.Graph[N], t core.Tree[N], a, b component[N]) (core.Edge[N], error) {
	// 1) candidate pool
	pq := make(edgePQ[N], 0, g.EdgeCount())
	for u, nbrs := range g {
		for v, w := range nbrs {
			if u < v && !t.Contains(u, v) {
				pq = append(pq, core.Edge[N]{Head: u, Tail: v, Weight: w})
			}
		}
	}
	heap.Init(&pq)

	// 2) first crossing edge
	for pq.Len() > 0 {
		e := heap.Pop(&pq).(core.Edge[N])
		if (a.has(e.Head) && b.has(e.Tail)) || (a.has(e.Tail) && b.has(e.Head)) {
			// 3) reconnect
			t.Add(e.Head, e.Tail)

			return e, nil
		}
	}

	return core.Edge[N]{}, fmt.Errorf("%w: no edge crosses the cut", ErrInconsistentState)
}

// edgePQ implements heap.Interface for a min-heap of edges ordered by Edge.Less.
type edgePQ[N core.Node] []core.Edge[N]

// Len returns the number of queued edges.
func (pq edgePQ[N]) Len() int { return len(pq) }

// Less orders by weight, then endpoints.
func (pq edgePQ[N]) Less(i, j int) bool { return pq[i].Less(pq[j]) }

// Swap exchanges two elements.
func (pq edgePQ[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be a core.Edge[N].
func (pq *edgePQ[N]) Push(x any) { *pq = append(*pq, x.(core.Edge[N])) }

// Pop removes and returns the last element.
func (pq *edgePQ[N]) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
