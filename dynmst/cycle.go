// Package dynmst implements the cycle step: a non-tree edge became cheaper,
// so it enters the tree and the heaviest edge of the cycle it closes leaves.
//
// Complexity:
//
//   - Time:   O(V log d) worst case; the DFS is not restricted to the head↔tail path.
//   - Memory: O(V) for the path arena, visited set and frame stack.
package dynmst

import (
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

// pathEntry is one link of the traversal path: a node and the arena index of
// the entry it was reached from (-1 for the start).
type pathEntry[N core.Node] struct {
	node N
	prev int
}

// dfsFrame is an explicit stack frame: the arena entry being expanded, its
// sorted tree neighbors and the next neighbor to try.
type dfsFrame[N core.Node] struct {
	entry int
	nbrs  []N
	next  int
}

// replaceOnCycle inserts head—tail into t, finds the unique cycle through it
// and removes the cycle's heaviest edge.
// Returns the removed edge and how many nodes the search visited.
//
// Steps:
//  1. Provisionally add head—tail to t.
//  2. closeCycle: DFS from head until a step returns to head over a path of length ≥ 2.
//  3. heaviestOnCycle: walk the closing edge then the predecessor chain, keep the strict maximum.
//  4. Remove that edge from t.
//
// If the cycle never closes, head—tail is withdrawn again and
// ErrInconsistentState is returned.
func replaceOnCycle[N core.Node](g core.Graph[N], t core.Tree[N], head, tail N) (core.Edge[N], int, error) {
	// 1) provisional insertion
	t.Add(head, tail)

	// 2) cycle discovery
	chain, end, ok := closeCycle(t, head)
	if !ok {
		t.Remove(head, tail)

		return core.Edge[N]{}, len(chain), fmt.Errorf("%w: no cycle through %v—%v", ErrInconsistentState, head, tail)
	}

	// 3) heaviest edge on the cycle
	heaviest, err := heaviestOnCycle(g, chain, end)
	if err != nil {
		t.Remove(head, tail)

		return core.Edge[N]{}, len(chain), err
	}

	// 4) drop it
	t.Remove(heaviest.Head, heaviest.Tail)

	return heaviest, len(chain), nil
}

// closeCycle runs an iterative DFS from head over tree edges.
// It returns the path arena and the index of the entry from which a step
// reaches head again, or ok=false if every branch is exhausted first.
// Nodes are marked visited when pushed and never re-entered.
func closeCycle[N core.Node](t core.Tree[N], head N) ([]pathEntry[N], int, bool) {
	chain := []pathEntry[N]{{node: head, prev: -1}}
	visited := map[N]struct{}{head: {}}
	stack := []dfsFrame[N]{{entry: 0, nbrs: t.Neighbors(head)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.nbrs) {
			stack = stack[:len(stack)-1] // branch exhausted
			continue
		}
		v := top.nbrs[top.next]
		top.next++
		cur := top.entry

		// Stepping back to head closes the cycle unless it is the edge we
		// just came along (cur reached directly from head, entry 0).
		if v == head {
			if chain[cur].prev > 0 {
				return chain, cur, true
			}
			continue
		}
		if _, seen := visited[v]; seen {
			continue
		}
		visited[v] = struct{}{}
		chain = append(chain, pathEntry[N]{node: v, prev: cur})
		stack = append(stack, dfsFrame[N]{entry: len(chain) - 1, nbrs: t.Neighbors(v)})
	}

	return chain, -1, false
}

// heaviestOnCycle walks head→chain[end], then chain[end] back along prev
// links to head, and returns the first edge of maximum weight.
func heaviestOnCycle[N core.Node](g core.Graph[N], chain []pathEntry[N], end int) (core.Edge[N], error) {
	head := chain[0].node
	w, err := g.Weight(head, chain[end].node)
	if err != nil {
		return core.Edge[N]{}, fmt.Errorf("%w: %w", ErrInconsistentState, err)
	}
	heaviest := core.Edge[N]{Head: head, Tail: chain[end].node, Weight: w}

	for i := end; chain[i].prev >= 0; i = chain[i].prev {
		u, v := chain[i].node, chain[chain[i].prev].node
		w, err = g.Weight(u, v)
		if err != nil {
			return core.Edge[N]{}, fmt.Errorf("%w: %w", ErrInconsistentState, err)
		}
		if w > heaviest.Weight {
			heaviest = core.Edge[N]{Head: u, Tail: v, Weight: w}
		}
	}

	return heaviest, nil
}
