package dynmst

import (
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

// component is a set of nodes reachable from one side of a removed tree edge.
type component[N core.Node] map[N]struct{}

func (c component[N]) has(u N) bool {
	_, ok := c[u]

	return ok
}

// splitTree removes head—tail from t and collects the two components it
// leaves behind: a (containing head) and b (containing tail).
//
// Invariant checked: a and b are disjoint and together cover every node of g.
// A violation means t was not a spanning tree and yields ErrInconsistentState;
// head—tail stays removed in that case.
//
// Complexity: O(V) time and memory.
func splitTree[N core.Node](g core.Graph[N], t core.Tree[N], head, tail N) (component[N], component[N], error) {
	t.Remove(head, tail)

	a := reach(t, head)
	if a.has(tail) {
		return nil, nil, fmt.Errorf("%w: %v and %v still connected after removing their tree edge", ErrInconsistentState, head, tail)
	}
	b := reach(t, tail)
	if len(a)+len(b) != len(g) {
		return a, b, fmt.Errorf("%w: components cover %d of %d nodes", ErrInconsistentState, len(a)+len(b), len(g))
	}

	return a, b, nil
}

// reach collects every node reachable from start over tree edges (BFS).
func reach[N core.Node](t core.Tree[N], start N) component[N] {
	seen := component[N]{start: {}}
	queue := []N{start}
	for qi := 0; qi < len(queue); qi++ {
		for v := range t[queue[qi]] {
			if !seen.has(v) {
				seen[v] = struct{}{}
				queue = append(queue, v)
			}
		}
	}

	return seen
}
