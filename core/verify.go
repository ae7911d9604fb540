package core

import "fmt"

// Verify reports whether t is a spanning tree of g.
//
// Steps:
//  1. Every node of t is a node of g and every tree edge is a graph edge.
//  2. Adjacency is symmetric.
//  3. |E_T| == |V| − 1.
//  4. A BFS from the smallest node over tree edges reaches every node of g.
//
// A failure returns ErrInvalidTree wrapped with the violated condition.
// Minimality is not checked.
// Complexity: O(V log V + E_T).
func Verify[N Node](g Graph[N], t Tree[N]) error {
	// 1-2) membership and symmetry
	for u, nbrs := range t {
		if !g.HasNode(u) {
			return fmt.Errorf("%w: node %v not in graph", ErrInvalidTree, u)
		}
		for v := range nbrs {
			if !g.HasEdge(u, v) {
				return fmt.Errorf("%w: tree edge %v—%v not in graph", ErrInvalidTree, u, v)
			}
			if !t.Contains(v, u) {
				return fmt.Errorf("%w: tree edge %v—%v not symmetric", ErrInvalidTree, u, v)
			}
		}
	}

	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil
	}

	// 3) edge count
	if got, want := t.EdgeCount(), len(nodes)-1; got != want {
		return fmt.Errorf("%w: %d edges, want %d", ErrInvalidTree, got, want)
	}

	// 4) connectivity; with |V|-1 edges this also rules out cycles
	seen := map[N]struct{}{nodes[0]: {}}
	queue := []N{nodes[0]}
	for qi := 0; qi < len(queue); qi++ {
		for v := range t[queue[qi]] {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				queue = append(queue, v)
			}
		}
	}
	if len(seen) != len(nodes) {
		return fmt.Errorf("%w: reaches %d of %d nodes", ErrInvalidTree, len(seen), len(nodes))
	}

	return nil
}
