// Package dynmst keeps a minimum spanning tree minimum while single edge
// weights of the underlying graph change, without recomputing it.
//
// What & Why
//
//   - The caller owns a connected core.Graph and a core.Tree that is a minimum
//     spanning tree of it (typically from Prim or Kruskal, computed once).
//   - When one edge's weight changes, only two situations can break minimality,
//     and each has a local repair:
//
//   - A non-tree edge gets cheaper (cycle property): insert it, which closes
//     exactly one cycle, and remove the heaviest edge on that cycle.
//
//   - A tree edge gets dearer (cut property): remove it, which splits the tree
//     into two components, and insert the cheapest graph edge crossing the cut.
//     The removed edge competes at its new weight and may come straight back.
//
//   - A tree edge getting cheaper or a non-tree edge getting dearer never
//     changes the tree.
//
// Entry points
//
//   - AdjustMST(g, t, head, tail, w, opts...) (core.Tree[N], error)
//     One-shot call with default options.
//
//   - New[N](opts...) *Adjuster[N]
//     Reusable dispatcher; Adjust returns a Result naming the branch taken and
//     the swapped edges.
//
// Options
//
//   - WithLogger(log15.Logger)  Debug records per decision (silent by default).
//   - WithMetrics(*Metrics)     Prometheus counters and a search-size histogram.
//   - WithValidation()          core.Verify before each call.
//
// Errors
//
//   - core.ErrBadWeight       NaN weight.
//   - core.ErrInvalidEdge     head == tail, or an endpoint not in the graph.
//   - core.ErrEdgeNotFound    head and tail are not adjacent.
//   - ErrInconsistentState    no cycle closed / no clean partition / no crossing edge:
//     the graph was disconnected or the tree was not a spanning tree.
//
// All errors are precondition violations; nothing is retried. The weight is
// written before the repair runs, so a failed repair leaves the new weight in
// place.
//
// Complexity
//
//   - Cycle step:  O(V log d) DFS over tree edges, O(V) memory (explicit stack, no recursion).
//   - Split step:  O(V) for the two BFS passes plus O(E log E) to rebuild the candidate heap.
//
// Concurrency
//
//	Single-threaded and synchronous. Graph and Tree are mutated in place with
//	no internal locking; serialize calls on the same pair.
package dynmst
