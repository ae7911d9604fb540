// Package dynmst defines the result types and sentinel errors for MST adjustment.
package dynmst

import (
	"errors"

	"github.com/katalvlaran/mstkit/core"
)

// ErrInconsistentState indicates that a search failed to close a cycle or to
// partition the tree cleanly. It means a precondition was violated at call
// time: the Graph is disconnected or the Tree was not a spanning tree.
var ErrInconsistentState = errors.New("dynmst: inconsistent state")

// Case identifies which branch of the adjustment ran.
type Case int

const (
	// CaseNone: the tree was already minimum for the new weight.
	// Covers a tree edge getting cheaper, a non-tree edge getting dearer, and an unchanged weight.
	CaseNone Case = iota

	// CaseCycle: a non-tree edge got cheaper; it was inserted and the
	// heaviest edge of the cycle it closed was removed.
	CaseCycle

	// CaseSplit: a tree edge got dearer; it was removed and the cheapest
	// edge crossing the resulting cut was inserted.
	CaseSplit
)

// String returns the metric/log label of c.
func (c Case) String() string {
	switch c {
	case CaseNone:
		return "none"
	case CaseCycle:
		return "cycle"
	case CaseSplit:
		return "split"
	default:
		return "unknown"
	}
}

// Result describes one adjustment.
type Result[N core.Node] struct {
	// Tree is the caller's tree, updated in place.
	Tree core.Tree[N]

	// Case is the branch that ran.
	Case Case

	// OldWeight and NewWeight are the weights of the updated edge before and after.
	OldWeight float64
	NewWeight float64

	// Removed is the edge taken out of the tree (zero unless Case != CaseNone).
	Removed core.Edge[N]

	// Added is the edge put into the tree (zero unless Case != CaseNone).
	// Removed == Added when the swap left the tree structure unchanged.
	Added core.Edge[N]

	// Visited is the number of nodes touched by the cycle or partition search.
	Visited int
}

// Changed reports whether the tree's edge set differs from before the call.
func (r Result[N]) Changed() bool {
	if r.Case == CaseNone {
		return false
	}

	return !sameEdge(r.Removed, r.Added)
}

// sameEdge compares endpoints as an unordered pair.
func sameEdge[N core.Node](a, b core.Edge[N]) bool {
	return (a.Head == b.Head && a.Tail == b.Tail) || (a.Head == b.Tail && a.Tail == b.Head)
}
