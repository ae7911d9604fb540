package dynmst

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mstkit/core"
)

// Adjuster routes a single edge-weight change to the step that keeps the tree minimum.
// It holds configuration only; nothing about a Graph or Tree survives a call,
// so one Adjuster may serve many graph/tree pairs. Calls on the same pair must
// be serialized by the caller.
type Adjuster[N core.Node] struct {
	opts Options
}

// New returns an Adjuster configured by opts on top of DefaultOptions.
func New[N core.Node](opts ...Option) *Adjuster[N] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Adjuster[N]{opts: o}
}

// AdjustMST sets the weight of head—tail to newWeight and restores minimality of t.
// It is shorthand for New[N](opts...).AdjustMST.
func AdjustMST[N core.Node](g core.Graph[N], t core.Tree[N], head, tail N, newWeight float64, opts ...Option) (core.Tree[N], error) {
	return New[N](opts...).AdjustMST(g, t, head, tail, newWeight)
}

// AdjustMST sets the weight of head—tail to newWeight and returns t, updated
// in place so that it is a minimum spanning tree of the updated g.
// See Adjust for the full contract.
func (a *Adjuster[N]) AdjustMST(g core.Graph[N], t core.Tree[N], head, tail N, newWeight float64) (core.Tree[N], error) {
	res, err := a.Adjust(g, t, head, tail, newWeight)
	if err != nil {
		return nil, err
	}

	return res.Tree, nil
}

// Adjust performs the update and reports which branch ran.
//
// Preconditions: t is a minimum spanning tree of g and g is connected.
//
// Steps:
//  1. Validate input: NaN → core.ErrBadWeight; head == tail or a missing
//     endpoint → core.ErrInvalidEdge; with WithValidation, core.Verify
//     failure → ErrInconsistentState.
//  2. oldWeight = g.Weight(head, tail) (core.ErrEdgeNotFound if absent).
//  3. inTree = t.Contains(head, tail).
//  4. g.UpdateWeight(head, tail, newWeight), unconditionally.
//  5. Dispatch:
//     - !inTree && newWeight < oldWeight → cycle step.
//     - inTree && newWeight > oldWeight  → split step then reconnect.
//     - otherwise                        → t already minimum.
//
// Errors from step 5 are ErrInconsistentState. There is no rollback: the
// weight written in step 4 stays, and t may be left without the edge removed
// by the split step.
func (a *Adjuster[N]) Adjust(g core.Graph[N], t core.Tree[N], head, tail N, newWeight float64) (Result[N], error) {
	res, err := a.adjust(g, t, head, tail, newWeight)
	if err != nil {
		a.opts.Logger.Debug("adjustment failed", "head", head, "tail", tail, "weight", newWeight, "err", err)
		a.opts.Metrics.observeError(err)

		return Result[N]{}, err
	}
	a.opts.Metrics.observe(res.Case, res.Visited)

	return res, nil
}

func (a *Adjuster[N]) adjust(g core.Graph[N], t core.Tree[N], head, tail N, newWeight float64) (Result[N], error) {
	log := a.opts.Logger

	// 1) input validation, before anything is mutated
	if math.IsNaN(newWeight) {
		return Result[N]{}, fmt.Errorf("%w: NaN for %v—%v", core.ErrBadWeight, head, tail)
	}
	if head == tail {
		return Result[N]{}, fmt.Errorf("%w: self-loop on %v", core.ErrInvalidEdge, head)
	}
	for _, u := range [...]N{head, tail} {
		if !g.HasNode(u) {
			return Result[N]{}, fmt.Errorf("%w: node %v not in graph", core.ErrInvalidEdge, u)
		}
	}
	if a.opts.Validate {
		if err := core.Verify(g, t); err != nil {
			return Result[N]{}, fmt.Errorf("%w: %w", ErrInconsistentState, err)
		}
	}

	// 2-3) classify against the current state
	oldWeight, err := g.Weight(head, tail)
	if err != nil {
		return Result[N]{}, err
	}
	inTree := t.Contains(head, tail)

	// 4) GraphStore update
	if err = g.UpdateWeight(head, tail, newWeight); err != nil {
		return Result[N]{}, err
	}
	log.Debug("edge weight updated", "head", head, "tail", tail, "old", oldWeight, "new", newWeight, "in_tree", inTree)

	res := Result[N]{Tree: t, Case: CaseNone, OldWeight: oldWeight, NewWeight: newWeight}

	// 5) dispatch
	switch {
	case !inTree && newWeight < oldWeight:
		res.Case = CaseCycle
		res.Added = core.Edge[N]{Head: head, Tail: tail, Weight: newWeight}
		res.Removed, res.Visited, err = replaceOnCycle(g, t, head, tail)
		if err != nil {
			return Result[N]{}, err
		}

	case inTree && newWeight > oldWeight:
		res.Case = CaseSplit
		res.Removed = core.Edge[N]{Head: head, Tail: tail, Weight: newWeight}
		side, other, err := splitTree(g, t, head, tail)
		if err != nil {
			return Result[N]{}, err
		}
		res.Visited = len(side) + len(other)
		if res.Added, err = reconnect(g, t, side, other); err != nil {
			return Result[N]{}, err
		}

	default:
		log.Debug("tree unchanged", "head", head, "tail", tail, "in_tree", inTree)

		return res, nil
	}

	log.Debug("tree edge swapped", "case", res.Case,
		"removed_head", res.Removed.Head, "removed_tail", res.Removed.Tail, "removed_weight", res.Removed.Weight,
		"added_head", res.Added.Head, "added_tail", res.Added.Tail, "added_weight", res.Added.Weight,
		"visited", res.Visited)

	return res, nil
}
