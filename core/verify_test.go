package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstkit/core"
)

// TestVerify covers a valid tree and each structural violation.
func TestVerify(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(core.Tree[string])
		valid  bool
	}{
		{name: "valid", mutate: func(core.Tree[string]) {}, valid: true},
		{name: "missing edge", mutate: func(tr core.Tree[string]) { tr.Remove("A", "B") }},
		{name: "extra edge makes cycle", mutate: func(tr core.Tree[string]) { tr.Add("A", "C") }},
		{name: "edge not in graph", mutate: func(tr core.Tree[string]) { tr.Add("A", "Z") }},
		{name: "asymmetric", mutate: func(tr core.Tree[string]) { delete(tr["C"], "B") }},
		{name: "swapped but valid", mutate: func(tr core.Tree[string]) {
			tr.Remove("A", "B")
			tr.Add("A", "C")
		}, valid: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, tr := buildTriangle(t)
			tc.mutate(tr)

			err := core.Verify(g, tr)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, core.ErrInvalidTree)
			}
		})
	}
}

// TestVerify_Disconnected: right edge count, but one component holds a cycle.
func TestVerify_Disconnected(t *testing.T) {
	g, err := core.NewGraph(
		core.Edge[int]{Head: 1, Tail: 2, Weight: 1},
		core.Edge[int]{Head: 2, Tail: 3, Weight: 1},
		core.Edge[int]{Head: 1, Tail: 3, Weight: 1},
		core.Edge[int]{Head: 3, Tail: 4, Weight: 1},
	)
	require.NoError(t, err)
	tr, err := core.NewTree(g, [2]int{1, 2}, [2]int{2, 3}, [2]int{1, 3})
	require.NoError(t, err)

	assert.ErrorIs(t, core.Verify(g, tr), core.ErrInvalidTree)
}

// TestVerify_SingleNode: one node, no edges, is a spanning tree.
func TestVerify_SingleNode(t *testing.T) {
	g := core.Graph[string]{"A": {}}
	tr, err := core.NewTree(g)
	require.NoError(t, err)

	assert.NoError(t, core.Verify(g, tr))
}
