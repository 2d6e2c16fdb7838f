package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gametree/core"
)

// buildSample builds the canonical sample tree:
//
//	      A(max)
//	     /      \
//	  B(min)   C=3
//	  /    \
//	 D=5  E=-2
func buildSample(t *testing.T) *core.Node {
	t.Helper()

	a, err := core.NewMax("A")
	require.NoError(t, err)
	b, err := core.NewMin("B")
	require.NoError(t, err)
	c, err := core.NewLeaf("C", 3)
	require.NoError(t, err)
	d, err := core.NewLeaf("D", 5)
	require.NoError(t, err)
	e, err := core.NewLeaf("E", -2)
	require.NoError(t, err)

	require.NoError(t, b.AddChild(d))
	require.NoError(t, b.AddChild(e))
	require.NoError(t, a.AddChild(b))
	require.NoError(t, a.AddChild(c))

	return a
}

func TestNewLeaf(t *testing.T) {
	n, err := core.NewLeaf("C", 3)
	require.NoError(t, err)
	assert.Equal(t, "C", n.ID())
	assert.Equal(t, core.KindLeaf, n.Kind())
	assert.True(t, n.IsLeaf())

	v, ok := n.Value()
	assert.True(t, ok, "leaf value is defined from construction")
	assert.Equal(t, 3.0, v)
	assert.Zero(t, n.NumChildren())
	assert.Nil(t, n.Parent())
}

func TestNewLeaf_EmptyID(t *testing.T) {
	n, err := core.NewLeaf("", 1)
	assert.Nil(t, n)
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
}

func TestNewInternal(t *testing.T) {
	for _, tc := range []struct {
		name string
		mk   func(string) (*core.Node, error)
		kind core.Kind
	}{
		{"max", core.NewMax, core.KindMax},
		{"min", core.NewMin, core.KindMin},
	} {
		t.Run(tc.name, func(t *testing.T) {
			n, err := tc.mk("X")
			require.NoError(t, err)
			assert.Equal(t, tc.kind, n.Kind())
			assert.False(t, n.IsLeaf())

			_, ok := n.Value()
			assert.False(t, ok, "internal node starts unevaluated")

			_, err = tc.mk("")
			assert.ErrorIs(t, err, core.ErrEmptyNodeID)
		})
	}
}

func TestAddChild_NilChild(t *testing.T) {
	n, err := core.NewMax("A")
	require.NoError(t, err)
	assert.ErrorIs(t, n.AddChild(nil), core.ErrNilNode)
}

func TestAddChild_LeafRefusesChildren(t *testing.T) {
	leaf, err := core.NewLeaf("C", 3)
	require.NoError(t, err)
	other, err := core.NewLeaf("D", 5)
	require.NoError(t, err)

	assert.ErrorIs(t, leaf.AddChild(other), core.ErrLeafChildren)
	assert.Zero(t, leaf.NumChildren())
}

func TestAddChild_OrderAndParent(t *testing.T) {
	root := buildSample(t)

	kids := root.Children()
	require.Len(t, kids, 2)
	assert.Equal(t, "B", kids[0].ID())
	assert.Equal(t, "C", kids[1].ID())
	assert.Same(t, root, kids[0].Parent())
	assert.Same(t, root, kids[1].Parent())
}

func TestAddChild_FirstParentWins(t *testing.T) {
	p1, err := core.NewMax("P1")
	require.NoError(t, err)
	p2, err := core.NewMin("P2")
	require.NoError(t, err)
	shared, err := core.NewLeaf("S", 1)
	require.NoError(t, err)

	require.NoError(t, p1.AddChild(shared))
	require.NoError(t, p2.AddChild(shared))

	assert.Same(t, p1, shared.Parent(), "back-reference sticks with the first-assigning parent")
	assert.Equal(t, 1, p2.NumChildren(), "second parent still owns the edge")
}

func TestChildren_ReturnsCopy(t *testing.T) {
	root := buildSample(t)

	kids := root.Children()
	kids[0] = nil
	assert.Equal(t, "B", root.Children()[0].ID(), "mutating the returned slice must not touch the tree")
}

func TestSetValue(t *testing.T) {
	n, err := core.NewMax("A")
	require.NoError(t, err)

	require.NoError(t, n.SetValue(7))
	v, ok := n.Value()
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)

	// Overwrite is allowed; re-evaluation writes the same value back.
	require.NoError(t, n.SetValue(7))
}

func TestSetValue_LeafImmutable(t *testing.T) {
	leaf, err := core.NewLeaf("C", 3)
	require.NoError(t, err)

	assert.ErrorIs(t, leaf.SetValue(9), core.ErrLeafValueImmutable)
	v, _ := leaf.Value()
	assert.Equal(t, 3.0, v, "leaf value must be untouched")
}

func TestValidate(t *testing.T) {
	leaf, err := core.NewLeaf("C", 3)
	require.NoError(t, err)
	assert.NoError(t, leaf.Validate())

	empty, err := core.NewMax("A")
	require.NoError(t, err)
	assert.ErrorIs(t, empty.Validate(), core.ErrNoChildren)

	require.NoError(t, empty.AddChild(leaf))
	assert.NoError(t, empty.Validate())

	var nilNode *core.Node
	assert.ErrorIs(t, nilNode.Validate(), core.ErrNilNode)
}

func TestWalk_PostOrder(t *testing.T) {
	root := buildSample(t)

	var order []string
	err := root.Walk(func(n *core.Node) error {
		order = append(order, n.ID())

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "E", "B", "C", "A"}, order)
}

func TestWalk_HookAborts(t *testing.T) {
	root := buildSample(t)
	boom := errors.New("boom")

	visited := 0
	err := root.Walk(func(n *core.Node) error {
		visited++
		if n.ID() == "E" {
			return boom
		}

		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, visited, "walk must stop at the failing node")
}

func TestWalk_NilNode(t *testing.T) {
	var n *core.Node
	assert.ErrorIs(t, n.Walk(func(*core.Node) error { return nil }), core.ErrNilNode)
}

func TestWalk_DeepChain(t *testing.T) {
	// A pathological 200k-deep chain must not exhaust the goroutine stack.
	const depth = 200_000

	leaf, err := core.NewLeaf("L", 1)
	require.NoError(t, err)
	node := leaf
	for i := 0; i < depth; i++ {
		parent, perr := core.NewMax("N")
		require.NoError(t, perr)
		require.NoError(t, parent.AddChild(node))
		node = parent
	}

	count := 0
	require.NoError(t, node.Walk(func(*core.Node) error {
		count++

		return nil
	}))
	assert.Equal(t, depth+1, count)
}

func TestLeaves(t *testing.T) {
	root := buildSample(t)

	leaves := root.Leaves()
	require.Len(t, leaves, 3)
	assert.Equal(t, "D", leaves[0].ID())
	assert.Equal(t, "E", leaves[1].ID())
	assert.Equal(t, "C", leaves[2].ID())
}

func TestSize(t *testing.T) {
	root := buildSample(t)
	assert.Equal(t, 5, root.Size())

	leaf, err := core.NewLeaf("L", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, leaf.Size())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "leaf", core.KindLeaf.String())
	assert.Equal(t, "max", core.KindMax.String())
	assert.Equal(t, "min", core.KindMin.String())
	assert.Equal(t, "kind(7)", core.Kind(7).String())
}

func TestNodeString(t *testing.T) {
	leaf, err := core.NewLeaf("C", 3)
	require.NoError(t, err)
	assert.Equal(t, `Node("C", leaf, value=3)`, leaf.String())

	neg, err := core.NewLeaf("E", -2.5)
	require.NoError(t, err)
	assert.Equal(t, `Node("E", leaf, value=-2.5)`, neg.String())

	root := buildSample(t)
	assert.Equal(t, `Node("A", max, children=2)`, root.String())

	require.NoError(t, root.SetValue(3))
	assert.Equal(t, `Node("A", max, children=2, value=3)`, root.String())

	var nilNode *core.Node
	assert.Equal(t, "Node(<nil>)", nilNode.String())
}
