package core

import (
	"strconv"
)

// ID returns the node's unique identifier within its tree.
func (n *Node) ID() string { return n.id }

// Kind returns the node's variant (leaf, max, or min).
func (n *Node) Kind() Kind { return n.kind }

// IsLeaf reports whether the node is a terminal node.
func (n *Node) IsLeaf() bool { return n.kind == KindLeaf }

// Value returns the node's value and whether it is defined.
// For leaves the value is defined from construction; for internal nodes it
// becomes defined only after evaluation.
func (n *Node) Value() (float64, bool) {
	return n.value, n.valued
}

// NumChildren returns the number of children owned by the node.
func (n *Node) NumChildren() int { return len(n.children) }

// Children returns a copy of the node's child slice in insertion order.
// Mutating the returned slice does not affect the tree.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)

	return out
}

// child returns the i-th child without copying. Internal fast path for
// the traversal code in this module.
func (n *Node) child(i int) *Node { return n.children[i] }

// Parent returns the first parent that adopted this node, or nil for a
// root. The back-reference is a lookup relation only (upward walks,
// diagnostics); it never carries ownership.
func (n *Node) Parent() *Node { return n.parent }

// AddChild appends c to the node's children in call order.
//
// Validation (in order):
//  1. c must be non-nil (ErrNilNode).
//  2. The receiver must not be a leaf (ErrLeafChildren).
//
// The child's parent back-reference is recorded only if the child has no
// parent yet: the first-assigning parent wins, later parents share the
// child without re-pointing it.
func (n *Node) AddChild(c *Node) error {
	// 1. Reject nil children outright.
	if c == nil {
		return ErrNilNode
	}

	// 2. Leaves are terminal: they never own children.
	if n.kind == KindLeaf {
		return ErrLeafChildren
	}

	// 3. Append in declared order; order matters for deterministic traversal.
	n.children = append(n.children, c)

	// 4. Record the back-reference at most once.
	if c.parent == nil {
		c.parent = n
	}

	return nil
}

// SetValue records the backed-up value of an internal node.
// Leaves carry their terminal value from construction and are immutable
// (ErrLeafValueImmutable). Setting a value twice overwrites it; evaluation
// is idempotent, so a rerun writes the same number back.
func (n *Node) SetValue(v float64) error {
	if n.kind == KindLeaf {
		return ErrLeafValueImmutable
	}

	n.value = v
	n.valued = true

	return nil
}

// Validate performs the shallow per-node invariant check:
//
//   - a leaf must own no children (ErrLeafChildren)
//   - an internal node must own at least one child (ErrNoChildren)
//   - the kind must be one of the closed leaf/max/min set (ErrUnknownKind)
//
// Validate inspects only the receiver; sweeping a whole tree is the
// builder's job, so every violation can be surfaced against the node that
// carries it.
func (n *Node) Validate() error {
	if n == nil {
		return ErrNilNode
	}
	switch n.kind {
	case KindLeaf:
		if len(n.children) > 0 {
			return ErrLeafChildren
		}
	case KindMax, KindMin:
		if len(n.children) == 0 {
			return ErrNoChildren
		}
	default:
		return ErrUnknownKind
	}

	return nil
}

// walkFrame is one entry of the explicit post-order stack.
type walkFrame struct {
	node *Node
	next int // index of the next child to descend into
}

// Walk visits every node of the subtree rooted at n in post-order
// (children first, left to right, then the node itself), invoking fn on
// each. An error from fn aborts the walk and is returned unchanged.
//
// The traversal uses an explicit stack rather than call recursion, so an
// adversarially deep tree cannot exhaust the goroutine stack.
func (n *Node) Walk(fn func(*Node) error) error {
	if n == nil {
		return ErrNilNode
	}

	// Explicit work stack; capacity 8 covers shallow trees without growth.
	stack := make([]walkFrame, 0, 8)
	stack = append(stack, walkFrame{node: n})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// Descend into the next unvisited child, if any.
		if top.next < len(top.node.children) {
			child := top.node.child(top.next)
			top.next++
			stack = append(stack, walkFrame{node: child})

			continue
		}

		// All children done: visit the node itself (post-order).
		node := top.node
		stack = stack[:len(stack)-1]
		if err := fn(node); err != nil {
			return err
		}
	}

	return nil
}

// Leaves returns every leaf of the subtree rooted at n, in deterministic
// left-to-right order.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	// Walk never fails when fn never fails.
	_ = n.Walk(func(v *Node) error {
		if v.IsLeaf() {
			leaves = append(leaves, v)
		}

		return nil
	})

	return leaves
}

// Size returns the number of nodes in the subtree rooted at n.
// A shared child (two parents in a DAG-shaped description) is counted once
// per owning edge, mirroring the traversal order.
func (n *Node) Size() int {
	count := 0
	_ = n.Walk(func(*Node) error {
		count++

		return nil
	})

	return count
}

// String returns a concise one-line representation for diagnostics:
//
//	Node("C", leaf, value=3)
//	Node("A", max, children=2)
//	Node("A", max, children=2, value=3)   // after evaluation
func (n *Node) String() string {
	if n == nil {
		return "Node(<nil>)"
	}
	s := "Node(" + strconv.Quote(n.id) + ", " + n.kind.String()
	if n.kind == KindLeaf {
		return s + ", value=" + formatValue(n.value) + ")"
	}
	s += ", children=" + strconv.Itoa(len(n.children))
	if n.valued {
		s += ", value=" + formatValue(n.value)
	}

	return s + ")"
}

// formatValue renders a utility value without trailing zeros (3, -2, 1.5).
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
