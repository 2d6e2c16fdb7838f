// Package minimax implements iterative post-order minimax evaluation over
// core.Node game trees.
package minimax

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gametree/core"
)

// Evaluate computes the backed-up value of the subtree rooted at n and
// returns it. As an observable side effect, every internal node at or
// below n has its value populated; leaf values are never touched.
//
// n may be any node satisfying the builder's invariants — an interior node
// works as well as the true root, since the algorithm is structurally
// recursive and has no global-root concept.
//
// The traversal is an explicit-stack post-order walk (children first, left
// to right), so evaluation of an adversarially deep tree cannot exhaust
// the goroutine stack. Evaluation either finishes the whole pass or aborts
// on the first error; it never retries.
//
// Errors: ErrNilNode, ErrInvariantViolation, ErrUnknownKind, and any error
// returned by the OnEvaluate hook (wrapped).
func Evaluate(n *core.Node, opts ...Option) (float64, error) {
	// 1. Validate input node.
	if n == nil {
		return 0, ErrNilNode
	}

	// 2. Apply options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 3. Run the walk.
	e := &evaluator{
		opts: cfg,
		open: make(map[*core.Node]struct{}),
	}

	return e.run(n)
}

// frame is one entry of the explicit evaluation stack: a node, the index
// of its next child to expand, and the values its children resolved to.
type frame struct {
	node *core.Node
	kids []*core.Node // cached once; Children() copies
	next int
	vals []float64
}

// evaluator holds the mutable state of a single evaluation run.
type evaluator struct {
	opts Options
	// open tracks nodes currently being expanded. A node encountered while
	// already open means the "tree" has a reference cycle, which would
	// otherwise loop forever.
	open map[*core.Node]struct{}
}

// run drives the post-order walk from root and returns its backed-up value.
func (e *evaluator) run(root *core.Node) (float64, error) {
	stack := []*frame{{node: root}}
	var result float64

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		node := top.node

		// Leaf: its value already exists; no mutation, just hand it up.
		if node.IsLeaf() {
			v, _ := node.Value()
			stack = stack[:len(stack)-1]
			if err := e.resolve(stack, &result, node, v); err != nil {
				return 0, err
			}

			continue
		}

		// First visit of an internal node: check invariants, cache children.
		if top.kids == nil {
			switch node.Kind() {
			case core.KindMax, core.KindMin:
				// recognized
			default:
				return 0, fmt.Errorf("%w: node %q has kind %s", ErrUnknownKind, node.ID(), node.Kind())
			}
			if node.NumChildren() == 0 {
				return 0, fmt.Errorf("%w: internal node %q has no children", ErrInvariantViolation, node.ID())
			}
			if _, reentered := e.open[node]; reentered {
				return 0, fmt.Errorf("%w: node %q re-entered (reference cycle)", ErrInvariantViolation, node.ID())
			}
			e.open[node] = struct{}{}
			top.kids = node.Children()
			top.vals = make([]float64, 0, len(top.kids))
		}

		// Expand the next child, left to right.
		if top.next < len(top.kids) {
			child := top.kids[top.next]
			top.next++
			stack = append(stack, &frame{node: child})

			continue
		}

		// All children resolved: aggregate and write the backed-up value.
		var v float64
		if node.Kind() == core.KindMax {
			v = floats.Max(top.vals)
		} else {
			v = floats.Min(top.vals)
		}
		if err := node.SetValue(v); err != nil {
			// Unreachable for internal nodes; surfaced for completeness.
			return 0, fmt.Errorf("%w: node %q: %v", ErrInvariantViolation, node.ID(), err)
		}

		delete(e.open, node)
		stack = stack[:len(stack)-1]
		if err := e.resolve(stack, &result, node, v); err != nil {
			return 0, err
		}
	}

	return result, nil
}

// resolve delivers a node's resolved value to its parent frame (or to the
// run's result when the stack is empty) and fires the tracing hook.
func (e *evaluator) resolve(stack []*frame, result *float64, node *core.Node, v float64) error {
	if len(stack) > 0 {
		parent := stack[len(stack)-1]
		parent.vals = append(parent.vals, v)
	} else {
		*result = v
	}

	if e.opts.OnEvaluate != nil {
		if err := e.opts.OnEvaluate(node.ID(), v); err != nil {
			return fmt.Errorf("minimax: OnEvaluate hook for %q: %w", node.ID(), err)
		}
	}

	return nil
}
