package treeio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gametree/core"
)

// renderFrame is one entry of the explicit pre-order rendering stack.
type renderFrame struct {
	node  *core.Node
	depth int
}

// WriteTree writes an indented textual dump of the subtree rooted at n,
// two spaces per level, children in their declared order:
//
//	- A (max) value=3
//	  - B (min) value=-2
//	    - D (leaf) value=5
//	    - E (leaf) value=-2
//	  - C (leaf) value=3
//
// Internal nodes show "value=" only once evaluation has populated them.
// Rendering, like every traversal in this module, uses an explicit stack.
func WriteTree(w io.Writer, n *core.Node) error {
	if n == nil {
		return core.ErrNilNode
	}

	stack := []renderFrame{{node: n}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		line := strings.Repeat("  ", top.depth) + "- " + top.node.ID() + " (" + top.node.Kind().String() + ")"
		if v, ok := top.node.Value(); ok {
			line += " value=" + strconv.FormatFloat(v, 'g', -1, 64)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}

		// Push children in reverse so the leftmost child renders first.
		kids := top.node.Children()
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, renderFrame{node: kids[i], depth: top.depth + 1})
		}
	}

	return nil
}

// WriteLeaves writes the terminal nodes of the subtree rooted at n, one
// "id: value" pair per line, in deterministic left-to-right order.
func WriteLeaves(w io.Writer, n *core.Node) error {
	if n == nil {
		return core.ErrNilNode
	}

	for _, leaf := range n.Leaves() {
		v, _ := leaf.Value()
		if _, err := fmt.Fprintf(w, "%s: %s\n", leaf.ID(), strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return err
		}
	}

	return nil
}
