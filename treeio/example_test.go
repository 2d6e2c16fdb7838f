package treeio_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/gametree/builder"
	"github.com/katalvlaran/gametree/minimax"
	"github.com/katalvlaran/gametree/treeio"
)

// ExampleWriteTree runs the full pipeline — decode, build, evaluate,
// render — on the canonical five-node description.
func ExampleWriteTree() {
	const description = `{
	  "root": "A",
	  "nodes": {
	    "A": { "kind": "max", "children": ["B", "C"] },
	    "B": { "kind": "min", "children": ["D", "E"] },
	    "C": { "kind": "leaf", "value": 3 },
	    "D": { "kind": "leaf", "value": 5 },
	    "E": { "kind": "leaf", "value": -2 }
	  }
	}`

	desc, err := treeio.DecodeJSON(strings.NewReader(description))
	if err != nil {
		fmt.Println("decode:", err)
		return
	}
	root, err := builder.Build(desc)
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	if _, err = minimax.Evaluate(root); err != nil {
		fmt.Println("evaluate:", err)
		return
	}

	_ = treeio.WriteTree(os.Stdout, root)
	// Output:
	// - A (max) value=3
	//   - B (min) value=-2
	//     - D (leaf) value=5
	//     - E (leaf) value=-2
	//   - C (leaf) value=3
}
