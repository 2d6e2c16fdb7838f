package minimax_test

import (
	"fmt"

	"github.com/katalvlaran/gametree/builder"
	"github.com/katalvlaran/gametree/minimax"
)

// ExampleEvaluate backs up the values of a small game tree.
// Tree structure:
//
//	      A(max)
//	     /      \
//	  B(min)   C=3
//	  /    \
//	 D=5  E=-2
//
// The minimizer picks -2 at B, so the maximizer prefers C's 3 at A.
func ExampleEvaluate() {
	v := 3.0
	five, minusTwo := 5.0, -2.0

	root, err := builder.Build(builder.Description{
		Root: "A",
		Nodes: map[string]builder.Spec{
			"A": {Kind: builder.SpecMax, Children: []string{"B", "C"}},
			"B": {Kind: builder.SpecMin, Children: []string{"D", "E"}},
			"C": {Kind: builder.SpecLeaf, Value: &v},
			"D": {Kind: builder.SpecLeaf, Value: &five},
			"E": {Kind: builder.SpecLeaf, Value: &minusTwo},
		},
	})
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	value, err := minimax.Evaluate(root)
	if err != nil {
		fmt.Println("evaluate:", err)
		return
	}

	fmt.Println("root value:", value)
	fmt.Println(root)
	// Output:
	// root value: 3
	// Node("A", max, children=2, value=3)
}

// ExampleEvaluate_trace shows the deterministic post-order trace exposed
// through the OnEvaluate hook.
func ExampleEvaluate_trace() {
	five, minusTwo := 5.0, -2.0

	root, _ := builder.Build(builder.Description{
		Root: "B",
		Nodes: map[string]builder.Spec{
			"B": {Kind: builder.SpecMin, Children: []string{"D", "E"}},
			"D": {Kind: builder.SpecLeaf, Value: &five},
			"E": {Kind: builder.SpecLeaf, Value: &minusTwo},
		},
	})

	_, _ = minimax.Evaluate(root, minimax.WithOnEvaluate(func(id string, value float64) error {
		fmt.Printf("%s = %v\n", id, value)

		return nil
	}))
	// Output:
	// D = 5
	// E = -2
	// B = -2
}
