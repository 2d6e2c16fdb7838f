package minimax_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/gametree/core"
	"github.com/katalvlaran/gametree/minimax"
)

// BenchmarkEvaluate_CompleteBinaryTree measures evaluation of a complete
// binary game tree of depth 14 (2^15 - 1 ≈ 32k nodes), alternating max and
// min levels with leaf values spread over the index range.
//
// Complexity: construction is O(N) and excluded via ResetTimer; each
// Evaluate pass is O(N) node visits with an O(depth) explicit stack.
func BenchmarkEvaluate_CompleteBinaryTree(b *testing.B) {
	const depth = 14

	// 1. Build the tree bottom-up, one level at a time.
	level := make([]*core.Node, 1<<depth)
	for i := range level {
		leaf, err := core.NewLeaf(fmt.Sprintf("L%d", i), float64(i%101)-50)
		if err != nil {
			b.Fatal(err)
		}
		level[i] = leaf
	}
	for d := depth - 1; d >= 0; d-- {
		next := make([]*core.Node, 1<<d)
		for i := range next {
			var (
				n   *core.Node
				err error
			)
			if d%2 == 0 {
				n, err = core.NewMax(fmt.Sprintf("N%d-%d", d, i))
			} else {
				n, err = core.NewMin(fmt.Sprintf("N%d-%d", d, i))
			}
			if err != nil {
				b.Fatal(err)
			}
			if err = n.AddChild(level[2*i]); err != nil {
				b.Fatal(err)
			}
			if err = n.AddChild(level[2*i+1]); err != nil {
				b.Fatal(err)
			}
			next[i] = n
		}
		level = next
	}
	root := level[0]

	// 2. Exclude construction from the measurement.
	b.ResetTimer()

	// 3. Evaluate repeatedly; evaluation is idempotent, so reusing the
	//    same tree across iterations is sound.
	for i := 0; i < b.N; i++ {
		if _, err := minimax.Evaluate(root); err != nil {
			b.Fatal(err)
		}
	}
}
