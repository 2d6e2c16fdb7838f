// Package minimax computes the game-theoretic value of every node in a
// validated game tree by backing leaf utilities up through alternating
// max/min choice points.
//
// What:
//
//   - Evaluate(node, opts...): post-order evaluation of the subtree rooted
//     at node. Leaves return their terminal value untouched; each internal
//     node's value is set to the maximum (KindMax) or minimum (KindMin) of
//     its children's values, in place, and the node's value is returned.
//   - WithOnEvaluate(fn): post-order tracing hook, invoked once per node
//     with its id and resolved value; an error from the hook aborts the run.
//
// Why: given the builder's invariants the backed-up value is a pure, total
// function of the tree, so evaluation is a single synchronous pass — no
// cancellation, no partial results, no retries.
//
// The evaluator trusts the invariants established by the builder and
// performs no validation of its own. Its only failures are defensive and
// fatal: an internal node with zero children, an unrecognized kind, or a
// node re-entered while still being expanded (a reference cycle smuggled in
// through a hand-built tree). Each signals a bug upstream, never a
// condition to recover from.
//
// Complexity:
//
//   - Time:   O(N) node visits (N = nodes in the subtree)
//   - Memory: O(D) for the explicit evaluation stack (D = tree depth);
//     no native call recursion, so adversarial depth cannot crash the
//     process
//
// Errors:
//
//   - ErrNilNode             Evaluate received a nil node
//   - ErrInvariantViolation  childless internal node or re-entered node
//   - ErrUnknownKind         kind outside the closed leaf/max/min set
//
// Example usage:
//
//	value, err := minimax.Evaluate(root)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("root value: %v\n", value)
package minimax
