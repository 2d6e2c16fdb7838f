// Package core defines the Node type for two-player, perfect-information
// game trees, and provides validated primitives for building, inspecting,
// and traversing them.
//
// What:
//
//   - Node: one vertex of a rooted game tree, discriminated by Kind:
//   - KindLeaf — terminal node carrying a fixed utility value
//   - KindMax  — maximizing player's choice point
//   - KindMin  — minimizing player's choice point
//   - NewLeaf / NewMax / NewMin: constructors; internal nodes start as empty
//     shells so cross-references can be linked in a second pass
//   - AddChild / SetValue: mutation with eager validation
//   - Validate: shallow per-node invariant check (leaf has no children,
//     internal has at least one child)
//   - Walk: iterative post-order traversal with an explicit stack
//   - Leaves / Size: derived views over a subtree
//
// Why:
//   - Make "leaf with children" and "childless max node" construction
//     errors, not evaluation surprises
//   - Keep ownership a strict tree: the parent back-reference is recorded at
//     most once (first-assigning parent) and is a lookup relation only —
//     never consulted for ownership, lifetime, or evaluation
//
// Complexity:
//
//   - AddChild/SetValue: O(1)
//   - Walk/Leaves/Size:  Time O(N), Memory O(D) for the explicit stack
//     (N = nodes in the subtree, D = tree depth)
//
// Errors:
//
//   - ErrEmptyNodeID        node ID is the empty string
//   - ErrNilNode            nil *Node where a node is required
//   - ErrLeafChildren       a leaf owns (or would own) children
//   - ErrLeafValueImmutable SetValue on a leaf
//   - ErrNoChildren         internal node with zero children
//   - ErrUnknownKind        Kind outside the closed leaf/max/min set
package core
