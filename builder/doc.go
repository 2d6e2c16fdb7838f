// SPDX-License-Identifier: MIT
// Package: gametree/builder
//
// Package builder turns a loosely-typed game-tree description — a root
// identifier plus a mapping from identifier to node spec — into a validated
// core.Node tree, or fails with a precise, branchable diagnosis.
//
// What:
//
//   - Spec / Description: the typed shape of the description language
//     ({root, nodes{id: {kind, value?, children?}}})
//   - FromMap: decode an untyped map (already deserialized JSON/YAML/...)
//     into a Description, rejecting malformed shapes
//   - Build: three-phase construction
//     1. instantiate every node in isolation (leaves complete, internal
//     nodes as empty shells), validating each spec's shape
//     2. resolve child references in declared order and link ownership
//     3. sweep every instantiated node's structural invariants and
//     resolve the root
//
// Why the phases: children may be declared before or after the parent that
// references them, so all nodes must exist before any reference is
// resolved; the final sweep is separate from construction so violations
// are reported against the node that carries them, not the one that
// happened to be visited first.
//
// Complexity: Time O(N + R), Memory O(N)
// (N = declared nodes, R = child references).
//
// Errors (sentinel, branch with errors.Is):
//
//   - ErrMalformedDescription  top-level shape wrong (missing root/nodes, wrong types)
//   - ErrUnknownKind           spec kind missing or outside leaf/max/min
//   - ErrLeafMissingValue      leaf without a value
//   - ErrLeafHasChildren       leaf declaring a children list
//   - ErrInternalValue         max/min carrying a predefined value
//   - ErrMissingChildren       max/min without a children list
//   - ErrEmptyChildren         max/min with an empty children list
//   - ErrDanglingChild         children list naming an undefined id
//   - ErrRootNotFound          declared root id not among the nodes
//
// All failures are terminal for the construction attempt: no partial tree
// escapes, and no recovery ("skip the bad node") is attempted here — that
// decision belongs to the caller.
package builder
