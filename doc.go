// Package gametree builds and evaluates two-player, perfect-information
// game trees — from a declarative description straight to the backed-up
// minimax value at every node.
//
// 🚀 What is gametree?
//
//	A small, focused library that brings together:
//		• core     — the Node type: leaf / max / min variants, validated construction
//		• builder  — declarative descriptions (root + id→spec mapping) → owned trees
//		• minimax  — iterative post-order evaluation, backed-up values in place
//		• treeio   — JSON/YAML decoding, recursive discovery, indented rendering
//
// ✨ Why choose gametree?
//
//   - Strict invariants – a leaf with children or a childless max node is
//     rejected at construction, never discovered mid-evaluation
//   - Precise errors – one sentinel per failure class, branch with errors.Is
//   - Depth-safe – explicit work stacks everywhere, no native recursion on
//     attacker-controlled tree depth
//   - Pure Go core – evaluation is a single synchronous pass, no I/O
//
// Quick ASCII example:
//
//	      A(max)
//	     /      \
//	  B(min)   C=3
//	  /    \
//	 D=5  E=-2
//
//	evaluates to B = -2 and A = 3.
//
// The treeio package and the gametree CLI (cmd/gametree) wrap the core with
// file discovery, JSON/YAML decoding and human-readable output; the core
// itself never touches the filesystem.
//
//	go get github.com/katalvlaran/gametree
package gametree
