// SPDX-License-Identifier: MIT
// Package: gametree/builder
//
// build.go — three-phase construction of a core.Node tree from a Description.

package builder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/gametree/core"
)

// Build transforms a Description into a fully linked core.Node tree rooted
// at the declared root, or fails with exactly one sentinel from errors.go.
//
// Phases (in order):
//  1. Instantiate every declared node in isolation — leaves fully formed,
//     internal nodes as empty shells — validating each spec's own shape.
//     Forward references are irrelevant here, so the mapping's iteration
//     order cannot affect the outcome.
//  2. Resolve every internal node's declared child ids against the phase-1
//     table, linking children in declared order. An id that resolves to
//     nothing fails with ErrDanglingChild naming both sides. The child's
//     parent back-reference is recorded by core.AddChild (first parent wins).
//  3. Resolve the declared root (ErrRootNotFound), then sweep the
//     structural invariants of every instantiated node — not only those
//     reachable from the root — via core's Validate.
//
// On any failure no partial tree escapes; every call allocates fresh nodes,
// so two Builds of the same Description never share structure.
func Build(d Description) (*core.Node, error) {
	if d.Nodes == nil {
		return nil, fmt.Errorf("%w: description has no node mapping", ErrMalformedDescription)
	}

	// Deterministic iteration order: with several violations present, the
	// one reported must not depend on map iteration order.
	ids := make([]string, 0, len(d.Nodes))
	for id := range d.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	// Phase 1: instantiate every node in isolation.
	nodes := make(map[string]*core.Node, len(d.Nodes))
	var (
		id   string
		err  error
		node *core.Node
	)
	for _, id = range ids {
		if node, err = instantiate(id, d.Nodes[id]); err != nil {
			return nil, err
		}
		nodes[id] = node
	}

	// Phase 2: link child references in declared order.
	for _, id = range ids {
		spec := d.Nodes[id]
		node = nodes[id]
		if node.IsLeaf() {
			// Phase 1 already guaranteed leaves declare no children.
			continue
		}
		for _, cid := range spec.Children {
			child, ok := nodes[cid]
			if !ok {
				return nil, fmt.Errorf("%w: %q referenced by %q", ErrDanglingChild, cid, id)
			}
			if err = node.AddChild(child); err != nil {
				return nil, fmt.Errorf("%w: node %q: %v", ErrMalformedDescription, id, err)
			}
		}
	}

	// Phase 3a: the declared root must exist among the defined nodes.
	root, ok := nodes[d.Root]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRootNotFound, d.Root)
	}

	// Phase 3b: invariant sweep over every instantiated node, deliberately
	// separate from construction so each violation is reported against the
	// node that carries it.
	for _, id = range ids {
		if err = nodes[id].Validate(); err != nil {
			return nil, sweepError(id, err)
		}
	}

	return root, nil
}

// instantiate validates one spec's own shape and creates the corresponding
// node: leaves fully formed, max/min as empty shells to be linked in
// phase 2.
func instantiate(id string, spec Spec) (*core.Node, error) {
	var (
		node *core.Node
		err  error
	)
	switch spec.Kind {
	case SpecLeaf:
		if spec.Value == nil {
			return nil, fmt.Errorf("%w: node %q", ErrLeafMissingValue, id)
		}
		if spec.Children != nil {
			return nil, fmt.Errorf("%w: node %q", ErrLeafHasChildren, id)
		}
		node, err = core.NewLeaf(id, *spec.Value)

	case SpecMax, SpecMin:
		if spec.Value != nil {
			return nil, fmt.Errorf("%w: node %q", ErrInternalValue, id)
		}
		if spec.Children == nil {
			return nil, fmt.Errorf("%w: node %q", ErrMissingChildren, id)
		}
		if len(spec.Children) == 0 {
			return nil, fmt.Errorf("%w: node %q", ErrEmptyChildren, id)
		}
		if spec.Kind == SpecMax {
			node, err = core.NewMax(id)
		} else {
			node, err = core.NewMin(id)
		}

	default:
		return nil, fmt.Errorf("%w: node %q declares kind %q", ErrUnknownKind, id, spec.Kind)
	}

	if err != nil {
		// Constructor failures (e.g. the empty node id) fold into the
		// top-level shape class.
		return nil, fmt.Errorf("%w: node %q: %v", ErrMalformedDescription, id, err)
	}

	return node, nil
}

// sweepError maps a core.Validate failure into the builder's taxonomy.
// Phase 1 makes these unreachable for spec-built trees; the sweep exists so
// the guarantee holds structurally, not just by the order of earlier checks.
func sweepError(id string, err error) error {
	switch {
	case errors.Is(err, core.ErrLeafChildren):
		return fmt.Errorf("%w: node %q", ErrLeafHasChildren, id)
	case errors.Is(err, core.ErrNoChildren):
		return fmt.Errorf("%w: node %q", ErrEmptyChildren, id)
	default:
		return fmt.Errorf("%w: node %q: %v", ErrMalformedDescription, id, err)
	}
}
