// SPDX-License-Identifier: MIT
// Package: gametree/builder
//
// description.go — the typed description language and the untyped-map decoder.

package builder

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Spec kinds as they appear in the description language.
const (
	// SpecLeaf marks a terminal node spec; requires "value", forbids "children".
	SpecLeaf = "leaf"

	// SpecMax marks a maximizing node spec; requires a non-empty "children" list.
	SpecMax = "max"

	// SpecMin marks a minimizing node spec; requires a non-empty "children" list.
	SpecMin = "min"
)

// Spec is one node's entry in a description.
//
// Pointer/nil-ness carries presence: Value == nil means "value" was absent,
// Children == nil means "children" was absent (a present-but-empty list
// decodes to a non-nil empty slice). Build relies on this distinction to
// tell ErrMissingChildren from ErrEmptyChildren.
type Spec struct {
	// Kind is the required discriminant: "leaf", "max", or "min".
	Kind string `mapstructure:"kind" json:"kind" yaml:"kind"`

	// Value is the terminal utility value; required iff Kind == "leaf".
	// Integers and floats are accepted equivalently.
	Value *float64 `mapstructure:"value" json:"value,omitempty" yaml:"value,omitempty"`

	// Children is the ordered list of child identifiers;
	// required iff Kind ∈ {"max", "min"}.
	Children []string `mapstructure:"children" json:"children,omitempty" yaml:"children,omitempty"`
}

// Description is the full input to Build: a designated root identifier and
// the mapping from identifier to node spec.
type Description struct {
	// Root is the identifier of the tree's root node.
	Root string `mapstructure:"root" json:"root" yaml:"root"`

	// Nodes maps each identifier to its spec. Identifier uniqueness is
	// structural (it is a map); a source format with duplicate keys must be
	// rejected by its decoder before reaching the builder.
	Nodes map[string]Spec `mapstructure:"nodes" json:"nodes" yaml:"nodes"`
}

// FromMap decodes an untyped description map — the shape produced by
// deserializing {root: <id>, nodes: {<id>: {kind, value?, children?}}} from
// JSON, YAML, or any other source — into a Description.
//
// Shape violations (missing root/nodes keys, nodes not a mapping, kind not
// a string, children not a list of strings, value not a number) are all
// reported as ErrMalformedDescription with detail attached. Integer and
// floating-point values are accepted equivalently.
//
// FromMap validates only the top-level shape; per-node semantics (leaf
// needs a value, max/min need children, ...) belong to Build.
func FromMap(data map[string]any) (Description, error) {
	// 1. The description itself must exist.
	if data == nil {
		return Description{}, fmt.Errorf("%w: description is nil", ErrMalformedDescription)
	}

	// 2. Both top-level keys are required; their absence is a shape error,
	//    not an empty default.
	if _, ok := data["root"]; !ok {
		return Description{}, fmt.Errorf("%w: missing %q key", ErrMalformedDescription, "root")
	}
	if _, ok := data["nodes"]; !ok {
		return Description{}, fmt.Errorf("%w: missing %q key", ErrMalformedDescription, "nodes")
	}

	// 3. Strict field-by-field decode. No weak typing: a string where a list
	//    belongs is a malformed description, not something to coerce.
	//    (mapstructure still widens integers into the *float64 value field,
	//    which is exactly the numeric equivalence the description language
	//    promises.)
	var d Description
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &d,
	})
	if err != nil {
		return Description{}, fmt.Errorf("%w: %v", ErrMalformedDescription, err)
	}
	if err = dec.Decode(data); err != nil {
		return Description{}, fmt.Errorf("%w: %v", ErrMalformedDescription, err)
	}

	// 4. "nodes" present but null (or decoded empty from a non-map) is still
	//    not a usable mapping.
	if d.Nodes == nil {
		return Description{}, fmt.Errorf("%w: %q must be a mapping of node specs", ErrMalformedDescription, "nodes")
	}

	return d, nil
}
