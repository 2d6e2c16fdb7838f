// Package core defines the Node type for game trees.
//
// This file declares Kind, Node, sentinel errors, and the constructors.
package core

import (
	"errors"
	"strconv"
)

// Sentinel errors for core tree operations.
var (
	// ErrEmptyNodeID indicates that a constructor received an empty node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNilNode indicates that a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("core: node is nil")

	// ErrLeafChildren indicates that a leaf node owns, or was asked to own, children.
	ErrLeafChildren = errors.New("core: leaf node must not have children")

	// ErrLeafValueImmutable indicates an attempt to overwrite a leaf's terminal value.
	ErrLeafValueImmutable = errors.New("core: leaf value is immutable")

	// ErrNoChildren indicates an internal (max/min) node with zero children.
	ErrNoChildren = errors.New("core: internal node must have children")

	// ErrUnknownKind indicates a Kind outside the closed leaf/max/min set.
	ErrUnknownKind = errors.New("core: unknown node kind")
)

// Kind discriminates the three node variants of a game tree.
type Kind uint8

const (
	// KindLeaf is a terminal node carrying a fixed utility value.
	KindLeaf Kind = iota

	// KindMax is an internal node whose backed-up value is the maximum
	// of its children's values.
	KindMax

	// KindMin is an internal node whose backed-up value is the minimum
	// of its children's values.
	KindMin
)

// String returns the lowercase name of the kind, matching the description
// language ("leaf", "max", "min"). Unknown kinds render as "kind(<n>)".
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindMax:
		return "max"
	case KindMin:
		return "min"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Node is one vertex of a rooted game tree.
//
// A Node is either a leaf (terminal utility value, no children) or an
// internal max/min node (at least one child after construction, value
// populated only by evaluation). Fields are unexported so every state a
// Node can reach goes through the validated constructors and mutators.
type Node struct {
	id       string
	kind     Kind
	value    float64
	valued   bool
	children []*Node
	parent   *Node
}

// NewLeaf returns a terminal node with the given ID and utility value.
// Returns ErrEmptyNodeID if id is empty.
func NewLeaf(id string, value float64) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	return &Node{id: id, kind: KindLeaf, value: value, valued: true}, nil
}

// NewMax returns a maximizing internal node with no children yet.
// Children are attached afterwards via AddChild; a Max node is only valid
// once it owns at least one child (see Validate).
// Returns ErrEmptyNodeID if id is empty.
func NewMax(id string) (*Node, error) {
	return newInternal(id, KindMax)
}

// NewMin returns a minimizing internal node with no children yet.
// Returns ErrEmptyNodeID if id is empty.
func NewMin(id string) (*Node, error) {
	return newInternal(id, KindMin)
}

// newInternal builds the empty shell shared by NewMax and NewMin.
func newInternal(id string, k Kind) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	return &Node{id: id, kind: k}, nil
}
