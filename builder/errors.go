// SPDX-License-Identifier: MIT
// Package: gametree/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Build attaches node context via `%w` wrapping (node id, referenced id).
//   • The builder MUST NOT panic: every rejected description surfaces as
//     exactly one of the sentinels below.

package builder

import "errors"

// ErrMalformedDescription indicates that the top-level description shape is
// wrong: missing "root" or "nodes" keys, a non-mapping nodes value, or spec
// fields of the wrong type.
// Usage: if errors.Is(err, ErrMalformedDescription) { /* reject input */ }.
var ErrMalformedDescription = errors.New("builder: malformed description")

// ErrUnknownKind indicates that a node spec has no recognizable kind
// discriminant (absent, or outside the closed leaf/max/min set).
// Usage: if errors.Is(err, ErrUnknownKind) { /* report bad kind */ }.
var ErrUnknownKind = errors.New("builder: unknown node kind")

// ErrLeafMissingValue indicates a leaf spec without the required value.
var ErrLeafMissingValue = errors.New("builder: leaf node missing value")

// ErrLeafHasChildren indicates a leaf spec declaring a children list
// (even an empty one), or a constructed leaf that ended up owning children.
var ErrLeafHasChildren = errors.New("builder: leaf node must not declare children")

// ErrInternalValue indicates a max/min spec carrying a predefined terminal
// value; internal nodes receive values from evaluation only.
var ErrInternalValue = errors.New("builder: internal node must not declare a value")

// ErrMissingChildren indicates a max/min spec with no children list at all.
var ErrMissingChildren = errors.New("builder: internal node missing children list")

// ErrEmptyChildren indicates a max/min spec whose children list is declared
// but empty.
var ErrEmptyChildren = errors.New("builder: internal node children list is empty")

// ErrDanglingChild indicates a children list naming an identifier that is
// not defined anywhere in the node mapping. The wrapped context names both
// the missing id and the referring node.
// Usage: if errors.Is(err, ErrDanglingChild) { /* report broken reference */ }.
var ErrDanglingChild = errors.New("builder: child reference not defined")

// ErrRootNotFound indicates that the declared root identifier is not among
// the defined nodes.
var ErrRootNotFound = errors.New("builder: root not found among nodes")
