// Package minimax defines options and sentinel errors for game-tree
// evaluation.
package minimax

import "errors"

var (
	// ErrNilNode is returned when a nil *core.Node is passed to Evaluate.
	ErrNilNode = errors.New("minimax: node is nil")

	// ErrInvariantViolation indicates that the tree handed to Evaluate
	// breaks the builder's contract: an internal node with zero children,
	// or a node re-entered while still being expanded (reference cycle).
	// It signals a bug in construction, not a recoverable input condition.
	ErrInvariantViolation = errors.New("minimax: tree invariant violated")

	// ErrUnknownKind indicates a node whose kind is outside the closed
	// leaf/max/min set. Unreachable through the builder; hand-built nodes
	// fail fast here rather than silently defaulting.
	ErrUnknownKind = errors.New("minimax: unknown node kind")
)

// Option configures optional behavior of Evaluate.
// Use with Evaluate(node, opts...).
type Option func(*Options)

// Options holds configurable parameters for one evaluation run.
type Options struct {
	// OnEvaluate, if non-nil, is invoked once per node in post-order, after
	// the node's value is resolved (leaves included). Returning an error
	// aborts the evaluation with that error wrapped.
	//
	// Children are always expanded left to right, so the trace a hook
	// observes is deterministic for a given tree.
	OnEvaluate func(id string, value float64) error
}

// DefaultOptions returns the baseline Options used by Evaluate.
func DefaultOptions() Options {
	return Options{}
}

// WithOnEvaluate installs a post-order tracing hook.
func WithOnEvaluate(fn func(id string, value float64) error) Option {
	return func(o *Options) { o.OnEvaluate = fn }
}
