// Package greedy core types and configuration options for Descent.
package greedy

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Descent.
var (
	// ErrNilChildren indicates that a nil ChildrenFunc was passed.
	ErrNilChildren = errors.New("greedy: children callback is nil")

	// ErrNilScore indicates that a nil ScoreFunc was passed.
	ErrNilScore = errors.New("greedy: score callback is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("greedy: invalid option supplied")
)

// ChildrenFunc generates the immediate neighbors of a node, in the order in
// which Descent will examine them. An empty (or nil) slice ends the walk.
type ChildrenFunc[N any] func(node N) []N

// ScoreFunc assigns a scalar score to a node; lower is better. Scores are
// float64 and are not validated: NaN never compares as an improvement and
// therefore never attracts a move.
type ScoreFunc[N any] func(node N) float64

// Option configures Descent behavior via functional arguments.
// If an Option is invalid (e.g. a nil hook), it is recorded internally and
// surfaced as ErrOptionViolation when Descent is invoked.
type Option[N any] func(*Options[N])

// Options holds parameters and hooks for Descent.
type Options[N any] struct {
	// OnMove is called after each accepted move with the node arrived at
	// and the score that won the move.
	OnMove func(node N, score float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a no-op move hook.
func DefaultOptions[N any]() Options[N] {
	return Options[N]{
		OnMove: func(N, float64) {},
		err:    nil,
	}
}

// WithOnMove registers a hook fired after every accepted move.
// Passing nil is invalid and surfaces as ErrOptionViolation.
func WithOnMove[N any](fn func(node N, score float64)) Option[N] {
	return func(o *Options[N]) {
		if fn == nil {
			o.err = fmt.Errorf("%w: WithOnMove requires a non-nil hook", ErrOptionViolation)
			return
		}
		o.OnMove = fn
	}
}

// Result reports the outcome of a Descent walk.
//   - Node: the local optimum, the last node none of whose children
//     strictly improved on the best score.
//   - Score: the running best score; math.Inf(1) when no move was made
//     (the root's own score is never evaluated).
//   - Moves: the number of accepted moves.
type Result[N any] struct {
	Node  N
	Score float64
	Moves int
}
