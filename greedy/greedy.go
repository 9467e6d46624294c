// Package greedy — Descent: steepest single-path descent to a local optimum.
//
// Rationale (succinct):
//  1. One node is occupied at a time; there is no frontier and no backtrack.
//     Each round scores the current node's children and moves to the best
//     strict improvement, or stops.
//  2. The comparison target is a best score that PERSISTS across rounds,
//     initialized to +Inf. The root itself is never scored: after the first
//     move the best score equals the occupied node's score, so "beat the
//     best" and "beat where you stand" coincide from then on.
//  3. Improvement is strict (<). Within a round the first child reaching a
//     given score wins it; a later child must score strictly lower to take
//     the move. Plateaus therefore stop the walk; equal-score cycling is
//     impossible.
package greedy

import "math"

// Descent walks from root to a local optimum, applying any number of
// functional Options. It always succeeds on valid input; a root with no
// improving child is itself the result, with Moves == 0 and Score == +Inf.
//
// Errors: ErrNilChildren, ErrNilScore for missing callbacks,
// ErrOptionViolation for invalid options.
func Descent[N any](root N, children ChildrenFunc[N], score ScoreFunc[N],
	opts ...Option[N]) (Result[N], error) {
	// 1) Validate callbacks.
	if children == nil {
		return Result[N]{}, ErrNilChildren
	}
	if score == nil {
		return Result[N]{}, ErrNilScore
	}

	// 2) Build options and catch any invalid ones immediately.
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result[N]{}, o.err
	}

	// 3) Walk until no child strictly improves the running best.
	var (
		current   = root
		best      = math.Inf(1)
		moves     = 0
		candidate N
		improved  bool
		s         float64
	)
	for {
		improved = false
		for _, child := range children(current) {
			if s = score(child); s < best {
				best = s
				candidate = child
				improved = true
			}
		}
		if !improved {
			return Result[N]{Node: current, Score: best, Moves: moves}, nil
		}
		current = candidate
		moves++
		o.OnMove(current, best)
	}
}
