// Package bnb — TreeSearch: best-first branch-and-bound over duplicate-free
// search spaces.
//
// Rationale (succinct):
//  1. Every examined node is tested against the goal predicate before it is
//     expanded, so a goal is reported the moment it is selected; its
//     children are never generated.
//  2. Each child carries a [Lower, Upper] interval from the caller's
//     BoundsFunc. The incumbent ("highest") starts at +Inf and only ever
//     decreases: every admitted child's Upper tightens it, because some
//     completion at that cost certainly exists below the child.
//  3. A child whose Lower exceeds the incumbent cannot beat what is already
//     guaranteed elsewhere and is pruned before touching the frontier.
//     Tightening is per-child, so later siblings face the sharper incumbent.
//  4. Selection is SelectLastMinimum over frontier lower bounds: minimum
//     first, most recent on ties. Combined with order-preserving removal the
//     whole run is deterministic.
//  5. No visited set is kept: the space is trusted to be a tree. On inputs
//     where children converge, the same node is expanded once per arrival
//     (use GraphSearch there).
package bnb

import "math"

// treeWalker encapsulates mutable TreeSearch state.
// A dedicated struct (instead of closures over locals) keeps the hot loop
// flat and the expansion step independently testable.
type treeWalker[N any] struct {
	bounds   BoundsFunc[N]
	children ChildrenFunc[N]
	isGoal   GoalFunc[N]
	opts     Options[N]

	front    frontier[N]
	highest  float64 // incumbent upper bound, monotonically non-increasing
	expanded int
}

// TreeSearch runs branch-and-bound from root over a tree-shaped space,
// applying any number of functional Options.
//
// It returns the first goal node reached (Result.Goal == true), or the last
// node examined with Result.Goal == false when the frontier drains before
// any goal is met; frontier exhaustion is an outcome, not an error.
// Errors: ErrNilBounds, ErrNilChildren, ErrNilGoal for missing callbacks,
// ErrOptionViolation for invalid options.
func TreeSearch[N any](root N, bounds BoundsFunc[N], children ChildrenFunc[N],
	isGoal GoalFunc[N], opts ...Option[N]) (Result[N], error) {
	// 1) Validate callbacks.
	if bounds == nil {
		return Result[N]{}, ErrNilBounds
	}
	if children == nil {
		return Result[N]{}, ErrNilChildren
	}
	if isGoal == nil {
		return Result[N]{}, ErrNilGoal
	}

	// 2) Build options and catch any invalid ones immediately.
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result[N]{}, o.err
	}

	// 3) Prepare the walker and run.
	w := &treeWalker[N]{
		bounds:   bounds,
		children: children,
		isGoal:   isGoal,
		opts:     o,
		highest:  math.Inf(1),
	}

	return w.run(root), nil
}

// run drives the select-test-expand loop until a goal is met or the
// frontier drains.
func (w *treeWalker[N]) run(root N) Result[N] {
	current := root
	for !w.isGoal(current) {
		// 4) Expand the current node into the frontier.
		w.expand(current)

		// 5) Drained frontier: report the node we stopped at.
		if w.front.len() == 0 {
			return Result[N]{Node: current, Goal: false, Expanded: w.expanded}
		}

		// 6) Select the next node: minimum lower bound, latest on ties.
		current, _ = w.front.removeAt(SelectLastMinimum(w.front.costs))
	}

	return Result[N]{Node: current, Goal: true, Expanded: w.expanded}
}

// expand generates node's children, admitting each child whose lower bound
// does not exceed the incumbent and pruning the rest. Every admitted child
// tightens the incumbent with its upper bound before the next sibling is
// examined.
func (w *treeWalker[N]) expand(node N) {
	w.opts.OnExpand(node)
	w.expanded++

	var b Bounds
	for _, child := range w.children(node) {
		b = w.bounds(child)
		if b.Lower <= w.highest {
			if b.Upper < w.highest {
				w.highest = b.Upper
			}
			w.front.push(child, b.Lower)
			w.opts.OnEnqueue(child, b.Lower)
			continue
		}
		w.opts.OnPrune(child, b.Lower)
	}
}
