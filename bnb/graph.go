// Package bnb — GraphSearch: branch-and-bound with duplicate detection for
// spaces where children converge on shared nodes.
//
// Rationale (succinct):
//  1. Identical to TreeSearch except for a visited set consulted at child
//     generation time. Membership uses native == by default; WithEqual
//     substitutes any caller equivalence (canonical forms, modular identity).
//  2. The duplicate test runs BEFORE the child's bounds are computed: on a
//     diamond-shaped space the shared node pays for one BoundsFunc call, not
//     two. Duplicate discards are silent; they are deduplication, not
//     pruning, so OnPrune does not fire.
//  3. Every novel child is recorded as visited at generation, whether the
//     bound check then admits it or prunes it. A bound-pruned node stays
//     pruned; it is never re-examined via another path.
//  4. The visited set holds nodes that were generated as children. The root
//     is not a member (nothing generates it), so a space that reaches the
//     root again will re-expand it once.
//  5. Membership is a linear scan. The set is a slice, not a map, because
//     equality is caller-defined and need not agree with comparability.
package bnb

import "math"

// graphWalker encapsulates mutable GraphSearch state.
type graphWalker[N comparable] struct {
	bounds   BoundsFunc[N]
	children ChildrenFunc[N]
	isGoal   GoalFunc[N]
	eq       EqualFunc[N]
	opts     Options[N]

	front    frontier[N]
	visited  []N
	highest  float64
	expanded int
}

// GraphSearch runs branch-and-bound from root over a space with shared
// nodes, applying any number of functional Options. Node identity defaults
// to == and is overridable via WithEqual.
//
// Semantics otherwise match TreeSearch: first goal node wins, a drained
// frontier returns the last examined node with Result.Goal == false.
// Errors: ErrNilBounds, ErrNilChildren, ErrNilGoal, ErrOptionViolation.
func GraphSearch[N comparable](root N, bounds BoundsFunc[N], children ChildrenFunc[N],
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

	// 3) Resolve node identity: native == unless overridden.
	eq := o.Equal
	if eq == nil {
		eq = func(a, b N) bool { return a == b }
	}

	// 4) Prepare the walker and run.
	w := &graphWalker[N]{
		bounds:   bounds,
		children: children,
		isGoal:   isGoal,
		eq:       eq,
		opts:     o,
		highest:  math.Inf(1),
	}

	return w.run(root), nil
}

// run drives the select-test-expand loop until a goal is met or the
// frontier drains.
func (w *graphWalker[N]) run(root N) Result[N] {
	current := root
	for !w.isGoal(current) {
		w.expand(current)

		if w.front.len() == 0 {
			return Result[N]{Node: current, Goal: false, Expanded: w.expanded}
		}

		current, _ = w.front.removeAt(SelectLastMinimum(w.front.costs))
	}

	return Result[N]{Node: current, Goal: true, Expanded: w.expanded}
}

// seen reports whether node was already generated on some earlier path.
func (w *graphWalker[N]) seen(node N) bool {
	var i int
	for i = 0; i < len(w.visited); i++ {
		if w.eq(w.visited[i], node) {
			return true
		}
	}

	return false
}

// expand generates node's children. Duplicates are dropped before their
// bounds are computed; novel children are marked visited first and then
// either admitted (tightening the incumbent) or bound-pruned.
func (w *graphWalker[N]) expand(node N) {
	w.opts.OnExpand(node)
	w.expanded++

	var b Bounds
	for _, child := range w.children(node) {
		if w.seen(child) {
			continue
		}
		// Visited regardless of the bound decision below.
		w.visited = append(w.visited, child)

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
