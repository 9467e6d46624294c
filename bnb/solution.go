// Package bnb — SolutionSearch: heuristic branch-and-bound where discovered
// solutions, not precomputed intervals, drive the pruning.
//
// Rationale (succinct):
//  1. Nodes carry a scalar heuristic cost (CostFunc) instead of a bound
//     interval. The incumbent ("lowest") starts at Options.UpperBound
//     (+Inf unless seeded) and tightens only when a node satisfying the
//     solution predicate is dequeued at a strictly better cost.
//  2. Solution nodes are terminal. An improving solution replaces the
//     incumbent and retroactively evicts every frontier entry now strictly
//     over it; a non-improving solution is simply dropped. Neither is ever
//     expanded, so the predicate marks leaves of the explored space.
//  3. Children enter the frontier under a non-strict test (cost <= lowest):
//     a child matching the incumbent may still lead to a different solution
//     of equal cost worth reporting paths through. Eviction after an accept
//     is strict (cost > lowest), so equal-cost entries survive. The
//     asymmetry is deliberate.
//  4. The frontier selection policy is pluggable (WithSelect) and defaults
//     to SelectLastMinimum. A custom policy returning an index outside the
//     frontier aborts with ErrSelectOutOfRange.
//  5. The visited set is seeded with the root: the start state is a known
//     state even though nothing generates it. Dedup otherwise matches
//     GraphSearch (test before CostFunc, mark unconditionally).
package bnb

// solutionRunner encapsulates mutable SolutionSearch state.
type solutionRunner[N comparable] struct {
	cost       CostFunc[N]
	children   ChildrenFunc[N]
	isSolution GoalFunc[N]
	eq         EqualFunc[N]
	sel        SelectFunc
	opts       Options[N]

	front    frontier[N]
	visited  []N
	lowest   float64 // incumbent: cost of the best accepted solution
	best     N
	found    bool
	expanded int
}

// SolutionSearch runs solution-driven branch-and-bound from root, applying
// any number of functional Options. It explores until the frontier drains
// and returns the cheapest node that satisfied isSolution, together with the
// final incumbent cost.
//
// Errors: ErrNilCost, ErrNilChildren, ErrNilSolution for missing callbacks,
// ErrOptionViolation for invalid options, ErrSelectOutOfRange for a
// misbehaving custom selection policy, and ErrNoSolution when the space
// drains without any improving solution (a zero Solution accompanies it).
func SolutionSearch[N comparable](root N, cost CostFunc[N], children ChildrenFunc[N],
	isSolution GoalFunc[N], opts ...Option[N]) (Solution[N], error) {
	// 1) Validate callbacks.
	if cost == nil {
		return Solution[N]{}, ErrNilCost
	}
	if children == nil {
		return Solution[N]{}, ErrNilChildren
	}
	if isSolution == nil {
		return Solution[N]{}, ErrNilSolution
	}

	// 2) Build options and catch any invalid ones immediately.
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Solution[N]{}, o.err
	}

	// 3) Resolve pluggable policies.
	eq := o.Equal
	if eq == nil {
		eq = func(a, b N) bool { return a == b }
	}
	sel := o.Select
	if sel == nil {
		sel = SelectLastMinimum
	}

	// 4) Prepare the runner: root is both the first frontier entry and the
	// first visited node.
	r := &solutionRunner[N]{
		cost:       cost,
		children:   children,
		isSolution: isSolution,
		eq:         eq,
		sel:        sel,
		opts:       o,
		visited:    []N{root},
		lowest:     o.UpperBound,
	}
	r.front.push(root, cost(root))

	return r.run()
}

// run drains the frontier, accepting solutions and expanding everything else.
func (r *solutionRunner[N]) run() (Solution[N], error) {
	var (
		i    int
		node N
		c    float64
	)
	for r.front.len() > 0 {
		// 5) Select and extract the next entry.
		i = r.sel(r.front.costs)
		if i < 0 || i >= r.front.len() {
			return Solution[N]{}, ErrSelectOutOfRange
		}
		node, c = r.front.removeAt(i)

		// 6) Solutions are terminal: accept or drop, never expand.
		if r.isSolution(node) {
			r.accept(node, c)
			continue
		}

		// 7) Interior node: generate children.
		r.expand(node)
	}

	// 8) Drained. Without an accepted solution the search failed.
	if !r.found {
		return Solution[N]{}, ErrNoSolution
	}

	return Solution[N]{Node: r.best, Cost: r.lowest, Expanded: r.expanded}, nil
}

// accept installs node as the incumbent when it strictly improves on the
// best cost so far, then evicts every frontier entry the new incumbent
// rules out. Non-improving solutions change nothing.
func (r *solutionRunner[N]) accept(node N, c float64) {
	if c < r.lowest {
		r.lowest = c
		r.best = node
		r.found = true
		r.front.pruneAbove(r.lowest, r.opts.OnPrune)
	}
}

// seen reports whether node was already generated (or is the root).
func (r *solutionRunner[N]) seen(node N) bool {
	var i int
	for i = 0; i < len(r.visited); i++ {
		if r.eq(r.visited[i], node) {
			return true
		}
	}

	return false
}

// expand generates node's children: duplicates are dropped before their
// cost is computed, novel children are marked visited and enqueued unless
// they already cost more than the incumbent.
func (r *solutionRunner[N]) expand(node N) {
	r.opts.OnExpand(node)
	r.expanded++

	var cc float64
	for _, child := range r.children(node) {
		if r.seen(child) {
			continue
		}
		r.visited = append(r.visited, child)

		cc = r.cost(child)
		if cc <= r.lowest {
			r.front.push(child, cc)
			r.opts.OnEnqueue(child, cc)
			continue
		}
		r.opts.OnPrune(child, cc)
	}
}
