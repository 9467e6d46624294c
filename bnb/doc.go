// Package bnb implements a family of branch-and-bound searches over
// caller-defined search spaces. Nodes are opaque type parameters: the
// algorithms never inspect them, and all structure (children, bounds, costs,
// goals) is supplied through callbacks. This keeps the package free of any
// graph or domain representation and makes it usable for combinatorial
// optimization, route planning, scheduling, and puzzle search alike.
//
// The key algorithms offered are:
//
//   - TreeSearch
//
//   - Method: best-first expansion with per-node [lower, upper] bound
//     intervals and a monotonically tightening incumbent upper bound.
//
//   - Time:   O(N·(C + F)), N = nodes expanded, C = callback cost,
//     F = frontier size at expansion (linear selection scan).
//
//   - Memory: O(F) for the frontier.
//
//   - Use on acyclic spaces where nodes are never reachable twice.
//
//   - GraphSearch
//
//   - Method: TreeSearch plus a visited set with pluggable node equality;
//     duplicate children are discarded before their bounds are computed.
//
//   - Time:   O(N·(C + F + V)), V = visited-set size (linear equality scan).
//
//   - Memory: O(F + V).
//
//   - Use when children can converge on shared nodes (lattices, grids).
//
//   - SolutionSearch
//
//   - Method: heuristic branch-and-bound driven by discovered solutions:
//     scalar node costs, a solution predicate, retroactive frontier pruning
//     whenever a cheaper solution is accepted, and a pluggable frontier
//     selection policy.
//
//   - Time:   O(N·(C + F + V)) plus O(F) per accepted solution for pruning.
//
//   - Memory: O(F + V).
//
//   - Use when solution quality (not a goal test alone) drives the search.
//
// # Determinism
//
// All three searches are fully deterministic for deterministic callbacks.
// Frontier selection breaks cost ties by insertion recency: among all entries
// of minimum cost, the most recently inserted is expanded next. This policy
// is exported as SelectLastMinimum and is the default everywhere; frontier
// removal preserves the insertion order of the surviving entries, so ties
// keep resolving the same way across the whole run. Identical inputs produce
// identical results, expansion sequences, and hook invocation orders.
//
// # API
//
// Options configures all three searches (see types.go for per-search
// relevance):
//
//	res, err := bnb.TreeSearch(root, boundsFn, childrenFn, isGoal)
//	res, err := bnb.GraphSearch(root, boundsFn, childrenFn, isGoal,
//	    bnb.WithEqual(eq))
//	sol, err := bnb.SolutionSearch(root, costFn, childrenFn, isSolution,
//	    bnb.WithUpperBound(42))
//
// Costs are float64, lower is better, and +Inf means "unbounded". The
// algorithms perform no numeric validation: NaN or inverted bound intervals
// degrade per float64 comparison semantics and never panic.
//
// # Errors
//
//	ErrNilBounds / ErrNilChildren / ErrNilGoal / ErrNilCost / ErrNilSolution -
//	    a required callback is nil.
//	ErrOptionViolation - an invalid functional option was supplied.
//	ErrNoSolution      - SolutionSearch drained the frontier without
//	                     accepting any solution.
//	ErrSelectOutOfRange - a custom SelectFunc returned an invalid index.
package bnb
