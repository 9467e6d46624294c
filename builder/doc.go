// SPDX-License-Identifier: MIT
// Package: lvlsearch/builder
//
// doc.go — package overview, catalog and usage conventions.

// Package builder constructs small, fully explicit search spaces for the
// lvlsearch engines: deterministic fixtures for tests and examples, seeded
// random trees for stress and benchmark loads.
//
// Every factory returns a *Space, an immutable graph over dense integer IDs
// whose accessors plug directly into bnb.TreeSearch, bnb.GraphSearch,
// bnb.SolutionSearch and greedy.Descent:
//
//	sp, err := builder.CostTree(3, []float64{5, 3, 8, 1, 9, 2, 7, 4})
//	if err != nil { ... }
//	res, err := bnb.TreeSearch(sp.Root(), sp.Bounds(), sp.Children(), sp.Goal())
//
// Catalog:
//
//   - CostTree(depth, leaves)      — complete binary tree, collapsed exact
//     intervals, subtree minima on internal nodes. The canonical pruning
//     fixture.
//   - Diamond(layers)              — chained split/merge lattice whose merge
//     nodes are reachable twice. The canonical deduplication fixture.
//   - DescentChain(length, branch) — strictly improving chain with `branch`
//     distracting dead ends per step. The canonical greedy fixture.
//   - RandomTree(n, branching)     — seeded random tree with admissible
//     bounds. The stress/bench fixture; requires WithSeed or WithRand.
//
// Configuration follows the functional-option pattern: WithSeed / WithRand
// pick the RNG, WithCostFn (or the WithUniformCost family of shorthands)
// picks the node-cost generator, WithGoalEvery thins goal leaves. Option
// constructors panic on programmer error (nil funcs, negative cadence);
// factories themselves only ever return sentinel errors from errors.go.
//
// Determinism: deterministic factories depend on their arguments alone;
// stochastic ones draw in a documented fixed order, so one seed pins the
// whole space.
package builder
