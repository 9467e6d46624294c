// SPDX-License-Identifier: MIT
// Package: lvlsearch/builder
//
// impl_random.go — seeded random tree for stress and benchmark loads.
//
// Contract (strict):
//   • n >= 1 (ErrBadCount), branching >= 1 (ErrBadBranch).
//   • Stochastic: a non-nil RNG is REQUIRED (ErrNeedRandSource); supply
//     WithSeed for reproducible spaces or WithRand to share a stream.
//   • Node i>0 attaches to a uniform draw among [0, i); saturated parents
//     (already holding `branching` children) are skipped by a forward scan.
//     The scan always terminates: i parents offer i*branching slots against
//     the i-1 edges already placed.
//   • cost and score are one generator draw per node, in ID order.
//   • Leaves collapse their interval onto their cost; an internal node
//     carries its subtree minimum below and stays open above (+Inf), so
//     bounds are admissible and the cheapest goal is never pruned away.
//   • Goal membership follows the WithGoalEvery cadence over the leaves.
//
// Determinism: (n, branching, seed, costFn, goalEvery) pins the output;
// draws happen in a fixed order (parents first, then costs by ID).
// Complexity: O(n*branching) worst-case wiring, O(n) memory.
//
// AI-Hints:
//   • DefaultCostFn flattens every cost to 1; pass WithUniformCost or
//     WithExponentialCost for spaces with pruning structure.

package builder

import "math"

// RandomTree builds a random rooted tree over n nodes in which no node holds
// more than `branching` children.
func RandomTree(n, branching int, opts ...BuilderOption) (*Space, error) {
	// 1) Validate shape and source.
	if err := validateMin(methodRandomTree, n, minNodeCount, ErrBadCount); err != nil {
		return nil, err
	}
	if err := validateMin(methodRandomTree, branching, minBranching, ErrBadBranch); err != nil {
		return nil, err
	}
	var cfg = newBuilderConfig(opts...)
	if err := validateRng(methodRandomTree, cfg); err != nil {
		return nil, err
	}

	// 2) Wire each node to a random unsaturated parent with a smaller ID.
	var s = newSpace(n)
	var i, p int
	for i = 1; i < n; i++ {
		p = cfg.rng.Intn(i)
		for len(s.children[p]) >= branching {
			p = (p + 1) % i
		}
		s.children[p] = append(s.children[p], i)
	}

	// 3) One cost draw per node, in ID order.
	var c float64
	for i = 0; i < n; i++ {
		c = cfg.costFn(cfg.rng)
		s.cost[i], s.score[i] = c, c
	}

	// 4) Bounds: children always carry higher IDs, so one reverse sweep
	//    computes subtree minima; leaves collapse, internals stay open.
	var k int
	for i = n - 1; i >= 0; i-- {
		if len(s.children[i]) == 0 {
			s.lower[i], s.upper[i] = s.cost[i], s.cost[i]
			continue
		}
		c = s.cost[i]
		for _, k = range s.children[i] {
			if s.lower[k] < c {
				c = s.lower[k]
			}
		}
		s.lower[i], s.upper[i] = c, math.Inf(1)
	}

	// 5) Mark goal leaves per cadence.
	s.markGoalLeaves(cfg.goalEvery)

	return s, nil
}
