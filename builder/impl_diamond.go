// SPDX-License-Identifier: MIT
// Package: lvlsearch/builder
//
// impl_diamond.go — chained split/merge lattice with shared merge nodes.
//
// Contract (strict):
//   • layers >= 1 (ErrBadLayers); the space holds 3*layers+1 nodes.
//   • Layer d (0-based) contributes split nodes 3d+1 and 3d+2 plus merge
//     node 3d+3; the merge node is reachable along BOTH split arms, which is
//     what makes this the canonical deduplication fixture for GraphSearch.
//   • lower = BFS depth, upper = +Inf (the lattice never tightens the
//     incumbent); cost mirrors lower.
//   • score decreases monotonically toward the sink (2*layers at the root,
//     0 at the sink) so greedy.Descent walks the full lattice.
//   • The single goal is the sink 3*layers; WithGoalEvery, WithCostFn and
//     WithSeed/WithRand are ignored.
//
// Determinism: output depends only on layers.
// Complexity: O(layers) time and memory.
//
// AI-Hints:
//   • GraphSearch expands every node exactly once; TreeSearch re-expands each
//     merge node per arriving arm, so duplicate copies multiply layer by
//     layer. Diffing the Expanded counters demonstrates the visited set.
//   • Keep layers small when driving TreeSearch; only GraphSearch scales.

package builder

import "math"

// Diamond builds a lattice of `layers` chained diamonds: each layer splits
// into two arms that re-merge one node later.
func Diamond(layers int, opts ...BuilderOption) (*Space, error) {
	// 1) Validate shape. Options carry nothing this factory consumes, but the
	//    config is still resolved so option panics stay eager and uniform.
	if err := validateMin(methodDiamond, layers, minLayers, ErrBadLayers); err != nil {
		return nil, err
	}
	newBuilderConfig(opts...)

	// 2) Allocate and wire layer by layer.
	var s = newSpace(3*layers + 1)
	var top, d, a, b, m int
	for d = 0; d < layers; d++ {
		a, b, m = 3*d+1, 3*d+2, 3*d+3
		s.children[top] = []int{a, b}
		s.children[a] = []int{m}
		s.children[b] = []int{m}
		top = m
	}

	// 3) Depth-derived values: open intervals, descending scores.
	var depth = make([]float64, s.Len())
	for d = 0; d < layers; d++ {
		depth[3*d+1], depth[3*d+2] = float64(2*d+1), float64(2*d+1)
		depth[3*d+3] = float64(2*d + 2)
	}
	var peak = float64(2 * layers)
	var id int
	for id = 0; id < s.Len(); id++ {
		s.lower[id], s.upper[id] = depth[id], math.Inf(1)
		s.cost[id] = depth[id]
		s.score[id] = peak - depth[id]
	}

	// 4) The sink is the only goal.
	s.goal[3*layers] = true

	return s, nil
}
