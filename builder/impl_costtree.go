// SPDX-License-Identifier: MIT
// Package: lvlsearch/builder
//
// impl_costtree.go — complete binary tree with caller-supplied leaf costs.
//
// Contract (strict):
//   • depth >= 1 (ErrBadDepth), len(leaves) == 2^depth (ErrLeafCount).
//   • Heap layout, 0-based: node k has children 2k+1 and 2k+2; leaves occupy
//     IDs [2^depth-1, 2^(depth+1)-1).
//   • Intervals are collapsed onto exact values: leaf k carries leaves[k] in
//     lower, upper, cost and score; an internal node carries its subtree
//     minimum, so every bound is admissible AND tight.
//   • Goal membership follows the WithGoalEvery cadence over the leaves.
//   • WithCostFn and WithSeed/WithRand are ignored: all values come from the
//     leaves argument.
//
// Determinism: output depends only on (depth, leaves, goalEvery).
// Complexity: O(2^depth) time and memory.
//
// AI-Hints:
//   • This is the canonical pruning fixture: tight upper bounds collapse the
//     incumbent to the global minimum after the first expansion.
//   • Feed Space.Bounds/Children/Goal to bnb.TreeSearch, Space.Cost to
//     bnb.SolutionSearch.

package builder

import "fmt"

// CostTree builds a complete binary tree of the given depth whose leaf
// costs are taken verbatim from leaves (left to right).
func CostTree(depth int, leaves []float64, opts ...BuilderOption) (*Space, error) {
	// 1) Validate shape.
	if err := validateMin(methodCostTree, depth, minTreeDepth, ErrBadDepth); err != nil {
		return nil, err
	}
	var want = 1 << depth
	if len(leaves) != want {
		return nil, fmt.Errorf("%s: got %d leaf costs, need %d: %w",
			methodCostTree, len(leaves), want, ErrLeafCount)
	}
	var cfg = newBuilderConfig(opts...)

	// 2) Allocate the full tree in heap layout.
	var s = newSpace(1<<(depth+1) - 1)
	var leafStart = want - 1

	// 3) Wire internal nodes to their heap children.
	var k int
	for k = 0; k < leafStart; k++ {
		s.children[k] = []int{2*k + 1, 2*k + 2}
	}

	// 4) Collapse leaf intervals onto the supplied costs.
	var id int
	var c float64
	for k = 0; k < want; k++ {
		id, c = leafStart+k, leaves[k]
		s.lower[id], s.upper[id], s.cost[id], s.score[id] = c, c, c, c
	}

	// 5) Roll subtree minima up so internal bounds stay admissible and tight.
	for k = leafStart - 1; k >= 0; k-- {
		c = s.lower[2*k+1]
		if s.lower[2*k+2] < c {
			c = s.lower[2*k+2]
		}
		s.lower[k], s.upper[k], s.cost[k], s.score[k] = c, c, c, c
	}

	// 6) Mark goal leaves per cadence.
	s.markGoalLeaves(cfg.goalEvery)

	return s, nil
}
