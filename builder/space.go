// SPDX-License-Identifier: MIT
// Package: lvlsearch/builder
//
// space.go — the immutable search space produced by every factory.
//
// Contract (strict):
//   • A Space is frozen after construction; accessors are read-only and the
//     returned callbacks are safe to reuse across searches.
//   • Node IDs are dense ints in [0, Len()); IDs outside that range behave as
//     impassable dead ends (no children, +Inf bounds/cost/score, non-goal),
//     never as panics.
//   • Accessor results plug straight into bnb.TreeSearch / bnb.GraphSearch /
//     bnb.SolutionSearch and greedy.Descent without adapters.
//
// AI-Hints:
//   • Children() returns the SAME backing slice per node; treat it as
//     read-only on the caller side.
//   • Collapsed fixtures (CostTree, DescentChain) keep lower == upper == cost
//     so bound-driven and cost-driven searches agree; RandomTree collapses
//     leaves only and keeps internal uppers open.

package builder

import (
	"math"

	"github.com/katalvlaran/lvlsearch/bnb"
)

// Space is a finite, explicit search space over dense integer node IDs.
type Space struct {
	children [][]int   // adjacency, index = node ID
	lower    []float64 // optimistic bound per node
	upper    []float64 // pessimistic bound per node
	cost     []float64 // exact objective per node (SolutionSearch)
	score    []float64 // descent objective per node (greedy)
	goal     []bool    // goal membership per node
	root     int       // entry node, always 0 for the shipped factories
}

// Len reports the number of nodes in the space.
func (s *Space) Len() int { return len(s.children) }

// Root returns the entry node ID.
func (s *Space) Root() int { return s.root }

// Children returns an adjacency callback for the search entry points.
func (s *Space) Children() func(node int) []int {
	return func(node int) []int {
		if node < 0 || node >= len(s.children) {
			return nil
		}

		return s.children[node]
	}
}

// Bounds returns the optimistic/pessimistic interval callback.
func (s *Space) Bounds() func(node int) bnb.Bounds {
	return func(node int) bnb.Bounds {
		if node < 0 || node >= len(s.lower) {
			return bnb.Bounds{Lower: math.Inf(1), Upper: math.Inf(1)}
		}

		return bnb.Bounds{Lower: s.lower[node], Upper: s.upper[node]}
	}
}

// Cost returns the exact-objective callback consumed by SolutionSearch.
func (s *Space) Cost() func(node int) float64 {
	return func(node int) float64 {
		if node < 0 || node >= len(s.cost) {
			return math.Inf(1)
		}

		return s.cost[node]
	}
}

// Score returns the descent-objective callback consumed by greedy.Descent.
func (s *Space) Score() func(node int) float64 {
	return func(node int) float64 {
		if node < 0 || node >= len(s.score) {
			return math.Inf(1)
		}

		return s.score[node]
	}
}

// Goal returns the goal-membership callback.
func (s *Space) Goal() func(node int) bool {
	return func(node int) bool {
		if node < 0 || node >= len(s.goal) {
			return false
		}

		return s.goal[node]
	}
}

// Leaves returns the IDs of all childless nodes in ascending order.
func (s *Space) Leaves() []int {
	var leaves []int
	var id int
	for id = range s.children {
		if len(s.children[id]) == 0 {
			leaves = append(leaves, id)
		}
	}

	return leaves
}

// newSpace allocates a zeroed space for n nodes rooted at 0.
func newSpace(n int) *Space {
	return &Space{
		children: make([][]int, n),
		lower:    make([]float64, n),
		upper:    make([]float64, n),
		cost:     make([]float64, n),
		score:    make([]float64, n),
		goal:     make([]bool, n),
		root:     0,
	}
}

// markGoalLeaves applies the goalEvery cadence over the childless nodes:
// cadence 0 marks every leaf, cadence k marks each k-th leaf (1-based).
func (s *Space) markGoalLeaves(every int) {
	var leaves = s.Leaves()
	var i int
	for i = range leaves {
		if every == 0 || (i+1)%every == 0 {
			s.goal[leaves[i]] = true
		}
	}
}
