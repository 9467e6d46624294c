// SPDX-License-Identifier: MIT
// Package: lvlsearch/builder
//
// impl_chain.go — downhill chain with distracting dead ends.
//
// Contract (strict):
//   • length >= 2 (ErrBadLength), branch >= 0 (ErrBadBranch).
//   • Chain nodes are IDs [0, length); node i scores length-1-i, so the
//     terminus scores 0. Dead ends occupy IDs length + i*branch + j.
//   • Every non-terminal chain node lists its `branch` dead ends BEFORE the
//     next chain node, forcing steepest-descent scans past the distractors.
//   • A dead end of chain node i scores score(i) + penalty, where penalty is
//     one draw from the configured cost generator (DefaultCostFn yields +1).
//     Keep the generator non-negative to preserve the canonical downhill
//     path; a draw below -1 would outbid the chain.
//   • All intervals are collapsed onto the score; the single goal is the
//     chain terminus. WithGoalEvery is ignored.
//
// Determinism: fixed under the default generator; stochastic generators
// draw in (i asc, j asc) order, so a seed pins the output.
// Complexity: O(length*branch) time and memory.
//
// AI-Hints:
//   • Built for greedy.Descent: Moves == length-1 and every dead end is
//     scored exactly once per visit of its parent.

package builder

// DescentChain builds a strictly improving chain of the given length where
// every interior node also offers `branch` non-improving dead ends.
func DescentChain(length, branch int, opts ...BuilderOption) (*Space, error) {
	// 1) Validate shape.
	if err := validateMin(methodDescentChain, length, minChainLength, ErrBadLength); err != nil {
		return nil, err
	}
	if err := validateMin(methodDescentChain, branch, 0, ErrBadBranch); err != nil {
		return nil, err
	}
	var cfg = newBuilderConfig(opts...)

	// 2) Allocate chain plus dead ends.
	var s = newSpace(length + (length-1)*branch)

	// 3) Chain scores count down to zero at the terminus.
	var i int
	var sc float64
	for i = 0; i < length; i++ {
		sc = float64(length - 1 - i)
		s.score[i], s.cost[i], s.lower[i], s.upper[i] = sc, sc, sc, sc
	}

	// 4) Wire dead ends first, then the downhill move.
	var j, id int
	for i = 0; i < length-1; i++ {
		var kids = make([]int, 0, branch+1)
		for j = 0; j < branch; j++ {
			id = length + i*branch + j
			sc = s.score[i] + cfg.costFn(cfg.rng)
			s.score[id], s.cost[id], s.lower[id], s.upper[id] = sc, sc, sc, sc
			kids = append(kids, id)
		}
		s.children[i] = append(kids, i+1)
	}

	// 5) The terminus is the only goal.
	s.goal[length-1] = true

	return s, nil
}
