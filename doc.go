// Package lvlsearch is your in-memory playground for cost-guided search:
// branch-and-bound over trees and graphs, incumbent-driven optimization,
// and greedy descent, all over opaque states you describe with callbacks.
//
// 🚀 What is lvlsearch?
//
//	A small, generics-first toolkit that brings together:
//		• TreeSearch: best-first branch-and-bound over duplicate-free trees
//		• GraphSearch: the same walk with a visited set for converging states
//		• SolutionSearch: cheapest-solution optimization with incumbent pruning
//		• Descent: steepest greedy descent to a local minimum
//		• SelectLastMinimum: the recency tie-break all frontiers share
//		• builder: deterministic and seeded fixture spaces for tests & benches
//
// ✨ Why choose lvlsearch?
//
//   - Opaque states: any node type, described by Bounds/Children/Goal callbacks
//   - Deterministic by contract: documented tie-breaks, reproducible traces
//   - Observable: OnExpand, OnEnqueue, OnPrune and OnMove hooks
//   - Pure Go core: the engines carry no dependencies beyond the stdlib
//
// Under the hood, everything is organized under three subpackages:
//
//	bnb/     : Bounds, frontiers and the three branch-and-bound searches
//	greedy/  : steepest-descent local search
//	builder/ : Space factories: CostTree, Diamond, DescentChain, RandomTree
//
// Quick ASCII example:
//
//	        [root]
//	       /      \
//	  [4,9]        [2,3]     <- optimistic/pessimistic cost bounds
//	                  |
//	               selected: the right branch caps the cost at 3,
//	               so the left one (optimistic 4) is never expanded
//
// Dive into README.md and examples/ for runnable scenarios, and into each
// package's doc.go for contracts, determinism notes and error sentinels.
//
//	go get github.com/katalvlaran/lvlsearch
package lvlsearch
