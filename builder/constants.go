// SPDX-License-Identifier: MIT
// Package: lvlsearch/builder
//
// constants.go — shared numeric defaults and method names.
//
// Method names feed error wrapping ("CostTree: ...: ErrBadDepth") so that a
// failure always names the factory that produced it.

package builder

// DefaultCost is the cost DefaultCostFn assigns to every node.
const DefaultCost = 1.0

// Factory method names used in wrapped errors.
const (
	methodCostTree     = "CostTree"
	methodDiamond      = "Diamond"
	methodDescentChain = "DescentChain"
	methodRandomTree   = "RandomTree"
)

// Structural minimums enforced by the factories.
const (
	minTreeDepth   = 1 // CostTree: at least one branching level
	minLayers      = 1 // Diamond: at least one split/merge lattice
	minChainLength = 2 // DescentChain: at least one downhill move
	minNodeCount   = 1 // RandomTree: at least the root
	minBranching   = 1 // RandomTree: every parent may hold ≥ 1 child
)
