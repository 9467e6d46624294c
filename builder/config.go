// SPDX-License-Identifier: MIT
// Package: lvlsearch/builder
//
// config.go — internal configuration resolved from BuilderOption values.
//
// Contract (strict):
//   • builderConfig is passed BY VALUE into factories; factories never mutate
//     a caller-visible state.
//   • Defaults are deterministic: costFn=DefaultCostFn, goalEvery=0 (all
//     leaves are goals), rng=nil (stochastic factories demand an explicit
//     source via WithSeed/WithRand and fail with ErrNeedRandSource otherwise).
//
// AI-Hints:
//   • Add new knobs here + a WithX constructor in options.go; never widen
//     factory signatures.
//   • Deterministic factories (CostTree, Diamond, DescentChain) ignore rng
//     unless costFn consumes it.

package builder

import "math/rand"

// builderConfig carries every knob a factory may consult. Zero-cost to copy.
type builderConfig struct {
	rng       *rand.Rand // nil unless WithSeed/WithRand supplied
	costFn    CostFn     // node-cost generator, never nil after newBuilderConfig
	goalEvery int        // 0 ⇒ every leaf is a goal; k>0 ⇒ every k-th leaf
}

// newBuilderConfig resolves defaults, then applies options in call order.
// Later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	// 1) Deterministic defaults.
	cfg := builderConfig{
		rng:       nil,
		costFn:    DefaultCostFn,
		goalEvery: 0,
	}

	// 2) Apply caller options in order.
	var opt BuilderOption
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}
