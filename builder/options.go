// SPDX-License-Identifier: MIT
// Package: lvlsearch/builder
//
// options.go — functional options consumed by every space factory.
//
// Contract (strict):
//   • Option constructors validate their arguments EAGERLY and panic on
//     programmer error (nil func, negative cadence), per 99-rules; factories
//     themselves return sentinel errors, never panic.
//   • Options apply in call order; the last writer wins.
//
// AI-Hints:
//   • WithSeed(s) is the canonical way to make stochastic factories
//     reproducible; WithRand shares one stream across several builds.
//   • WithGoalEvery(0) restores the default "every leaf is a goal".

package builder

import "math/rand"

// BuilderOption mutates the internal builderConfig before a factory runs.
type BuilderOption func(*builderConfig)

// WithSeed installs a fresh deterministic RNG seeded with the given value.
// Identical seeds yield byte-identical spaces from stochastic factories.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs a caller-owned RNG; useful to share one stream across
// several builds. Panics if rng is nil.
func WithRand(rng *rand.Rand) BuilderOption {
	if rng == nil {
		panic("builder.WithRand: nil rng")
	}

	return func(cfg *builderConfig) {
		cfg.rng = rng
	}
}

// WithCostFn installs a custom node-cost generator. Panics if fn is nil.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder.WithCostFn: nil fn")
	}

	return func(cfg *builderConfig) {
		cfg.costFn = fn
	}
}

// WithGoalEvery marks every k-th leaf as a goal instead of all of them.
// k == 0 restores the default (all leaves). Panics if k is negative.
func WithGoalEvery(k int) BuilderOption {
	if k < 0 {
		panic("builder.WithGoalEvery: negative cadence")
	}

	return func(cfg *builderConfig) {
		cfg.goalEvery = k
	}
}
