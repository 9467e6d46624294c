// SPDX-License-Identifier: MIT
// Package: lvlsearch/builder
//
// cost_fn.go — pluggable node-cost generators for space factories.
//
// Contract (strict):
//   • CostFn receives the build RNG (possibly nil) and returns ONE cost.
//   • Every generator MUST tolerate a nil rng by degrading to a deterministic
//     value (its distribution mean or midpoint); only factories enforce
//     ErrNeedRandSource, generators never do.
//   • Factory-style constructors (UniformCostFn, ...) validate parameters
//     EAGERLY and panic on programmer error, per 99-rules.
//
// AI-Hints:
//   • Pass these through WithCostFn; convenience wrappers exist for the
//     common distributions (WithConstantCost, WithUniformCost, ...).
//   • Costs feed Space bounds and scores verbatim; negative values are legal.

package builder

import "math/rand"

// CostFn produces the cost attached to one freshly built node.
type CostFn func(rng *rand.Rand) float64

// DefaultCostFn returns DefaultCost for every node, ignoring the RNG.
// Keeps deterministic factories reproducible with zero configuration.
func DefaultCostFn(_ *rand.Rand) float64 { return DefaultCost }

// ConstantCostFn returns a generator that always yields c.
func ConstantCostFn(c float64) CostFn {
	return func(_ *rand.Rand) float64 { return c }
}

// UniformCostFn returns a generator drawing uniformly from [lo, hi).
// With a nil rng it degrades to the interval midpoint.
// Panics if hi < lo.
func UniformCostFn(lo, hi float64) CostFn {
	if hi < lo {
		panic("builder.UniformCostFn: hi < lo")
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return lo + (hi-lo)/2
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// NormalCostFn returns a generator drawing from N(mean, stddev²).
// With a nil rng it degrades to the mean.
// Panics if stddev is negative.
func NormalCostFn(mean, stddev float64) CostFn {
	if stddev < 0 {
		panic("builder.NormalCostFn: negative stddev")
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return mean
		}

		return mean + rng.NormFloat64()*stddev
	}
}

// ExponentialCostFn returns a generator drawing from Exp(rate).
// With a nil rng it degrades to the distribution mean 1/rate.
// Panics if rate is not strictly positive.
func ExponentialCostFn(rate float64) CostFn {
	if rate <= 0 {
		panic("builder.ExponentialCostFn: rate must be > 0")
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return 1 / rate
		}

		return rng.ExpFloat64() / rate
	}
}

// WithConstantCost is shorthand for WithCostFn(ConstantCostFn(c)).
func WithConstantCost(c float64) BuilderOption { return WithCostFn(ConstantCostFn(c)) }

// WithUniformCost is shorthand for WithCostFn(UniformCostFn(lo, hi)).
func WithUniformCost(lo, hi float64) BuilderOption { return WithCostFn(UniformCostFn(lo, hi)) }

// WithNormalCost is shorthand for WithCostFn(NormalCostFn(mean, stddev)).
func WithNormalCost(mean, stddev float64) BuilderOption {
	return WithCostFn(NormalCostFn(mean, stddev))
}

// WithExponentialCost is shorthand for WithCostFn(ExponentialCostFn(rate)).
func WithExponentialCost(rate float64) BuilderOption {
	return WithCostFn(ExponentialCostFn(rate))
}
