// SPDX-License-Identifier: MIT
// Package: lvlsearch/builder
//
// validators.go — tiny shared parameter checks used by every factory.
//
// Each validator wraps exactly one sentinel so errors.Is keeps working after
// the method name is prepended.

package builder

import "fmt"

// validateMin guards an integer lower bound: got >= min or a wrapped sentinel.
func validateMin(method string, got, min int, sentinel error) error {
	if got < min {
		return fmt.Errorf("%s: got %d, need >= %d: %w", method, got, min, sentinel)
	}

	return nil
}

// validateRng guards stochastic factories that cannot run without a source.
func validateRng(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: set WithSeed or WithRand: %w", method, ErrNeedRandSource)
	}

	return nil
}
