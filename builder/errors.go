// SPDX-License-Identifier: MIT
// Package: lvlsearch/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context via `%w`: fmt.Errorf("%s: ...: %w", method, ErrX).
//   • Factories MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...), per 99-rules.
//
// AI-Hints (practical guidance for implementers and LLMs):
//   • Return ONLY these sentinels for validation classes (size/shape/rng).
//   • Check with errors.Is in tests and production code; avoid string comparisons.

package builder

import "errors"

// ErrBadDepth indicates that a tree depth parameter is smaller than the
// allowed minimum for the requested factory.
// Usage: if errors.Is(err, ErrBadDepth) { /* report invalid depth */ }.
var ErrBadDepth = errors.New("builder: depth too small")

// ErrLeafCount indicates that the supplied leaf-cost slice does not match the
// leaf population implied by the requested depth (2^depth entries).
// Usage: if errors.Is(err, ErrLeafCount) { /* fix leaf costs */ }.
var ErrLeafCount = errors.New("builder: leaf count mismatch")

// ErrBadLayers indicates that a lattice layer count is below the minimum.
// Usage: if errors.Is(err, ErrBadLayers) { /* report invalid layers */ }.
var ErrBadLayers = errors.New("builder: layer count too small")

// ErrBadLength indicates that a chain length is below the minimum.
// Usage: if errors.Is(err, ErrBadLength) { /* report invalid length */ }.
var ErrBadLength = errors.New("builder: chain length too small")

// ErrBadBranch indicates an invalid branching parameter (negative for
// DescentChain dead ends, non-positive for RandomTree).
// Usage: if errors.Is(err, ErrBadBranch) { /* report invalid branching */ }.
var ErrBadBranch = errors.New("builder: invalid branching factor")

// ErrBadCount indicates that a node count is below the minimum.
// Usage: if errors.Is(err, ErrBadCount) { /* report invalid count */ }.
var ErrBadCount = errors.New("builder: node count too small")

// ErrNeedRandSource indicates that a stochastic factory requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Typical origin: RandomTree without RNG.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")
