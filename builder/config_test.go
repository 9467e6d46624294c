// Package builder contains unit tests for the configuration primitives
// (builderConfig, BuilderOption, validators) to ensure correct defaults,
// override order and sentinel wrapping.
package builder

import (
	"errors"
	"math/rand"
	"testing"
)

// TestConfigDefaults verifies the zero-option configuration.
func TestConfigDefaults(t *testing.T) {
	t.Parallel() // allow this test to run in parallel

	cfg := newBuilderConfig()

	// 1. No RNG unless explicitly requested.
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}

	// 2. DefaultCostFn backs the cost generator.
	if got := cfg.costFn(nil); got != DefaultCost {
		t.Errorf("default costFn: expected %g, got %g", DefaultCost, got)
	}

	// 3. Cadence 0 means every leaf is a goal.
	if cfg.goalEvery != 0 {
		t.Errorf("default goalEvery: expected 0, got %d", cfg.goalEvery)
	}
}

// TestConfigOverrides verifies that options apply in order, last writer wins.
func TestConfigOverrides(t *testing.T) {
	t.Parallel()

	// 1. WithSeed installs a deterministic stream: two configs, same draws.
	cfgA := newBuilderConfig(WithSeed(99))
	cfgB := newBuilderConfig(WithSeed(99))
	for i := 0; i < 8; i++ {
		if a, b := cfgA.rng.Intn(1000), cfgB.rng.Intn(1000); a != b {
			t.Fatalf("WithSeed: draw %d diverged (%d vs %d)", i, a, b)
		}
	}

	// 2. WithRand shares a caller-owned stream verbatim.
	shared := rand.New(rand.NewSource(7))
	if cfg := newBuilderConfig(WithRand(shared)); cfg.rng != shared {
		t.Errorf("WithRand: expected the caller's rng to be installed")
	}

	// 3. Later options override earlier ones.
	cfg := newBuilderConfig(WithGoalEvery(2), WithGoalEvery(5))
	if cfg.goalEvery != 5 {
		t.Errorf("WithGoalEvery override: expected 5, got %d", cfg.goalEvery)
	}

	// 4. WithCostFn replaces the generator.
	cfg = newBuilderConfig(WithCostFn(ConstantCostFn(-3)))
	if got := cfg.costFn(nil); got != -3 {
		t.Errorf("WithCostFn: expected -3, got %g", got)
	}
}

// TestValidators verifies sentinel wrapping and pass-through behavior.
func TestValidators(t *testing.T) {
	t.Parallel()

	// 1. validateMin passes on the boundary and fails below it.
	if err := validateMin("Method", 2, 2, ErrBadDepth); err != nil {
		t.Errorf("validateMin(2,2): expected nil, got %v", err)
	}
	err := validateMin("Method", 1, 2, ErrBadDepth)
	if !errors.Is(err, ErrBadDepth) {
		t.Errorf("validateMin(1,2): expected ErrBadDepth, got %v", err)
	}

	// 2. validateRng demands a source.
	if err = validateRng("Method", newBuilderConfig(WithSeed(1))); err != nil {
		t.Errorf("validateRng(seeded): expected nil, got %v", err)
	}
	err = validateRng("Method", newBuilderConfig())
	if !errors.Is(err, ErrNeedRandSource) {
		t.Errorf("validateRng(bare): expected ErrNeedRandSource, got %v", err)
	}
}

// TestMarkGoalLeaves verifies the cadence arithmetic on a hand-built space.
func TestMarkGoalLeaves(t *testing.T) {
	t.Parallel()

	// star: root 0 feeds four leaves 1..4
	build := func() *Space {
		s := newSpace(5)
		s.children[0] = []int{1, 2, 3, 4}
		return s
	}

	// cadence 0: every leaf
	s := build()
	s.markGoalLeaves(0)
	for id := 1; id <= 4; id++ {
		if !s.goal[id] {
			t.Errorf("cadence 0: leaf %d not marked", id)
		}
	}
	if s.goal[0] {
		t.Errorf("cadence 0: internal root marked as goal")
	}

	// cadence 2: every second leaf (1-based), so IDs 2 and 4
	s = build()
	s.markGoalLeaves(2)
	want := map[int]bool{1: false, 2: true, 3: false, 4: true}
	for id, w := range want {
		if s.goal[id] != w {
			t.Errorf("cadence 2: leaf %d marked=%v, want %v", id, s.goal[id], w)
		}
	}
}
