// Package bnb_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal:
// a finite search-space fixture over small int node IDs plus the usual
// repeat/sentinel assertions.
package bnb_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlsearch/bnb"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// repeatN is the iteration count for determinism/stability checks.
	repeatN = 4

	// treeDepth / leaf costs of the canonical binary-tree scenario:
	// leaves in left-to-right order cost 5,3,8,1,9,2,7,4; the cheapest
	// leaf (cost 1) is node 11 in heap numbering.
	treeDepth = 3
)

// leafCosts returns the canonical leaf costs in left-to-right order.
// A fresh slice per call keeps tests free to mutate their copy.
func leafCosts() []float64 { return []float64{5, 3, 8, 1, 9, 2, 7, 4} }

// -----------------------------------------------------------------------------
// Finite search-space fixture
// -----------------------------------------------------------------------------

// space is a finite test search space over int node IDs. Children are listed
// in examination order; lo/hi carry the bound interval of each node and
// goals marks target nodes. Zero-valued maps behave as dead ends.
type space struct {
	root  int
	kids  map[int][]int
	lo    map[int]float64
	hi    map[int]float64
	goals map[int]bool

	// invocation counters, keyed by node
	boundsCalls   map[int]int
	childrenCalls map[int]int
}

// newSpace returns an empty space with all maps allocated.
func newSpace() *space {
	return &space{
		kids:          map[int][]int{},
		lo:            map[int]float64{},
		hi:            map[int]float64{},
		goals:         map[int]bool{},
		boundsCalls:   map[int]int{},
		childrenCalls: map[int]int{},
	}
}

// Root returns the start node of the space.
func (s *space) Root() int { return s.root }

// children is the ChildrenFunc of the space; it counts invocations per node.
func (s *space) children(n int) []int {
	s.childrenCalls[n]++

	return s.kids[n]
}

// bounds is the BoundsFunc of the space; it counts invocations per node.
func (s *space) bounds(n int) bnb.Bounds {
	s.boundsCalls[n]++

	return bnb.Bounds{Lower: s.lo[n], Upper: s.hi[n]}
}

// cost is the CostFunc of the space (the lower bound as a scalar heuristic).
func (s *space) cost(n int) float64 {
	s.boundsCalls[n]++

	return s.lo[n]
}

// goal is the GoalFunc of the space.
func (s *space) goal(n int) bool { return s.goals[n] }

// set registers a node with its bound interval.
func (s *space) set(n int, lo, hi float64) {
	s.lo[n] = lo
	s.hi[n] = hi
}

// leafTree builds a complete binary tree of the given depth in heap numbering
// (root 1, children of k are 2k and 2k+1). Leaves carry collapsed intervals
// equal to their cost; every internal node carries the minimum leaf cost of
// its subtree, also collapsed. Leaves are goals. With exact bounds like these
// the searches must walk straight to the cheapest leaf.
func leafTree(t *testing.T, depth int, costs []float64) *space {
	t.Helper()
	leaves := 1 << depth
	if len(costs) != leaves {
		t.Fatalf("leafTree: want %d leaf costs, got %d", leaves, len(costs))
	}

	s := newSpace()
	s.root = 1
	var k int
	for k = leaves; k < 2*leaves; k++ {
		s.set(k, costs[k-leaves], costs[k-leaves])
		s.goals[k] = true
	}
	for k = leaves - 1; k >= 1; k-- {
		s.kids[k] = []int{2 * k, 2*k + 1}
		m := math.Min(s.lo[2*k], s.lo[2*k+1])
		s.set(k, m, m)
	}

	return s
}

// inf is a short alias for the unbounded upper interval end used by fixtures.
func inf() float64 { return math.Inf(1) }

// diamond builds the four-node lattice 0→{1,2}, 1→3, 2→3, 3→4 with node ID
// doubling as its lower bound and +Inf uppers (nothing tightens, nothing is
// bound-pruned). Node 4 is the goal. Both interior paths converge on node 3,
// which makes the fixture the canonical duplicate-detection probe.
func diamond() *space {
	s := newSpace()
	s.kids[0] = []int{1, 2}
	s.kids[1] = []int{3}
	s.kids[2] = []int{3}
	s.kids[3] = []int{4}
	var n int
	for n = 0; n <= 4; n++ {
		s.set(n, float64(n), math.Inf(1))
	}
	s.goals[4] = true

	return s
}

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, assertions)
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int // loop iterator
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
// Intended for strict sentinels (ErrNilBounds, ErrNoSolution, ...).
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// event records one hook invocation for order-sensitive assertions.
type event struct {
	kind string // "expand" | "enqueue" | "prune"
	node int
	cost float64
}

// recorder collects hook events in invocation order.
type recorder struct{ events []event }

// options returns the three observation hooks wired into the recorder.
func (r *recorder) options() []bnb.Option[int] {
	return []bnb.Option[int]{
		bnb.WithOnExpand[int](func(n int) {
			r.events = append(r.events, event{kind: "expand", node: n})
		}),
		bnb.WithOnEnqueue[int](func(n int, c float64) {
			r.events = append(r.events, event{kind: "enqueue", node: n, cost: c})
		}),
		bnb.WithOnPrune[int](func(n int, c float64) {
			r.events = append(r.events, event{kind: "prune", node: n, cost: c})
		}),
	}
}

// mustEvents asserts the exact hook sequence.
func mustEvents(t *testing.T, got, want []event) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("event count mismatch:\n got:  %v\n want: %v", got, want)
	}
	var i int
	for i = range want {
		if got[i] != want[i] {
			t.Fatalf("event %d mismatch:\n got:  %v\n want: %v", i, got[i], want[i])
		}
	}
}
