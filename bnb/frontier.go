// Package bnb — frontier storage and the deterministic selection policy.
//
// The frontier is two parallel slices (nodes, costs) kept strictly in
// insertion order. A slice pair instead of a heap is a deliberate choice:
// selection must break cost ties by insertion recency, and removal must keep
// the surviving entries in their original order so that future ties keep
// resolving identically. A binary heap preserves neither property. Selection
// is therefore an O(F) scan, which the searches accept in exchange for exact,
// observable determinism.
package bnb

// SelectLastMinimum returns the index of the minimum value in costs,
// preferring the LAST index when several entries share the minimum.
// It is the default frontier policy of every search in this package:
// among equally promising entries the most recently inserted wins, which
// keeps the search depth-first-leaning on plateaus and fully reproducible.
//
// Returns -1 when costs is empty. NaN entries follow IEEE-754 comparisons
// (a NaN never tests <= anything, so it is selected only from index 0).
func SelectLastMinimum(costs []float64) int {
	if len(costs) == 0 {
		return -1
	}
	var (
		idx = 0
		min = costs[0]
		i   int
	)
	for i = 1; i < len(costs); i++ {
		if costs[i] <= min {
			min = costs[i]
			idx = i
		}
	}

	return idx
}

// frontier holds pending (node, cost) pairs in insertion order.
type frontier[N any] struct {
	nodes []N
	costs []float64
}

// len reports the number of pending entries.
func (f *frontier[N]) len() int { return len(f.nodes) }

// push appends an entry, making it the most recent for tie-breaking.
func (f *frontier[N]) push(node N, cost float64) {
	f.nodes = append(f.nodes, node)
	f.costs = append(f.costs, cost)
}

// removeAt extracts the entry at index i by splicing, so every surviving
// entry keeps its relative position. Swap-with-last would be O(1) but would
// corrupt the recency order that SelectLastMinimum depends on.
func (f *frontier[N]) removeAt(i int) (N, float64) {
	node, cost := f.nodes[i], f.costs[i]
	f.nodes = append(f.nodes[:i], f.nodes[i+1:]...)
	f.costs = append(f.costs[:i], f.costs[i+1:]...)

	return node, cost
}

// pruneAbove drops every entry with cost strictly greater than limit,
// invoking onPrune for each eviction. Entries equal to limit survive.
// Compaction is stable: survivors keep their insertion order.
func (f *frontier[N]) pruneAbove(limit float64, onPrune func(N, float64)) {
	var (
		keep = 0
		i    int
	)
	for i = 0; i < len(f.nodes); i++ {
		if f.costs[i] > limit {
			onPrune(f.nodes[i], f.costs[i])
			continue
		}
		f.nodes[keep] = f.nodes[i]
		f.costs[keep] = f.costs[i]
		keep++
	}
	f.nodes = f.nodes[:keep]
	f.costs = f.costs[:keep]
}
