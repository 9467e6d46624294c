// Package bnb core types and configuration options shared by TreeSearch,
// GraphSearch, and SolutionSearch.
//
// All node access happens through the callback types below; the package never
// examines node values itself. Costs and bounds are float64: lower is better,
// math.Inf(1) denotes "no bound", and no numeric validation is performed
// (NaN propagates per IEEE-754 comparison rules).
package bnb

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the bnb searches.
var (
	// ErrNilBounds indicates that a nil BoundsFunc was passed to
	// TreeSearch or GraphSearch.
	ErrNilBounds = errors.New("bnb: bounds callback is nil")

	// ErrNilChildren indicates that a nil ChildrenFunc was passed.
	ErrNilChildren = errors.New("bnb: children callback is nil")

	// ErrNilGoal indicates that a nil GoalFunc was passed to
	// TreeSearch or GraphSearch.
	ErrNilGoal = errors.New("bnb: goal predicate is nil")

	// ErrNilCost indicates that a nil CostFunc was passed to SolutionSearch.
	ErrNilCost = errors.New("bnb: cost callback is nil")

	// ErrNilSolution indicates that a nil solution predicate was passed
	// to SolutionSearch.
	ErrNilSolution = errors.New("bnb: solution predicate is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bnb: invalid option supplied")

	// ErrNoSolution is returned by SolutionSearch when the frontier drains
	// without any node satisfying the solution predicate at an improving cost.
	ErrNoSolution = errors.New("bnb: no solution found")

	// ErrSelectOutOfRange is returned by SolutionSearch when a custom
	// SelectFunc yields an index outside the current frontier.
	ErrSelectOutOfRange = errors.New("bnb: frontier selection index out of range")
)

// Bounds is a closed cost interval attached to a node by a BoundsFunc.
// Lower is an admissible estimate of the best reachable cost below the node;
// Upper is a cost certainly achievable below it. The searches never check
// Lower <= Upper; an inverted interval silently weakens pruning.
type Bounds struct {
	Lower float64
	Upper float64
}

// BoundsFunc computes the bound interval of a node.
type BoundsFunc[N any] func(node N) Bounds

// ChildrenFunc generates the immediate children of a node, in the order in
// which the searches will examine them. Returning an empty (or nil) slice
// marks the node as a dead end.
type ChildrenFunc[N any] func(node N) []N

// GoalFunc reports whether a node satisfies the search target.
type GoalFunc[N any] func(node N) bool

// CostFunc assigns a scalar heuristic cost to a node (SolutionSearch).
type CostFunc[N any] func(node N) float64

// EqualFunc reports whether two nodes denote the same search state.
type EqualFunc[N any] func(a, b N) bool

// SelectFunc picks the index of the next frontier entry to expand, given the
// frontier costs in insertion order. The returned index must satisfy
// 0 <= i < len(costs); anything else aborts SolutionSearch with
// ErrSelectOutOfRange.
type SelectFunc func(costs []float64) int

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. a nil callback), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option[N any] func(*Options[N])

// Options holds parameters and hooks shared by all three searches.
// Not every field applies to every search:
//   - Equal:      GraphSearch, SolutionSearch (TreeSearch keeps no visited set).
//   - Select:     SolutionSearch only (TreeSearch and GraphSearch always
//     select via SelectLastMinimum).
//   - UpperBound: SolutionSearch only (the initial incumbent).
//   - OnExpand, OnEnqueue, OnPrune: all searches.
type Options[N any] struct {
	// Equal overrides node identity for visited-set membership.
	// nil selects the native == comparison of the node type.
	Equal EqualFunc[N]

	// Select overrides the frontier selection policy of SolutionSearch.
	// nil selects SelectLastMinimum.
	Select SelectFunc

	// UpperBound seeds the SolutionSearch incumbent. Children costing more
	// are pruned before any solution has been found. Accepted as-is,
	// without numeric validation. Default is math.Inf(1).
	UpperBound float64

	// OnExpand is called immediately before a node's children are generated.
	OnExpand func(node N)

	// OnEnqueue is called when a child is admitted to the frontier,
	// with the cost it was enqueued at.
	OnEnqueue func(node N, cost float64)

	// OnPrune is called when a node is rejected on cost grounds: a child
	// whose bound exceeds the incumbent, or a frontier entry evicted after
	// a cheaper solution was accepted. Duplicate-node discards are not
	// pruning and fire no hook.
	OnPrune func(node N, cost float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with production-safe defaults:
//   - native == node identity (Equal == nil)
//   - SelectLastMinimum frontier policy (Select == nil)
//   - unbounded initial incumbent (UpperBound == +Inf)
//   - no-op hooks
func DefaultOptions[N any]() Options[N] {
	return Options[N]{
		Equal:      nil,
		Select:     nil,
		UpperBound: math.Inf(1),
		OnExpand:   func(N) {},
		OnEnqueue:  func(N, float64) {},
		OnPrune:    func(N, float64) {},
		err:        nil,
	}
}

// WithEqual overrides node identity for duplicate detection.
// Passing nil is invalid and surfaces as ErrOptionViolation.
func WithEqual[N any](fn EqualFunc[N]) Option[N] {
	return func(o *Options[N]) {
		if fn == nil {
			o.err = fmt.Errorf("%w: WithEqual requires a non-nil comparison", ErrOptionViolation)
			return
		}
		o.Equal = fn
	}
}

// WithSelect overrides the SolutionSearch frontier selection policy.
// Passing nil is invalid and surfaces as ErrOptionViolation.
func WithSelect[N any](fn SelectFunc) Option[N] {
	return func(o *Options[N]) {
		if fn == nil {
			o.err = fmt.Errorf("%w: WithSelect requires a non-nil policy", ErrOptionViolation)
			return
		}
		o.Select = fn
	}
}

// WithUpperBound seeds the SolutionSearch incumbent cost.
// Any float64 is accepted; NaN disables pruning by comparison semantics.
func WithUpperBound[N any](ub float64) Option[N] {
	return func(o *Options[N]) {
		o.UpperBound = ub
	}
}

// WithOnExpand registers a hook fired before each node expansion.
// Passing nil is invalid and surfaces as ErrOptionViolation.
func WithOnExpand[N any](fn func(node N)) Option[N] {
	return func(o *Options[N]) {
		if fn == nil {
			o.err = fmt.Errorf("%w: WithOnExpand requires a non-nil hook", ErrOptionViolation)
			return
		}
		o.OnExpand = fn
	}
}

// WithOnEnqueue registers a hook fired when a child joins the frontier.
// Passing nil is invalid and surfaces as ErrOptionViolation.
func WithOnEnqueue[N any](fn func(node N, cost float64)) Option[N] {
	return func(o *Options[N]) {
		if fn == nil {
			o.err = fmt.Errorf("%w: WithOnEnqueue requires a non-nil hook", ErrOptionViolation)
			return
		}
		o.OnEnqueue = fn
	}
}

// WithOnPrune registers a hook fired on every cost-based rejection.
// Passing nil is invalid and surfaces as ErrOptionViolation.
func WithOnPrune[N any](fn func(node N, cost float64)) Option[N] {
	return func(o *Options[N]) {
		if fn == nil {
			o.err = fmt.Errorf("%w: WithOnPrune requires a non-nil hook", ErrOptionViolation)
			return
		}
		o.OnPrune = fn
	}
}

// Result reports the outcome of TreeSearch or GraphSearch.
//   - Node: the first goal node selected for expansion, or the last node
//     examined when the frontier drained without reaching a goal.
//   - Goal: whether Node satisfied the goal predicate.
//   - Expanded: how many nodes had their children generated.
type Result[N any] struct {
	Node     N
	Goal     bool
	Expanded int
}

// Solution reports the outcome of SolutionSearch.
//   - Node: the cheapest accepted solution.
//   - Cost: its cost, equal to the final incumbent value.
//   - Expanded: how many non-solution nodes had their children generated.
type Solution[N any] struct {
	Node     N
	Cost     float64
	Expanded int
}
