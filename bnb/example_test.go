// Package bnb_test provides examples demonstrating how to use the
// branch-and-bound searches. Each example is runnable via "go test -run
// Example", showing both code and expected output.
package bnb_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsearch/bnb"
)

// ExampleTreeSearch demonstrates bound-driven pruning on a tiny itinerary
// tree: two candidate connections from SFO to JFK, where the cheaper branch
// tightens the fare cap enough to ignore the expensive one.
// Complexity: O(b^d) worst case; here 2 expansions thanks to tight bounds.
func ExampleTreeSearch() {
	// 1) Partial itineraries and their extensions.
	routes := map[string][]string{
		"SFO":     {"SFO-DEN", "SFO-ORD"},
		"SFO-DEN": {"SFO-DEN-JFK"},
		"SFO-ORD": {"SFO-ORD-JFK"},
	}
	// 2) Optimistic/pessimistic total-fare estimates per partial itinerary.
	fares := map[string]bnb.Bounds{
		"SFO":         {Lower: 0, Upper: 500},
		"SFO-DEN":     {Lower: 450, Upper: 480},
		"SFO-ORD":     {Lower: 300, Upper: 320},
		"SFO-DEN-JFK": {Lower: 470, Upper: 470},
		"SFO-ORD-JFK": {Lower: 310, Upper: 310},
	}

	// 3) Run the search: full itineraries (no extensions) are goals.
	res, err := bnb.TreeSearch(
		"SFO",
		func(n string) bnb.Bounds { return fares[n] },
		func(n string) []string { return routes[n] },
		func(n string) bool { return len(routes[n]) == 0 },
	)
	// 4) Handle any potential error (nil callbacks, invalid options).
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 5) The ORD leg admits a 320 cap, so the 450+ DEN branch never expands.
	fmt.Printf("itinerary=%s expanded=%d\n", res.Node, res.Expanded)
	// Output: itinerary=SFO-ORD-JFK expanded=2
}

// ExampleGraphSearch demonstrates deduplication on a converging street map:
// two blocks meet at the same corner, which GraphSearch expands only once.
// Complexity: O(V) expansions with dedup versus O(paths) without.
func ExampleGraphSearch() {
	// 1) Two routes from A converge on corner D before reaching E.
	streets := map[string][]string{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
		"D": {"E"},
	}
	// 2) Optimistic bound = blocks walked so far; no pessimistic cap.
	hops := map[string]float64{"A": 0, "B": 1, "C": 1, "D": 2, "E": 3}
	bounds := func(n string) bnb.Bounds {
		return bnb.Bounds{Lower: hops[n], Upper: math.Inf(1)}
	}
	children := func(n string) []string { return streets[n] }
	isGoal := func(n string) bool { return n == "E" }

	// 3) GraphSearch remembers corners; TreeSearch re-walks D.
	dedup, err := bnb.GraphSearch("A", bounds, children, isGoal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	plain, err := bnb.TreeSearch("A", bounds, children, isGoal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("graph expanded=%d, tree expanded=%d\n", dedup.Expanded, plain.Expanded)
	// Output: graph expanded=4, tree expanded=5
}

// ExampleSolutionSearch demonstrates cost-driven search for the cheapest
// reviewed plan: the first accepted solution evicts everything priced above
// it.
// Complexity: O(b^d) worst case; the incumbent gates both frontier and
// children.
func ExampleSolutionSearch() {
	// 1) Planning states and their refinements.
	plans := map[string][]string{
		"start": {"planA", "planB"},
		"planA": {"planA+review"},
		"planB": {"planB+review"},
	}
	// 2) Estimated total cost per state; reviewed plans are complete.
	price := map[string]float64{
		"start":        10,
		"planA":        4,
		"planB":        6,
		"planA+review": 5,
		"planB+review": 5.5,
	}
	done := map[string]bool{"planA+review": true, "planB+review": true}

	// 3) Search for the cheapest complete plan.
	sol, err := bnb.SolutionSearch(
		"start",
		func(n string) float64 { return price[n] },
		func(n string) []string { return plans[n] },
		func(n string) bool { return done[n] },
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) Accepting planA+review at 5 evicts planB (queued at 6) unseen.
	fmt.Printf("plan=%s cost=%g expanded=%d\n", sol.Node, sol.Cost, sol.Expanded)
	// Output: plan=planA+review cost=5 expanded=2
}

// ExampleSolutionSearch_budget demonstrates WithUpperBound as a hard budget:
// when nothing fits, the search reports ErrNoSolution instead of a result.
func ExampleSolutionSearch_budget() {
	plans := map[string][]string{
		"start": {"planA", "planB"},
		"planA": {"planA+review"},
		"planB": {"planB+review"},
	}
	price := map[string]float64{
		"start":        10,
		"planA":        4,
		"planB":        6,
		"planA+review": 5,
		"planB+review": 5.5,
	}
	done := map[string]bool{"planA+review": true, "planB+review": true}

	// A 4.5 budget admits planA but prices out both reviewed plans.
	_, err := bnb.SolutionSearch(
		"start",
		func(n string) float64 { return price[n] },
		func(n string) []string { return plans[n] },
		func(n string) bool { return done[n] },
		bnb.WithUpperBound[string](4.5),
	)

	fmt.Println("fits budget:", !errors.Is(err, bnb.ErrNoSolution))
	// Output: fits budget: false
}

// ExampleSelectLastMinimum demonstrates the recency tie-break: among equal
// minima the most recently enqueued index wins.
func ExampleSelectLastMinimum() {
	fmt.Println(bnb.SelectLastMinimum([]float64{4, 1, 3, 1}))
	fmt.Println(bnb.SelectLastMinimum(nil))
	// Output:
	// 3
	// -1
}
