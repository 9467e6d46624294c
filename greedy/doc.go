// Package greedy implements single-path greedy descent over caller-defined
// search spaces. Nodes are opaque type parameters; neighborhood structure
// and scoring arrive through callbacks, exactly as in package bnb, but the
// walk keeps no frontier: from each node it moves to the best strictly
// improving child and stops at the first local optimum.
//
//   - Descent
//
//   - Method: steepest-descent hill climbing against a persistent best
//     score (lower is better) that survives across moves.
//
//   - Time:   O(M·B·C), M = moves, B = branching factor, C = score cost.
//
//   - Memory: O(1) beyond the caller's nodes.
//
//   - Use for fast local optimization or as a polishing pass after a
//     bnb search; it trades optimality for a single cheap trajectory.
//
// # Determinism
//
// Children are examined in callback order and the FIRST child achieving the
// best strict improvement wins the move; later children with an equal score
// never displace it. The current node's own score is never evaluated: a
// child must strictly beat the best score seen so far, which after the first
// move is the score of the node currently occupied. Identical inputs produce
// identical trajectories.
//
// # Errors
//
//	ErrNilChildren / ErrNilScore - a required callback is nil.
//	ErrOptionViolation          - an invalid functional option was supplied.
package greedy
