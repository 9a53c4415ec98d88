// Package astar implements cost-optimal informed search with a weighted
// evaluation function and closed-node relaxation.
//
// Overview:
//
//   - Every node carries g (cost so far) and f = Alpha·g + Beta·h(state).
//     The default weights (1, 1) give classical A*; search.WithWeights
//     selects weighted variants (for example Beta > 1 trades optimality
//     for speed, Alpha = 0 degenerates to greedy best-first).
//   - OPEN is a min-priority queue on f with lazy decrease-key: an improved
//     OPEN node is pushed again and the outdated entry is discarded when it
//     surfaces as a CLOSED node.
//   - The goal test runs when a node is popped, so the returned path is
//     optimal whenever the heuristic is admissible.
//
// Relaxation:
//
//	When a cheaper path reaches a node that is already CLOSED, the node is
//	re-parented and the improvement is pushed down to its own successors.
//	Propagation is iterative (an explicit stack, no recursion) and a CLOSED
//	node is rescanned only when its g dropped since its last rescan, so the
//	step terminates on any finite graph with non-negative costs. With a
//	consistent heuristic relaxation never fires; search.WithRelaxation(false)
//	turns it off for comparison.
//
// Complexity:
//
//	- Time:  O(E log E) pops and pushes for a consistent heuristic; an
//	  inconsistent one adds rescans bounded by the number of strict g
//	  improvements.
//	- Space: O(V + E) nodes and heap entries.
//
// Errors:
//
//	- search.ErrNilMoveGen / ErrNilGoalTest / ErrNilHeuristic / ErrNilCost
//	  if a required capability is missing.
//	- search.ErrOptionViolation for invalid weights.
//	- ErrNegativeCost if Cost returns a value below zero.
package astar
