// Package search provides the shared building blocks of every lvsearch engine:
// the callback contract a domain implements, the node arena used for path
// reconstruction, the OPEN frontiers (FIFO, LIFO, priority) and the per-call
// Workspace that owns OPEN and CLOSED.
//
// What
//
//   - Agent / Problem: the fixed callback surface (MoveGen, GoalTest) plus the
//     optional capabilities Heuristic and Cost, selected per call.
//   - Tree: an arena of Nodes addressed by integer index. Every node stores the
//     index of its parent, so reconstruction walks strictly toward earlier
//     nodes and terminates in at most Depth steps.
//   - Frontier: FIFO (breadth-first), LIFO (depth-first) and Priority
//     (min- or max-ordered by key, ties broken by insertion order).
//   - Workspace: one search context (Tree + Frontier + state→node index).
//     Engines create a fresh Workspace per call; nothing is shared between
//     calls, so concurrent searches never alias OPEN/CLOSED.
//   - Result: the explicit success/failure value returned by all engines.
//
// Determinism
//
//	Frontiers break ties by insertion sequence and the RNG helpers derive from
//	a fixed default seed, so identical inputs produce identical outputs.
//
// Tracing
//
//	WithLogger installs a *zap.Logger; engines emit debug-level events for
//	pops, expansions, relaxations and acceptance decisions. The default logger
//	is zap.NewNop(). Tracing never changes control flow or results.
//
// Errors
//
//   - ErrNilMoveGen, ErrNilGoalTest, ErrNilHeuristic, ErrNilCost when a
//     required capability is missing.
//   - ErrOptionViolation for invalid options (negative weights, ...).
//   - ErrUnknownObjective from ParseObjective.
//
// Panics raised inside callbacks are never recovered; they reach the caller
// unchanged.
package search
