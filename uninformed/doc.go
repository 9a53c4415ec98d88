// Package uninformed implements blind state-space search over any domain that
// honors the search.Problem contract.
//
// What
//
//   - ConfigSearch(p, start, traversal, solution): breadth- or depth-first
//     search for states satisfying p.GoalTest, stopping at the first goal
//     (One) or collecting every goal path (All).
//   - DFID(p, start, maxEpochs): depth-first iterative deepening; runs
//     DepthBoundedDFS for bound = 0, 1, 2, … and stops at the first bound that
//     yields a solution, or as soon as a bound cuts nothing off.
//   - PlanningSearch(p, start, goal, traversal): same loop, but success means
//     equality with a fixed target state; p.GoalTest is not consulted.
//
// Guarantees
//
//   - BFS returns a fewest-edge path whenever one exists.
//   - DFS returns a valid path, not necessarily the shortest.
//   - A DFID answer never exceeds the bound reported in Result.Bound.
//   - A start state that already satisfies the goal yields Path == [start]
//     with zero expansions (in One mode).
//
// Duplicate suppression
//
//	Successors already present in OPEN or CLOSED are dropped before being
//	queued (search.Workspace.RemoveSeen), so every state is expanded at most
//	once per run.
//
// Complexity (V = reachable states, E = generated successors)
//
//   - Time:   O(V + E) hash operations per run (DFID: per bound).
//   - Memory: O(V) nodes in the arena.
//
// Errors
//
//   - search.ErrNilMoveGen, search.ErrNilGoalTest for missing callbacks.
//   - ErrUnknownTraversal, ErrUnknownSolutionMode for bad modes.
//   - ErrNegativeBound for negative depth bounds or epoch caps.
package uninformed
