// Package heuristic implements search engines driven by a domain heuristic:
// best-first, hill climbing, beam, tabu and variable-neighborhood search.
//
// Scores come from Problem.Heuristic. Lower is better unless the call runs
// with search.WithObjective(search.Maximize).
//
// Engines
//
//   - BestFirstSearch: priority queue ordered purely by heuristic value.
//     Complete on finite spaces; optimal only with respect to heuristic rank.
//   - HillClimbing: pops the best-looking untried successor and only queues
//     successors that improve on their parent. Stopping at a local optimum
//     is normal: Found is false and Best holds the optimum reached.
//   - BeamSearch: keeps the best beamWidth nodes after every round. Pruned
//     nodes are forgotten, which bounds OPEN at the cost of completeness.
//   - TabuSearch: moves to the best allowed, non-tabu neighbor every epoch,
//     even when it is worse; the tabu list holds the most recent states and
//     evicts the oldest once full.
//   - VariableNeighborhoodSearch: tries neighborhoods in order, restarting
//     from the first after any improvement, and shakes to a random neighbor
//     when none improves.
//
// Local-search results
//
//	TabuSearch and VariableNeighborhoodSearch follow a single trajectory.
//	When a goal is reached, Path is that trajectory from start to goal.
//	Best, BestScore and BestPath always describe the best-seen state, which
//	never gets worse across epochs.
//
// Determinism
//
//	Ties are broken by MoveGen order (and, in queues, by insertion order).
//	VNS shaking uses search.NewRand(seed), so a fixed seed reproduces a run.
package heuristic
