// Package stochastic implements randomized local search: a random walk and
// two Metropolis engines, simulated annealing and stochastic hill climbing.
//
// Every engine follows a single trajectory from start. Each epoch draws one
// successor of the current state uniformly at random and decides whether to
// move there:
//
//   - RandomWalk always moves.
//   - SimulatedAnnealing and StochasticHillClimbing accept an improving
//     neighbor unconditionally and a worsening one with probability
//     exp(−ΔE/T), where ΔE is how much worse the neighbor's heuristic is
//     (search.Objective.Delta). Annealing cools T after epoch i to
//     max(T0·exp(−cooling·i), Tmin); hill climbing keeps T fixed.
//
// The heuristic is the energy. Best, BestScore and BestPath describe the
// best state ever reached, which never gets worse no matter which moves are
// accepted. The goal test runs on the start and after every accepted move;
// reaching a goal ends the run with Path set to the trajectory. A state
// without successors ends the run early with Found == false.
//
// Randomness comes from search.NewRand(seed) (see search.WithSeed), so equal
// seeds replay equal runs.
package stochastic
