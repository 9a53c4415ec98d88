// Package lvsearch is a generic state-space search toolkit: plug in a
// domain through a handful of callbacks and run any classic search engine
// over it.
//
// What is in the box?
//
//	• Uninformed search: BFS, DFS (one or all solutions), DFID, planning to a fixed goal
//	• Heuristic search: best-first, hill climbing, beam, tabu, variable-neighborhood
//	• Informed search: weighted A* with closed-node relaxation
//	• Stochastic search: random walk, simulated annealing, stochastic hill climbing
//
// Why choose lvsearch?
//
//   - One contract: MoveGen + GoalTest, with Heuristic and Cost where needed
//   - Explicit results: a Result value for "solved" and "not solved", errors only for bad input
//   - Deterministic: stable tie-breaking and seeded randomness
//   - Traceable: zap debug tracing that never changes outcomes
//
// Everything is organized in subpackages:
//
//	search/       contract, node arena, frontiers, workspace, options, tracing
//	uninformed/   ConfigSearch, PlanningSearch, DFID, DepthBoundedDFS
//	heuristic/    BestFirstSearch, HillClimbing, BeamSearch, TabuSearch, VariableNeighborhoodSearch
//	astar/        Search (A*)
//	stochastic/   RandomWalk, SimulatedAnnealing, StochasticHillClimbing
//	config/       YAML run configuration
//	solver/       config-driven dispatcher
//	puzzles/      reference domains: fifteen, nqueens, grid, tour
//
// Quick example (15-puzzle with A*):
//
//	p := fifteen.Problem(fifteen.Manhattan)
//	res, err := astar.Search(p, start)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Found, len(res.Path)-1)
//
//	go get github.com/katalvlaran/lvsearch
package lvsearch
