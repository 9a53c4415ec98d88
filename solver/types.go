// Package solver defines dispatcher errors and per-run extras.
package solver

import (
	"errors"

	"github.com/katalvlaran/lvsearch/heuristic"
)

// Sentinel errors for the dispatcher.
var (
	// ErrNilConfig indicates that Solve received a nil configuration.
	ErrNilConfig = errors.New("solver: config is nil")

	// ErrUnsupportedAlgorithm indicates an algorithm the dispatcher cannot route.
	ErrUnsupportedAlgorithm = errors.New("solver: unsupported algorithm")

	// ErrMissingGoal indicates a planning run without Extras.Goal.
	ErrMissingGoal = errors.New("solver: planning search requires a goal state")
)

// Extras carries the per-algorithm inputs that do not fit in a Config.
type Extras[S comparable] struct {
	// Goal is the fixed target of planning search.
	Goal *S

	// Allowed filters tabu candidates; nil admits every neighbor.
	Allowed heuristic.Allowed[S]

	// Neighborhoods feed VNS; empty falls back to the problem's MoveGen.
	Neighborhoods []heuristic.Neighborhood[S]
}
