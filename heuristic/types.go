// Package heuristic defines sentinel errors and helpers shared by the
// heuristic engines.
package heuristic

import (
	"errors"

	"github.com/katalvlaran/lvsearch/search"
)

// Sentinel errors for heuristic search.
var (
	// ErrBadBeamWidth is returned when the beam width is not positive.
	ErrBadBeamWidth = errors.New("heuristic: beam width must be positive")

	// ErrBadEpochs is returned for an epoch count the engine cannot honor.
	ErrBadEpochs = errors.New("heuristic: invalid epoch count")

	// ErrBadTenure is returned when the tabu list capacity is not positive.
	ErrBadTenure = errors.New("heuristic: tabu tenure must be positive")

	// ErrNoNeighborhoods is returned when VNS gets no (or a nil) neighborhood.
	ErrNoNeighborhoods = errors.New("heuristic: at least one non-nil neighborhood is required")
)

// DefaultTabuTenure is the tabu list capacity used by callers that have no
// better value.
const DefaultTabuTenure = 10

// Allowed filters a neighbor list before tabu selection.
type Allowed[S comparable] func(neighbors []S) []S

// Neighborhood is an alternative successor generator for VNS.
type Neighborhood[S comparable] func(state S) []S

// argBest returns the index and score of the best state in states, the
// first one winning ties. It returns -1 for an empty slice.
func argBest[S comparable](states []S, h func(S) float64, obj search.Objective) (int, float64) {
	best, bestScore := -1, 0.0
	for i, s := range states {
		score := h(s)
		if best < 0 || obj.Better(score, bestScore) {
			best, bestScore = i, score
		}
	}

	return best, bestScore
}
