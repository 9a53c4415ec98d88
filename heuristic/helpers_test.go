package heuristic_test

import (
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/search/searchmock"
)

// valley scores the states 0..10 of a number line. State 2 is a local
// minimum; the goal 7 is the global one.
var valley = []float64{5, 4, 3, 4, 5, 6, 1, 0, 1, 2, 3}

// step moves one unit left or right along the line.
func step(n int) []int {
	var out []int
	if n > 0 {
		out = append(out, n-1)
	}
	if n < len(valley)-1 {
		out = append(out, n+1)
	}

	return out
}

// jump moves five units left or right.
func jump(n int) []int {
	var out []int
	if n-5 >= 0 {
		out = append(out, n-5)
	}
	if n+5 < len(valley) {
		out = append(out, n+5)
	}

	return out
}

func valleyProblem() search.Problem[int] {
	return search.Problem[int]{
		MoveGen:   step,
		GoalTest:  func(n int) bool { return n == 7 },
		Heuristic: func(n int) float64 { return valley[n] },
	}
}

// mockDomain combines the generated mocks into an Agent with a heuristic.
type mockDomain struct {
	*searchmock.MockAgent[int]
	*searchmock.MockEstimator[int]
}
