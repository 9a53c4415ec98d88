package heuristic_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/search"
)

// A number line scored so that 2 is a local minimum and 7 the goal.
func ExampleHillClimbing() {
	scores := []float64{5, 4, 3, 4, 5, 6, 1, 0, 1, 2, 3}
	p := search.Problem[int]{
		MoveGen: func(n int) []int {
			var out []int
			if n > 0 {
				out = append(out, n-1)
			}
			if n < len(scores)-1 {
				out = append(out, n+1)
			}
			return out
		},
		GoalTest:  func(n int) bool { return n == 7 },
		Heuristic: func(n int) float64 { return scores[n] },
	}

	hill, _ := heuristic.HillClimbing(p, 0)
	fmt.Println("hill climbing:", hill.Found, hill.BestPath)

	tabu, _ := heuristic.TabuSearch(p, 0, nil, 20, 3)
	fmt.Println("tabu search:", tabu.Found, tabu.Path)
	// Output:
	// hill climbing: false [0 1 2]
	// tabu search: true [0 1 2 3 4 5 6 7]
}
