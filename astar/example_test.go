package astar_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/astar"
	"github.com/katalvlaran/lvsearch/puzzles/tour"
)

// Constructing an optimal tour: A* over partial tours with the
// cheapest-incoming-edge bound.
func ExampleSearch() {
	in, _ := tour.NewInstance([][]float64{
		{0, 2, 9, 10},
		{1, 0, 6, 4},
		{15, 7, 0, 8},
		{6, 3, 12, 0},
	})

	res, err := astar.Search(in.Construct(), in.Start())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tour.Order(res.Path), res.Cost)
	// Output:
	// [0 2 3 1] 21
}
