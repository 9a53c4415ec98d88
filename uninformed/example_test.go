package uninformed_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/uninformed"
)

// ExampleConfigSearch solves the two-jug puzzle (4 and 3 litres, measure 2)
// breadth-first, which yields a shortest pouring sequence.
func ExampleConfigSearch() {
	type jugs struct{ a, b int }
	p := search.Problem[jugs]{
		MoveGen: func(s jugs) []jugs {
			pourAB := min(s.a, 3-s.b)
			pourBA := min(s.b, 4-s.a)
			return []jugs{
				{4, s.b}, {s.a, 3}, // fill
				{0, s.b}, {s.a, 0}, // empty
				{s.a - pourAB, s.b + pourAB},
				{s.a + pourBA, s.b - pourBA},
			}
		},
		GoalTest: func(s jugs) bool { return s.a == 2 },
	}

	res, err := uninformed.ConfigSearch(p, jugs{}, uninformed.BFS, uninformed.One)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("moves:", len(res.Path)-1)
	steps := make([]string, 0, len(res.Path))
	for _, s := range res.Path {
		steps = append(steps, fmt.Sprintf("(%d,%d)", s.a, s.b))
	}
	fmt.Println(strings.Join(steps, " "))

	// Output:
	// moves: 6
	// (0,0) (4,0) (1,3) (1,0) (0,1) (4,1) (2,3)
}

// ExampleDFID shows the bound at which iterative deepening succeeds.
func ExampleDFID() {
	p := search.Problem[int]{
		MoveGen:  func(n int) []int { return []int{n * 2, n + 1} },
		GoalTest: func(n int) bool { return n == 10 },
	}
	res, _ := uninformed.DFID(p, 1, 10)
	fmt.Println(res.Path, "bound", res.Bound)

	// Output:
	// [1 2 4 5 10] bound 4
}
