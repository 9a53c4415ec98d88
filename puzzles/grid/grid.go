package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/search"
)

// New constructs a Grid from a non-empty, rectangular matrix of costs.
// It deep-copies the input. Returns ErrEmptyGrid, ErrNonRectangular or
// ErrNegativeCost.
// Complexity: O(W×H) time and memory.
func New(costs [][]float64, conn Connectivity) (*Grid, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(costs), len(costs[0])
	for _, row := range costs {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	minCost := math.Inf(1)
	cells := make([][]float64, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]float64, w)
		for x, c := range costs[y] {
			if !(c >= 0) {
				return nil, fmt.Errorf("%w: (%d,%d)=%v", ErrNegativeCost, x, y, c)
			}
			cells[y][x] = c
			if c < minCost {
				minCost = c
			}
		}
	}
	if math.IsInf(minCost, 1) {
		minCost = 0
	}

	var offsets [][2]int
	if conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{
		Width:   w,
		Height:  h,
		Conn:    conn,
		costs:   cells,
		offsets: offsets,
		minCost: minCost,
	}, nil
}

// Parse builds a Grid from text rows, one symbol per cell.
func Parse(rows []string, legend Legend, conn Connectivity) (*Grid, error) {
	costs := make([][]float64, len(rows))
	for y, row := range rows {
		for x, r := range []rune(row) {
			c, ok := legend[r]
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownTerrain, r, x, y)
			}
			costs[y] = append(costs[y], c)
		}
	}

	return New(costs, conn)
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// CellCost returns the cost of entering p, or Blocked outside the grid.
func (g *Grid) CellCost(p Point) float64 {
	if !g.InBounds(p) {
		return Blocked
	}

	return g.costs[p.Y][p.X]
}

// Passable reports whether p is inside the grid and not blocked.
func (g *Grid) Passable(p Point) bool {
	return !math.IsInf(g.CellCost(p), 1)
}

// Neighbors lists the passable cells adjacent to p in offset order
// (clockwise from north).
// Complexity: O(d) with d = 4 or 8.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(g.offsets))
	for _, d := range g.offsets {
		q := Point{X: p.X + d[0], Y: p.Y + d[1]}
		if g.Passable(q) {
			out = append(out, q)
		}
	}

	return out
}

// Cost is the step cost of moving from one cell into an adjacent one.
func (g *Grid) Cost(_, to Point) float64 { return g.CellCost(to) }

// Distance is the move-count lower bound between a and b: Manhattan
// distance for Conn4, Chebyshev distance for Conn8.
func (g *Grid) Distance(a, b Point) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if g.Conn == Conn8 {
		return max(dx, dy)
	}

	return dx + dy
}

// Estimate returns Distance(p, goal) scaled by the cheapest cell cost,
// which never overestimates the remaining path cost.
func (g *Grid) Estimate(p, goal Point) float64 {
	return float64(g.Distance(p, goal)) * g.minCost
}

// Problem returns the planning problem of reaching goal.
// It returns ErrOutOfBounds or ErrBlocked for an unusable goal.
func (g *Grid) Problem(goal Point) (search.Problem[Point], error) {
	if !g.InBounds(goal) {
		return search.Problem[Point]{}, fmt.Errorf("%w: %v", ErrOutOfBounds, goal)
	}
	if !g.Passable(goal) {
		return search.Problem[Point]{}, fmt.Errorf("%w: %v", ErrBlocked, goal)
	}

	return search.Problem[Point]{
		MoveGen:   g.Neighbors,
		GoalTest:  func(p Point) bool { return p == goal },
		Heuristic: func(p Point) float64 { return g.Estimate(p, goal) },
		Cost:      g.Cost,
	}, nil
}

// PathCost sums the entry costs along path, skipping the first cell.
func (g *Grid) PathCost(path []Point) float64 {
	var sum float64
	for i := 1; i < len(path); i++ {
		sum += g.CellCost(path[i])
	}

	return sum
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
