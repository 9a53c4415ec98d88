package nqueens

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// MaxN is the largest supported board.
const MaxN = 16

// ErrBadSize indicates n outside 1..MaxN or columns outside the board.
var ErrBadSize = errors.New("nqueens: invalid board")

// Board holds Cols[r] = column of the queen in row r for r < Placed.
type Board struct {
	N      int
	Placed int
	Cols   [MaxN]int
}

// Empty returns an n×n board without queens.
func Empty(n int) (Board, error) {
	if n < 1 || n > MaxN {
		return Board{}, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}

	return Board{N: n}, nil
}

// FromColumns returns a full board with a queen at (r, cols[r]).
func FromColumns(cols []int) (Board, error) {
	b, err := Empty(len(cols))
	if err != nil {
		return b, err
	}
	for r, c := range cols {
		if c < 0 || c >= b.N {
			return Board{}, fmt.Errorf("%w: column %d in row %d", ErrBadSize, c, r)
		}
		b.Cols[r] = c
	}
	b.Placed = b.N

	return b, nil
}

// Random returns a full board with one uniformly random queen per row.
func Random(rng *rand.Rand, n int) (Board, error) {
	b, err := Empty(n)
	if err != nil {
		return b, err
	}
	for r := 0; r < n; r++ {
		b.Cols[r] = rng.Intn(n)
	}
	b.Placed = n

	return b, nil
}

// attacks reports whether queens at (r1,c1) and (r2,c2) attack each other.
func attacks(r1, c1, r2, c2 int) bool {
	return c1 == c2 || abs(r1-r2) == abs(c1-c2)
}

// Safe reports whether a queen at (row, col) is attacked by none of the
// queens in rows above it.
func (b Board) Safe(row, col int) bool {
	for r := 0; r < row && r < b.Placed; r++ {
		if attacks(r, b.Cols[r], row, col) {
			return false
		}
	}

	return true
}

// Conflicts counts attacking pairs among the placed queens.
func Conflicts(b Board) float64 {
	n := 0
	for i := 0; i < b.Placed; i++ {
		for j := i + 1; j < b.Placed; j++ {
			if attacks(i, b.Cols[i], j, b.Cols[j]) {
				n++
			}
		}
	}

	return float64(n)
}

// Solved reports whether all N queens are placed without conflicts.
func Solved(b Board) bool { return b.Placed == b.N && Conflicts(b) == 0 }

// Place extends b by one queen on every safe column of the next row.
func Place(b Board) []Board {
	if b.Placed >= b.N {
		return nil
	}
	out := make([]Board, 0, b.N)
	for c := 0; c < b.N; c++ {
		if b.Safe(b.Placed, c) {
			n := b
			n.Cols[b.Placed] = c
			n.Placed++
			out = append(out, n)
		}
	}

	return out
}

// Remaining is the number of queens still to place.
func Remaining(b Board) float64 { return float64(b.N - b.Placed) }

// Repair lists every board that moves exactly one queen to another column
// of its row.
func Repair(b Board) []Board {
	out := make([]Board, 0, b.Placed*(b.N-1))
	for r := 0; r < b.Placed; r++ {
		for c := 0; c < b.N; c++ {
			if c == b.Cols[r] {
				continue
			}
			n := b
			n.Cols[r] = c
			out = append(out, n)
		}
	}

	return out
}

// RepairFirst moves only the topmost queen attacked from above, trying each
// column of its row that is safe with respect to the rows above.
func RepairFirst(b Board) []Board {
	for r := 0; r < b.Placed; r++ {
		if b.Safe(r, b.Cols[r]) {
			continue
		}
		var out []Board
		for c := 0; c < b.N; c++ {
			if c != b.Cols[r] && b.Safe(r, c) {
				n := b
				n.Cols[r] = c
				out = append(out, n)
			}
		}

		return out
	}

	return nil
}

// PlacementProblem solves the puzzle by incremental placement.
func PlacementProblem() search.Problem[Board] {
	return search.Problem[Board]{
		MoveGen:   Place,
		GoalTest:  Solved,
		Heuristic: Remaining,
		Cost:      func(_, _ Board) float64 { return 1 },
	}
}

// RepairProblem solves the puzzle by minimizing Conflicts on full boards.
func RepairProblem() search.Problem[Board] {
	return search.Problem[Board]{
		MoveGen:   Repair,
		GoalTest:  Solved,
		Heuristic: Conflicts,
		Cost:      func(_, _ Board) float64 { return 1 },
	}
}

// Columns returns the placed columns.
func (b Board) Columns() []int {
	out := make([]int, b.Placed)
	copy(out, b.Cols[:b.Placed])

	return out
}

// String draws the board with "Q" for queens and "." for empty squares.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.N; r++ {
		for c := 0; c < b.N; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if r < b.Placed && b.Cols[r] == c {
				sb.WriteByte('Q')
			} else {
				sb.WriteByte('.')
			}
		}
		if r < b.N-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
