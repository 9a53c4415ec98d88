package fifteen

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// Side is the board width and height.
const Side = 4

// Size is the number of positions.
const Size = Side * Side

// Blank is the value that marks the empty position.
const Blank = Size

// ErrInvalidBoard indicates values that are not a permutation of 1..16.
var ErrInvalidBoard = errors.New("fifteen: board must be a permutation of 1..16")

// Board is a puzzle position.
type Board [Size]uint8

// Goal returns the solved board.
func Goal() Board {
	var b Board
	for i := range b {
		b[i] = uint8(i + 1)
	}

	return b
}

// FromSlice validates tiles and returns them as a Board.
func FromSlice(tiles []int) (Board, error) {
	var b Board
	if len(tiles) != Size {
		return b, fmt.Errorf("%w: got %d values", ErrInvalidBoard, len(tiles))
	}
	var seen [Size + 1]bool
	for i, t := range tiles {
		if t < 1 || t > Size || seen[t] {
			return b, fmt.Errorf("%w: bad value %d at %d", ErrInvalidBoard, t, i)
		}
		seen[t] = true
		b[i] = uint8(t)
	}

	return b, nil
}

// IsGoal reports whether position i holds i+1 everywhere.
func (b Board) IsGoal() bool { return b == Goal() }

// BlankIndex returns the position of the blank.
func (b Board) BlankIndex() int {
	for i, t := range b {
		if t == Blank {
			return i
		}
	}

	return -1
}

// Moves returns the boards reachable in one move, sliding the blank up,
// down, left and right in that order.
func (b Board) Moves() []Board {
	z := b.BlankIndex()
	r, c := z/Side, z%Side
	out := make([]Board, 0, 4)
	try := func(nr, nc int) {
		if nr < 0 || nr >= Side || nc < 0 || nc >= Side {
			return
		}
		n := b
		j := nr*Side + nc
		n[z], n[j] = n[j], n[z]
		out = append(out, n)
	}
	try(r-1, c)
	try(r+1, c)
	try(r, c-1)
	try(r, c+1)

	return out
}

// Manhattan sums the grid distance of every tile from its goal position.
// It is admissible and consistent for unit move costs.
func Manhattan(b Board) float64 {
	sum := 0
	for i, t := range b {
		if t == Blank {
			continue
		}
		g := int(t) - 1
		sum += abs(i/Side-g/Side) + abs(i%Side-g%Side)
	}

	return float64(sum)
}

// Hamming counts misplaced tiles, blank excluded.
func Hamming(b Board) float64 {
	n := 0
	for i, t := range b {
		if t != Blank && int(t) != i+1 {
			n++
		}
	}

	return float64(n)
}

// Solvable reports whether the goal is reachable from b: the inversion
// count plus the blank's row counted from the bottom must be odd.
func (b Board) Solvable() bool {
	inv := 0
	for i := 0; i < Size; i++ {
		if b[i] == Blank {
			continue
		}
		for j := i + 1; j < Size; j++ {
			if b[j] != Blank && b[j] < b[i] {
				inv++
			}
		}
	}
	rowFromBottom := Side - b.BlankIndex()/Side

	return (inv+rowFromBottom)%2 == 1
}

// Scramble walks n random moves away from the goal, never undoing the
// previous move. The result is always solvable in at most n moves.
func Scramble(rng *rand.Rand, n int) Board {
	b := Goal()
	var prev Board
	for i := 0; i < n; i++ {
		moves := b.Moves()
		if i > 0 {
			moves = without(moves, prev)
		}
		prev, b = b, search.Pick(rng, moves)
	}

	return b
}

// Problem returns the unit-cost 15-puzzle problem with the given heuristic.
// A nil heuristic selects Manhattan.
func Problem(h func(Board) float64) search.Problem[Board] {
	if h == nil {
		h = Manhattan
	}

	return search.Problem[Board]{
		MoveGen:   Board.Moves,
		GoalTest:  Board.IsGoal,
		Heuristic: h,
		Cost:      func(_, _ Board) float64 { return 1 },
	}
}

// String renders the board as four rows with "_" for the blank.
func (b Board) String() string {
	var sb strings.Builder
	for i, t := range b {
		if i > 0 && i%Side == 0 {
			sb.WriteByte('\n')
		} else if i > 0 {
			sb.WriteByte(' ')
		}
		if t == Blank {
			sb.WriteString(" _")
		} else {
			fmt.Fprintf(&sb, "%2d", t)
		}
	}

	return sb.String()
}

func without(moves []Board, drop Board) []Board {
	out := moves[:0]
	for _, m := range moves {
		if m != drop {
			out = append(out, m)
		}
	}

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
